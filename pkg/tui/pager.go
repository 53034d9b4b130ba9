package tui

// pageWindow is the slice of a collection visible on one page, plus the
// navigation metadata derived from it. It is computed, never stored.
type pageWindow struct {
	Start      int // inclusive
	End        int // exclusive
	TotalPages int
}

// computeWindow derives the visible slice for a 1-based currentPage.
// totalPages is ceil(total/pageSize); zero when the collection is empty.
func computeWindow(total, pageSize, currentPage int) pageWindow {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (total + pageSize - 1) / pageSize

	start := (currentPage - 1) * pageSize
	if start < 0 {
		start = 0
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	return pageWindow{Start: start, End: end, TotalPages: totalPages}
}

// clampPage folds any requested page into [1, max(1, totalPages)].
// Out-of-range requests are silently clamped, never rejected; an empty
// collection always lands on page 1.
func clampPage(requested, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if requested < 1 {
		return 1
	}
	if requested > totalPages {
		return totalPages
	}
	return requested
}

// visiblePageNumbers returns the page numbers to render as jump controls:
// all of them when they fit in the window, otherwise a band of `window`
// consecutive pages anchored so current sits near the middle, clipped at
// the boundaries.
func visiblePageNumbers(current, totalPages, window int) []int {
	if totalPages < 1 {
		return nil
	}
	if window < 1 {
		window = 1
	}

	start, end := 1, totalPages
	if totalPages > window {
		start = current - window/2
		if start < 1 {
			start = 1
		}
		end = start + window - 1
		if end > totalPages {
			end = totalPages
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
