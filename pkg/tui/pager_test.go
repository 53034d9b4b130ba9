package tui

import (
	"reflect"
	"testing"
)

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		pageSize   int
		page       int
		wantStart  int
		wantEnd    int
		wantTotalP int
	}{
		{
			name:  "Empty collection",
			total: 0, pageSize: 10, page: 1,
			wantStart: 0, wantEnd: 0, wantTotalP: 0,
		},
		{
			name:  "Single short page",
			total: 3, pageSize: 10, page: 1,
			wantStart: 0, wantEnd: 3, wantTotalP: 1,
		},
		{
			name:  "Exact multiple",
			total: 20, pageSize: 10, page: 2,
			wantStart: 10, wantEnd: 20, wantTotalP: 2,
		},
		{
			name:  "Partial last page",
			total: 23, pageSize: 10, page: 3,
			wantStart: 20, wantEnd: 23, wantTotalP: 3,
		},
		{
			name:  "Middle page is full",
			total: 23, pageSize: 10, page: 2,
			wantStart: 10, wantEnd: 20, wantTotalP: 3,
		},
		{
			name:  "Page size one",
			total: 5, pageSize: 1, page: 5,
			wantStart: 4, wantEnd: 5, wantTotalP: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := computeWindow(tt.total, tt.pageSize, tt.page)
			if w.Start != tt.wantStart || w.End != tt.wantEnd || w.TotalPages != tt.wantTotalP {
				t.Errorf("computeWindow(%d, %d, %d) = %+v, want start=%d end=%d totalPages=%d",
					tt.total, tt.pageSize, tt.page, w, tt.wantStart, tt.wantEnd, tt.wantTotalP)
			}
		})
	}
}

// Every page window is at most pageSize rows, with equality everywhere but
// possibly the last page.
func TestComputeWindowSizeInvariant(t *testing.T) {
	for total := 0; total <= 57; total++ {
		for pageSize := 1; pageSize <= 12; pageSize++ {
			totalPages := (total + pageSize - 1) / pageSize
			for page := 1; page <= totalPages; page++ {
				w := computeWindow(total, pageSize, page)
				size := w.End - w.Start
				if size > pageSize {
					t.Fatalf("window larger than page: total=%d pageSize=%d page=%d got %d",
						total, pageSize, page, size)
				}
				if page < totalPages && size != pageSize {
					t.Fatalf("non-final page not full: total=%d pageSize=%d page=%d got %d",
						total, pageSize, page, size)
				}
			}
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		requested  int
		totalPages int
		want       int
	}{
		{"In range", 2, 3, 2},
		{"Too high clamps to last", 5, 3, 3},
		{"Too low clamps to first", 0, 3, 1},
		{"Negative clamps to first", -7, 3, 1},
		{"Zero pages still yields one", 4, 0, 1},
		{"Exact last page", 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampPage(tt.requested, tt.totalPages); got != tt.want {
				t.Errorf("clampPage(%d, %d) = %d, want %d", tt.requested, tt.totalPages, got, tt.want)
			}
		})
	}
}

func TestClampPageIdempotent(t *testing.T) {
	for totalPages := 1; totalPages <= 9; totalPages++ {
		for requested := -3; requested <= 12; requested++ {
			once := clampPage(requested, totalPages)
			twice := clampPage(once, totalPages)
			if once != twice {
				t.Fatalf("clampPage not idempotent: requested=%d totalPages=%d first=%d second=%d",
					requested, totalPages, once, twice)
			}
		}
	}
}

func TestVisiblePageNumbers(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{"All pages fit", 1, 3, []int{1, 2, 3}},
		{"Exactly the window", 5, 5, []int{1, 2, 3, 4, 5}},
		{"Centered band", 5, 9, []int{3, 4, 5, 6, 7}},
		{"Clipped at start", 1, 9, []int{1, 2, 3, 4, 5}},
		{"Clipped near start", 2, 9, []int{1, 2, 3, 4, 5}},
		{"Clipped at end", 9, 9, []int{7, 8, 9}},
		{"No pages", 1, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visiblePageNumbers(tt.current, tt.totalPages, 5)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("visiblePageNumbers(%d, %d, 5) = %v, want %v", tt.current, tt.totalPages, got, tt.want)
			}
		})
	}
}
