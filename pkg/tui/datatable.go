package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Column describes one projected column of a DataTable. Exactly one of
// Field and Render drives value extraction: Render takes the whole row,
// Field extracts a raw value that Format may then map. The fallback token
// for a missing value only applies on the Field path without a Format,
// mirroring how raw cells are displayed.
type Column[T any] struct {
	Header string
	Width  int
	Field  func(T) any
	Render func(T) string
	Format func(any) string
}

const missingCell = "N/A"

func (c Column[T]) cell(item T) string {
	if c.Render != nil {
		return c.Render(item)
	}
	if c.Field == nil {
		return missingCell
	}
	raw := c.Field(item)
	if c.Format != nil {
		return c.Format(raw)
	}
	if raw == nil {
		return missingCell
	}
	s := fmt.Sprintf("%v", raw)
	if s == "" {
		return missingCell
	}
	return s
}

type actionVariant int

const (
	actionOutline actionVariant = iota
	actionPrimary
	actionDestructive
)

// Action is a per-row control. Nav produces a view switch, Do runs a
// handler with the row record; an action is one or the other.
type Action[T any] struct {
	Label   string
	Key     string
	Nav     func(T) tea.Cmd
	Do      func(T) tea.Cmd
	Variant actionVariant
}

func (a Action[T]) invoke(item T) tea.Cmd {
	if a.Nav != nil {
		return a.Nav(item)
	}
	if a.Do != nil {
		return a.Do(item)
	}
	return nil
}

// DataTable renders a record collection as rows of projected columns with
// paging, a cursor, and per-row actions. It owns only presentation state;
// the containing page owns the data and refetching.
type DataTable[T any] struct {
	columns []Column[T]
	actions []Action[T]

	data         []T
	loading      bool
	errMsg       string
	emptyMessage string

	page            int
	pageSize        int
	pageSizeOptions []int
	showPagination  bool

	cursor  int
	width   int
	spinner spinner.Model
}

func NewDataTable[T any](columns []Column[T], actions []Action[T]) *DataTable[T] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &DataTable[T]{
		columns:         columns,
		actions:         actions,
		loading:         true,
		emptyMessage:    "No data found.",
		page:            1,
		pageSize:        10,
		pageSizeOptions: []int{5, 10, 20, 50},
		showPagination:  true,
		spinner:         sp,
	}
}

func (t *DataTable[T]) Init() tea.Cmd {
	return t.spinner.Tick
}

func (t *DataTable[T]) SetEmptyMessage(msg string) {
	t.emptyMessage = msg
}

func (t *DataTable[T]) SetPageSizeOptions(defaultSize int, options []int) {
	if defaultSize > 0 {
		t.pageSize = defaultSize
	}
	if len(options) > 0 {
		t.pageSizeOptions = options
	}
}

func (t *DataTable[T]) SetWidth(width int) {
	t.width = width
}

// SetData replaces the collection. The current page is clamped so a shrink
// never leaves the table on an empty out-of-range page.
func (t *DataTable[T]) SetData(data []T) {
	t.data = data
	t.loading = false
	w := computeWindow(len(t.data), t.pageSize, t.page)
	t.page = clampPage(t.page, w.TotalPages)
	t.clampCursor()
}

func (t *DataTable[T]) SetLoading(loading bool) {
	t.loading = loading
}

func (t *DataTable[T]) SetError(msg string) {
	t.errMsg = msg
	t.loading = false
}

func (t *DataTable[T]) Loading() bool {
	return t.loading
}

func (t *DataTable[T]) Len() int {
	return len(t.data)
}

// Data exposes the full backing collection, not just the visible page.
func (t *DataTable[T]) Data() []T {
	return t.data
}

// Selected returns the record under the cursor.
func (t *DataTable[T]) Selected() (T, bool) {
	var zero T
	if t.cursor < 0 || t.cursor >= len(t.data) {
		return zero, false
	}
	return t.data[t.cursor], true
}

// RemoveSelected drops the record under the cursor from local state,
// used after a successful delete so no refetch is needed.
func (t *DataTable[T]) RemoveSelected() {
	if t.cursor < 0 || t.cursor >= len(t.data) {
		return
	}
	t.data = append(t.data[:t.cursor], t.data[t.cursor+1:]...)
	w := computeWindow(len(t.data), t.pageSize, t.page)
	t.page = clampPage(t.page, w.TotalPages)
	t.clampCursor()
}

// goToPage routes every navigation request through the clamp.
func (t *DataTable[T]) goToPage(page int) {
	w := computeWindow(len(t.data), t.pageSize, t.page)
	t.page = clampPage(page, w.TotalPages)
	t.cursor = computeWindow(len(t.data), t.pageSize, t.page).Start
	t.clampCursor()
}

// cyclePageSize moves to the next configured page size and resets to the
// first page, preventing a landing on an out-of-range page.
func (t *DataTable[T]) cyclePageSize() {
	if len(t.pageSizeOptions) == 0 {
		return
	}
	next := 0
	for i, size := range t.pageSizeOptions {
		if size == t.pageSize {
			next = (i + 1) % len(t.pageSizeOptions)
			break
		}
	}
	t.pageSize = t.pageSizeOptions[next]
	t.page = 1
	t.cursor = 0
	t.clampCursor()
}

func (t *DataTable[T]) clampCursor() {
	if len(t.data) == 0 {
		t.cursor = 0
		return
	}
	w := computeWindow(len(t.data), t.pageSize, t.page)
	if t.cursor < w.Start {
		t.cursor = w.Start
	}
	if t.cursor >= w.End {
		t.cursor = w.End - 1
	}
}

func (t *DataTable[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !t.loading {
			return nil
		}
		var cmd tea.Cmd
		t.spinner, cmd = t.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if t.loading {
			return nil
		}
		return t.handleKey(msg)
	}
	return nil
}

func (t *DataTable[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	w := computeWindow(len(t.data), t.pageSize, t.page)

	switch key := msg.String(); key {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
			if t.cursor < w.Start {
				t.page = clampPage(t.page-1, w.TotalPages)
			}
		}
	case "down", "j":
		if t.cursor < len(t.data)-1 {
			t.cursor++
			if t.cursor >= w.End {
				t.page = clampPage(t.page+1, w.TotalPages)
			}
		}
	case "left", "h":
		t.goToPage(t.page - 1)
	case "right", "l":
		t.goToPage(t.page + 1)
	case "g":
		t.goToPage(1)
	case "G":
		t.goToPage(w.TotalPages)
	case "s":
		t.cyclePageSize()
	default:
		if page, err := strconv.Atoi(key); err == nil {
			t.goToPage(page)
			return nil
		}
		if item, ok := t.Selected(); ok {
			for _, action := range t.actions {
				if action.Key == key {
					return action.invoke(item)
				}
			}
		}
	}
	return nil
}

func (t *DataTable[T]) View() string {
	var b strings.Builder

	if t.loading {
		b.WriteString(t.spinner.View())
		b.WriteString(" Loading...")
		return b.String()
	}

	if t.errMsg != "" {
		b.WriteString(ErrorStyle.Render(t.errMsg))
		b.WriteString("\n\n")
	}

	if len(t.data) == 0 {
		b.WriteString(EmptyStateStyle.Render("No Data Found"))
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(t.emptyMessage))
		return b.String()
	}

	b.WriteString(t.renderHeader())
	b.WriteString("\n")

	w := computeWindow(len(t.data), t.pageSize, t.page)
	for i := w.Start; i < w.End; i++ {
		b.WriteString(t.renderRow(i))
		b.WriteString("\n")
	}

	if controls := t.renderPagination(w); controls != "" {
		b.WriteString("\n")
		b.WriteString(controls)
	}

	return b.String()
}

func (t *DataTable[T]) renderHeader() string {
	var cells []string
	for _, col := range t.columns {
		cells = append(cells, fmt.Sprintf("%-*s", col.Width, col.Header))
	}
	if len(t.actions) > 0 {
		cells = append(cells, "Actions")
	}
	return HeaderStyle.Render("  " + strings.Join(cells, "  "))
}

func (t *DataTable[T]) renderRow(index int) string {
	item := t.data[index]

	var cells []string
	for _, col := range t.columns {
		value := truncate.StringWithTail(col.cell(item), uint(col.Width), "…")
		cells = append(cells, fmt.Sprintf("%-*s", col.Width, value))
	}
	if len(t.actions) > 0 {
		cells = append(cells, t.renderActions())
	}

	row := strings.Join(cells, "  ")
	if index == t.cursor {
		return SelectedStyle.Render("> " + row)
	}
	return NormalStyle.Render("  " + row)
}

func (t *DataTable[T]) renderActions() string {
	var parts []string
	for _, action := range t.actions {
		label := fmt.Sprintf("%s:%s", action.Key, action.Label)
		switch action.Variant {
		case actionDestructive:
			label = ErrorStyle.Render(label)
		case actionPrimary:
			label = SuccessStyle.Render(label)
		default:
			label = DimStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

// renderPagination renders the navigation strip, or nothing when a single
// page holds everything.
func (t *DataTable[T]) renderPagination(w pageWindow) string {
	if !t.showPagination || w.TotalPages <= 1 {
		return ""
	}

	showingStart := w.Start + 1
	showingEnd := w.End
	summary := fmt.Sprintf("Showing %d to %d of %d results · %d/page",
		showingStart, showingEnd, len(t.data), t.pageSize)

	var pages []string
	pages = append(pages, DimStyle.Render("«"), DimStyle.Render("‹"))
	for _, p := range visiblePageNumbers(t.page, w.TotalPages, 5) {
		label := strconv.Itoa(p)
		if p == t.page {
			pages = append(pages, PagerCurrentStyle.Render(" "+label+" "))
		} else {
			pages = append(pages, PagerPageStyle.Render(" "+label+" "))
		}
	}
	pages = append(pages, DimStyle.Render("›"), DimStyle.Render("»"))

	return DimStyle.Render(summary) + "\n" + strings.Join(pages, " ")
}
