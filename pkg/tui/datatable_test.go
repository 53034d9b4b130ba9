package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type testRow struct {
	name  string
	price float64
	note  string
}

func makeTestRows(n int) []testRow {
	rows := make([]testRow, n)
	for i := range rows {
		rows[i] = testRow{name: fmt.Sprintf("item-%02d", i), price: float64(i) + 0.5}
	}
	return rows
}

func testColumns() []Column[testRow] {
	return []Column[testRow]{
		{Header: "Name", Width: 12, Field: func(r testRow) any { return r.name }},
		{
			Header: "Price",
			Width:  10,
			Field:  func(r testRow) any { return r.price },
			Format: func(v any) string { return formatPrice(v.(float64)) },
		},
		{Header: "Note", Width: 10, Field: func(r testRow) any { return r.note }},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDataTableTruncatesLongCells(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetData([]testRow{{name: "a very long product name", price: 1.5}})

	view := table.View()
	if strings.Contains(view, "a very long product name") {
		t.Errorf("cell wider than its column rendered untruncated: %q", view)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("truncated cell missing the ellipsis tail: %q", view)
	}
}

func TestDataTableLoadingSuppressesBody(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetData(makeTestRows(3))
	table.SetLoading(true)
	table.SetError("boom")
	table.SetLoading(true) // SetError clears loading; reassert it

	view := table.View()
	if !strings.Contains(view, "Loading") {
		t.Errorf("loading view missing indicator: %q", view)
	}
	if strings.Contains(view, "item-00") {
		t.Errorf("table body rendered while loading: %q", view)
	}
	if strings.Contains(view, "boom") {
		t.Errorf("error rendered while loading: %q", view)
	}
}

func TestDataTableEmptyStateNotError(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetEmptyMessage("No products found.")
	table.SetData(nil)

	view := table.View()
	if !strings.Contains(view, "No Data Found") || !strings.Contains(view, "No products found.") {
		t.Errorf("empty state not rendered: %q", view)
	}
	if strings.Contains(view, "Showing") {
		t.Errorf("pagination rendered for empty table: %q", view)
	}
}

func TestDataTableErrorRendersAboveTable(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetError("failed to load")
	table.SetData(makeTestRows(2))

	view := table.View()
	if !strings.Contains(view, "failed to load") {
		t.Errorf("error message missing: %q", view)
	}
	if !strings.Contains(view, "item-00") {
		t.Errorf("table body should still render beneath the error: %q", view)
	}
}

func TestDataTableCellResolution(t *testing.T) {
	rendered := Column[testRow]{
		Header: "Custom",
		Render: func(r testRow) string { return "custom:" + r.name },
	}
	if got := rendered.cell(testRow{name: "x"}); got != "custom:x" {
		t.Errorf("Render accessor: got %q", got)
	}

	formatted := Column[testRow]{
		Header: "Price",
		Field:  func(r testRow) any { return r.price },
		Format: func(v any) string { return formatPrice(v.(float64)) },
	}
	if got := formatted.cell(testRow{price: 19.99}); got != "$19.99" {
		t.Errorf("Field+Format: got %q", got)
	}

	raw := Column[testRow]{
		Header: "Note",
		Field:  func(r testRow) any { return r.note },
	}
	if got := raw.cell(testRow{note: "hello"}); got != "hello" {
		t.Errorf("raw Field: got %q", got)
	}
	if got := raw.cell(testRow{}); got != "N/A" {
		t.Errorf("empty value should fall back to N/A, got %q", got)
	}

	nilField := Column[testRow]{
		Header: "Nil",
		Field:  func(r testRow) any { return nil },
	}
	if got := nilField.cell(testRow{}); got != "N/A" {
		t.Errorf("nil value should fall back to N/A, got %q", got)
	}
}

// 23 records at 10 per page: pages 1 and 2 hold 10 rows, page 3 holds 3,
// and requesting page 5 clamps to page 3.
func TestDataTablePagingScenario(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetData(makeTestRows(23))

	countRows := func() int {
		n := 0
		for i := range 23 {
			if strings.Contains(table.View(), fmt.Sprintf("item-%02d", i)) {
				n++
			}
		}
		return n
	}

	if got := countRows(); got != 10 {
		t.Errorf("page 1: rendered %d rows, want 10", got)
	}

	table.goToPage(2)
	if got := countRows(); got != 10 {
		t.Errorf("page 2: rendered %d rows, want 10", got)
	}

	table.goToPage(5)
	if table.page != 3 {
		t.Errorf("requesting page 5 should clamp to 3, got %d", table.page)
	}
	if got := countRows(); got != 3 {
		t.Errorf("page 3: rendered %d rows, want 3", got)
	}
}

func TestDataTablePageSizeChangeResetsPage(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetData(makeTestRows(23))
	table.goToPage(3)

	table.Update(keyMsg("s"))
	if table.page != 1 {
		t.Errorf("page size change must reset to page 1, got %d", table.page)
	}
	if table.pageSize != 20 {
		t.Errorf("expected next page size option 20, got %d", table.pageSize)
	}
}

func TestDataTablePaginationHiddenForSinglePage(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetData(makeTestRows(5))

	if strings.Contains(table.View(), "Showing") {
		t.Errorf("pagination controls rendered for a single page")
	}
}

func TestDataTableActionDispatch(t *testing.T) {
	var invoked []string
	actions := []Action[testRow]{
		{Label: "view", Key: "v", Nav: func(r testRow) tea.Cmd {
			invoked = append(invoked, "nav:"+r.name)
			return nil
		}},
		{Label: "delete", Key: "d", Variant: actionDestructive, Do: func(r testRow) tea.Cmd {
			invoked = append(invoked, "do:"+r.name)
			return nil
		}},
	}
	table := NewDataTable(testColumns(), actions)
	table.SetData(makeTestRows(3))

	table.Update(keyMsg("v"))
	table.Update(keyMsg("j"))
	table.Update(keyMsg("d"))

	want := []string{"nav:item-00", "do:item-01"}
	if len(invoked) != len(want) || invoked[0] != want[0] || invoked[1] != want[1] {
		t.Errorf("action dispatch = %v, want %v", invoked, want)
	}
}

func TestDataTableActionsColumnOmittedWhenEmpty(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetData(makeTestRows(1))
	if strings.Contains(table.View(), "Actions") {
		t.Errorf("actions column rendered with no actions")
	}
}

func TestDataTableRemoveSelected(t *testing.T) {
	table := NewDataTable(testColumns(), nil)
	table.SetData(makeTestRows(11))
	table.goToPage(2) // cursor on item-10, the only row of page 2

	table.RemoveSelected()
	if table.Len() != 10 {
		t.Errorf("expected 10 rows after removal, got %d", table.Len())
	}
	if table.page != 1 {
		t.Errorf("page should clamp back to 1 after last page emptied, got %d", table.page)
	}
}
