package importer

import (
	"testing"

	"github.com/baucraft/ticket-studio/internal/model"
)

func TestNormalize_HeaderRowDetection(t *testing.T) {
	t.Parallel()

	grid := [][]model.CellValue{
		{model.EmptyCell(), model.StringCell("   ")},
		{model.StringCell("  Prozess   ID "), model.StringCell("Aufgabe"), model.StringCell("Datum")},
		{model.StringCell("T1"), model.StringCell("Estrich"), model.NumberCell(46216)},
	}

	table := Normalize("plan.xlsx", grid)
	if table.FileName != "plan.xlsx" {
		t.Fatalf("unexpected file name: %s", table.FileName)
	}
	if len(table.Headers) != 3 {
		t.Fatalf("unexpected header count: %d", len(table.Headers))
	}
	if table.Headers[0] != "Prozess ID" {
		t.Fatalf("header not normalized: %q", table.Headers[0])
	}
	if len(table.Rows) != 1 {
		t.Fatalf("unexpected row count: %d", len(table.Rows))
	}
}

func TestNormalize_PlaceholderHeaders(t *testing.T) {
	t.Parallel()

	grid := [][]model.CellValue{
		{model.StringCell("Aufgabe"), model.StringCell("  "), model.EmptyCell()},
		{model.StringCell("Rohbau"), model.StringCell("x"), model.StringCell("y")},
	}

	table := Normalize("plan.xlsx", grid)
	if table.Headers[1] != "__col2" || table.Headers[2] != "__col3" {
		t.Fatalf("unexpected placeholder headers: %v", table.Headers)
	}

	seen := map[string]bool{}
	for _, h := range table.Headers {
		if h == "" {
			t.Fatalf("empty header survived normalization")
		}
		if seen[h] {
			t.Fatalf("duplicate header %q", h)
		}
		seen[h] = true
	}
}

func TestNormalize_DropsBlankRows(t *testing.T) {
	t.Parallel()

	grid := [][]model.CellValue{
		{model.StringCell("Id"), model.StringCell("Aufgabe")},
		{model.StringCell("1"), model.StringCell("Maurer")},
		{model.StringCell("  "), model.EmptyCell()},
		{model.StringCell("2"), model.StringCell("Maler")},
	}

	table := Normalize("plan.xlsx", grid)
	if len(table.Rows) != 2 {
		t.Fatalf("blank row not dropped: %d rows", len(table.Rows))
	}
}

func TestNormalize_MissingTrailingCells(t *testing.T) {
	t.Parallel()

	grid := [][]model.CellValue{
		{model.StringCell("Id"), model.StringCell("Aufgabe"), model.StringCell("Datum")},
		{model.StringCell("1"), model.StringCell("Trockenbau")},
	}

	table := Normalize("plan.xlsx", grid)
	if len(table.Rows) != 1 {
		t.Fatalf("unexpected row count: %d", len(table.Rows))
	}
	v, ok := table.Rows[0]["Datum"]
	if !ok {
		t.Fatalf("row missing value for trailing header")
	}
	if !v.IsEmpty() {
		t.Fatalf("trailing cell should be empty, got kind %d", v.Kind)
	}
}

func TestNormalize_EmptyGrid(t *testing.T) {
	t.Parallel()

	table := Normalize("leer.xlsx", nil)
	if len(table.Headers) != 0 || len(table.Rows) != 0 {
		t.Fatalf("empty grid should yield empty table: %+v", table)
	}
	if table.SourceKind != model.SourceKindUnknown {
		t.Fatalf("empty grid should be unknown, got %s", table.SourceKind)
	}
}
