package excel

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/xlgrab/xlgrab-go/pkg/xlgrab"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "类别")
	f.SetCellValue(sheet, "B1", "数量")
	f.SetCellValue(sheet, "A2", "甲")
	f.SetCellValue(sheet, "B2", 100)
	f.SetCellValue(sheet, "A3", "乙")
	f.SetCellValue(sheet, "B3", 200.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

func TestOpenWorkbook(t *testing.T) {
	wb, err := OpenWorkbook(writeTestWorkbook(t))
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}

	names := wb.SheetNames()
	if len(names) != 1 || names[0] != "Sheet1" {
		t.Fatalf("SheetNames = %v, want [Sheet1]", names)
	}

	g, err := wb.Grid("Sheet1")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if g.RowCount() != 3 || g.ColCount() != 2 {
		t.Errorf("grid is %dx%d, want 3x2", g.RowCount(), g.ColCount())
	}

	// Cell text parses into typed values.
	if got := g.CellAt(0, 0); got != "类别" {
		t.Errorf("A1 = %v, want 类别", got)
	}
	if got := g.CellAt(1, 1); got != int64(100) {
		t.Errorf("B2 = %v (%T), want int64(100)", got, got)
	}
	if got := g.CellAt(2, 1); got != 200.5 {
		t.Errorf("B3 = %v, want 200.5", got)
	}
	if got := g.CellAt(99, 0); got != nil {
		t.Errorf("out-of-range cell = %v, want nil", got)
	}
}

func TestGridSheetNotFound(t *testing.T) {
	wb, err := OpenWorkbook(writeTestWorkbook(t))
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	_, err = wb.Grid("Missing")
	if !errors.Is(err, xlgrab.ErrSheetNotFound) {
		t.Errorf("Grid error = %v, want ErrSheetNotFound", err)
	}
}

func TestOpenWorkbookMissingFile(t *testing.T) {
	if _, err := OpenWorkbook(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", nil},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestLastDataRow(t *testing.T) {
	wb, err := OpenWorkbook(writeTestWorkbook(t))
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	g, err := wb.Grid("Sheet1")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	if got := LastDataRow(g, 0); got != 2 {
		t.Errorf("LastDataRow(col A) = %d, want 2", got)
	}
	if got := LastDataRow(g, 5); got != -1 {
		t.Errorf("LastDataRow of blank column = %d, want -1", got)
	}
}
