package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adamlewis-97/timestableworksheet/internal/layout"
	"github.com/adamlewis-97/timestableworksheet/internal/model"
)

func pdfPageCount(data []byte) int {
	// Page dictionaries are written uncompressed; "/Type /Pages" (the page
	// tree root) also matches the prefix, so subtract it out.
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worksheet.pdf")

	ws := sampleSheet()
	plan := layout.PrintLayout(len(ws.Questions))
	if err := WritePDF(path, ws, plan); err != nil {
		t.Fatalf("WritePDF() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", data[:8])
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(data))
	}
	if got := pdfPageCount(data); got != 2 {
		t.Errorf("page count = %d, want 2 (questions + answer key)", got)
	}
}

func TestWritePDF_DenseSheet(t *testing.T) {
	// 99 questions exercise three columns, the minimum font and wrapped
	// continuation lines.
	dir := t.TempDir()
	path := filepath.Join(dir, "dense.pdf")

	ws := sampleSheet()
	questions := make([]model.Question, 0, 99)
	for i := 0; i < 99; i++ {
		questions = append(questions, model.NewMultiplication(12, 1+i%12))
	}
	ws.Questions = questions

	plan := layout.PrintLayout(99)
	if err := WritePDF(path, ws, plan); err != nil {
		t.Fatalf("WritePDF() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if got := pdfPageCount(data); got != 2 {
		t.Errorf("page count = %d, want 2 regardless of density", got)
	}
}

func TestWritePDF_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "worksheet.pdf")
	ws := sampleSheet()
	if err := WritePDF(path, ws, layout.PrintLayout(len(ws.Questions))); err == nil {
		t.Fatal("WritePDF() into a missing directory should fail")
	}
}

func TestSheetTitle(t *testing.T) {
	ws := sampleSheet()
	if got, want := sheetTitle(ws), "Multiplication Practice"; got != want {
		t.Errorf("sheetTitle() = %q, want %q", got, want)
	}
	ws.WithDivision = true
	if got, want := sheetTitle(ws), "Multiplication And Division Practice"; got != want {
		t.Errorf("sheetTitle() with division = %q, want %q", got, want)
	}
}

func TestBaselineOffset(t *testing.T) {
	// Font smaller than the line: ascent plus half the leading.
	if got := baselineOffset(20, 10); !almostEqual(got, 13) {
		t.Errorf("baselineOffset(20, 10) = %v, want 13", got)
	}
	// Line shorter than the font: leading clamps to zero.
	if got := baselineOffset(5, 10); !almostEqual(got, 8) {
		t.Errorf("baselineOffset(5, 10) = %v, want 8", got)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 0.001 && d > -0.001
}
