package xlsx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/storage/localfs"
)

func TestExportWritesHeaderAndRowsInOrder(t *testing.T) {
	dir := t.TempDir()
	storage, _ := localfs.New(dir)
	exporter := NewExporter(storage, nil, "", nil)

	records := []domain.Record{
		{
			SourceFile:      "a.pdf",
			GuideNumber:     "0012345678",
			DueDate:         "28/02/2025",
			TotalPayable:    "1.020,00",
			ProcessProtocol: "00040-00012345/2024-11",
			Barcode:         "858700000003102000640001020250228006001234567890",
		},
		{SourceFile: "b.pdf", DueDate: "01/03/2025"},
	}
	if err := exporter.Export(context.Background(), records, "compilado.xlsx"); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "compilado.xlsx"))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(DefaultSheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	for i, h := range Headers {
		if rows[0][i] != h {
			t.Fatalf("header %d = %q, want %q", i, rows[0][i], h)
		}
	}
	want := records[0].Columns()
	for i := range want {
		if rows[1][i] != want[i] {
			t.Fatalf("row 1 col %d = %q, want %q", i, rows[1][i], want[i])
		}
	}
	if rows[2][0] != "b.pdf" || rows[2][2] != "01/03/2025" {
		t.Fatalf("unexpected second row %q", rows[2])
	}
}

func TestExportUsesConfiguredSheet(t *testing.T) {
	dir := t.TempDir()
	storage, _ := localfs.New(dir)
	exporter := NewExporter(storage, nil, "Guias", nil)

	if err := exporter.Export(context.Background(), []domain.Record{{SourceFile: "a.pdf"}}, "out.xlsx"); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "out.xlsx"))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Guias" {
		t.Fatalf("unexpected sheets %v", sheets)
	}
}
