package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/core/ports"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/resilience"
)

const DefaultSheet = "Sheet1"

// Headers are the column titles of the compiled workbook, in Record.Columns order.
var Headers = []string{
	"Arquivo Origem",
	"Numero Guia",
	"Vencimento",
	"Total a Pagar",
	"Processo/Protocolo",
	"Codigo de Barras",
}

// Exporter writes Records to a single-sheet XLSX workbook.
type Exporter struct {
	storage  ports.ObjectStorage
	executor *resilience.Executor
	sheet    string
	logger   *slog.Logger
}

func NewExporter(storage ports.ObjectStorage, executor *resilience.Executor, sheet string, logger *slog.Logger) *Exporter {
	if sheet == "" {
		sheet = DefaultSheet
	}
	if logger == nil {
		logger = slog.Default()
	}
	if executor == nil {
		executor = resilience.NewExecutor(resilience.DefaultConfig(), logger)
	}
	return &Exporter{storage: storage, executor: executor, sheet: sheet, logger: logger}
}

func (e *Exporter) Export(ctx context.Context, records []domain.Record, destination string) error {
	start := time.Now()

	buf, err := e.render(records)
	if err != nil {
		return err
	}

	err = e.executor.Execute(ctx, "export.xlsx.save", func(ctx context.Context) error {
		return e.storage.Save(ctx, destination, bytes.NewReader(buf))
	}, resilience.TransientFS)
	if err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}

	e.logger.Info("export.xlsx.ok",
		"path", destination,
		"rows", len(records),
		"bytes", len(buf),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (e *Exporter) render(records []domain.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if e.sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, e.sheet); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	}

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(e.sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(Headers), 1)
		_ = f.SetCellStyle(e.sheet, "A1", last, style)
	}

	// Values are written as text: amounts keep their decimal comma and
	// barcodes keep every digit.
	for r, record := range records {
		for c, value := range record.Columns() {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellStr(e.sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+2, err)
			}
		}
	}

	_ = f.SetColWidth(e.sheet, "A", "A", 32) // file
	_ = f.SetColWidth(e.sheet, "B", "B", 14) // guide
	_ = f.SetColWidth(e.sheet, "C", "D", 14) // date, total
	_ = f.SetColWidth(e.sheet, "E", "E", 26) // process
	_ = f.SetColWidth(e.sheet, "F", "F", 52) // barcode

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
