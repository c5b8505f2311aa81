// Package report serializes the sales table for download: a BOM-prefixed
// CSV for spreadsheet tools plus PNG charts of the overview series.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fancyactive/backstage/internal/sales"
)

// Filename and ContentType identify the exported report. Excel needs
// the UTF-8 byte-order marker to pick the right encoding for the
// Chinese column headers.
const (
	Filename    = "fancy_active_sales.csv"
	ContentType = "text/csv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"日期", "銷售額", "熱賣商品", "庫存"}

// WriteCSV writes the table as BOM-prefixed RFC 4180 CSV. Fields
// containing delimiters or quotes are quoted by the encoder, so the
// output round-trips through any standard CSV parser.
func WriteCSV(table sales.Table, w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range table {
		row := []string{
			r.Date.Format(time.DateOnly),
			r.Revenue.String(),
			r.TopProduct,
			fmt.Sprintf("%d", r.InventoryCount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportCSV writes the report into dir under the fixed filename and
// returns the full path.
func ExportCSV(table sales.Table, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, Filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteCSV(table, f); err != nil {
		return "", err
	}
	return path, nil
}
