package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fancyactive/backstage/internal/sales"
)

func record(date string, revenue string, product string, inventory int) sales.Record {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return sales.Record{
		Date:           d,
		Revenue:        decimal.RequireFromString(revenue),
		TopProduct:     product,
		InventoryCount: inventory,
	}
}

func TestWriteCSV_BOMAndHeader(t *testing.T) {
	var buf bytes.Buffer
	table := sales.Table{record("2025-08-01", "1200", "高腰瑜珈褲A", 25)}

	if err := WriteCSV(table, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("output missing UTF-8 BOM prefix: % x", out[:3])
	}
	if !bytes.Contains(out, []byte("日期,銷售額,熱賣商品,庫存")) {
		t.Fatalf("output missing header row: %s", out)
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	table := sales.Table{
		record("2025-08-01", "1200", "高腰瑜珈褲A", 25),
		record("2025-08-02", "800.50", "內衣, 運動款", 9),
		record("2025-08-03", "600", `有"引號"的商品`, 3),
	}

	var buf bytes.Buffer
	if err := WriteCSV(table, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	if err != nil {
		t.Fatalf("re-parse exported CSV: %v", err)
	}
	if len(rows) != len(table)+1 {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(table)+1)
	}
	for i, r := range table {
		row := rows[i+1]
		if row[0] != r.Date.Format(time.DateOnly) {
			t.Fatalf("row %d date = %q, want %q", i, row[0], r.Date.Format(time.DateOnly))
		}
		if row[1] != r.Revenue.String() {
			t.Fatalf("row %d revenue = %q, want %q", i, row[1], r.Revenue.String())
		}
		if row[2] != r.TopProduct {
			t.Fatalf("row %d product = %q, want %q", i, row[2], r.TopProduct)
		}
	}
}

func TestExportCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	table := sales.Table{record("2025-08-01", "1200", "高腰瑜珈褲A", 25)}

	path, err := ExportCSV(table, dir)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if filepath.Base(path) != Filename {
		t.Fatalf("exported name = %q, want %q", filepath.Base(path), Filename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("exported file missing BOM")
	}
}
