package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fancyactive/backstage/internal/sales"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestWriteRevenueChart(t *testing.T) {
	table := sales.Table{
		record("2025-08-01", "1200", "高腰瑜珈褲A", 25),
		record("2025-08-02", "800", "運動內衣C", 9),
	}

	var buf bytes.Buffer
	if err := WriteRevenueChart(table, &buf); err != nil {
		t.Fatalf("WriteRevenueChart: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("output is not PNG: % x", buf.Bytes()[:4])
	}
}

func TestWriteRevenueChart_SinglePoint(t *testing.T) {
	table := sales.Table{record("2025-08-01", "1200", "高腰瑜珈褲A", 25)}

	var buf bytes.Buffer
	if err := WriteRevenueChart(table, &buf); err != nil {
		t.Fatalf("WriteRevenueChart with one point: %v", err)
	}
}

func TestWriteProductChart_EqualCounts(t *testing.T) {
	// Every product appearing exactly once is the usual shape of the
	// dataset: each day has a distinct top product.
	table := sales.Table{
		record("2025-08-01", "1200", "高腰瑜珈褲A", 25),
		record("2025-08-02", "800", "運動內衣C", 9),
		record("2025-08-03", "600", "喇叭瑜珈褲D", 3),
	}

	var buf bytes.Buffer
	if err := WriteProductChart(table, &buf); err != nil {
		t.Fatalf("WriteProductChart with equal counts: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("output is not PNG: % x", buf.Bytes()[:4])
	}
}

func TestWriteCharts_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRevenueChart(sales.Table{}, &buf); err == nil {
		t.Fatalf("WriteRevenueChart on empty table succeeded, want error")
	}
	if err := WriteProductChart(sales.Table{}, &buf); err == nil {
		t.Fatalf("WriteProductChart on empty table succeeded, want error")
	}
}

func TestExportCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	table := sales.Table{
		record("2025-08-01", "1200", "高腰瑜珈褲A", 25),
		record("2025-08-02", "800", "運動內衣C", 9),
	}

	paths, err := ExportCharts(table, dir)
	if err != nil {
		t.Fatalf("ExportCharts: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", p, err)
		}
		if !bytes.HasPrefix(data, pngMagic) {
			t.Fatalf("%s is not PNG", p)
		}
	}
}
