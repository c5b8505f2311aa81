package sales

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yoga_sales_data.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_ParsesChineseHeaders(t *testing.T) {
	path := writeCSV(t, "日期,銷售額,熱賣商品,庫存\n2025-08-01,1200,高腰瑜珈褲A,25\n2025-08-02,800.50,運動內衣C,9\n")

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}
	if !table[0].Date.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Date = %s, want 2025-08-01", table[0].Date)
	}
	if want := decimal.RequireFromString("800.50"); !table[1].Revenue.Equal(want) {
		t.Fatalf("Revenue = %s, want %s", table[1].Revenue, want)
	}
	if table[0].TopProduct != "高腰瑜珈褲A" {
		t.Fatalf("TopProduct = %q", table[0].TopProduct)
	}
	if table[1].InventoryCount != 9 {
		t.Fatalf("InventoryCount = %d, want 9", table[1].InventoryCount)
	}
}

func TestLoad_AcceptsEnglishAliasesAndBOM(t *testing.T) {
	path := writeCSV(t, "\xEF\xBB\xBFdate,revenue,top_product,inventory\n2025/08/01,100,leggings,5\n")

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("len(table) = %d, want 1", len(table))
	}
	if table[0].TopProduct != "leggings" {
		t.Fatalf("TopProduct = %q, want leggings", table[0].TopProduct)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load error = %v, want *LoadError", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty_file", ""},
		{"missing_column", "日期,銷售額,熱賣商品\n2025-08-01,100,a\n"},
		{"bad_date", "日期,銷售額,熱賣商品,庫存\nnot-a-date,100,a,5\n"},
		{"bad_revenue", "日期,銷售額,熱賣商品,庫存\n2025-08-01,12oo,a,5\n"},
		{"bad_inventory", "日期,銷售額,熱賣商品,庫存\n2025-08-01,100,a,many\n"},
		{"short_row", "日期,銷售額,熱賣商品,庫存\n\"2025-08-01\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeCSV(t, tc.content))
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Load error = %v, want *LoadError", err)
			}
		})
	}
}
