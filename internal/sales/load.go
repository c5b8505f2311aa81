package sales

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LoadError reports a missing or malformed dataset. It is fatal at
// startup; on an in-session reload the previous table is kept instead.
type LoadError struct {
	Path string
	Row  int // 1-based data row, 0 for file/header problems
	Err  error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("sales data %s: row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("sales data %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Column headers as written by the original back office, with the
// English spellings accepted as aliases.
var columnAliases = map[string][]string{
	"date":      {"日期", "date"},
	"revenue":   {"銷售額", "revenue"},
	"product":   {"熱賣商品", "top_product"},
	"inventory": {"庫存", "inventory", "inventory_count"},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the whole sales CSV into memory. The file must carry a
// header row naming all four columns; any unparsable cell aborts the
// load. The returned table is never mutated afterwards.
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("missing header row")}
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	table := make(Table, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := parseRow(row, cols)
		if err != nil {
			return nil, &LoadError{Path: path, Row: i + 1, Err: err}
		}
		table = append(table, record)
	}
	return table, nil
}

type columnIndexes struct {
	date, revenue, product, inventory int
}

func resolveColumns(header []string) (columnIndexes, error) {
	find := func(key string) (int, error) {
		for idx, cell := range header {
			cell = strings.TrimSpace(cell)
			for _, alias := range columnAliases[key] {
				if strings.EqualFold(cell, alias) {
					return idx, nil
				}
			}
		}
		return 0, fmt.Errorf("missing column %q", columnAliases[key][0])
	}

	var cols columnIndexes
	var err error
	if cols.date, err = find("date"); err != nil {
		return cols, err
	}
	if cols.revenue, err = find("revenue"); err != nil {
		return cols, err
	}
	if cols.product, err = find("product"); err != nil {
		return cols, err
	}
	if cols.inventory, err = find("inventory"); err != nil {
		return cols, err
	}
	return cols, nil
}

func parseRow(row []string, cols columnIndexes) (Record, error) {
	max := cols.date
	for _, idx := range []int{cols.revenue, cols.product, cols.inventory} {
		if idx > max {
			max = idx
		}
	}
	if len(row) <= max {
		return Record{}, fmt.Errorf("expected at least %d fields, got %d", max+1, len(row))
	}

	date, err := parseDate(strings.TrimSpace(row[cols.date]))
	if err != nil {
		return Record{}, err
	}

	revenue, err := decimal.NewFromString(strings.TrimSpace(row[cols.revenue]))
	if err != nil {
		return Record{}, fmt.Errorf("revenue %q: %w", row[cols.revenue], err)
	}

	inventory, err := strconv.Atoi(strings.TrimSpace(row[cols.inventory]))
	if err != nil {
		return Record{}, fmt.Errorf("inventory %q: %w", row[cols.inventory], err)
	}

	return Record{
		Date:           date,
		Revenue:        revenue,
		TopProduct:     strings.TrimSpace(row[cols.product]),
		InventoryCount: inventory,
	}, nil
}

var dateLayouts = []string{time.DateOnly, "2006/01/02", "2006-1-2", "2006/1/2"}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q: unrecognized format", value)
}
