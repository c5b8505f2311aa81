// Package sales holds the immutable sales dataset and its aggregates.
package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the inventory level below which a product counts
// toward the low-stock warning. A count of exactly 10 does not.
const LowStockThreshold = 10

// Record is one row of the sales dataset.
type Record struct {
	Date           time.Time
	Revenue        decimal.Decimal
	TopProduct     string
	InventoryCount int
}

// Table is the full dataset, loaded once and read-only afterwards.
type Table []Record

// DatePoint is one entry of the revenue-by-date series.
type DatePoint struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// ProductCount pairs a product name with how often it appears in the
// top-product column.
type ProductCount struct {
	Product string
	Count   int
}

// TotalRevenue sums the revenue column.
func (t Table) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, r := range t {
		total = total.Add(r.Revenue)
	}
	return total
}

// HottestProduct returns the mode of the top-product column. Ties go to
// the value encountered first in row order.
func (t Table) HottestProduct() string {
	counts := make(map[string]int, len(t))
	var order []string
	for _, r := range t {
		if counts[r.TopProduct] == 0 {
			order = append(order, r.TopProduct)
		}
		counts[r.TopProduct]++
	}

	best := ""
	bestCount := 0
	for _, product := range order {
		if counts[product] > bestCount {
			best = product
			bestCount = counts[product]
		}
	}
	return best
}

// LowStockCount counts rows with inventory strictly below the threshold.
func (t Table) LowStockCount() int {
	n := 0
	for _, r := range t {
		if r.InventoryCount < LowStockThreshold {
			n++
		}
	}
	return n
}

// RevenueByDate returns the revenue series keyed by calendar date,
// ascending. Rows sharing a date are summed.
func (t Table) RevenueByDate() []DatePoint {
	sums := make(map[time.Time]decimal.Decimal, len(t))
	var order []time.Time
	for _, r := range t {
		if _, seen := sums[r.Date]; !seen {
			order = append(order, r.Date)
		}
		sums[r.Date] = sums[r.Date].Add(r.Revenue)
	}

	points := make([]DatePoint, 0, len(order))
	for _, day := range order {
		points = append(points, DatePoint{Date: day, Revenue: sums[day]})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// ProductFrequencies returns top-product counts ordered by descending
// frequency; equally frequent products keep their first-seen order.
func (t Table) ProductFrequencies() []ProductCount {
	counts := make(map[string]int, len(t))
	var order []string
	for _, r := range t {
		if counts[r.TopProduct] == 0 {
			order = append(order, r.TopProduct)
		}
		counts[r.TopProduct]++
	}

	freqs := make([]ProductCount, 0, len(order))
	for _, product := range order {
		freqs = append(freqs, ProductCount{Product: product, Count: counts[product]})
	}
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	return freqs
}
