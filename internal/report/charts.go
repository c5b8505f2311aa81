package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/fancyactive/backstage/internal/sales"
)

// Chart export filenames, written alongside the CSV report.
const (
	RevenueChartFilename = "revenue.png"
	ProductChartFilename = "products.png"
)

// WriteRevenueChart renders the revenue-by-date series as a PNG line
// chart.
func WriteRevenueChart(table sales.Table, w io.Writer) error {
	points := table.RevenueByDate()
	if len(points) == 0 {
		return fmt.Errorf("render revenue chart: no data")
	}

	xs := make([]time.Time, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.Date)
		ys = append(ys, p.Revenue.InexactFloat64())
	}
	if len(xs) == 1 {
		// go-chart needs at least two X values to size the axis.
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}

	c := chart.Chart{
		Title: "銷售額",
		Series: []chart.Series{
			chart.TimeSeries{Name: "revenue", XValues: xs, YValues: ys},
		},
	}
	if err := c.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render revenue chart: %w", err)
	}
	return nil
}

// WriteProductChart renders top-product frequencies as a PNG bar chart.
func WriteProductChart(table sales.Table, w io.Writer) error {
	freqs := table.ProductFrequencies()
	if len(freqs) == 0 {
		return fmt.Errorf("render product chart: no data")
	}

	maxCount := 0
	bars := make([]chart.Value, 0, len(freqs))
	for _, f := range freqs {
		if f.Count > maxCount {
			maxCount = f.Count
		}
		bars = append(bars, chart.Value{Label: f.Product, Value: float64(f.Count)})
	}

	c := chart.BarChart{
		Title:    "熱銷商品排行榜",
		BarWidth: 40,
		Bars:     bars,
		// All-equal counts collapse the computed value range, so the
		// axis is pinned at zero.
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
	}
	if err := c.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render product chart: %w", err)
	}
	return nil
}

// ExportCharts writes both chart PNGs into dir and returns their paths.
func ExportCharts(table sales.Table, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	charts := []struct {
		name  string
		write func(sales.Table, io.Writer) error
	}{
		{RevenueChartFilename, WriteRevenueChart},
		{ProductChartFilename, WriteProductChart},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(dir, c.name)
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", c.name, err)
		}
		if err := c.write(table, f); err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("close %s: %w", c.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
