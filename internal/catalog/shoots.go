package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModelProfile is one entry of the model roster.
type ModelProfile struct {
	Name     string
	HeightCM int
	Style    string
	Product  string
}

// ShootEvent is one planned photo shoot.
type ShootEvent struct {
	Date    time.Time
	Model   string
	Product string
	Venue   string
	Quote   decimal.Decimal
}

// GalleryTiles and GalleryColumns fix the placeholder image grid:
// six tiles wrapped row-major into three columns.
const (
	GalleryTiles   = 6
	GalleryColumns = 3
)

// Models returns the model roster.
func Models() []ModelProfile {
	return []ModelProfile{
		{Name: "Anna", HeightCM: 170, Style: "運動健康", Product: "高腰瑜珈褲A"},
		{Name: "Lisa", HeightCM: 165, Style: "甜美活潑", Product: "運動內衣C"},
		{Name: "Mia", HeightCM: 172, Style: "成熟幹練", Product: "喇叭瑜珈褲D"},
	}
}

// Shoots returns the shoot schedule.
func Shoots() []ShootEvent {
	return []ShootEvent{
		{
			Date:    time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
			Model:   "Anna",
			Product: "高腰瑜珈褲A",
			Venue:   "台北攝影棚",
			Quote:   decimal.NewFromInt(5000),
		},
		{
			Date:    time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC),
			Model:   "Lisa",
			Product: "運動內衣C",
			Venue:   "淡水海邊",
			Quote:   decimal.NewFromInt(7200),
		},
	}
}

// Suggestions returns the promotion copy blocks, in display order.
func Suggestions() []string {
	return []string{
		"高腰瑜珈褲A + 運動內衣C 組合優惠",
		"附口袋瑜珈褲F 夏季限定 85 折",
		"購買滿 2000 元送瑜珈毛巾",
	}
}
