package models

import "time"

// Order is one row of the superstore dataset. Year, Month and ProfitMargin
// are derived from the other fields at load time.
type Order struct {
	OrderDate    time.Time `json:"order_date"`
	Category     string    `json:"category"`
	SubCategory  string    `json:"sub_category"`
	Segment      string    `json:"segment"`
	State        string    `json:"state"`
	City         string    `json:"city"`
	Sales        float64   `json:"sales"`
	Quantity     int       `json:"quantity"`
	Discount     float64   `json:"discount"`
	Profit       float64   `json:"profit"`
	ShipMode     string    `json:"ship_mode"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	ProfitMargin float64   `json:"profit_margin"`
}

// Filter restricts the dataset to a date range and optional value sets.
// A zero time means the bound is open; an empty set means "all values".
type Filter struct {
	From       time.Time
	To         time.Time
	Categories []string
	Segments   []string
	States     []string
}

type KPISummary struct {
	TotalSales    float64 `json:"total_sales"`
	TotalProfit   float64 `json:"total_profit"`
	Orders        int     `json:"orders"`
	ProfitMargin  float64 `json:"profit_margin"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

type CategoryBreakdown struct {
	Category     string  `json:"category"`
	Sales        float64 `json:"sales"`
	Profit       float64 `json:"profit"`
	Orders       int     `json:"orders"`
	ProfitMargin float64 `json:"profit_margin"`
}

type SegmentBreakdown struct {
	Segment string  `json:"segment"`
	Sales   float64 `json:"sales"`
	Profit  float64 `json:"profit"`
	Orders  int     `json:"orders"`
}

type MonthlyPoint struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

type YearlySummary struct {
	Year   int     `json:"year"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
	Orders int     `json:"orders"`
}

type StateSales struct {
	State string  `json:"state"`
	Sales float64 `json:"sales"`
}

type CityProfit struct {
	City   string  `json:"city"`
	Profit float64 `json:"profit"`
}

type SubCategoryStat struct {
	SubCategory  string  `json:"sub_category"`
	Sales        float64 `json:"sales"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

type DiscountImpact struct {
	Discount     float64 `json:"discount"`
	Label        string  `json:"label"`
	Sales        float64 `json:"sales"`
	Profit       float64 `json:"profit"`
	Orders       int     `json:"orders"`
	ProfitMargin float64 `json:"profit_margin"`
}

type ShipModeBreakdown struct {
	ShipMode string  `json:"ship_mode"`
	Sales    float64 `json:"sales"`
	Profit   float64 `json:"profit"`
	Orders   int     `json:"orders"`
}
