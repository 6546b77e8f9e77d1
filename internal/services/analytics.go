package services

import (
	"fmt"
	"slices"

	"superstore-dashboard/internal/models"
)

const (
	TopStatesLimit  = 10
	TopCitiesLimit  = 10
	TopSubCatsLimit = 10
	PreviewLimit    = 100
)

// Filtered returns the rows passing the filter. Date bounds are inclusive on
// calendar dates; an empty value set means the dimension is unrestricted.
func (a *Analytics) Filtered(f models.Filter) []models.Order {
	orders := a.Orders()

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !f.From.IsZero() && o.OrderDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !o.OrderDate.Before(f.To.AddDate(0, 0, 1)) {
			continue
		}
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, o.Category) {
			continue
		}
		if len(f.Segments) > 0 && !slices.Contains(f.Segments, o.Segment) {
			continue
		}
		if len(f.States) > 0 && !slices.Contains(f.States, o.State) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (a *Analytics) KPIs(f models.Filter) models.KPISummary {
	rows := a.Filtered(f)

	var k models.KPISummary
	for _, o := range rows {
		k.TotalSales += o.Sales
		k.TotalProfit += o.Profit
	}
	k.Orders = len(rows)
	if k.TotalSales > 0 {
		k.ProfitMargin = k.TotalProfit / k.TotalSales * 100
	}
	if k.Orders > 0 {
		k.AvgOrderValue = k.TotalSales / float64(k.Orders)
	}
	return k
}

func (a *Analytics) CategoryBreakdown(f models.Filter) []models.CategoryBreakdown {
	groups := make(map[string]*models.CategoryBreakdown)
	for _, o := range a.Filtered(f) {
		g := groups[o.Category]
		if g == nil {
			g = &models.CategoryBreakdown{Category: o.Category}
			groups[o.Category] = g
		}
		g.Sales += o.Sales
		g.Profit += o.Profit
		g.Orders++
	}

	result := make([]models.CategoryBreakdown, 0, len(groups))
	for _, g := range groups {
		if g.Sales > 0 {
			g.ProfitMargin = round2(g.Profit / g.Sales * 100)
		}
		result = append(result, *g)
	}
	sortByMetricDesc(result, func(c models.CategoryBreakdown) float64 { return c.Sales })
	return result
}

func (a *Analytics) SegmentBreakdown(f models.Filter) []models.SegmentBreakdown {
	groups := make(map[string]*models.SegmentBreakdown)
	for _, o := range a.Filtered(f) {
		g := groups[o.Segment]
		if g == nil {
			g = &models.SegmentBreakdown{Segment: o.Segment}
			groups[o.Segment] = g
		}
		g.Sales += o.Sales
		g.Profit += o.Profit
		g.Orders++
	}

	result := make([]models.SegmentBreakdown, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sortByMetricDesc(result, func(s models.SegmentBreakdown) float64 { return s.Sales })
	return result
}

// MonthlyTrend aggregates per calendar month, sorted chronologically. The
// "2006-01" key format makes lexical order equal chronological order.
func (a *Analytics) MonthlyTrend(f models.Filter) []models.MonthlyPoint {
	type acc struct{ sales, profit float64 }
	groups := make(map[string]*acc)
	for _, o := range a.Filtered(f) {
		month := o.OrderDate.Format("2006-01")
		g := groups[month]
		if g == nil {
			g = &acc{}
			groups[month] = g
		}
		g.sales += o.Sales
		g.profit += o.Profit
	}

	result := make([]models.MonthlyPoint, 0, len(groups))
	for month, g := range groups {
		result = append(result, models.MonthlyPoint{Month: month, Sales: g.sales, Profit: g.profit})
	}
	slices.SortFunc(result, func(a, b models.MonthlyPoint) int {
		if a.Month < b.Month {
			return -1
		}
		if a.Month > b.Month {
			return 1
		}
		return 0
	})
	return result
}

func (a *Analytics) YearlySummary(f models.Filter) []models.YearlySummary {
	groups := make(map[int]*models.YearlySummary)
	for _, o := range a.Filtered(f) {
		g := groups[o.Year]
		if g == nil {
			g = &models.YearlySummary{Year: o.Year}
			groups[o.Year] = g
		}
		g.Sales += o.Sales
		g.Profit += o.Profit
		g.Orders++
	}

	result := make([]models.YearlySummary, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	slices.SortFunc(result, func(a, b models.YearlySummary) int { return a.Year - b.Year })
	return result
}

// TopStates returns at most limit states by summed sales, descending.
func (a *Analytics) TopStates(f models.Filter, limit int) []models.StateSales {
	groups := make(map[string]float64)
	for _, o := range a.Filtered(f) {
		groups[o.State] += o.Sales
	}

	result := make([]models.StateSales, 0, len(groups))
	for state, sales := range groups {
		result = append(result, models.StateSales{State: state, Sales: sales})
	}
	sortByMetricDesc(result, func(s models.StateSales) float64 { return s.Sales })
	return truncate(result, limit)
}

// TopCities returns at most limit cities by summed profit, descending.
func (a *Analytics) TopCities(f models.Filter, limit int) []models.CityProfit {
	groups := make(map[string]float64)
	for _, o := range a.Filtered(f) {
		groups[o.City] += o.Profit
	}

	result := make([]models.CityProfit, 0, len(groups))
	for city, profit := range groups {
		result = append(result, models.CityProfit{City: city, Profit: profit})
	}
	sortByMetricDesc(result, func(c models.CityProfit) float64 { return c.Profit })
	return truncate(result, limit)
}

// SubCategoryStats returns at most limit sub-categories by sales with the
// per-group margin, feeding both the bar chart and the margin scatter.
func (a *Analytics) SubCategoryStats(f models.Filter, limit int) []models.SubCategoryStat {
	groups := make(map[string]*models.SubCategoryStat)
	for _, o := range a.Filtered(f) {
		g := groups[o.SubCategory]
		if g == nil {
			g = &models.SubCategoryStat{SubCategory: o.SubCategory}
			groups[o.SubCategory] = g
		}
		g.Sales += o.Sales
		g.Profit += o.Profit
	}

	result := make([]models.SubCategoryStat, 0, len(groups))
	for _, g := range groups {
		if g.Sales > 0 {
			g.ProfitMargin = round2(g.Profit / g.Sales * 100)
		}
		result = append(result, *g)
	}
	sortByMetricDesc(result, func(s models.SubCategoryStat) float64 { return s.Sales })
	return truncate(result, limit)
}

func (a *Analytics) DiscountImpact(f models.Filter) []models.DiscountImpact {
	groups := make(map[float64]*models.DiscountImpact)
	for _, o := range a.Filtered(f) {
		g := groups[o.Discount]
		if g == nil {
			g = &models.DiscountImpact{
				Discount: o.Discount,
				Label:    fmt.Sprintf("%d%%", int(o.Discount*100+0.5)),
			}
			groups[o.Discount] = g
		}
		g.Sales += o.Sales
		g.Profit += o.Profit
		g.Orders++
	}

	result := make([]models.DiscountImpact, 0, len(groups))
	for _, g := range groups {
		if g.Sales > 0 {
			g.ProfitMargin = round2(g.Profit / g.Sales * 100)
		}
		result = append(result, *g)
	}
	slices.SortFunc(result, func(a, b models.DiscountImpact) int {
		if a.Discount < b.Discount {
			return -1
		}
		if a.Discount > b.Discount {
			return 1
		}
		return 0
	})
	return result
}

// ShippingBreakdown aggregates per ship mode, sorted by order count descending.
func (a *Analytics) ShippingBreakdown(f models.Filter) []models.ShipModeBreakdown {
	groups := make(map[string]*models.ShipModeBreakdown)
	for _, o := range a.Filtered(f) {
		g := groups[o.ShipMode]
		if g == nil {
			g = &models.ShipModeBreakdown{ShipMode: o.ShipMode}
			groups[o.ShipMode] = g
		}
		g.Sales += o.Sales
		g.Profit += o.Profit
		g.Orders++
	}

	result := make([]models.ShipModeBreakdown, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	slices.SortFunc(result, func(a, b models.ShipModeBreakdown) int { return b.Orders - a.Orders })
	return result
}

// RawPreview returns the first limit rows of the filtered view.
func (a *Analytics) RawPreview(f models.Filter, limit int) []models.Order {
	return truncate(a.Filtered(f), limit)
}

func sortByMetricDesc[T any](s []T, metric func(T) float64) {
	slices.SortFunc(s, func(a, b T) int {
		if metric(a) > metric(b) {
			return -1
		}
		if metric(a) < metric(b) {
			return 1
		}
		return 0
	})
}

func truncate[T any](s []T, limit int) []T {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
