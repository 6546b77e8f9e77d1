package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"superstore-dashboard/internal/models"
	"superstore-dashboard/internal/services"
)

var kpiCardsTemplate = template.Must(template.New("kpiCards").Parse(`
<div id="kpi-content" class="kpi-row">
<div class="kpi-box"><div class="kpi-label">Total Sales</div><div class="kpi-value">${{printf "%.0f" .TotalSales}}</div></div>
<div class="kpi-box"><div class="kpi-label">Total Profit</div><div class="kpi-value">${{printf "%.0f" .TotalProfit}}</div></div>
<div class="kpi-box"><div class="kpi-label">Total Orders</div><div class="kpi-value">{{.Orders}}</div></div>
<div class="kpi-box"><div class="kpi-label">Profit Margin</div><div class="kpi-value">{{printf "%.1f" .ProfitMargin}}%</div></div>
<div class="kpi-box"><div class="kpi-label">Avg Order Value</div><div class="kpi-value">${{printf "%.0f" .AvgOrderValue}}</div></div>
</div>`))

var categoryTableTemplate = template.Must(template.New("categoryTable").Parse(`
<div id="category-table">
<table class="modern-table">
<thead><tr><th>Category</th><th>Sales</th><th>Profit</th><th>Orders</th><th>Margin</th></tr></thead>
<tbody>
{{range .}}<tr>
<td><span class="category-badge">{{.Category}}</span></td>
<td><strong>${{printf "%.2f" .Sales}}</strong></td>
<td>${{printf "%.2f" .Profit}}</td>
<td>{{.Orders}}</td>
<td>{{printf "%.2f" .ProfitMargin}}%</td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var yearlyTableTemplate = template.Must(template.New("yearlyTable").Parse(`
<div id="yearly-table">
<table class="modern-table">
<thead><tr><th>Year</th><th>Sales</th><th>Profit</th><th>Orders</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.Year}}</td>
<td><strong>${{printf "%.2f" .Sales}}</strong></td>
<td>${{printf "%.2f" .Profit}}</td>
<td>{{.Orders}}</td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var shippingTableTemplate = template.Must(template.New("shippingTable").Parse(`
<div id="shipping-table">
<table class="modern-table">
<thead><tr><th>Ship Mode</th><th>Sales</th><th>Profit</th><th>Orders</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.ShipMode}}</td>
<td><strong>${{printf "%.2f" .Sales}}</strong></td>
<td>${{printf "%.2f" .Profit}}</td>
<td>{{.Orders}}</td>
</tr>{{end}}
</tbody>
</table>
</div>`))

var previewTableTemplate = template.Must(template.New("previewTable").Funcs(template.FuncMap{
	"pct": func(rate float64) int { return int(rate*100 + 0.5) },
}).Parse(`
<div id="preview-table">
<table class="modern-table">
<thead><tr><th>Date</th><th>Category</th><th>Sub-Category</th><th>Segment</th><th>State</th><th>City</th><th>Sales</th><th>Qty</th><th>Discount</th><th>Profit</th><th>Ship Mode</th></tr></thead>
<tbody>
{{range .}}<tr>
<td>{{.OrderDate.Format "2006-01-02"}}</td>
<td>{{.Category}}</td>
<td>{{.SubCategory}}</td>
<td>{{.Segment}}</td>
<td>{{.State}}</td>
<td>{{.City}}</td>
<td>${{printf "%.2f" .Sales}}</td>
<td>{{.Quantity}}</td>
<td>{{pct .Discount}}%</td>
<td>${{printf "%.2f" .Profit}}</td>
<td>{{.ShipMode}}</td>
</tr>{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func renderFragment(tmpl *template.Template, data any) (string, error) {
	var buf strings.Builder
	err := tmpl.Execute(&buf, data)
	return buf.String(), err
}

func (h *SSEHandlers) filterOr400(w http.ResponseWriter, r *http.Request) (models.Filter, bool) {
	f, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("invalid filter on sse request", "error", err, "url", r.URL.String())
		http.Error(w, "invalid filter", http.StatusBadRequest)
		return models.Filter{}, false
	}
	return f, true
}

func (h *SSEHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filterOr400(w, r)
	if !ok {
		return
	}

	sse := datastar.NewSSE(w, r)

	html, err := renderFragment(kpiCardsTemplate, h.analytics.KPIs(f))
	if err != nil {
		h.logger.Error("render kpi cards", "error", err)
		return
	}
	sse.PatchElements(html)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

func (h *SSEHandlers) HandleSalesCharts(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filterOr400(w, r)
	if !ok {
		return
	}

	sse := datastar.NewSSE(w, r)

	signals, err := json.Marshal(map[string]any{
		"categoryData": h.analytics.CategoryBreakdown(f),
		"segmentData":  h.analytics.SegmentBreakdown(f),
		"monthlyData":  h.analytics.MonthlyTrend(f),
	})
	if err != nil {
		h.logger.Error("marshal sales chart signals", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if html, err := renderFragment(categoryTableTemplate, h.analytics.CategoryBreakdown(f)); err == nil {
		sse.PatchElements(html)
	}
	if html, err := renderFragment(yearlyTableTemplate, h.analytics.YearlySummary(f)); err == nil {
		sse.PatchElements(html)
	}

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

func (h *SSEHandlers) HandleGeoCharts(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filterOr400(w, r)
	if !ok {
		return
	}

	sse := datastar.NewSSE(w, r)

	signals, err := json.Marshal(map[string]any{
		"statesData": h.analytics.TopStates(f, services.TopStatesLimit),
		"citiesData": h.analytics.TopCities(f, services.TopCitiesLimit),
	})
	if err != nil {
		h.logger.Error("marshal geo chart signals", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

func (h *SSEHandlers) HandleProductCharts(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filterOr400(w, r)
	if !ok {
		return
	}

	sse := datastar.NewSSE(w, r)

	signals, err := json.Marshal(map[string]any{
		"subcategoryData": h.analytics.SubCategoryStats(f, services.TopSubCatsLimit),
		"discountData":    h.analytics.DiscountImpact(f),
	})
	if err != nil {
		h.logger.Error("marshal product chart signals", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

func (h *SSEHandlers) HandleShipping(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filterOr400(w, r)
	if !ok {
		return
	}

	sse := datastar.NewSSE(w, r)

	shipping := h.analytics.ShippingBreakdown(f)

	signals, err := json.Marshal(map[string]any{"shippingData": shipping})
	if err != nil {
		h.logger.Error("marshal shipping signals", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if html, err := renderFragment(shippingTableTemplate, shipping); err == nil {
		sse.PatchElements(html)
	}

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

func (h *SSEHandlers) HandleRawPreview(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filterOr400(w, r)
	if !ok {
		return
	}

	sse := datastar.NewSSE(w, r)

	html, err := renderFragment(previewTableTemplate, h.analytics.RawPreview(f, services.PreviewLimit))
	if err != nil {
		h.logger.Error("render preview table", "error", err)
		return
	}
	sse.PatchElements(html)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}

// HandleRefreshAll re-renders every dashboard section in one SSE response,
// used on load and whenever a filter changes.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filterOr400(w, r)
	if !ok {
		return
	}

	sse := datastar.NewSSE(w, r)

	if html, err := renderFragment(kpiCardsTemplate, h.analytics.KPIs(f)); err == nil {
		sse.PatchElements(html)
	}
	if html, err := renderFragment(categoryTableTemplate, h.analytics.CategoryBreakdown(f)); err == nil {
		sse.PatchElements(html)
	}
	if html, err := renderFragment(yearlyTableTemplate, h.analytics.YearlySummary(f)); err == nil {
		sse.PatchElements(html)
	}
	if html, err := renderFragment(shippingTableTemplate, h.analytics.ShippingBreakdown(f)); err == nil {
		sse.PatchElements(html)
	}
	if html, err := renderFragment(previewTableTemplate, h.analytics.RawPreview(f, services.PreviewLimit)); err == nil {
		sse.PatchElements(html)
	}

	signals, err := json.Marshal(map[string]any{
		"categoryData":    h.analytics.CategoryBreakdown(f),
		"segmentData":     h.analytics.SegmentBreakdown(f),
		"monthlyData":     h.analytics.MonthlyTrend(f),
		"statesData":      h.analytics.TopStates(f, services.TopStatesLimit),
		"citiesData":      h.analytics.TopCities(f, services.TopCitiesLimit),
		"subcategoryData": h.analytics.SubCategoryStats(f, services.TopSubCatsLimit),
		"discountData":    h.analytics.DiscountImpact(f),
		"shippingData":    h.analytics.ShippingBreakdown(f),
	})
	if err != nil {
		h.logger.Error("marshal refresh-all signals", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}
