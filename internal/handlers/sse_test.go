package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"superstore-dashboard/internal/models"
	"superstore-dashboard/internal/services"
)

func TestNewSSEHandlers(t *testing.T) {
	analytics := createTestAnalytics()
	logger := testLogger()

	h := NewSSEHandlers(analytics, logger)

	if h == nil {
		t.Fatal("NewSSEHandlers() returned nil")
	}
	if h.analytics != analytics {
		t.Error("NewSSEHandlers() should set analytics field")
	}
	if h.logger != logger {
		t.Error("NewSSEHandlers() should set logger field")
	}
}

func TestRenderFragment_KPICards(t *testing.T) {
	k := models.KPISummary{
		TotalSales:    350,
		TotalProfit:   -10,
		Orders:        3,
		ProfitMargin:  -2.857,
		AvgOrderValue: 116.67,
	}

	html, err := renderFragment(kpiCardsTemplate, k)
	if err != nil {
		t.Fatalf("renderFragment() failed: %v", err)
	}

	for _, want := range []string{
		`id="kpi-content"`,
		"Total Sales",
		"$350",
		"Total Profit",
		"Total Orders",
		"Profit Margin",
		"-2.9%",
		"Avg Order Value",
		"$117",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected HTML to contain %q", want)
		}
	}
}

func TestRenderFragment_CategoryTable(t *testing.T) {
	data := []models.CategoryBreakdown{
		{Category: "Technology", Sales: 200, Profit: -40, Orders: 1, ProfitMargin: -20},
		{Category: "Furniture", Sales: 100, Profit: 20, Orders: 1, ProfitMargin: 20},
	}

	html, err := renderFragment(categoryTableTemplate, data)
	if err != nil {
		t.Fatalf("renderFragment() failed: %v", err)
	}

	for _, want := range []string{
		`id="category-table"`,
		`<table class="modern-table">`,
		"<th>Category</th>",
		"Technology",
		"$200.00",
		"-20.00%",
		"Furniture",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected HTML to contain %q", want)
		}
	}
}

func TestRenderFragment_PreviewTable(t *testing.T) {
	analytics := createTestAnalytics()
	rows := analytics.RawPreview(models.Filter{}, services.PreviewLimit)

	html, err := renderFragment(previewTableTemplate, rows)
	if err != nil {
		t.Fatalf("renderFragment() failed: %v", err)
	}

	for _, want := range []string{
		`id="preview-table"`,
		"2015-03-10",
		"Los Angeles",
		"10%", // 0.1 discount rendered as percentage
		"Standard Class",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected HTML to contain %q", want)
		}
	}
}

func TestSSEHandlers_EventStream(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"kpis", h.HandleKPIs},
		{"sales-charts", h.HandleSalesCharts},
		{"geo-charts", h.HandleGeoCharts},
		{"product-charts", h.HandleProductCharts},
		{"shipping", h.HandleShipping},
		{"raw-preview", h.HandleRawPreview},
		{"refresh-all", h.HandleRefreshAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", "/sse/"+tt.name, nil)

			tt.handler(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, want text/event-stream", ct)
			}
			if w.Body.Len() == 0 {
				t.Error("expected SSE events in body")
			}
		})
	}
}

func TestSSEHandlers_RefreshAll_Filtered(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/sse/refresh-all?state=Texas", nil)
	h.HandleRefreshAll(w, r)

	body := w.Body.String()
	if !strings.Contains(body, "Houston") {
		t.Error("filtered refresh should include Texas rows")
	}
	if strings.Contains(body, "Los Angeles") {
		t.Error("filtered refresh should not include California rows")
	}
}

func TestSSEHandlers_InvalidFilter(t *testing.T) {
	h := NewSSEHandlers(createTestAnalytics(), testLogger())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/sse/refresh-all?from=bad-date", nil)
	h.HandleRefreshAll(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
