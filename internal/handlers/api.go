package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"superstore-dashboard/internal/errors"
	"superstore-dashboard/internal/models"
	"superstore-dashboard/internal/observability"
	"superstore-dashboard/internal/services"
)

var cacheHeaders = map[string]string{
	"Cache-Control": "public, max-age=300",
}

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// report wraps the parse-filter / aggregate / respond sequence shared by
// every JSON report endpoint.
func (h *APIHandlers) report(w http.ResponseWriter, r *http.Request, fn func(models.Filter) any) {
	f, err := parseFilter(r)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccessWithHeaders(w, fn(f), cacheHeaders)
}

func (h *APIHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.KPIs(f) })
}

func (h *APIHandlers) HandleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.CategoryBreakdown(f) })
}

func (h *APIHandlers) HandleSegmentBreakdown(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.SegmentBreakdown(f) })
}

func (h *APIHandlers) HandleMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.MonthlyTrend(f) })
}

func (h *APIHandlers) HandleYearlySummary(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.YearlySummary(f) })
}

func (h *APIHandlers) HandleTopStates(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.TopStates(f, services.TopStatesLimit) })
}

func (h *APIHandlers) HandleTopCities(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.TopCities(f, services.TopCitiesLimit) })
}

func (h *APIHandlers) HandleSubCategoryStats(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.SubCategoryStats(f, services.TopSubCatsLimit) })
}

func (h *APIHandlers) HandleDiscountImpact(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.DiscountImpact(f) })
}

func (h *APIHandlers) HandleShippingBreakdown(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.ShippingBreakdown(f) })
}

func (h *APIHandlers) HandleRawPreview(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, func(f models.Filter) any { return h.analytics.RawPreview(f, services.PreviewLimit) })
}

// HandleExport streams the filtered view as a CSV download.
func (h *APIHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	f, err := parseFilter(r)
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	rows := h.analytics.Filtered(f)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename))

	if err := services.WriteCSV(w, rows); err != nil {
		// Headers are gone at this point; log and drop the connection.
		h.logger.Error("csv export failed", "error", err, "request_id", requestID)
	}
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
