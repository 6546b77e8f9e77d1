package server

import (
	"log/slog"
	"net/http"

	"superstore-dashboard/internal/handlers"
	"superstore-dashboard/internal/services"
	"superstore-dashboard/internal/ui/static"
)

type Server struct {
	analytics   *services.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(analytics *services.Analytics, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   analytics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(analytics, logger),
		sseHandlers: handlers.NewSSEHandlers(analytics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard routes
	s.mux.HandleFunc("GET /{$}", templateHandlers.Dashboard)
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.Files)))
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints, all filter-aware
	s.mux.HandleFunc("GET /api/kpis", s.apiHandlers.HandleKPIs)
	s.mux.HandleFunc("GET /api/category-breakdown", s.apiHandlers.HandleCategoryBreakdown)
	s.mux.HandleFunc("GET /api/segment-breakdown", s.apiHandlers.HandleSegmentBreakdown)
	s.mux.HandleFunc("GET /api/monthly-trend", s.apiHandlers.HandleMonthlyTrend)
	s.mux.HandleFunc("GET /api/yearly-summary", s.apiHandlers.HandleYearlySummary)
	s.mux.HandleFunc("GET /api/top-states", s.apiHandlers.HandleTopStates)
	s.mux.HandleFunc("GET /api/top-cities", s.apiHandlers.HandleTopCities)
	s.mux.HandleFunc("GET /api/subcategory-stats", s.apiHandlers.HandleSubCategoryStats)
	s.mux.HandleFunc("GET /api/discount-impact", s.apiHandlers.HandleDiscountImpact)
	s.mux.HandleFunc("GET /api/shipping-breakdown", s.apiHandlers.HandleShippingBreakdown)
	s.mux.HandleFunc("GET /api/raw-preview", s.apiHandlers.HandleRawPreview)
	s.mux.HandleFunc("GET /api/export", s.apiHandlers.HandleExport)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/kpis", s.sseHandlers.HandleKPIs)
	s.mux.HandleFunc("GET /sse/sales-charts", s.sseHandlers.HandleSalesCharts)
	s.mux.HandleFunc("GET /sse/geo-charts", s.sseHandlers.HandleGeoCharts)
	s.mux.HandleFunc("GET /sse/product-charts", s.sseHandlers.HandleProductCharts)
	s.mux.HandleFunc("GET /sse/shipping", s.sseHandlers.HandleShipping)
	s.mux.HandleFunc("GET /sse/raw-preview", s.sseHandlers.HandleRawPreview)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
