package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/vogant/storefront-backend/api/responses"
	"github.com/vogant/storefront-backend/internal/analytics"
	"github.com/vogant/storefront-backend/internal/reports"
	"github.com/vogant/storefront-backend/pkg/config"
	"github.com/vogant/storefront-backend/pkg/enums"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
	"github.com/vogant/storefront-backend/pkg/logger"
	"github.com/vogant/storefront-backend/pkg/metrics"
)

const dateParamLayout = "2006-01-02"

// AnalyticsSnapshot serves the dashboard metrics for the requested window.
func AnalyticsSnapshot(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := parseWindow(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot, err := svc.Snapshot(r.Context(), window)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

// AnalyticsLowStock serves the stock alert list.
func AnalyticsLowStock(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.LowStock(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// AnalyticsExport renders the windowed snapshot as a downloadable report.
func AnalyticsExport(svc analytics.Service, cfg config.AnalyticsConfig, m *metrics.HTTPMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := enums.ParseReportFormat(r.URL.Query().Get("format"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid format"))
			return
		}

		window, err := parseWindow(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot, err := svc.Snapshot(r.Context(), window)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		generatedAt := time.Now().UTC()
		data := reports.BuildReportData(snapshot, reports.RangeLabel(window), cfg.StoreLabel, generatedAt)
		report, err := reports.Render(data, format, generatedAt)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if m != nil {
			m.IncExport(format.String())
		}

		w.Header().Set("Content-Type", report.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(report.Payload); err != nil && logg != nil {
			logg.Error(r.Context(), "report.write_failed", err)
		}
	}
}

func parseWindow(r *http.Request) (analytics.Window, error) {
	query := r.URL.Query()

	rangeValue := strings.TrimSpace(query.Get("range"))
	if rangeValue == "" {
		return analytics.WindowAll, nil
	}
	dateRange, err := enums.ParseDateRange(rangeValue)
	if err != nil {
		return analytics.Window{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid range")
	}

	window := analytics.Window{Range: dateRange}
	if dateRange != enums.DateRangeCustom {
		return window, nil
	}

	start, err := parseDateParam(query.Get("start"))
	if err != nil {
		return analytics.Window{}, pkgerrors.New(pkgerrors.CodeValidation, "start must be a YYYY-MM-DD date")
	}
	end, err := parseDateParam(query.Get("end"))
	if err != nil {
		return analytics.Window{}, pkgerrors.New(pkgerrors.CodeValidation, "end must be a YYYY-MM-DD date")
	}
	window.Start = start
	window.End = end
	return window, nil
}

func parseDateParam(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateParamLayout, trimmed)
	if err != nil {
		return nil, err
	}
	utc := parsed.UTC()
	return &utc, nil
}
