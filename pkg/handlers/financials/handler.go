// Package financials serves normalized quarterly records over HTTP.
package financials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/fin-tools/filing-atlas/pkg/adapters"
	"github.com/fin-tools/filing-atlas/pkg/models/api"
	"github.com/fin-tools/filing-atlas/pkg/models/domain"
	"github.com/fin-tools/filing-atlas/pkg/services/company"
	"github.com/fin-tools/filing-atlas/pkg/services/quarterly"
)

// defaultPeriod mirrors the CLI default: the window ending Q4 2024.
var defaultPeriod = quarterly.Period{Year: 2024, Month: 12}

type Resolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

type Collector interface {
	Collect(ctx context.Context, corpCode string, window []domain.YearQuarter) ([]domain.FinancialRecord, error)
	CollectYear(ctx context.Context, corpCode string, year int) ([]domain.FinancialRecord, error)
}

type Handler struct {
	resolver  Resolver
	collector Collector
}

func NewHandler(resolver Resolver, collector Collector) *Handler {
	return &Handler{resolver: resolver, collector: collector}
}

// GetFinancials handles GET /companies/{name}/financials?period=YYYY|YYYYMM.
func (h *Handler) GetFinancials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "name")

	period := defaultPeriod
	if raw := r.URL.Query().Get("period"); raw != "" {
		var err error
		period, err = quarterly.ParsePeriod(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, api.Error{Message: err.Error()})
			return
		}
	}

	corpCode, err := h.resolver.Resolve(ctx, name)
	if err != nil {
		var ambiguous *company.AmbiguousError
		switch {
		case errors.Is(err, company.ErrNotFound):
			writeError(w, http.StatusNotFound, api.Error{Message: "company not found"})
		case errors.As(err, &ambiguous):
			writeError(w, http.StatusConflict, api.Error{
				Message:    "company name is ambiguous",
				Candidates: ambiguous.Candidates,
			})
		default:
			logger.Error().Err(err).Str("company", name).Msg("identifier resolution failed")
			writeError(w, http.StatusBadGateway, api.Error{Message: "identifier resolution failed"})
		}
		return
	}

	var records []domain.FinancialRecord
	if period.WindowMode() {
		window, err := quarterly.PlanWindow(period.Year, period.Month)
		if err != nil {
			writeError(w, http.StatusBadRequest, api.Error{Message: err.Error()})
			return
		}
		records, err = h.collector.Collect(ctx, corpCode, window)
		if err != nil {
			logger.Error().Err(err).Str("corp_code", corpCode).Msg("collection failed")
			writeError(w, http.StatusBadGateway, api.Error{Message: "collection failed"})
			return
		}
	} else {
		records, err = h.collector.CollectYear(ctx, corpCode, period.Year)
		if err != nil {
			logger.Error().Err(err).Str("corp_code", corpCode).Msg("collection failed")
			writeError(w, http.StatusBadGateway, api.Error{Message: "collection failed"})
			return
		}
	}

	if len(records) == 0 {
		writeError(w, http.StatusNotFound, api.Error{Message: "no data for this period"})
		return
	}

	summary := adapters.MapRecordsToSummary(records, name, corpCode, period.String())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		logger.Error().Err(err).Msg("failed to encode financial summary")
	}
}

func writeError(w http.ResponseWriter, status int, body api.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
