package quarterly

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fin-tools/filing-atlas/pkg/adapters"
	"github.com/fin-tools/filing-atlas/pkg/models/domain"
	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

// FilingSource fetches raw filing rows for one (identifier, year, report
// period, scope) request. An unavailable filing must come back as an empty
// result or an error, never a panic; either way the aggregator records a gap.
type FilingSource interface {
	FetchFilings(
		ctx context.Context,
		corpCode string,
		year int,
		period domain.ReportPeriod,
		scope domain.Scope,
	) ([]store.FilingRow, error)
}

// scopeOrder fixes fetch ordering; consolidated figures are collected first.
var scopeOrder = []domain.Scope{domain.ScopeConsolidated, domain.ScopeSeparate}

// yearReportOrder is the filing order used in bare-year mode, mirroring the
// provider's report catalogue: annual first, then the interims.
var yearReportOrder = []domain.ReportPeriod{
	domain.ReportAnnual,
	domain.ReportQ1,
	domain.ReportHalfYear,
	domain.ReportQ3,
}

type Aggregator struct {
	source FilingSource
}

func NewAggregator(source FilingSource) *Aggregator {
	return &Aggregator{source: source}
}

// Collect fetches every quarter of the window across both consolidation
// scopes, normalizes the tracked line items, and applies Q4 derivation.
// Failed or empty fetches are logged and skipped; an entirely empty result
// means "no data for this period" and is not an error.
func (a *Aggregator) Collect(
	ctx context.Context,
	corpCode string,
	window []domain.YearQuarter,
) ([]domain.FinancialRecord, error) {
	var records []domain.FinancialRecord
	for _, yq := range window {
		period, err := domain.ReportPeriodForQuarter(yq.Quarter)
		if err != nil {
			return nil, err
		}
		records = append(records, a.collectFiling(ctx, corpCode, yq, period)...)
	}

	DeriveQ4(records)
	return records, nil
}

// CollectYear fetches the four filings of a single fiscal year in the
// provider's catalogue order and applies the same normalization pipeline.
func (a *Aggregator) CollectYear(
	ctx context.Context,
	corpCode string,
	year int,
) ([]domain.FinancialRecord, error) {
	var records []domain.FinancialRecord
	for _, period := range yearReportOrder {
		yq := domain.YearQuarter{Year: year, Quarter: period.Quarter()}
		records = append(records, a.collectFiling(ctx, corpCode, yq, period)...)
	}

	DeriveQ4(records)
	return records, nil
}

// collectFiling fetches one filing across both scopes and keeps the tracked
// line items. Fetch failures are isolated here: they surface as gaps, never
// as errors that would abort the rest of the window.
func (a *Aggregator) collectFiling(
	ctx context.Context,
	corpCode string,
	yq domain.YearQuarter,
	period domain.ReportPeriod,
) []domain.FinancialRecord {
	logger := zerolog.Ctx(ctx)

	var records []domain.FinancialRecord
	for _, scope := range scopeOrder {
		rows, err := a.source.FetchFilings(ctx, corpCode, yq.Year, period, scope)
		if err != nil {
			logger.Warn().Err(err).
				Str("corp_code", corpCode).
				Stringer("period", yq).
				Str("scope", string(scope)).
				Msg("filing fetch failed, leaving gap")
			continue
		}
		if len(rows) == 0 {
			logger.Debug().
				Str("corp_code", corpCode).
				Stringer("period", yq).
				Str("scope", string(scope)).
				Msg("no filing data")
			continue
		}

		for _, row := range rows {
			if record, ok := adapters.MapFilingRowToRecord(row, yq, scope); ok {
				records = append(records, record)
			}
		}
	}
	return records
}
