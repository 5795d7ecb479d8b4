package adapters

import (
	"sort"

	"github.com/fin-tools/filing-atlas/pkg/models/api"
	"github.com/fin-tools/filing-atlas/pkg/models/domain"
)

func MapRecordDomainToApi(record domain.FinancialRecord) api.FinancialRecord {
	var amount *int64
	if record.Amount.Present {
		v := record.Amount.Value
		amount = &v
	}
	return api.FinancialRecord{
		Year:       record.Year,
		Quarter:    record.Quarter,
		Scope:      string(record.Scope),
		Item:       string(record.Item),
		Amount:     amount,
		Derivation: string(record.Derivation),
	}
}

// MapRecordsToSummary builds the API response: the normalized records plus
// per-period operating margins, consolidated figures taking precedence.
func MapRecordsToSummary(
	records []domain.FinancialRecord,
	companyName, corpCode, period string,
) api.FinancialSummary {
	summary := api.FinancialSummary{
		Company:  companyName,
		CorpCode: corpCode,
		Period:   period,
		Records:  make([]api.FinancialRecord, 0, len(records)),
	}

	type cellKey struct {
		period domain.YearQuarter
		item   domain.Item
	}
	cells := make(map[cellKey]domain.FinancialRecord)
	var periods []domain.YearQuarter

	for _, record := range records {
		summary.Records = append(summary.Records, MapRecordDomainToApi(record))

		key := cellKey{period: record.Period(), item: record.Item}
		existing, ok := cells[key]
		if ok && existing.Scope == domain.ScopeConsolidated && record.Scope != domain.ScopeConsolidated {
			continue
		}
		if !ok {
			found := false
			for _, p := range periods {
				if p == record.Period() {
					found = true
					break
				}
			}
			if !found {
				periods = append(periods, record.Period())
			}
		}
		cells[key] = record
	}

	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	for _, p := range periods {
		revenue := cells[cellKey{period: p, item: domain.ItemRevenue}].Amount
		income := cells[cellKey{period: p, item: domain.ItemOperatingIncome}].Amount
		if margin, ok := domain.MarginPercent(revenue, income); ok {
			summary.Margins = append(summary.Margins, api.PeriodMargin{
				Year:    p.Year,
				Quarter: p.Quarter,
				Margin:  margin,
			})
		}
	}

	return summary
}
