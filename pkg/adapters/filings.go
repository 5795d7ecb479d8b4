package adapters

import (
	"strconv"
	"strings"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

// accountItems maps provider account identifiers to the tracked line items.
var accountItems = map[string]domain.Item{
	"ifrs-full_Revenue":        domain.ItemRevenue,
	"dart_OperatingIncomeLoss": domain.ItemOperatingIncome,
}

// MapFilingRowToRecord normalizes one raw filing row into a per-quarter
// record. The second return value is false for untracked account rows.
func MapFilingRowToRecord(
	row store.FilingRow,
	period domain.YearQuarter,
	scope domain.Scope,
) (domain.FinancialRecord, bool) {
	item, ok := accountItems[row.AccountID]
	if !ok {
		return domain.FinancialRecord{}, false
	}

	return domain.FinancialRecord{
		Year:       period.Year,
		Quarter:    period.Quarter,
		Scope:      scope,
		Item:       item,
		Amount:     ParseAmount(row.CurrentTermAmount),
		Derivation: domain.DerivationReported,
	}, true
}

// ParseAmount parses a string-encoded amount, stripping thousands separators.
// Absent or unparseable values become missing, never zero.
func ParseAmount(raw string) domain.Amount {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" || cleaned == "-" {
		return domain.Amount{}
	}

	value, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return domain.Amount{}
	}
	return domain.NewAmount(value)
}
