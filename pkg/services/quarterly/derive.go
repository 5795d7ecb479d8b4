package quarterly

import "github.com/fin-tools/filing-atlas/pkg/models/domain"

type derivationKey struct {
	year  int
	scope domain.Scope
	item  domain.Item
}

// DeriveQ4 converts annual cumulative amounts into isolated fourth-quarter
// amounts, in place. For every (year, item, scope) with a Q4 record, the
// Q1-Q3 amounts of the same key are summed (missing amounts contribute zero,
// so partial years still yield a best-effort Q4) and subtracted from the
// annual cumulative. A Q4 record with no Q1-Q3 records at all keeps the raw
// annual cumulative and is marked DerivationCumulative instead of pretending
// to be an isolated quarter.
func DeriveQ4(records []domain.FinancialRecord) {
	interimSums := make(map[derivationKey]int64)
	interimSeen := make(map[derivationKey]bool)

	for _, r := range records {
		if r.Quarter < 1 || r.Quarter > 3 {
			continue
		}
		key := derivationKey{year: r.Year, scope: r.Scope, item: r.Item}
		interimSeen[key] = true
		if r.Amount.Present {
			interimSums[key] += r.Amount.Value
		}
	}

	for i := range records {
		if records[i].Quarter != 4 {
			continue
		}
		key := derivationKey{year: records[i].Year, scope: records[i].Scope, item: records[i].Item}
		if !interimSeen[key] {
			records[i].Derivation = domain.DerivationCumulative
			continue
		}

		records[i].Derivation = domain.DerivationDerived
		if records[i].Amount.Present {
			records[i].Amount = domain.NewAmount(records[i].Amount.Value - interimSums[key])
		}
	}
}
