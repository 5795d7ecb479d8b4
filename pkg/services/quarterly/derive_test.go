package quarterly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
)

func record(year, quarter int, item domain.Item, amount domain.Amount) domain.FinancialRecord {
	return domain.FinancialRecord{
		Year:       year,
		Quarter:    quarter,
		Scope:      domain.ScopeConsolidated,
		Item:       item,
		Amount:     amount,
		Derivation: domain.DerivationReported,
	}
}

func TestDeriveQ4_MutatesOnlyFourthQuarter(t *testing.T) {
	records := []domain.FinancialRecord{
		record(2023, 1, domain.ItemRevenue, domain.NewAmount(250)),
		record(2023, 2, domain.ItemRevenue, domain.NewAmount(300)),
		record(2023, 3, domain.ItemRevenue, domain.NewAmount(200)),
		record(2023, 4, domain.ItemRevenue, domain.NewAmount(1000)),
	}

	DeriveQ4(records)

	assert.Equal(t, domain.NewAmount(250), records[0].Amount)
	assert.Equal(t, domain.NewAmount(300), records[1].Amount)
	assert.Equal(t, domain.NewAmount(200), records[2].Amount)
	assert.Equal(t, domain.NewAmount(250), records[3].Amount)
	assert.Equal(t, domain.DerivationDerived, records[3].Derivation)
}

func TestDeriveQ4_MissingInterimAmountContributesZero(t *testing.T) {
	records := []domain.FinancialRecord{
		record(2023, 1, domain.ItemRevenue, domain.NewAmount(100)),
		record(2023, 2, domain.ItemRevenue, domain.Amount{}),
		record(2023, 3, domain.ItemRevenue, domain.NewAmount(200)),
		record(2023, 4, domain.ItemRevenue, domain.NewAmount(900)),
	}

	DeriveQ4(records)

	assert.Equal(t, domain.NewAmount(600), records[3].Amount)
}

func TestDeriveQ4_MissingAnnualStaysMissing(t *testing.T) {
	records := []domain.FinancialRecord{
		record(2023, 1, domain.ItemRevenue, domain.NewAmount(100)),
		record(2023, 4, domain.ItemRevenue, domain.Amount{}),
	}

	DeriveQ4(records)

	assert.False(t, records[1].Amount.Present)
	assert.Equal(t, domain.DerivationDerived, records[1].Derivation)
}

func TestDeriveQ4_NegativeResult(t *testing.T) {
	// Interims can exceed the annual total when Q4 posted a loss.
	records := []domain.FinancialRecord{
		record(2023, 1, domain.ItemOperatingIncome, domain.NewAmount(500)),
		record(2023, 4, domain.ItemOperatingIncome, domain.NewAmount(300)),
	}

	DeriveQ4(records)

	assert.Equal(t, domain.NewAmount(-200), records[1].Amount)
}

func TestDeriveQ4_SeparateYearsDoNotInterfere(t *testing.T) {
	records := []domain.FinancialRecord{
		record(2022, 1, domain.ItemRevenue, domain.NewAmount(100)),
		record(2022, 4, domain.ItemRevenue, domain.NewAmount(500)),
		record(2023, 4, domain.ItemRevenue, domain.NewAmount(900)),
	}

	DeriveQ4(records)

	assert.Equal(t, domain.NewAmount(400), records[1].Amount)
	assert.Equal(t, domain.DerivationDerived, records[1].Derivation)
	assert.Equal(t, domain.NewAmount(900), records[2].Amount)
	assert.Equal(t, domain.DerivationCumulative, records[2].Derivation)
}
