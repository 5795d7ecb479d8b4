package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearQuarter_Next(t *testing.T) {
	assert.Equal(t, YearQuarter{Year: 2023, Quarter: 2}, YearQuarter{Year: 2023, Quarter: 1}.Next())
	assert.Equal(t, YearQuarter{Year: 2024, Quarter: 1}, YearQuarter{Year: 2023, Quarter: 4}.Next())
}

func TestYearQuarter_Before(t *testing.T) {
	assert.True(t, YearQuarter{Year: 2022, Quarter: 4}.Before(YearQuarter{Year: 2023, Quarter: 1}))
	assert.True(t, YearQuarter{Year: 2023, Quarter: 1}.Before(YearQuarter{Year: 2023, Quarter: 2}))
	assert.False(t, YearQuarter{Year: 2023, Quarter: 2}.Before(YearQuarter{Year: 2023, Quarter: 2}))
}

func TestYearQuarter_String(t *testing.T) {
	assert.Equal(t, "2024Q2", YearQuarter{Year: 2024, Quarter: 2}.String())
}

func TestReportPeriodForQuarter(t *testing.T) {
	tests := []struct {
		quarter  int
		expected ReportPeriod
	}{
		{1, ReportQ1},
		{2, ReportHalfYear},
		{3, ReportQ3},
		{4, ReportAnnual},
	}
	for _, tt := range tests {
		period, err := ReportPeriodForQuarter(tt.quarter)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, period)
		assert.Equal(t, tt.quarter, period.Quarter())
		assert.Equal(t, tt.quarter*3, period.EndMonth())
	}

	_, err := ReportPeriodForQuarter(0)
	assert.Error(t, err)
	_, err = ReportPeriodForQuarter(5)
	assert.Error(t, err)
}

func TestMarginPercent(t *testing.T) {
	margin, ok := MarginPercent(NewAmount(1000), NewAmount(150))
	require.True(t, ok)
	assert.InDelta(t, 15.0, margin, 0.001)

	margin, ok = MarginPercent(NewAmount(2000), NewAmount(-510))
	require.True(t, ok)
	assert.InDelta(t, -25.5, margin, 0.001)

	_, ok = MarginPercent(NewAmount(0), NewAmount(150))
	assert.False(t, ok)
	_, ok = MarginPercent(Amount{}, NewAmount(150))
	assert.False(t, ok)
	_, ok = MarginPercent(NewAmount(1000), Amount{})
	assert.False(t, ok)
}

func TestCompanyIndex_Candidates(t *testing.T) {
	index := NewCompanyIndex(map[string]string{
		"Samsung Electronics": "00126380",
		"Samsung SDI":         "00126362",
		"LG Electronics":      "00401731",
	})

	assert.Equal(t, []string{"Samsung Electronics", "Samsung SDI"}, index.Candidates("Samsung"))
	assert.Equal(t, []string{"LG Electronics", "Samsung Electronics"}, index.Candidates("Electronics"))
	assert.Empty(t, index.Candidates("Hyundai"))
}
