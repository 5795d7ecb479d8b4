package quarterly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
)

func TestPlanYear(t *testing.T) {
	expected := []domain.YearQuarter{
		{Year: 2023, Quarter: 1},
		{Year: 2023, Quarter: 2},
		{Year: 2023, Quarter: 3},
		{Year: 2023, Quarter: 4},
	}
	assert.Equal(t, expected, PlanYear(2023))
}

func TestAnchorQuarter(t *testing.T) {
	tests := []struct {
		month   int
		quarter int
	}{
		{month: 1, quarter: 1},
		{month: 3, quarter: 1},
		{month: 4, quarter: 2},
		{month: 6, quarter: 2},
		{month: 7, quarter: 3},
		{month: 9, quarter: 3},
		{month: 10, quarter: 4},
		{month: 12, quarter: 4},
	}

	for _, tt := range tests {
		anchor, err := AnchorQuarter(2024, tt.month)
		require.NoError(t, err)
		assert.Equal(t, domain.YearQuarter{Year: 2024, Quarter: tt.quarter}, anchor,
			"month %d", tt.month)
	}

	_, err := AnchorQuarter(2024, 13)
	assert.Error(t, err)

	_, err = AnchorQuarter(2024, 0)
	assert.Error(t, err)
}

func TestPlanWindow_June2024(t *testing.T) {
	window, err := PlanWindow(2024, 6)
	require.NoError(t, err)

	require.Len(t, window, 18)
	assert.Equal(t, domain.YearQuarter{Year: 2020, Quarter: 1}, window[0])
	assert.Equal(t, domain.YearQuarter{Year: 2024, Quarter: 2}, window[len(window)-1])
}

func TestPlanWindow_Ascending_NoGaps(t *testing.T) {
	for month := 1; month <= 12; month++ {
		window, err := PlanWindow(2023, month)
		require.NoError(t, err)
		require.NotEmpty(t, window)

		anchor, _ := AnchorQuarter(2023, month)
		assert.Equal(t, domain.YearQuarter{Year: 2019, Quarter: 1}, window[0])
		assert.Equal(t, anchor, window[len(window)-1])

		for i := 1; i < len(window); i++ {
			assert.Equal(t, window[i-1].Next(), window[i],
				"month %d: step %d must advance exactly one quarter", month, i)
		}
	}
}

func TestPlanWindow_AnchorQ4_FullFiveYears(t *testing.T) {
	window, err := PlanWindow(2024, 12)
	require.NoError(t, err)

	assert.Len(t, window, 20)
	assert.Equal(t, domain.YearQuarter{Year: 2020, Quarter: 1}, window[0])
	assert.Equal(t, domain.YearQuarter{Year: 2024, Quarter: 4}, window[len(window)-1])
}
