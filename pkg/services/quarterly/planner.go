package quarterly

import (
	"fmt"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
)

// windowYearsBack is how many years before the anchor a rolling window opens.
const windowYearsBack = 4

// PlanYear returns all four quarters of a single fiscal year.
func PlanYear(year int) []domain.YearQuarter {
	return []domain.YearQuarter{
		{Year: year, Quarter: 1},
		{Year: year, Quarter: 2},
		{Year: year, Quarter: 3},
		{Year: year, Quarter: 4},
	}
}

// AnchorQuarter maps a (year, month) to the quarter containing that month.
// A month that is not itself a quarter end still anchors its containing
// quarter; there is no sub-quarter granularity.
func AnchorQuarter(year, month int) (domain.YearQuarter, error) {
	if month < 1 || month > 12 {
		return domain.YearQuarter{}, fmt.Errorf("invalid month: %d", month)
	}
	return domain.YearQuarter{Year: year, Quarter: (month-1)/3 + 1}, nil
}

// PlanWindow returns the consecutive quarters from Q1 of four years before
// the anchor through the anchor quarter, ascending, one quarter per step.
func PlanWindow(year, month int) ([]domain.YearQuarter, error) {
	anchor, err := AnchorQuarter(year, month)
	if err != nil {
		return nil, err
	}

	window := []domain.YearQuarter{}
	for cur := (domain.YearQuarter{Year: anchor.Year - windowYearsBack, Quarter: 1}); ; cur = cur.Next() {
		window = append(window, cur)
		if cur == anchor {
			break
		}
	}
	return window, nil
}

// PlanPeriod dispatches to PlanYear or PlanWindow based on the period mode.
func PlanPeriod(p Period) ([]domain.YearQuarter, error) {
	if p.WindowMode() {
		return PlanWindow(p.Year, p.Month)
	}
	return PlanYear(p.Year), nil
}
