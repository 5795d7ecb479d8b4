// Package quarterly plans rolling quarter windows and reconciles cumulative
// filings into discrete per-quarter figures.
package quarterly

import (
	"fmt"
	"strconv"
)

// Period is a requested reporting period: either a bare fiscal year
// (Month == 0) or a specific year and month anchoring a rolling window.
type Period struct {
	Year  int
	Month int
}

// WindowMode reports whether the period anchors a rolling quarter window
// rather than a single fiscal year.
func (p Period) WindowMode() bool {
	return p.Month != 0
}

func (p Period) String() string {
	if p.WindowMode() {
		return fmt.Sprintf("%d%02d", p.Year, p.Month)
	}
	return strconv.Itoa(p.Year)
}

// ParsePeriod accepts a 4-digit fiscal year ("2024") or a 6-digit YYYYMM
// ("202406"). A 4-digit year selects bare-year mode.
func ParsePeriod(input string) (Period, error) {
	switch len(input) {
	case 4:
		year, err := strconv.Atoi(input)
		if err != nil {
			return Period{}, fmt.Errorf("invalid year %q", input)
		}
		return Period{Year: year}, nil
	case 6:
		value, err := strconv.Atoi(input)
		if err != nil {
			return Period{}, fmt.Errorf("invalid period %q", input)
		}
		year, month := value/100, value%100
		if month < 1 || month > 12 {
			return Period{}, fmt.Errorf("invalid month %02d in period %q", month, input)
		}
		return Period{Year: year, Month: month}, nil
	default:
		return Period{}, fmt.Errorf("period must be a 4-digit year or 6-digit YYYYMM, got %q", input)
	}
}
