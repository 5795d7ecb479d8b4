package domain

import "fmt"

// Scope identifies the consolidation scope of a reported figure.
type Scope string

const (
	ScopeConsolidated Scope = "consolidated"
	ScopeSeparate     Scope = "separate"
)

func (s Scope) DisplayName() string {
	switch s {
	case ScopeConsolidated:
		return "Consolidated"
	case ScopeSeparate:
		return "Separate"
	}
	return string(s)
}

// Item is a tracked financial statement line item.
type Item string

const (
	ItemRevenue         Item = "revenue"
	ItemOperatingIncome Item = "operating_income"
)

func (i Item) DisplayName() string {
	switch i {
	case ItemRevenue:
		return "Revenue"
	case ItemOperatingIncome:
		return "Operating Income"
	}
	return string(i)
}

// ReportPeriod classifies which interim or annual filing a figure comes from.
type ReportPeriod string

const (
	ReportQ1       ReportPeriod = "q1"
	ReportHalfYear ReportPeriod = "half_year"
	ReportQ3       ReportPeriod = "q3"
	ReportAnnual   ReportPeriod = "annual"
)

// ReportPeriodForQuarter maps a quarter number to the filing that covers it.
// The annual filing carries cumulative full-year amounts, not Q4-only amounts.
func ReportPeriodForQuarter(quarter int) (ReportPeriod, error) {
	switch quarter {
	case 1:
		return ReportQ1, nil
	case 2:
		return ReportHalfYear, nil
	case 3:
		return ReportQ3, nil
	case 4:
		return ReportAnnual, nil
	}
	return "", fmt.Errorf("invalid quarter: %d", quarter)
}

// Quarter returns the quarter a filing's current term ends in.
func (r ReportPeriod) Quarter() int {
	switch r {
	case ReportQ1:
		return 1
	case ReportHalfYear:
		return 2
	case ReportQ3:
		return 3
	case ReportAnnual:
		return 4
	}
	return 0
}

// EndMonth returns the calendar month closing the filing's current term.
func (r ReportPeriod) EndMonth() int {
	return r.Quarter() * 3
}

func (r ReportPeriod) DisplayName() string {
	switch r {
	case ReportQ1:
		return "Q1 Report"
	case ReportHalfYear:
		return "Half-Year Report"
	case ReportQ3:
		return "Q3 Report"
	case ReportAnnual:
		return "Annual Report"
	}
	return string(r)
}

// YearQuarter is a single (fiscal year, quarter) period.
type YearQuarter struct {
	Year    int
	Quarter int
}

// Next advances by exactly one quarter, wrapping the year boundary.
func (yq YearQuarter) Next() YearQuarter {
	if yq.Quarter >= 4 {
		return YearQuarter{Year: yq.Year + 1, Quarter: 1}
	}
	return YearQuarter{Year: yq.Year, Quarter: yq.Quarter + 1}
}

// Before reports whether yq is chronologically earlier than other.
func (yq YearQuarter) Before(other YearQuarter) bool {
	if yq.Year != other.Year {
		return yq.Year < other.Year
	}
	return yq.Quarter < other.Quarter
}

func (yq YearQuarter) String() string {
	return fmt.Sprintf("%dQ%d", yq.Year, yq.Quarter)
}

// Amount is a reported figure with an explicit missing state.
// The zero value is missing; a present zero amount is a distinct, valid value.
type Amount struct {
	Value   int64
	Present bool
}

func NewAmount(value int64) Amount {
	return Amount{Value: value, Present: true}
}

// Derivation records how a per-quarter amount was obtained.
type Derivation string

const (
	// DerivationReported is the filing's current-term amount as fetched.
	DerivationReported Derivation = "reported"
	// DerivationDerived is an isolated Q4 amount computed as annual minus Q1-Q3.
	DerivationDerived Derivation = "derived"
	// DerivationCumulative marks a Q4 record left as the raw annual cumulative
	// because no Q1-Q3 records were available to subtract.
	DerivationCumulative Derivation = "cumulative"
)

// FinancialRecord is the canonical per-quarter line item produced by the
// aggregator. At most one record exists per (year, quarter, scope, item).
type FinancialRecord struct {
	Year       int
	Quarter    int
	Scope      Scope
	Item       Item
	Amount     Amount
	Derivation Derivation
}

// Period returns the record's (year, quarter) pair.
func (r FinancialRecord) Period() YearQuarter {
	return YearQuarter{Year: r.Year, Quarter: r.Quarter}
}

// MarginPercent computes 100 * income / revenue. The second return value is
// false when either amount is missing or revenue is zero.
func MarginPercent(revenue, income Amount) (float64, bool) {
	if !revenue.Present || !income.Present || revenue.Value == 0 {
		return 0, false
	}
	return 100 * float64(income.Value) / float64(revenue.Value), true
}
