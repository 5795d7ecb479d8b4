package store

// FilingRow is one raw line item as returned by the disclosure provider for a
// single (identifier, year, report period, scope) request. CurrentTermAmount
// is the string-encoded cumulative amount with thousands separators; it may
// be empty when the provider reports no value.
type FilingRow struct {
	AccountID         string
	AccountName       string
	CurrentTermAmount string
}
