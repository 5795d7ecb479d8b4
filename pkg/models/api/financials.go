package api

type FinancialRecord struct {
	Year       int    `json:"year"`
	Quarter    int    `json:"quarter"`
	Scope      string `json:"scope"`
	Item       string `json:"item"`
	Amount     *int64 `json:"amount"`
	Derivation string `json:"derivation"`
}

type PeriodMargin struct {
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Margin  float64 `json:"margin_pct"`
}

type FinancialSummary struct {
	Company  string            `json:"company"`
	CorpCode string            `json:"corp_code"`
	Period   string            `json:"period"`
	Records  []FinancialRecord `json:"records"`
	Margins  []PeriodMargin    `json:"margins"`
}

type Error struct {
	Message    string   `json:"message"`
	Candidates []string `json:"candidates,omitempty"`
}
