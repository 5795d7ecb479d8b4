// Package dart is a client for the Open DART corporate disclosure API.
package dart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
	"github.com/fin-tools/filing-atlas/pkg/models/store"
)

const (
	DefaultBaseURL = "https://opendart.fss.or.kr/api"

	statusOK     = "000"
	statusNoData = "013"
)

// reportCodes are the provider's reprt_code values per filing.
var reportCodes = map[domain.ReportPeriod]string{
	domain.ReportQ1:       "11013",
	domain.ReportHalfYear: "11012",
	domain.ReportQ3:       "11014",
	domain.ReportAnnual:   "11011",
}

// scopeCodes are the provider's fs_div values per consolidation scope.
var scopeCodes = map[domain.Scope]string{
	domain.ScopeConsolidated: "CFS",
	domain.ScopeSeparate:     "OFS",
}

type Config struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = 5
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// filingResponse is the wire shape of the single-account-all endpoint.
type filingResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	List    []filingRow `json:"list"`
}

type filingRow struct {
	AccountID     string `json:"account_id"`
	AccountName   string `json:"account_nm"`
	ThstrmAmount  string `json:"thstrm_amount"`
	FrmtrmAmount  string `json:"frmtrm_amount"`
	BfefrmtrmAmnt string `json:"bfefrmtrm_amount"`
}

// FetchFilings returns the raw line items filed for one (identifier, year,
// report period, scope) combination. A provider-side "no data" status yields
// an empty result rather than an error; only transport failures error out.
func (c *Client) FetchFilings(
	ctx context.Context,
	corpCode string,
	year int,
	period domain.ReportPeriod,
	scope domain.Scope,
) ([]store.FilingRow, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("crtfc_key", c.apiKey)
	params.Set("corp_code", corpCode)
	params.Set("bsns_year", fmt.Sprintf("%d", year))
	params.Set("reprt_code", reportCodes[period])
	params.Set("fs_div", scopeCodes[scope])

	body, err := c.get(ctx, "/fnlttSinglAcntAll.json", params)
	if err != nil {
		return nil, err
	}

	var resp filingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode filing response: %w", err)
	}

	if resp.Status != statusOK {
		if resp.Status != statusNoData {
			zerolog.Ctx(ctx).Debug().
				Str("corp_code", corpCode).
				Int("year", year).
				Str("status", resp.Status).
				Str("message", resp.Message).
				Msg("provider returned no filings")
		}
		return nil, nil
	}

	rows := make([]store.FilingRow, 0, len(resp.List))
	for _, r := range resp.List {
		rows = append(rows, store.FilingRow{
			AccountID:         r.AccountID,
			AccountName:       r.AccountName,
			CurrentTermAmount: r.ThstrmAmount,
		})
	}
	return rows, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.URL.RawQuery = params.Encode()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d for %s", res.StatusCode, path)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	return body, nil
}
