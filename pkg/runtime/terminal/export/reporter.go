// Package export renders normalized financial records for the terminal and
// for spreadsheet files.
package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
)

const missingCell = "-"

type TableConfig struct {
	LabelWidth  int
	AmountWidth int
	UnitWidth   int
	BannerWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth:  14,
		AmountWidth: 16,
		UnitWidth:   6,
		BannerWidth: 80,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// tableRow is one rendered line: a left-aligned label followed by
// right-aligned value cells and a unit cell.
type tableRow struct {
	Label string
	Cells []string
	Unit  string
}

type tableView struct {
	Title    string
	Header   tableRow
	Rows     []tableRow
	Footnote string
}

const tableTemplate = `{{center .Title}}
{{banner "="}}
{{formatRow .Header}}
{{banner "-"}}
{{range .Rows}}{{formatRow .}}
{{end}}{{banner "="}}
{{if .Footnote}}{{.Footnote}}
{{end}}`

// RenderQuarterTable renders one row per (year, quarter), chronological
// ascending, with revenue, operating income, and the derived margin.
func (r *Reporter) RenderQuarterTable(records []domain.FinancialRecord) error {
	grid := pivot(records)

	view := tableView{
		Title: "[Quarterly Financial Summary]",
		Header: tableRow{
			Label: "Period",
			Cells: []string{"Revenue", "Op. Income", "Margin (%)"},
			Unit:  "Unit",
		},
	}

	cumulative := false
	for _, period := range grid.periods() {
		revenueCell, flagged := grid.amountCell(period, domain.ItemRevenue)
		cumulative = cumulative || flagged
		incomeCell, flagged := grid.amountCell(period, domain.ItemOperatingIncome)
		cumulative = cumulative || flagged

		revenue, _ := grid.amount(period, domain.ItemRevenue)
		income, _ := grid.amount(period, domain.ItemOperatingIncome)

		view.Rows = append(view.Rows, tableRow{
			Label: fmt.Sprintf("%d Q%d", period.Year, period.Quarter),
			Cells: []string{revenueCell, incomeCell, formatMargin(revenue, income)},
			Unit:  "KRW",
		})
	}

	if cumulative {
		view.Footnote = "* full-year cumulative: no interim filings were available to subtract"
	}

	return r.execute(view)
}

// RenderReportTable renders one column per report filing of a single year,
// ordered by the filing's implied end month, with items as rows and a margin
// footer row. Consolidated figures take precedence over separate ones.
func (r *Reporter) RenderReportTable(records []domain.FinancialRecord) error {
	grid := pivot(records)
	periods := grid.periods()

	view := tableView{
		Title: "[Financial Summary by Report]",
		Header: tableRow{
			Label: "Item",
			Unit:  "Unit",
		},
	}
	for _, period := range periods {
		view.Header.Cells = append(view.Header.Cells, fmt.Sprintf("%d%02d", period.Year, period.Quarter*3))
	}

	for _, item := range []domain.Item{domain.ItemRevenue, domain.ItemOperatingIncome} {
		row := tableRow{Label: item.DisplayName(), Unit: "KRW"}
		for _, period := range periods {
			cell, _ := grid.amountCell(period, item)
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}

	marginRow := tableRow{Label: "Op. Margin", Unit: "%"}
	for _, period := range periods {
		revenue, _ := grid.amount(period, domain.ItemRevenue)
		income, _ := grid.amount(period, domain.ItemOperatingIncome)
		marginRow.Cells = append(marginRow.Cells, formatMargin(revenue, income))
	}
	view.Rows = append(view.Rows, marginRow)

	return r.execute(view)
}

func (r *Reporter) execute(view tableView) error {
	funcMap := template.FuncMap{
		"formatRow": func(row tableRow) string {
			parts := []string{fmt.Sprintf("%-*s", r.config.LabelWidth, row.Label)}
			for _, cell := range row.Cells {
				parts = append(parts, fmt.Sprintf("%*s", r.config.AmountWidth, cell))
			}
			parts = append(parts, fmt.Sprintf("%*s", r.config.UnitWidth, row.Unit))
			return strings.Join(parts, " | ")
		},
		"banner": func(ch string) string {
			return strings.Repeat(ch, r.config.BannerWidth)
		},
		"center": func(title string) string {
			pad := (r.config.BannerWidth - len(title)) / 2
			if pad < 0 {
				pad = 0
			}
			return strings.Repeat(" ", pad) + title
		},
	}

	t, err := template.New("table").Funcs(funcMap).Parse(tableTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse table template: %w", err)
	}
	return t.Execute(r.writer, view)
}

// grid is a period x item pivot over normalized records.
type grid struct {
	cells map[gridKey]domain.FinancialRecord
	order []domain.YearQuarter
}

type gridKey struct {
	period domain.YearQuarter
	item   domain.Item
}

// pivot folds records into a period x item grid. When both consolidation
// scopes carry a value for the same cell, the consolidated one wins.
func pivot(records []domain.FinancialRecord) grid {
	g := grid{cells: make(map[gridKey]domain.FinancialRecord)}
	seen := make(map[domain.YearQuarter]bool)

	for _, record := range records {
		key := gridKey{period: record.Period(), item: record.Item}
		if existing, ok := g.cells[key]; ok {
			if existing.Scope == domain.ScopeConsolidated && record.Scope != domain.ScopeConsolidated {
				continue
			}
		}
		g.cells[key] = record

		if !seen[record.Period()] {
			seen[record.Period()] = true
			g.order = append(g.order, record.Period())
		}
	}

	sort.Slice(g.order, func(i, j int) bool { return g.order[i].Before(g.order[j]) })
	return g
}

func (g grid) periods() []domain.YearQuarter {
	return g.order
}

func (g grid) amount(period domain.YearQuarter, item domain.Item) (domain.Amount, bool) {
	record, ok := g.cells[gridKey{period: period, item: item}]
	if !ok {
		return domain.Amount{}, false
	}
	return record.Amount, true
}

// amountCell renders one cell, marking amounts that are still full-year
// cumulatives with an asterisk. The second return value reports the marker.
func (g grid) amountCell(period domain.YearQuarter, item domain.Item) (string, bool) {
	record, ok := g.cells[gridKey{period: period, item: item}]
	if !ok {
		return missingCell, false
	}

	cell := formatAmount(record.Amount)
	if record.Derivation == domain.DerivationCumulative {
		return cell + "*", true
	}
	return cell, false
}

// formatAmount renders a missing amount as "-" and a present zero as "0";
// the two are never conflated.
func formatAmount(a domain.Amount) string {
	if !a.Present {
		return missingCell
	}
	return formatThousands(a.Value)
}

func formatMargin(revenue, income domain.Amount) string {
	margin, ok := domain.MarginPercent(revenue, income)
	if !ok {
		return missingCell
	}
	return fmt.Sprintf("%.2f", margin)
}

func formatThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
