// Package terminal is the interactive command-line front end.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
	"github.com/fin-tools/filing-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/filing-atlas/pkg/services/company"
	"github.com/fin-tools/filing-atlas/pkg/services/quarterly"
)

// version is set at build time via -ldflags.
var version = "dev"

// defaultPeriod is used when the period prompt is left blank: the rolling
// window ending Q4 2024.
var defaultPeriod = quarterly.Period{Year: 2024, Month: 12}

// Resolver maps a company name to its identifier.
type Resolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// Collector gathers normalized per-quarter records.
type Collector interface {
	Collect(ctx context.Context, corpCode string, window []domain.YearQuarter) ([]domain.FinancialRecord, error)
	CollectYear(ctx context.Context, corpCode string, year int) ([]domain.FinancialRecord, error)
}

// Exporter writes collected records to a spreadsheet file.
type Exporter interface {
	Export(records []domain.FinancialRecord, corpCode, period string) (string, error)
}

// Options configure the CLI.
type Options struct {
	Resolver  Resolver
	Collector Collector
	Exporter  Exporter
	Input     io.Reader
	Output    io.Writer
	Logger    zerolog.Logger
}

// CLI represents the command-line interface.
type CLI struct {
	resolver  Resolver
	collector Collector
	exporter  Exporter
	reporter  *export.Reporter
	input     io.Reader
	output    io.Writer
	logger    zerolog.Logger
	rootCmd   *cobra.Command
}

// NewCLI creates a new CLI instance.
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	cli := &CLI{
		resolver:  opts.Resolver,
		collector: opts.Collector,
		exporter:  opts.Exporter,
		reporter:  export.NewReporter(opts.Output),
		input:     opts.Input,
		output:    opts.Output,
		logger:    opts.Logger,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filing-atlas",
		Short: "Quarterly financial disclosure comparison tool",
		Long: "Reconciles cumulative quarterly disclosures into discrete per-quarter figures\n" +
			"and renders a comparison table with operating margins.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.runInteractive(cmd.Context())
		},
	}

	cmd.AddCommand(cli.newQueryCmd())
	cmd.AddCommand(cli.newVersionCmd())
	return cmd
}

func (cli *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool version",
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(cli.output, "filing-atlas %s\n", version)
		},
	}
}

func (cli *CLI) newQueryCmd() *cobra.Command {
	var companyName, periodInput string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a single lookup without the interactive prompt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			period := defaultPeriod
			if periodInput != "" {
				var err error
				period, err = quarterly.ParsePeriod(periodInput)
				if err != nil {
					return err
				}
			}
			return cli.runQuery(cmd.Context(), companyName, period)
		},
	}

	cmd.Flags().StringVar(&companyName, "company", "", "Company name to look up")
	cmd.Flags().StringVar(&periodInput, "period", "", "4-digit year or 6-digit YYYYMM (default 202412)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

// runQuery resolves, collects, renders, and exports one request.
func (cli *CLI) runQuery(ctx context.Context, companyName string, period quarterly.Period) error {
	ctx = cli.logger.WithContext(ctx)

	corpCode, err := cli.resolver.Resolve(ctx, companyName)
	if err != nil {
		return err
	}

	var records []domain.FinancialRecord
	if period.WindowMode() {
		window, err := quarterly.PlanWindow(period.Year, period.Month)
		if err != nil {
			return err
		}
		records, err = cli.collector.Collect(ctx, corpCode, window)
		if err != nil {
			return err
		}
	} else {
		records, err = cli.collector.CollectYear(ctx, corpCode, period.Year)
		if err != nil {
			return err
		}
	}

	if len(records) == 0 {
		fmt.Fprintf(cli.output, "No data available for %s in period %s.\n", companyName, period)
		return nil
	}

	if period.WindowMode() {
		err = cli.reporter.RenderQuarterTable(records)
	} else {
		err = cli.reporter.RenderReportTable(records)
	}
	if err != nil {
		return err
	}

	path, err := cli.exporter.Export(records, corpCode, period.String())
	if err != nil {
		cli.logger.Warn().Err(err).Msg("spreadsheet export failed")
		fmt.Fprintf(cli.output, "Spreadsheet export failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(cli.output, "Saved spreadsheet: %s\n", path)
	return nil
}

// describeResolveError turns resolution failures into prompt-friendly text.
// The second return value is false for errors that are not user-retriable.
func describeResolveError(err error) (string, bool) {
	var ambiguous *company.AmbiguousError
	switch {
	case errors.Is(err, company.ErrNotFound):
		return "Company not found. Try a different name.", true
	case errors.As(err, &ambiguous):
		msg := "Multiple companies match, be more specific:"
		for _, c := range ambiguous.Candidates {
			msg += "\n  - " + c
		}
		return msg, true
	}
	return "", false
}
