package terminal

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fin-tools/filing-atlas/pkg/services/quarterly"
)

const banner = `============================================================
Quarterly disclosure comparison
============================================================
Enter a company name, then a period:
  - 4-digit year (e.g. 2024): all four filings of that year
  - 6-digit YYYYMM (e.g. 202406): rolling window ending that quarter
  - blank period defaults to 202412
============================================================`

// runInteractive prompts for company name and period until the user quits.
// Lookup failures re-prompt; they never terminate the loop.
func (cli *CLI) runInteractive(ctx context.Context) error {
	scanner := bufio.NewScanner(cli.input)
	fmt.Fprintln(cli.output, banner)

	for {
		name, ok := cli.prompt(scanner, "\nCompany name (q to quit): ")
		if !ok {
			return scanner.Err()
		}
		if strings.EqualFold(name, "q") {
			fmt.Fprintln(cli.output, "Bye.")
			return nil
		}
		if name == "" {
			fmt.Fprintln(cli.output, "Please enter a company name.")
			continue
		}

		periodInput, ok := cli.prompt(scanner, "Period YYYY or YYYYMM (blank for 202412): ")
		if !ok {
			return scanner.Err()
		}

		period := defaultPeriod
		if periodInput != "" {
			var err error
			period, err = quarterly.ParsePeriod(periodInput)
			if err != nil {
				fmt.Fprintf(cli.output, "Invalid period: %v\n", err)
				continue
			}
		}

		if err := cli.runQuery(ctx, name, period); err != nil {
			if msg, retriable := describeResolveError(err); retriable {
				fmt.Fprintln(cli.output, msg)
				continue
			}
			cli.logger.Error().Err(err).Str("company", name).Msg("query failed")
			fmt.Fprintf(cli.output, "Query failed: %v\n", err)
		}
	}
}

// prompt prints a prompt and reads one trimmed line. ok is false on EOF.
func (cli *CLI) prompt(scanner *bufio.Scanner, text string) (string, bool) {
	fmt.Fprint(cli.output, text)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
