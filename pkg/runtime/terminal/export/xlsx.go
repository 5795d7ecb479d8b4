package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/fin-tools/filing-atlas/pkg/models/domain"
)

const recordSheet = "Financials"

// XLSXExporter writes normalized records to a spreadsheet file named by
// identifier and period.
type XLSXExporter struct {
	dir string
}

func NewXLSXExporter(dir string) *XLSXExporter {
	if dir == "" {
		dir = "."
	}
	return &XLSXExporter{dir: dir}
}

// Export writes one row per record and returns the file path.
func (e *XLSXExporter) Export(records []domain.FinancialRecord, corpCode, period string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), recordSheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []interface{}{"Year", "Quarter", "Scope", "Item", "Amount", "Derivation"}
	if err := f.SetSheetRow(recordSheet, "A1", &headers); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		var amount interface{}
		if record.Amount.Present {
			amount = record.Amount.Value
		}
		row := []interface{}{
			record.Year,
			record.Quarter,
			record.Scope.DisplayName(),
			record.Item.DisplayName(),
			amount,
			string(record.Derivation),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(recordSheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write record row %d: %w", i+2, err)
		}
	}

	path := filepath.Join(e.dir, fmt.Sprintf("%s_%s_financials.xlsx", corpCode, period))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return path, nil
}
