package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/aalvaropc/tally/internal/domain"
	"github.com/aalvaropc/tally/internal/ports"
)

const sheetName = "Expenses"

// XLSX writes a single styled worksheet with a total row.
type XLSX struct{}

func NewXLSX() *XLSX { return &XLSX{} }

var _ ports.Exporter = (*XLSX)(nil)

func (XLSX) Format() string { return "xlsx" }

func (XLSX) Export(w io.Writer, expenses []domain.Expense, currency string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return err
	}

	amountFmt := fmt.Sprintf(`"%s"#,##0.00`, currency)
	dataStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{Border: border, CustomNumFmt: &amountFmt})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border:       border,
		CustomNumFmt: &amountFmt,
	})
	if err != nil {
		return err
	}

	widths := map[string]float64{"A": 14, "B": 14, "C": 18, "D": 40}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	headers := []string{"Date", "Amount", "Category", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "D1", headerStyle); err != nil {
		return err
	}

	total := 0.0
	for i, e := range expenses {
		row := i + 2
		values := []any{e.Date, e.Amount, e.Category, e.Description}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), dataStyle); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), amountStyle); err != nil {
			return err
		}
		total += e.Amount
	}

	totalRow := len(expenses) + 2
	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow), total); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalRow), fmt.Sprintf("%d records", len(expenses))); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("D%d", totalRow), totalStyle); err != nil {
		return err
	}

	return f.Write(w)
}
