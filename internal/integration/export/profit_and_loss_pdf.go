// Package export renders reports into downloadable documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/transport-ledger/backend/internal/application/usecase/report"
)

// RenderProfitAndLossPDF renders a P&L statement as a single-page A4 PDF.
func RenderProfitAndLossPDF(output *report.GetProfitAndLossOutput) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Profit and Loss Statement")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s (%d months)",
		output.Period.From.Format("2006-01-02"),
		output.Period.To.Format("2006-01-02"),
		output.Period.Months,
	))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Income")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	writeLine(pdf, "Route income", output.Income.RouteIncome.StringFixed(2))
	writeLine(pdf, "Ad-hoc income", output.Income.AdhocIncome.StringFixed(2))
	for _, c := range output.Income.ByCustomer {
		writeLine(pdf, "  "+c.CustomerName, c.Amount.StringFixed(2))
	}
	pdf.SetFont("Helvetica", "B", 11)
	writeLine(pdf, "Total income", output.Income.TotalIncome.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Expenses")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	for _, c := range output.Expenses.ByCategory {
		writeLine(pdf, "  "+c.CategoryName, c.Amount.StringFixed(2))
	}
	writeLine(pdf, "Subcontractor costs", output.Expenses.SubcontractorCosts.StringFixed(2))
	writeLine(pdf, "Employee costs", output.Expenses.EmployeeCosts.StringFixed(2))
	writeLine(pdf, "Vehicle costs", output.Expenses.VehicleCosts.StringFixed(2))
	pdf.SetFont("Helvetica", "B", 11)
	writeLine(pdf, "Total expenses", output.Expenses.TotalExpenses.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	writeLine(pdf, "Net profit", output.NetProfit.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render profit and loss pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *gofpdf.Fpdf, label, amount string) {
	pdf.Cell(120, 7, label)
	pdf.CellFormat(50, 7, amount, "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
