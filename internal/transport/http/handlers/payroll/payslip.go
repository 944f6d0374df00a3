package payroll

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jung-kurt/gofpdf"

	"hrms/internal/domain/payroll"
	"hrms/internal/transport/http/api"
)

func writePayslip(w http.ResponseWriter, data *payroll.PayslipData, requestID string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Payslip")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(50, 8, "Employee")
	pdf.Cell(0, 8, data.EmployeeName)
	pdf.Ln(8)
	pdf.Cell(50, 8, "Pay date")
	pdf.Cell(0, 8, data.PayDate.Format("2006-01-02"))
	pdf.Ln(8)
	pdf.Cell(50, 8, "Reference")
	pdf.Cell(0, 8, fmt.Sprintf("SAL-%06d", data.ID))
	pdf.Ln(14)

	line := func(label string, amount float64) {
		pdf.Cell(50, 8, label)
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", amount), "", 0, "R", false, 0, "")
		pdf.Ln(8)
	}
	line("Base salary", data.BaseSalary)
	line("Bonus", data.Bonus)
	line("Deductions", -data.Deductions)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	line("Net salary", data.NetSalary)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%d.pdf", data.ID))
	if err := pdf.Output(w); err != nil {
		slog.Error("render payslip failed", "err", err, "salaryId", data.ID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "payslip rendering failed", requestID)
	}
}
