package payroll

import "math"

// NetSalary computes base + bonus - deductions, rounded to cents so the
// stored value matches what the payslip prints.
func NetSalary(base, bonus, deductions float64) float64 {
	return math.Round((base+bonus-deductions)*100) / 100
}
