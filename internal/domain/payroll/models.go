package payroll

import "time"

// Salary.NetSalary is always derived on the server from the other three
// amounts; a value sent by a client is ignored.
type Salary struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	BaseSalary float64   `json:"baseSalary"`
	Bonus      float64   `json:"bonus"`
	Deductions float64   `json:"deductions"`
	NetSalary  float64   `json:"netSalary"`
	PayDate    time.Time `json:"payDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BenefitType struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Benefit struct {
	ID            int64      `json:"id"`
	EmployeeID    int64      `json:"employeeId"`
	BenefitTypeID int64      `json:"benefitTypeId"`
	Amount        float64    `json:"amount"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
