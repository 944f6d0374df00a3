package leave

import "time"

type LeaveType struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	IsPaid              bool      `json:"isPaid"`
	RequiresMedicalNote bool      `json:"requiresMedicalNote"`
	DeductFromBalance   bool      `json:"deductFromBalance"`
	MaxDaysPerYear      int       `json:"maxDaysPerYear"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// LeaveBalance is unique per (employee, leave type, year). AllocatedDays is
// not capped by the leave type's MaxDaysPerYear; over-allocations are an HR
// decision, not a data error.
type LeaveBalance struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employeeId"`
	LeaveTypeID   int64     `json:"leaveTypeId"`
	Year          int       `json:"year"`
	AllocatedDays float64   `json:"allocatedDays"`
	UsedDays      float64   `json:"usedDays"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type LeaveRequest struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employeeId"`
	LeaveTypeID int64     `json:"leaveTypeId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PermissionType struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	MonthlyLimitInHours float64   `json:"monthlyLimitInHours"`
	IsDeductible        bool      `json:"isDeductible"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Permission is a short excused absence within a working day, distinct from
// a leave request which spans whole days.
type Permission struct {
	ID               int64     `json:"id"`
	EmployeeID       int64     `json:"employeeId"`
	PermissionTypeID int64     `json:"permissionTypeId"`
	Date             time.Time `json:"date"`
	Hours            float64   `json:"hours"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
