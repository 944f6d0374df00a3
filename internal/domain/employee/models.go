package employee

import "time"

type Employee struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	HireDate         *time.Time `json:"hireDate,omitempty"`
	EmploymentStatus string     `json:"employmentStatus"`
	JobID            *int64     `json:"jobId,omitempty"`
	DepartmentID     *int64     `json:"departmentId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type Attendance struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"employeeId"`
	Date         time.Time  `json:"date"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type Document struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Title      string    `json:"title"`
	FilePath   string    `json:"filePath"`
	UploadDate time.Time `json:"uploadDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Asset struct {
	ID           int64      `json:"id"`
	AssetName    string     `json:"assetName"`
	SerialNumber string     `json:"serialNumber"`
	AssignedTo   *int64     `json:"assignedTo,omitempty"`
	AssignedDate *time.Time `json:"assignedDate,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// DisciplinaryAction carries two employee references: the subject of the
// action and the employee who issued it.
type DisciplinaryAction struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	TakenBy    int64     `json:"takenBy"`
	ActionType string    `json:"actionType"`
	Reason     string    `json:"reason"`
	ActionDate time.Time `json:"actionDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
