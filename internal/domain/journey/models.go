package journey

import "time"

type Onboarding struct {
	ID              int64      `json:"id"`
	EmployeeID      int64      `json:"employeeId"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	AssignedMentor  *int64     `json:"assignedMentor,omitempty"`
	ChecklistStatus string     `json:"checklistStatus"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type Offboarding struct {
	ID              int64     `json:"id"`
	EmployeeID      int64     `json:"employeeId"`
	ResignationDate time.Time `json:"resignationDate"`
	ExitReason      string    `json:"exitReason"`
	ClearanceStatus string    `json:"clearanceStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Training struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// EmployeeTraining is the enrollment link; (EmployeeID, TrainingID) is the key.
type EmployeeTraining struct {
	EmployeeID       int64     `json:"employeeId"`
	TrainingID       int64     `json:"trainingId"`
	CompletionStatus string    `json:"completionStatus"`
	EnrolledAt       time.Time `json:"enrolledAt"`
}
