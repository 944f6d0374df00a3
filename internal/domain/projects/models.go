package projects

import "time"

type Project struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	ManagerID *int64     `json:"managerId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Assignment struct {
	ID            int64     `json:"id"`
	ProjectID     int64     `json:"projectId"`
	EmployeeID    int64     `json:"employeeId"`
	RoleInProject string    `json:"roleInProject"`
	HoursWorked   float64   `json:"hoursWorked"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
