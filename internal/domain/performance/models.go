package performance

import "time"

type EvaluationCriterion struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Weight      float64   `json:"weight"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Evaluation struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employeeId"`
	CriterionID int64     `json:"criterionId"`
	Date        time.Time `json:"date"`
	Score       float64   `json:"score"`
	Comments    string    `json:"comments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
