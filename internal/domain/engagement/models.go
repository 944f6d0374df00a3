package engagement

import "time"

type SelfServiceRequest struct {
	ID          int64      `json:"id"`
	EmployeeID  int64      `json:"employeeId"`
	RequestType string     `json:"requestType"`
	Details     string     `json:"details"`
	RequestDate time.Time  `json:"requestDate"`
	Status      string     `json:"status"`
	ApprovedBy  *int64     `json:"approvedBy,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Survey struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"createdDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SurveyResponse struct {
	ID          int64     `json:"id"`
	SurveyID    int64     `json:"surveyId"`
	EmployeeID  int64     `json:"employeeId"`
	Answers     string    `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
