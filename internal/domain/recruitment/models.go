package recruitment

import "time"

type CVEntry struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FilePath  string    `json:"filePath"`
	AddedDate time.Time `json:"addedDate"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type JobApplication struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	CVID        *int64    `json:"cvId,omitempty"`
	JobID       *int64    `json:"jobId,omitempty"`
	AppliedDate time.Time `json:"appliedDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Candidate struct {
	ID               int64     `json:"id"`
	JobApplicationID int64     `json:"jobApplicationId"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Interview struct {
	ID            int64     `json:"id"`
	CandidateID   int64     `json:"candidateId"`
	InterviewerID *int64    `json:"interviewerId,omitempty"`
	Date          time.Time `json:"date"`
	Result        string    `json:"result"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type HRNeedRequest struct {
	ID           int64     `json:"id"`
	DepartmentID int64     `json:"departmentId"`
	Title        string    `json:"title"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RecruitmentPortal is a published posting for an approved HR need. The
// background sweeper flips Status to "closed" once ExpiryDate passes.
type RecruitmentPortal struct {
	ID          int64      `json:"id"`
	HRNeedID    int64      `json:"hrNeedId"`
	PublishDate time.Time  `json:"publishDate"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
