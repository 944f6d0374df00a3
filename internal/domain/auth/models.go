package auth

import "time"

type User struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Role       string     `json:"role"`
	EmployeeID *int64     `json:"employeeId,omitempty"`
	MFAEnabled bool       `json:"mfaEnabled"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

type RefreshToken struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
