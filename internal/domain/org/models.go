package org

import "time"

type CompanyProfile struct {
	ID              int64     `json:"id"`
	NameEn          string    `json:"nameEn"`
	TaxNumber       string    `json:"taxNumber"`
	InsuranceNumber string    `json:"insuranceNumber"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Website         string    `json:"website"`
	Address         string    `json:"address"`
	IsDeleted       bool      `json:"isDeleted"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Branch struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	NameEn    string    `json:"nameEn"`
	CompanyID int64     `json:"companyId"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Department struct {
	ID          int64     `json:"id"`
	NameEn      string    `json:"nameEn"`
	NameAr      string    `json:"nameAr"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	BranchID    int64     `json:"branchId"`
	ManagerID   *int64    `json:"managerId,omitempty"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Job struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DepartmentID *int64     `json:"departmentId,omitempty"`
	PostedDate   *time.Time `json:"postedDate,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
