package org

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/org"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *org.Store
}

func NewHandler(store *org.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	crud(r, "/company-profiles", auth.EntityCompanyProfiles, routeSet{
		list:   h.listCompanyProfiles,
		get:    h.getCompanyProfile,
		create: h.createCompanyProfile,
		update: h.updateCompanyProfile,
		delete: h.deleteCompanyProfile,
	})
	crud(r, "/branches", auth.EntityBranches, routeSet{
		list:   h.listBranches,
		get:    h.getBranch,
		create: h.createBranch,
		update: h.updateBranch,
		delete: h.deleteBranch,
	})
	crud(r, "/departments", auth.EntityDepartments, routeSet{
		list:   h.listDepartments,
		get:    h.getDepartment,
		create: h.createDepartment,
		update: h.updateDepartment,
		delete: h.deleteDepartment,
	})
	crud(r, "/jobs", auth.EntityJobs, routeSet{
		list:   h.listJobs,
		get:    h.getJob,
		create: h.createJob,
		update: h.updateJob,
		delete: h.deleteJob,
	})
}

type routeSet struct {
	list, get, create, update, delete http.HandlerFunc
}

func crud(r chi.Router, pattern, entity string, rs routeSet) {
	r.Route(pattern, func(r chi.Router) {
		r.With(middleware.Authorize(entity, auth.ActionView)).Get("/", rs.list)
		r.With(middleware.Authorize(entity, auth.ActionView)).Get("/{id}", rs.get)
		r.With(middleware.Authorize(entity, auth.ActionCreate)).Post("/", rs.create)
		r.With(middleware.Authorize(entity, auth.ActionEdit)).Put("/{id}", rs.update)
		r.With(middleware.Authorize(entity, auth.ActionDelete)).Delete("/{id}", rs.delete)
	})
}

type companyProfileRequest struct {
	NameEn          string `json:"nameEn"`
	TaxNumber       string `json:"taxNumber"`
	InsuranceNumber string `json:"insuranceNumber"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Website         string `json:"website"`
	Address         string `json:"address"`
	IsDeleted       bool   `json:"isDeleted"`
}

func (h *Handler) listCompanyProfiles(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	profiles, err := h.Store.ListCompanyProfiles(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "company profiles", requestID)
		return
	}
	api.Success(w, profiles, requestID)
}

func (h *Handler) getCompanyProfile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	profile, err := h.Store.GetCompanyProfile(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "company profile", requestID)
		return
	}
	api.Success(w, profile, requestID)
}

func (h *Handler) decodeCompanyProfile(w http.ResponseWriter, r *http.Request, requestID string) (org.CompanyProfile, bool) {
	var req companyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return org.CompanyProfile{}, false
	}
	v := shared.NewValidator()
	v.Required("nameEn", req.NameEn, "nameEn is required")
	if v.Reject(w, requestID) {
		return org.CompanyProfile{}, false
	}
	return org.CompanyProfile{
		NameEn:          req.NameEn,
		TaxNumber:       req.TaxNumber,
		InsuranceNumber: req.InsuranceNumber,
		Phone:           req.Phone,
		Email:           req.Email,
		Website:         req.Website,
		Address:         req.Address,
		IsDeleted:       req.IsDeleted,
	}, true
}

func (h *Handler) createCompanyProfile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	profile, ok := h.decodeCompanyProfile(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateCompanyProfile(r.Context(), profile)
	if err != nil {
		shared.WriteStoreError(w, err, "company profile", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	profile, ok := h.decodeCompanyProfile(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateCompanyProfile(r.Context(), id, profile); err != nil {
		shared.WriteStoreError(w, err, "company profile", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteCompanyProfile(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteCompanyProfile(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "company profile", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type branchRequest struct {
	Code      string `json:"code"`
	NameEn    string `json:"nameEn"`
	CompanyID int64  `json:"companyId"`
	IsDeleted bool   `json:"isDeleted"`
}

func (h *Handler) listBranches(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	branches, err := h.Store.ListBranches(r.Context(), shared.QueryID(r, "companyId"))
	if err != nil {
		shared.WriteStoreError(w, err, "branches", requestID)
		return
	}
	api.Success(w, branches, requestID)
}

func (h *Handler) getBranch(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	branch, err := h.Store.GetBranch(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "branch", requestID)
		return
	}
	api.Success(w, branch, requestID)
}

func (h *Handler) decodeBranch(w http.ResponseWriter, r *http.Request, requestID string) (org.Branch, bool) {
	var req branchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return org.Branch{}, false
	}
	v := shared.NewValidator()
	v.Required("code", req.Code, "code is required")
	v.Required("nameEn", req.NameEn, "nameEn is required")
	v.RequiredID("companyId", req.CompanyID, "companyId is required")
	if v.Reject(w, requestID) {
		return org.Branch{}, false
	}
	return org.Branch{
		Code:      req.Code,
		NameEn:    req.NameEn,
		CompanyID: req.CompanyID,
		IsDeleted: req.IsDeleted,
	}, true
}

func (h *Handler) createBranch(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	branch, ok := h.decodeBranch(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateBranch(r.Context(), branch)
	if err != nil {
		shared.WriteStoreError(w, err, "branch", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateBranch(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	branch, ok := h.decodeBranch(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateBranch(r.Context(), id, branch); err != nil {
		shared.WriteStoreError(w, err, "branch", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteBranch(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteBranch(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "branch", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type departmentRequest struct {
	NameEn      string `json:"nameEn"`
	NameAr      string `json:"nameAr"`
	Location    string `json:"location"`
	Description string `json:"description"`
	BranchID    int64  `json:"branchId"`
	ManagerID   *int64 `json:"managerId,omitempty"`
	IsDeleted   bool   `json:"isDeleted"`
}

func (h *Handler) listDepartments(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	departments, err := h.Store.ListDepartments(r.Context(), shared.QueryID(r, "branchId"))
	if err != nil {
		shared.WriteStoreError(w, err, "departments", requestID)
		return
	}
	api.Success(w, departments, requestID)
}

func (h *Handler) getDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	department, err := h.Store.GetDepartment(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "department", requestID)
		return
	}
	api.Success(w, department, requestID)
}

func (h *Handler) decodeDepartment(w http.ResponseWriter, r *http.Request, requestID string) (org.Department, bool) {
	var req departmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return org.Department{}, false
	}
	v := shared.NewValidator()
	v.Required("nameEn", req.NameEn, "nameEn is required")
	v.RequiredID("branchId", req.BranchID, "branchId is required")
	if v.Reject(w, requestID) {
		return org.Department{}, false
	}
	return org.Department{
		NameEn:      req.NameEn,
		NameAr:      req.NameAr,
		Location:    req.Location,
		Description: req.Description,
		BranchID:    req.BranchID,
		ManagerID:   req.ManagerID,
		IsDeleted:   req.IsDeleted,
	}, true
}

func (h *Handler) createDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	department, ok := h.decodeDepartment(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateDepartment(r.Context(), department)
	if err != nil {
		shared.WriteStoreError(w, err, "department", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	department, ok := h.decodeDepartment(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateDepartment(r.Context(), id, department); err != nil {
		shared.WriteStoreError(w, err, "department", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteDepartment(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "department", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type jobRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	PostedDate   string `json:"postedDate,omitempty"`
	Status       string `json:"status"`
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	jobs, err := h.Store.ListJobs(r.Context(), shared.QueryID(r, "departmentId"))
	if err != nil {
		shared.WriteStoreError(w, err, "jobs", requestID)
		return
	}
	api.Success(w, jobs, requestID)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	job, err := h.Store.GetJob(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "job", requestID)
		return
	}
	api.Success(w, job, requestID)
}

func (h *Handler) decodeJob(w http.ResponseWriter, r *http.Request, requestID string) (org.Job, bool) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return org.Job{}, false
	}
	v := shared.NewValidator()
	v.Required("title", req.Title, "title is required")
	var posted *time.Time
	if req.PostedDate != "" {
		if parsed, ok := v.Date("postedDate", req.PostedDate); ok {
			posted = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return org.Job{}, false
	}
	return org.Job{
		Title:        req.Title,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
		PostedDate:   posted,
		Status:       req.Status,
	}, true
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	job, ok := h.decodeJob(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateJob(r.Context(), job)
	if err != nil {
		shared.WriteStoreError(w, err, "job", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	job, ok := h.decodeJob(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateJob(r.Context(), id, job); err != nil {
		shared.WriteStoreError(w, err, "job", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteJob(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "job", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
