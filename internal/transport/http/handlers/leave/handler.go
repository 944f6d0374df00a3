package leave

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/leave"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

var requestStatuses = []string{"pending", "approved", "rejected", "cancelled"}

type Handler struct {
	Store *leave.Store
}

func NewHandler(store *leave.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	crud(r, "/leave-types", auth.EntityLeaveTypes, routeSet{
		list:   h.listLeaveTypes,
		get:    h.getLeaveType,
		create: h.createLeaveType,
		update: h.updateLeaveType,
		delete: h.deleteLeaveType,
	})
	crud(r, "/leave-balances", auth.EntityLeaveBalances, routeSet{
		list:   h.listLeaveBalances,
		get:    h.getLeaveBalance,
		create: h.createLeaveBalance,
		update: h.updateLeaveBalance,
		delete: h.deleteLeaveBalance,
	})
	crud(r, "/leave-requests", auth.EntityLeaveRequests, routeSet{
		list:   h.listLeaveRequests,
		get:    h.getLeaveRequest,
		create: h.createLeaveRequest,
		update: h.updateLeaveRequest,
		delete: h.deleteLeaveRequest,
	})
	crud(r, "/permission-types", auth.EntityPermissionTypes, routeSet{
		list:   h.listPermissionTypes,
		get:    h.getPermissionType,
		create: h.createPermissionType,
		update: h.updatePermissionType,
		delete: h.deletePermissionType,
	})
	crud(r, "/permissions", auth.EntityPermissions, routeSet{
		list:   h.listPermissions,
		get:    h.getPermission,
		create: h.createPermission,
		update: h.updatePermission,
		delete: h.deletePermission,
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

type leaveTypeRequest struct {
	Name                string `json:"name"`
	IsPaid              bool   `json:"isPaid"`
	RequiresMedicalNote bool   `json:"requiresMedicalNote"`
	DeductFromBalance   bool   `json:"deductFromBalance"`
	MaxDaysPerYear      int    `json:"maxDaysPerYear"`
	IsActive            bool   `json:"isActive"`
}

func (h *Handler) listLeaveTypes(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	types, err := h.Store.ListLeaveTypes(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "leave types", requestID)
		return
	}
	api.Success(w, types, requestID)
}

func (h *Handler) getLeaveType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	lt, err := h.Store.GetLeaveType(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "leave type", requestID)
		return
	}
	api.Success(w, lt, requestID)
}

func (h *Handler) decodeLeaveType(w http.ResponseWriter, r *http.Request, requestID string) (leave.LeaveType, bool) {
	var req leaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return leave.LeaveType{}, false
	}
	v := shared.NewValidator()
	v.Required("name", req.Name, "name is required")
	if req.MaxDaysPerYear < 0 {
		v.Add("maxDaysPerYear", "must not be negative")
	}
	if v.Reject(w, requestID) {
		return leave.LeaveType{}, false
	}
	return leave.LeaveType{
		Name:                req.Name,
		IsPaid:              req.IsPaid,
		RequiresMedicalNote: req.RequiresMedicalNote,
		DeductFromBalance:   req.DeductFromBalance,
		MaxDaysPerYear:      req.MaxDaysPerYear,
		IsActive:            req.IsActive,
	}, true
}

func (h *Handler) createLeaveType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	lt, ok := h.decodeLeaveType(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateLeaveType(r.Context(), lt)
	if err != nil {
		shared.WriteStoreError(w, err, "leave type", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateLeaveType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	lt, ok := h.decodeLeaveType(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateLeaveType(r.Context(), id, lt); err != nil {
		shared.WriteStoreError(w, err, "leave type", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteLeaveType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteLeaveType(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "leave type", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type leaveBalanceRequest struct {
	EmployeeID    int64   `json:"employeeId"`
	LeaveTypeID   int64   `json:"leaveTypeId"`
	Year          int     `json:"year"`
	AllocatedDays float64 `json:"allocatedDays"`
	UsedDays      float64 `json:"usedDays"`
}

func (h *Handler) listLeaveBalances(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	balances, err := h.Store.ListLeaveBalances(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "leave balances", requestID)
		return
	}
	api.Success(w, balances, requestID)
}

func (h *Handler) getLeaveBalance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	balance, err := h.Store.GetLeaveBalance(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "leave balance", requestID)
		return
	}
	api.Success(w, balance, requestID)
}

func (h *Handler) decodeLeaveBalance(w http.ResponseWriter, r *http.Request, requestID string) (leave.LeaveBalance, bool) {
	var req leaveBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return leave.LeaveBalance{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.RequiredID("leaveTypeId", req.LeaveTypeID, "leaveTypeId is required")
	if req.Year < 2000 || req.Year > 2200 {
		v.Add("year", "must be a plausible calendar year")
	}
	if req.AllocatedDays < 0 {
		v.Add("allocatedDays", "must not be negative")
	}
	if req.UsedDays < 0 {
		v.Add("usedDays", "must not be negative")
	}
	if v.Reject(w, requestID) {
		return leave.LeaveBalance{}, false
	}
	return leave.LeaveBalance{
		EmployeeID:    req.EmployeeID,
		LeaveTypeID:   req.LeaveTypeID,
		Year:          req.Year,
		AllocatedDays: req.AllocatedDays,
		UsedDays:      req.UsedDays,
	}, true
}

func (h *Handler) createLeaveBalance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	balance, ok := h.decodeLeaveBalance(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateLeaveBalance(r.Context(), balance)
	if err != nil {
		shared.WriteStoreError(w, err, "leave balance", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateLeaveBalance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	balance, ok := h.decodeLeaveBalance(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateLeaveBalance(r.Context(), id, balance); err != nil {
		shared.WriteStoreError(w, err, "leave balance", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteLeaveBalance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteLeaveBalance(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "leave balance", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type leaveRequestRequest struct {
	EmployeeID  int64  `json:"employeeId"`
	LeaveTypeID int64  `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
}

func (h *Handler) listLeaveRequests(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	requests, err := h.Store.ListLeaveRequests(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "leave requests", requestID)
		return
	}
	api.Success(w, requests, requestID)
}

func (h *Handler) getLeaveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	lr, err := h.Store.GetLeaveRequest(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "leave request", requestID)
		return
	}
	api.Success(w, lr, requestID)
}

func (h *Handler) decodeLeaveRequest(w http.ResponseWriter, r *http.Request, requestID string) (leave.LeaveRequest, bool) {
	var req leaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return leave.LeaveRequest{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.RequiredID("leaveTypeId", req.LeaveTypeID, "leaveTypeId is required")
	start, _ := v.Date("startDate", req.StartDate)
	end, _ := v.Date("endDate", req.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	v.Enum("status", req.Status, requestStatuses, "must be one of pending, approved, rejected, cancelled")
	if v.Reject(w, requestID) {
		return leave.LeaveRequest{}, false
	}
	status := req.Status
	if status == "" {
		status = "pending"
	}
	return leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      status,
	}, true
}

func (h *Handler) createLeaveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	lr, ok := h.decodeLeaveRequest(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateLeaveRequest(r.Context(), lr)
	if err != nil {
		shared.WriteStoreError(w, err, "leave request", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	lr, ok := h.decodeLeaveRequest(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateLeaveRequest(r.Context(), id, lr); err != nil {
		shared.WriteStoreError(w, err, "leave request", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteLeaveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteLeaveRequest(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "leave request", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type permissionTypeRequest struct {
	Name                string  `json:"name"`
	MonthlyLimitInHours float64 `json:"monthlyLimitInHours"`
	IsDeductible        bool    `json:"isDeductible"`
}

func (h *Handler) listPermissionTypes(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	types, err := h.Store.ListPermissionTypes(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "permission types", requestID)
		return
	}
	api.Success(w, types, requestID)
}

func (h *Handler) getPermissionType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	pt, err := h.Store.GetPermissionType(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "permission type", requestID)
		return
	}
	api.Success(w, pt, requestID)
}

func (h *Handler) decodePermissionType(w http.ResponseWriter, r *http.Request, requestID string) (leave.PermissionType, bool) {
	var req permissionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return leave.PermissionType{}, false
	}
	v := shared.NewValidator()
	v.Required("name", req.Name, "name is required")
	if req.MonthlyLimitInHours < 0 {
		v.Add("monthlyLimitInHours", "must not be negative")
	}
	if v.Reject(w, requestID) {
		return leave.PermissionType{}, false
	}
	return leave.PermissionType{
		Name:                req.Name,
		MonthlyLimitInHours: req.MonthlyLimitInHours,
		IsDeductible:        req.IsDeductible,
	}, true
}

func (h *Handler) createPermissionType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	pt, ok := h.decodePermissionType(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreatePermissionType(r.Context(), pt)
	if err != nil {
		shared.WriteStoreError(w, err, "permission type", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updatePermissionType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	pt, ok := h.decodePermissionType(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdatePermissionType(r.Context(), id, pt); err != nil {
		shared.WriteStoreError(w, err, "permission type", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deletePermissionType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeletePermissionType(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "permission type", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type permissionRequest struct {
	EmployeeID       int64   `json:"employeeId"`
	PermissionTypeID int64   `json:"permissionTypeId"`
	Date             string  `json:"date"`
	Hours            float64 `json:"hours"`
	Status           string  `json:"status"`
}

func (h *Handler) listPermissions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	permissions, err := h.Store.ListPermissions(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "permissions", requestID)
		return
	}
	api.Success(w, permissions, requestID)
}

func (h *Handler) getPermission(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	p, err := h.Store.GetPermission(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "permission", requestID)
		return
	}
	api.Success(w, p, requestID)
}

func (h *Handler) decodePermission(w http.ResponseWriter, r *http.Request, requestID string) (leave.Permission, bool) {
	var req permissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return leave.Permission{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.RequiredID("permissionTypeId", req.PermissionTypeID, "permissionTypeId is required")
	date, _ := v.Date("date", req.Date)
	if req.Hours <= 0 || req.Hours > 24 {
		v.Add("hours", "must be between 0 and 24")
	}
	v.Enum("status", req.Status, requestStatuses, "must be one of pending, approved, rejected, cancelled")
	if v.Reject(w, requestID) {
		return leave.Permission{}, false
	}
	status := req.Status
	if status == "" {
		status = "pending"
	}
	return leave.Permission{
		EmployeeID:       req.EmployeeID,
		PermissionTypeID: req.PermissionTypeID,
		Date:             date,
		Hours:            req.Hours,
		Status:           status,
	}, true
}

func (h *Handler) createPermission(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, ok := h.decodePermission(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreatePermission(r.Context(), p)
	if err != nil {
		shared.WriteStoreError(w, err, "permission", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updatePermission(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	p, ok := h.decodePermission(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdatePermission(r.Context(), id, p); err != nil {
		shared.WriteStoreError(w, err, "permission", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deletePermission(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeletePermission(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "permission", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
