package employee

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

var employmentStatuses = []string{"active", "probation", "suspended", "terminated", "resigned"}

type Handler struct {
	Store *employee.Store
}

func NewHandler(store *employee.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	crud(r, "/employees", auth.EntityEmployees, routeSet{
		list:   h.listEmployees,
		get:    h.getEmployee,
		create: h.createEmployee,
		update: h.updateEmployee,
		delete: h.deleteEmployee,
	})
	crud(r, "/attendance", auth.EntityAttendance, routeSet{
		list:   h.listAttendance,
		get:    h.getAttendance,
		create: h.createAttendance,
		update: h.updateAttendance,
		delete: h.deleteAttendance,
	})
	crud(r, "/documents", auth.EntityDocuments, routeSet{
		list:   h.listDocuments,
		get:    h.getDocument,
		create: h.createDocument,
		update: h.updateDocument,
		delete: h.deleteDocument,
	})
	crud(r, "/assets", auth.EntityAssets, routeSet{
		list:   h.listAssets,
		get:    h.getAsset,
		create: h.createAsset,
		update: h.updateAsset,
		delete: h.deleteAsset,
	})
	crud(r, "/disciplinary-actions", auth.EntityDisciplinaryActions, routeSet{
		list:   h.listDisciplinaryActions,
		get:    h.getDisciplinaryAction,
		create: h.createDisciplinaryAction,
		update: h.updateDisciplinaryAction,
		delete: h.deleteDisciplinaryAction,
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

type employeeRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	HireDate         string `json:"hireDate,omitempty"`
	EmploymentStatus string `json:"employmentStatus"`
	JobID            *int64 `json:"jobId,omitempty"`
	DepartmentID     *int64 `json:"departmentId,omitempty"`
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 200, 1000)
	employees, err := h.Store.ListEmployees(r.Context(), shared.QueryID(r, "departmentId"), page.Limit, page.Offset)
	if err != nil {
		shared.WriteStoreError(w, err, "employees", requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	emp, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "employee", requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) decodeEmployee(w http.ResponseWriter, r *http.Request, requestID string) (employee.Employee, bool) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return employee.Employee{}, false
	}
	v := shared.NewValidator()
	v.Required("name", req.Name, "name is required")
	v.Enum("employmentStatus", req.EmploymentStatus, employmentStatuses, "must be one of active, probation, suspended, terminated, resigned")
	var hireDate *time.Time
	if req.HireDate != "" {
		if parsed, ok := v.Date("hireDate", req.HireDate); ok {
			hireDate = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return employee.Employee{}, false
	}
	return employee.Employee{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		HireDate:         hireDate,
		EmploymentStatus: req.EmploymentStatus,
		JobID:            req.JobID,
		DepartmentID:     req.DepartmentID,
	}, true
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	emp, ok := h.decodeEmployee(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateEmployee(r.Context(), emp)
	if err != nil {
		shared.WriteStoreError(w, err, "employee", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	emp, ok := h.decodeEmployee(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateEmployee(r.Context(), id, emp); err != nil {
		shared.WriteStoreError(w, err, "employee", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteEmployee(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "employee", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type attendanceRequest struct {
	EmployeeID   int64  `json:"employeeId"`
	Date         string `json:"date"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
	Status       string `json:"status"`
}

func (h *Handler) listAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	records, err := h.Store.ListAttendance(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "attendance records", requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) getAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	record, err := h.Store.GetAttendance(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "attendance record", requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) decodeAttendance(w http.ResponseWriter, r *http.Request, requestID string) (employee.Attendance, bool) {
	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return employee.Attendance{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	date, _ := v.Date("date", req.Date)
	var checkIn, checkOut *time.Time
	if req.CheckInTime != "" {
		if parsed, ok := v.Date("checkInTime", req.CheckInTime); ok {
			checkIn = &parsed
		}
	}
	if req.CheckOutTime != "" {
		if parsed, ok := v.Date("checkOutTime", req.CheckOutTime); ok {
			checkOut = &parsed
		}
	}
	if checkIn != nil && checkOut != nil && checkOut.Before(*checkIn) {
		v.Add("checkOutTime", "must be after checkInTime")
	}
	if v.Reject(w, requestID) {
		return employee.Attendance{}, false
	}
	return employee.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		Status:       req.Status,
	}, true
}

func (h *Handler) createAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	record, ok := h.decodeAttendance(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateAttendance(r.Context(), record)
	if err != nil {
		shared.WriteStoreError(w, err, "attendance record", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	record, ok := h.decodeAttendance(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateAttendance(r.Context(), id, record); err != nil {
		shared.WriteStoreError(w, err, "attendance record", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteAttendance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteAttendance(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "attendance record", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type documentRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Title      string `json:"title"`
	FilePath   string `json:"filePath"`
	UploadDate string `json:"uploadDate"`
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	documents, err := h.Store.ListDocuments(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "documents", requestID)
		return
	}
	api.Success(w, documents, requestID)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	document, err := h.Store.GetDocument(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "document", requestID)
		return
	}
	api.Success(w, document, requestID)
}

func (h *Handler) decodeDocument(w http.ResponseWriter, r *http.Request, requestID string) (employee.Document, bool) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return employee.Document{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.Required("title", req.Title, "title is required")
	uploadDate := time.Now()
	if req.UploadDate != "" {
		if parsed, ok := v.Date("uploadDate", req.UploadDate); ok {
			uploadDate = parsed
		}
	}
	if v.Reject(w, requestID) {
		return employee.Document{}, false
	}
	return employee.Document{
		EmployeeID: req.EmployeeID,
		Title:      req.Title,
		FilePath:   req.FilePath,
		UploadDate: uploadDate,
	}, true
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	document, ok := h.decodeDocument(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateDocument(r.Context(), document)
	if err != nil {
		shared.WriteStoreError(w, err, "document", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	document, ok := h.decodeDocument(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateDocument(r.Context(), id, document); err != nil {
		shared.WriteStoreError(w, err, "document", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteDocument(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "document", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type assetRequest struct {
	AssetName    string `json:"assetName"`
	SerialNumber string `json:"serialNumber"`
	AssignedTo   *int64 `json:"assignedTo,omitempty"`
	AssignedDate string `json:"assignedDate,omitempty"`
	Status       string `json:"status"`
}

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	assets, err := h.Store.ListAssets(r.Context(), shared.QueryID(r, "assignedTo"))
	if err != nil {
		shared.WriteStoreError(w, err, "assets", requestID)
		return
	}
	api.Success(w, assets, requestID)
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	asset, err := h.Store.GetAsset(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "asset", requestID)
		return
	}
	api.Success(w, asset, requestID)
}

func (h *Handler) decodeAsset(w http.ResponseWriter, r *http.Request, requestID string) (employee.Asset, bool) {
	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return employee.Asset{}, false
	}
	v := shared.NewValidator()
	v.Required("assetName", req.AssetName, "assetName is required")
	var assignedDate *time.Time
	if req.AssignedDate != "" {
		if parsed, ok := v.Date("assignedDate", req.AssignedDate); ok {
			assignedDate = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return employee.Asset{}, false
	}
	return employee.Asset{
		AssetName:    req.AssetName,
		SerialNumber: req.SerialNumber,
		AssignedTo:   req.AssignedTo,
		AssignedDate: assignedDate,
		Status:       req.Status,
	}, true
}

func (h *Handler) createAsset(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	asset, ok := h.decodeAsset(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateAsset(r.Context(), asset)
	if err != nil {
		shared.WriteStoreError(w, err, "asset", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateAsset(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	asset, ok := h.decodeAsset(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateAsset(r.Context(), id, asset); err != nil {
		shared.WriteStoreError(w, err, "asset", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteAsset(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteAsset(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "asset", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type disciplinaryActionRequest struct {
	EmployeeID int64  `json:"employeeId"`
	TakenBy    int64  `json:"takenBy"`
	ActionType string `json:"actionType"`
	Reason     string `json:"reason"`
	ActionDate string `json:"actionDate"`
}

func (h *Handler) listDisciplinaryActions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actions, err := h.Store.ListDisciplinaryActions(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "disciplinary actions", requestID)
		return
	}
	api.Success(w, actions, requestID)
}

func (h *Handler) getDisciplinaryAction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	action, err := h.Store.GetDisciplinaryAction(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "disciplinary action", requestID)
		return
	}
	api.Success(w, action, requestID)
}

func (h *Handler) decodeDisciplinaryAction(w http.ResponseWriter, r *http.Request, requestID string) (employee.DisciplinaryAction, bool) {
	var req disciplinaryActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return employee.DisciplinaryAction{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.RequiredID("takenBy", req.TakenBy, "takenBy is required")
	v.Required("actionType", req.ActionType, "actionType is required")
	actionDate, _ := v.Date("actionDate", req.ActionDate)
	if v.Reject(w, requestID) {
		return employee.DisciplinaryAction{}, false
	}
	return employee.DisciplinaryAction{
		EmployeeID: req.EmployeeID,
		TakenBy:    req.TakenBy,
		ActionType: req.ActionType,
		Reason:     req.Reason,
		ActionDate: actionDate,
	}, true
}

func (h *Handler) createDisciplinaryAction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	action, ok := h.decodeDisciplinaryAction(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateDisciplinaryAction(r.Context(), action)
	if err != nil {
		shared.WriteStoreError(w, err, "disciplinary action", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateDisciplinaryAction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	action, ok := h.decodeDisciplinaryAction(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateDisciplinaryAction(r.Context(), id, action); err != nil {
		shared.WriteStoreError(w, err, "disciplinary action", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteDisciplinaryAction(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteDisciplinaryAction(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "disciplinary action", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
