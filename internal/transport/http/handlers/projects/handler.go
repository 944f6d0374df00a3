package projects

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/projects"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *projects.Store
}

func NewHandler(store *projects.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	crud(r, "/projects", auth.EntityProjects, routeSet{
		list:   h.listProjects,
		get:    h.getProject,
		create: h.createProject,
		update: h.updateProject,
		delete: h.deleteProject,
	})
	crud(r, "/project-assignments", auth.EntityProjectAssignments, routeSet{
		list:   h.listAssignments,
		get:    h.getAssignment,
		create: h.createAssignment,
		update: h.updateAssignment,
		delete: h.deleteAssignment,
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

type projectRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	ManagerID *int64 `json:"managerId,omitempty"`
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	list, err := h.Store.ListProjects(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "projects", requestID)
		return
	}
	api.Success(w, list, requestID)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	project, err := h.Store.GetProject(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "project", requestID)
		return
	}
	api.Success(w, project, requestID)
}

func (h *Handler) decodeProject(w http.ResponseWriter, r *http.Request, requestID string) (projects.Project, bool) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return projects.Project{}, false
	}
	v := shared.NewValidator()
	v.Required("name", req.Name, "name is required")
	var start, end *time.Time
	if req.StartDate != "" {
		if parsed, ok := v.Date("startDate", req.StartDate); ok {
			start = &parsed
		}
	}
	if req.EndDate != "" {
		if parsed, ok := v.Date("endDate", req.EndDate); ok {
			end = &parsed
		}
	}
	if start != nil && end != nil {
		v.DateOrder("startDate", *start, "endDate", *end)
	}
	if v.Reject(w, requestID) {
		return projects.Project{}, false
	}
	return projects.Project{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		ManagerID: req.ManagerID,
	}, true
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	project, ok := h.decodeProject(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateProject(r.Context(), project)
	if err != nil {
		shared.WriteStoreError(w, err, "project", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	project, ok := h.decodeProject(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateProject(r.Context(), id, project); err != nil {
		shared.WriteStoreError(w, err, "project", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteProject(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "project", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type assignmentRequest struct {
	ProjectID     int64   `json:"projectId"`
	EmployeeID    int64   `json:"employeeId"`
	RoleInProject string  `json:"roleInProject"`
	HoursWorked   float64 `json:"hoursWorked"`
	Status        string  `json:"status"`
}

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	assignments, err := h.Store.ListAssignments(r.Context(), shared.QueryID(r, "projectId"), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "project assignments", requestID)
		return
	}
	api.Success(w, assignments, requestID)
}

func (h *Handler) getAssignment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	assignment, err := h.Store.GetAssignment(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "project assignment", requestID)
		return
	}
	api.Success(w, assignment, requestID)
}

func (h *Handler) decodeAssignment(w http.ResponseWriter, r *http.Request, requestID string) (projects.Assignment, bool) {
	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return projects.Assignment{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("projectId", req.ProjectID, "projectId is required")
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	if req.HoursWorked < 0 {
		v.Add("hoursWorked", "must not be negative")
	}
	if v.Reject(w, requestID) {
		return projects.Assignment{}, false
	}
	return projects.Assignment{
		ProjectID:     req.ProjectID,
		EmployeeID:    req.EmployeeID,
		RoleInProject: req.RoleInProject,
		HoursWorked:   req.HoursWorked,
		Status:        req.Status,
	}, true
}

func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	assignment, ok := h.decodeAssignment(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateAssignment(r.Context(), assignment)
	if err != nil {
		shared.WriteStoreError(w, err, "project assignment", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateAssignment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	assignment, ok := h.decodeAssignment(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateAssignment(r.Context(), id, assignment); err != nil {
		shared.WriteStoreError(w, err, "project assignment", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteAssignment(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "project assignment", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
