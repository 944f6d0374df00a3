package journey

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/journey"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *journey.Store
}

func NewHandler(store *journey.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	crud(r, "/onboardings", auth.EntityOnboardings, routeSet{
		list:   h.listOnboardings,
		get:    h.getOnboarding,
		create: h.createOnboarding,
		update: h.updateOnboarding,
		delete: h.deleteOnboarding,
	})
	crud(r, "/offboardings", auth.EntityOffboardings, routeSet{
		list:   h.listOffboardings,
		get:    h.getOffboarding,
		create: h.createOffboarding,
		update: h.updateOffboarding,
		delete: h.deleteOffboarding,
	})
	crud(r, "/trainings", auth.EntityTrainings, routeSet{
		list:   h.listTrainings,
		get:    h.getTraining,
		create: h.createTraining,
		update: h.updateTraining,
		delete: h.deleteTraining,
	})

	// Enrollments are keyed by the (employee, training) pair, not a surrogate id.
	r.Route("/employee-trainings", func(r chi.Router) {
		entity := auth.EntityEmployeeTrainings
		r.With(middleware.Authorize(entity, auth.ActionView)).Get("/", h.listEmployeeTrainings)
		r.With(middleware.Authorize(entity, auth.ActionView)).Get("/{employeeId}/{trainingId}", h.getEmployeeTraining)
		r.With(middleware.Authorize(entity, auth.ActionCreate)).Post("/", h.createEmployeeTraining)
		r.With(middleware.Authorize(entity, auth.ActionEdit)).Put("/{employeeId}/{trainingId}", h.updateEmployeeTraining)
		r.With(middleware.Authorize(entity, auth.ActionDelete)).Delete("/{employeeId}/{trainingId}", h.deleteEmployeeTraining)
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

type onboardingRequest struct {
	EmployeeID      int64  `json:"employeeId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate,omitempty"`
	AssignedMentor  *int64 `json:"assignedMentor,omitempty"`
	ChecklistStatus string `json:"checklistStatus"`
}

func (h *Handler) listOnboardings(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	onboardings, err := h.Store.ListOnboardings(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "onboardings", requestID)
		return
	}
	api.Success(w, onboardings, requestID)
}

func (h *Handler) getOnboarding(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	onboarding, err := h.Store.GetOnboarding(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "onboarding", requestID)
		return
	}
	api.Success(w, onboarding, requestID)
}

func (h *Handler) decodeOnboarding(w http.ResponseWriter, r *http.Request, requestID string) (journey.Onboarding, bool) {
	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return journey.Onboarding{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	start, _ := v.Date("startDate", req.StartDate)
	var end *time.Time
	if req.EndDate != "" {
		if parsed, ok := v.Date("endDate", req.EndDate); ok {
			end = &parsed
			v.DateOrder("startDate", start, "endDate", parsed)
		}
	}
	if v.Reject(w, requestID) {
		return journey.Onboarding{}, false
	}
	return journey.Onboarding{
		EmployeeID:      req.EmployeeID,
		StartDate:       start,
		EndDate:         end,
		AssignedMentor:  req.AssignedMentor,
		ChecklistStatus: req.ChecklistStatus,
	}, true
}

func (h *Handler) createOnboarding(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	onboarding, ok := h.decodeOnboarding(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateOnboarding(r.Context(), onboarding)
	if err != nil {
		shared.WriteStoreError(w, err, "onboarding", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateOnboarding(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	onboarding, ok := h.decodeOnboarding(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateOnboarding(r.Context(), id, onboarding); err != nil {
		shared.WriteStoreError(w, err, "onboarding", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteOnboarding(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteOnboarding(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "onboarding", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type offboardingRequest struct {
	EmployeeID      int64  `json:"employeeId"`
	ResignationDate string `json:"resignationDate"`
	ExitReason      string `json:"exitReason"`
	ClearanceStatus string `json:"clearanceStatus"`
}

func (h *Handler) listOffboardings(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	offboardings, err := h.Store.ListOffboardings(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "offboardings", requestID)
		return
	}
	api.Success(w, offboardings, requestID)
}

func (h *Handler) getOffboarding(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	offboarding, err := h.Store.GetOffboarding(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "offboarding", requestID)
		return
	}
	api.Success(w, offboarding, requestID)
}

func (h *Handler) decodeOffboarding(w http.ResponseWriter, r *http.Request, requestID string) (journey.Offboarding, bool) {
	var req offboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return journey.Offboarding{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	resignation, _ := v.Date("resignationDate", req.ResignationDate)
	if v.Reject(w, requestID) {
		return journey.Offboarding{}, false
	}
	return journey.Offboarding{
		EmployeeID:      req.EmployeeID,
		ResignationDate: resignation,
		ExitReason:      req.ExitReason,
		ClearanceStatus: req.ClearanceStatus,
	}, true
}

func (h *Handler) createOffboarding(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	offboarding, ok := h.decodeOffboarding(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateOffboarding(r.Context(), offboarding)
	if err != nil {
		shared.WriteStoreError(w, err, "offboarding", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateOffboarding(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	offboarding, ok := h.decodeOffboarding(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateOffboarding(r.Context(), id, offboarding); err != nil {
		shared.WriteStoreError(w, err, "offboarding", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteOffboarding(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteOffboarding(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "offboarding", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type trainingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

func (h *Handler) listTrainings(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	trainings, err := h.Store.ListTrainings(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "trainings", requestID)
		return
	}
	api.Success(w, trainings, requestID)
}

func (h *Handler) getTraining(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	training, err := h.Store.GetTraining(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "training", requestID)
		return
	}
	api.Success(w, training, requestID)
}

func (h *Handler) decodeTraining(w http.ResponseWriter, r *http.Request, requestID string) (journey.Training, bool) {
	var req trainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return journey.Training{}, false
	}
	v := shared.NewValidator()
	v.Required("title", req.Title, "title is required")
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
		return journey.Training{}, false
	}
	return journey.Training{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}, true
}

func (h *Handler) createTraining(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	training, ok := h.decodeTraining(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateTraining(r.Context(), training)
	if err != nil {
		shared.WriteStoreError(w, err, "training", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateTraining(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	training, ok := h.decodeTraining(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateTraining(r.Context(), id, training); err != nil {
		shared.WriteStoreError(w, err, "training", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteTraining(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteTraining(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "training", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type employeeTrainingRequest struct {
	EmployeeID       int64  `json:"employeeId"`
	TrainingID       int64  `json:"trainingId"`
	CompletionStatus string `json:"completionStatus"`
}

func (h *Handler) listEmployeeTrainings(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	enrollments, err := h.Store.ListEmployeeTrainings(r.Context(), shared.QueryID(r, "employeeId"), shared.QueryID(r, "trainingId"))
	if err != nil {
		shared.WriteStoreError(w, err, "employee trainings", requestID)
		return
	}
	api.Success(w, enrollments, requestID)
}

func (h *Handler) getEmployeeTraining(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := shared.URLID(r, "employeeId")
	trainingID := shared.URLID(r, "trainingId")
	if employeeID == 0 || trainingID == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employeeId and trainingId must be positive integers", requestID)
		return
	}
	enrollment, err := h.Store.GetEmployeeTraining(r.Context(), employeeID, trainingID)
	if err != nil {
		shared.WriteStoreError(w, err, "employee training", requestID)
		return
	}
	api.Success(w, enrollment, requestID)
}

func (h *Handler) createEmployeeTraining(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req employeeTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.RequiredID("trainingId", req.TrainingID, "trainingId is required")
	if v.Reject(w, requestID) {
		return
	}

	enrollment := journey.EmployeeTraining{
		EmployeeID:       req.EmployeeID,
		TrainingID:       req.TrainingID,
		CompletionStatus: req.CompletionStatus,
	}
	if err := h.Store.CreateEmployeeTraining(r.Context(), enrollment); err != nil {
		shared.WriteStoreError(w, err, "employee training", requestID)
		return
	}
	api.Created(w, map[string]int64{"employeeId": req.EmployeeID, "trainingId": req.TrainingID}, requestID)
}

func (h *Handler) updateEmployeeTraining(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := shared.URLID(r, "employeeId")
	trainingID := shared.URLID(r, "trainingId")
	if employeeID == 0 || trainingID == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employeeId and trainingId must be positive integers", requestID)
		return
	}

	var req employeeTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return
	}
	enrollment := journey.EmployeeTraining{CompletionStatus: req.CompletionStatus}
	if err := h.Store.UpdateEmployeeTraining(r.Context(), employeeID, trainingID, enrollment); err != nil {
		shared.WriteStoreError(w, err, "employee training", requestID)
		return
	}
	api.Success(w, map[string]int64{"employeeId": employeeID, "trainingId": trainingID}, requestID)
}

func (h *Handler) deleteEmployeeTraining(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := shared.URLID(r, "employeeId")
	trainingID := shared.URLID(r, "trainingId")
	if employeeID == 0 || trainingID == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "employeeId and trainingId must be positive integers", requestID)
		return
	}
	if err := h.Store.DeleteEmployeeTraining(r.Context(), employeeID, trainingID); err != nil {
		shared.WriteStoreError(w, err, "employee training", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
