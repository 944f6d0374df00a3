package engagement

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/engagement"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

var requestStatuses = []string{"pending", "approved", "rejected", "cancelled"}

type Handler struct {
	Store *engagement.Store
}

func NewHandler(store *engagement.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	crud(r, "/self-service-requests", auth.EntitySelfServiceRequests, routeSet{
		list:   h.listSelfServiceRequests,
		get:    h.getSelfServiceRequest,
		create: h.createSelfServiceRequest,
		update: h.updateSelfServiceRequest,
		delete: h.deleteSelfServiceRequest,
	})
	crud(r, "/surveys", auth.EntitySurveys, routeSet{
		list:   h.listSurveys,
		get:    h.getSurvey,
		create: h.createSurvey,
		update: h.updateSurvey,
		delete: h.deleteSurvey,
	})
	crud(r, "/survey-responses", auth.EntitySurveyResponses, routeSet{
		list:   h.listSurveyResponses,
		get:    h.getSurveyResponse,
		create: h.createSurveyResponse,
		update: h.updateSurveyResponse,
		delete: h.deleteSurveyResponse,
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

type selfServiceRequestRequest struct {
	EmployeeID  int64  `json:"employeeId"`
	RequestType string `json:"requestType"`
	Details     string `json:"details"`
	RequestDate string `json:"requestDate,omitempty"`
	Status      string `json:"status"`
	ApprovedBy  *int64 `json:"approvedBy,omitempty"`
	ResolvedAt  string `json:"resolvedAt,omitempty"`
}

func (h *Handler) listSelfServiceRequests(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	requests, err := h.Store.ListSelfServiceRequests(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "self service requests", requestID)
		return
	}
	api.Success(w, requests, requestID)
}

func (h *Handler) getSelfServiceRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	request, err := h.Store.GetSelfServiceRequest(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "self service request", requestID)
		return
	}
	api.Success(w, request, requestID)
}

func (h *Handler) decodeSelfServiceRequest(w http.ResponseWriter, r *http.Request, requestID string) (engagement.SelfServiceRequest, bool) {
	var req selfServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return engagement.SelfServiceRequest{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.Required("requestType", req.RequestType, "requestType is required")
	v.Enum("status", req.Status, requestStatuses, "must be one of pending, approved, rejected, cancelled")
	requestDate := time.Now()
	if req.RequestDate != "" {
		if parsed, ok := v.Date("requestDate", req.RequestDate); ok {
			requestDate = parsed
		}
	}
	var resolvedAt *time.Time
	if req.ResolvedAt != "" {
		if parsed, ok := v.Date("resolvedAt", req.ResolvedAt); ok {
			resolvedAt = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return engagement.SelfServiceRequest{}, false
	}
	status := req.Status
	if status == "" {
		status = "pending"
	}
	return engagement.SelfServiceRequest{
		EmployeeID:  req.EmployeeID,
		RequestType: req.RequestType,
		Details:     req.Details,
		RequestDate: requestDate,
		Status:      status,
		ApprovedBy:  req.ApprovedBy,
		ResolvedAt:  resolvedAt,
	}, true
}

func (h *Handler) createSelfServiceRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	request, ok := h.decodeSelfServiceRequest(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateSelfServiceRequest(r.Context(), request)
	if err != nil {
		shared.WriteStoreError(w, err, "self service request", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateSelfServiceRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	request, ok := h.decodeSelfServiceRequest(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateSelfServiceRequest(r.Context(), id, request); err != nil {
		shared.WriteStoreError(w, err, "self service request", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteSelfServiceRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteSelfServiceRequest(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "self service request", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type surveyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedDate string `json:"createdDate,omitempty"`
}

func (h *Handler) listSurveys(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	surveys, err := h.Store.ListSurveys(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "surveys", requestID)
		return
	}
	api.Success(w, surveys, requestID)
}

func (h *Handler) getSurvey(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	survey, err := h.Store.GetSurvey(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "survey", requestID)
		return
	}
	api.Success(w, survey, requestID)
}

func (h *Handler) decodeSurvey(w http.ResponseWriter, r *http.Request, requestID string) (engagement.Survey, bool) {
	var req surveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return engagement.Survey{}, false
	}
	v := shared.NewValidator()
	v.Required("title", req.Title, "title is required")
	createdDate := time.Now()
	if req.CreatedDate != "" {
		if parsed, ok := v.Date("createdDate", req.CreatedDate); ok {
			createdDate = parsed
		}
	}
	if v.Reject(w, requestID) {
		return engagement.Survey{}, false
	}
	return engagement.Survey{
		Title:       req.Title,
		Description: req.Description,
		CreatedDate: createdDate,
	}, true
}

func (h *Handler) createSurvey(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	survey, ok := h.decodeSurvey(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateSurvey(r.Context(), survey)
	if err != nil {
		shared.WriteStoreError(w, err, "survey", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateSurvey(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	survey, ok := h.decodeSurvey(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateSurvey(r.Context(), id, survey); err != nil {
		shared.WriteStoreError(w, err, "survey", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteSurvey(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteSurvey(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "survey", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type surveyResponseRequest struct {
	SurveyID    int64  `json:"surveyId"`
	EmployeeID  int64  `json:"employeeId"`
	Answers     string `json:"answers"`
	SubmittedAt string `json:"submittedAt,omitempty"`
}

func (h *Handler) listSurveyResponses(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	responses, err := h.Store.ListSurveyResponses(r.Context(), shared.QueryID(r, "surveyId"))
	if err != nil {
		shared.WriteStoreError(w, err, "survey responses", requestID)
		return
	}
	api.Success(w, responses, requestID)
}

func (h *Handler) getSurveyResponse(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	response, err := h.Store.GetSurveyResponse(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "survey response", requestID)
		return
	}
	api.Success(w, response, requestID)
}

func (h *Handler) decodeSurveyResponse(w http.ResponseWriter, r *http.Request, requestID string) (engagement.SurveyResponse, bool) {
	var req surveyResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return engagement.SurveyResponse{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("surveyId", req.SurveyID, "surveyId is required")
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	submittedAt := time.Now()
	if req.SubmittedAt != "" {
		if parsed, ok := v.Date("submittedAt", req.SubmittedAt); ok {
			submittedAt = parsed
		}
	}
	if v.Reject(w, requestID) {
		return engagement.SurveyResponse{}, false
	}
	return engagement.SurveyResponse{
		SurveyID:    req.SurveyID,
		EmployeeID:  req.EmployeeID,
		Answers:     req.Answers,
		SubmittedAt: submittedAt,
	}, true
}

func (h *Handler) createSurveyResponse(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	response, ok := h.decodeSurveyResponse(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateSurveyResponse(r.Context(), response)
	if err != nil {
		shared.WriteStoreError(w, err, "survey response", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateSurveyResponse(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	response, ok := h.decodeSurveyResponse(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateSurveyResponse(r.Context(), id, response); err != nil {
		shared.WriteStoreError(w, err, "survey response", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteSurveyResponse(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteSurveyResponse(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "survey response", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
