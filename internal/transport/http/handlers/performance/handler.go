package performance

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/performance"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *performance.Store
}

func NewHandler(store *performance.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	crud(r, "/evaluation-criteria", auth.EntityEvaluationCriteria, routeSet{
		list:   h.listCriteria,
		get:    h.getCriterion,
		create: h.createCriterion,
		update: h.updateCriterion,
		delete: h.deleteCriterion,
	})
	crud(r, "/performance-evaluations", auth.EntityPerformanceEvaluations, routeSet{
		list:   h.listEvaluations,
		get:    h.getEvaluation,
		create: h.createEvaluation,
		update: h.updateEvaluation,
		delete: h.deleteEvaluation,
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

type criterionRequest struct {
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

func (h *Handler) listCriteria(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	criteria, err := h.Store.ListCriteria(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "evaluation criteria", requestID)
		return
	}
	api.Success(w, criteria, requestID)
}

func (h *Handler) getCriterion(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	criterion, err := h.Store.GetCriterion(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "evaluation criterion", requestID)
		return
	}
	api.Success(w, criterion, requestID)
}

func (h *Handler) decodeCriterion(w http.ResponseWriter, r *http.Request, requestID string) (performance.EvaluationCriterion, bool) {
	var req criterionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return performance.EvaluationCriterion{}, false
	}
	v := shared.NewValidator()
	v.Required("description", req.Description, "description is required")
	if req.Weight <= 0 {
		v.Add("weight", "must be positive")
	}
	if v.Reject(w, requestID) {
		return performance.EvaluationCriterion{}, false
	}
	return performance.EvaluationCriterion{
		Description: req.Description,
		Weight:      req.Weight,
	}, true
}

func (h *Handler) createCriterion(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	criterion, ok := h.decodeCriterion(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateCriterion(r.Context(), criterion)
	if err != nil {
		shared.WriteStoreError(w, err, "evaluation criterion", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateCriterion(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	criterion, ok := h.decodeCriterion(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateCriterion(r.Context(), id, criterion); err != nil {
		shared.WriteStoreError(w, err, "evaluation criterion", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteCriterion(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteCriterion(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "evaluation criterion", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type evaluationRequest struct {
	EmployeeID  int64   `json:"employeeId"`
	CriterionID int64   `json:"criterionId"`
	Date        string  `json:"date"`
	Score       float64 `json:"score"`
	Comments    string  `json:"comments"`
}

func (h *Handler) listEvaluations(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	evaluations, err := h.Store.ListEvaluations(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "performance evaluations", requestID)
		return
	}
	api.Success(w, evaluations, requestID)
}

func (h *Handler) getEvaluation(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	evaluation, err := h.Store.GetEvaluation(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "performance evaluation", requestID)
		return
	}
	api.Success(w, evaluation, requestID)
}

func (h *Handler) decodeEvaluation(w http.ResponseWriter, r *http.Request, requestID string) (performance.Evaluation, bool) {
	var req evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return performance.Evaluation{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.RequiredID("criterionId", req.CriterionID, "criterionId is required")
	date, _ := v.Date("date", req.Date)
	if req.Score < 0 || req.Score > 100 {
		v.Add("score", "must be between 0 and 100")
	}
	if v.Reject(w, requestID) {
		return performance.Evaluation{}, false
	}
	return performance.Evaluation{
		EmployeeID:  req.EmployeeID,
		CriterionID: req.CriterionID,
		Date:        date,
		Score:       req.Score,
		Comments:    req.Comments,
	}, true
}

func (h *Handler) createEvaluation(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	evaluation, ok := h.decodeEvaluation(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateEvaluation(r.Context(), evaluation)
	if err != nil {
		shared.WriteStoreError(w, err, "performance evaluation", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateEvaluation(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	evaluation, ok := h.decodeEvaluation(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateEvaluation(r.Context(), id, evaluation); err != nil {
		shared.WriteStoreError(w, err, "performance evaluation", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteEvaluation(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteEvaluation(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "performance evaluation", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
