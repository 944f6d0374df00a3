package recruitment

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/recruitment"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *recruitment.Store
}

func NewHandler(store *recruitment.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	crud(r, "/cv-bank", auth.EntityCVBank, routeSet{
		list:   h.listCVs,
		get:    h.getCV,
		create: h.createCV,
		update: h.updateCV,
		delete: h.deleteCV,
	})
	crud(r, "/job-applications", auth.EntityJobApplications, routeSet{
		list:   h.listJobApplications,
		get:    h.getJobApplication,
		create: h.createJobApplication,
		update: h.updateJobApplication,
		delete: h.deleteJobApplication,
	})
	crud(r, "/candidates", auth.EntityCandidates, routeSet{
		list:   h.listCandidates,
		get:    h.getCandidate,
		create: h.createCandidate,
		update: h.updateCandidate,
		delete: h.deleteCandidate,
	})
	crud(r, "/interviews", auth.EntityInterviews, routeSet{
		list:   h.listInterviews,
		get:    h.getInterview,
		create: h.createInterview,
		update: h.updateInterview,
		delete: h.deleteInterview,
	})
	crud(r, "/hr-need-requests", auth.EntityHRNeedRequests, routeSet{
		list:   h.listHRNeedRequests,
		get:    h.getHRNeedRequest,
		create: h.createHRNeedRequest,
		update: h.updateHRNeedRequest,
		delete: h.deleteHRNeedRequest,
	})
	crud(r, "/recruitment-portals", auth.EntityRecruitmentPortals, routeSet{
		list:   h.listPortals,
		get:    h.getPortal,
		create: h.createPortal,
		update: h.updatePortal,
		delete: h.deletePortal,
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

type cvRequest struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FilePath  string `json:"filePath"`
	AddedDate string `json:"addedDate,omitempty"`
	Notes     string `json:"notes"`
}

func (h *Handler) listCVs(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 200, 1000)
	cvs, err := h.Store.ListCVs(r.Context(), page.Limit, page.Offset)
	if err != nil {
		shared.WriteStoreError(w, err, "cv bank", requestID)
		return
	}
	api.Success(w, cvs, requestID)
}

func (h *Handler) getCV(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	cv, err := h.Store.GetCV(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "cv entry", requestID)
		return
	}
	api.Success(w, cv, requestID)
}

func (h *Handler) decodeCV(w http.ResponseWriter, r *http.Request, requestID string) (recruitment.CVEntry, bool) {
	var req cvRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return recruitment.CVEntry{}, false
	}
	v := shared.NewValidator()
	v.Required("fullName", req.FullName, "fullName is required")
	addedDate := time.Now()
	if req.AddedDate != "" {
		if parsed, ok := v.Date("addedDate", req.AddedDate); ok {
			addedDate = parsed
		}
	}
	if v.Reject(w, requestID) {
		return recruitment.CVEntry{}, false
	}
	return recruitment.CVEntry{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		FilePath:  req.FilePath,
		AddedDate: addedDate,
		Notes:     req.Notes,
	}, true
}

func (h *Handler) createCV(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	cv, ok := h.decodeCV(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateCV(r.Context(), cv)
	if err != nil {
		shared.WriteStoreError(w, err, "cv entry", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateCV(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	cv, ok := h.decodeCV(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateCV(r.Context(), id, cv); err != nil {
		shared.WriteStoreError(w, err, "cv entry", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteCV(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteCV(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "cv entry", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type jobApplicationRequest struct {
	Email       string `json:"email"`
	CVID        *int64 `json:"cvId,omitempty"`
	JobID       *int64 `json:"jobId,omitempty"`
	AppliedDate string `json:"appliedDate,omitempty"`
	Status      string `json:"status"`
}

func (h *Handler) listJobApplications(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	applications, err := h.Store.ListJobApplications(r.Context(), shared.QueryID(r, "jobId"))
	if err != nil {
		shared.WriteStoreError(w, err, "job applications", requestID)
		return
	}
	api.Success(w, applications, requestID)
}

func (h *Handler) getJobApplication(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	application, err := h.Store.GetJobApplication(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "job application", requestID)
		return
	}
	api.Success(w, application, requestID)
}

func (h *Handler) decodeJobApplication(w http.ResponseWriter, r *http.Request, requestID string) (recruitment.JobApplication, bool) {
	var req jobApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return recruitment.JobApplication{}, false
	}
	v := shared.NewValidator()
	v.Required("email", req.Email, "email is required")
	appliedDate := time.Now()
	if req.AppliedDate != "" {
		if parsed, ok := v.Date("appliedDate", req.AppliedDate); ok {
			appliedDate = parsed
		}
	}
	if v.Reject(w, requestID) {
		return recruitment.JobApplication{}, false
	}
	return recruitment.JobApplication{
		Email:       req.Email,
		CVID:        req.CVID,
		JobID:       req.JobID,
		AppliedDate: appliedDate,
		Status:      req.Status,
	}, true
}

func (h *Handler) createJobApplication(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	application, ok := h.decodeJobApplication(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateJobApplication(r.Context(), application)
	if err != nil {
		shared.WriteStoreError(w, err, "job application", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateJobApplication(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	application, ok := h.decodeJobApplication(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateJobApplication(r.Context(), id, application); err != nil {
		shared.WriteStoreError(w, err, "job application", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteJobApplication(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteJobApplication(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "job application", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type candidateRequest struct {
	JobApplicationID int64  `json:"jobApplicationId"`
	Status           string `json:"status"`
}

func (h *Handler) listCandidates(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	candidates, err := h.Store.ListCandidates(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "candidates", requestID)
		return
	}
	api.Success(w, candidates, requestID)
}

func (h *Handler) getCandidate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	candidate, err := h.Store.GetCandidate(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "candidate", requestID)
		return
	}
	api.Success(w, candidate, requestID)
}

func (h *Handler) decodeCandidate(w http.ResponseWriter, r *http.Request, requestID string) (recruitment.Candidate, bool) {
	var req candidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return recruitment.Candidate{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("jobApplicationId", req.JobApplicationID, "jobApplicationId is required")
	if v.Reject(w, requestID) {
		return recruitment.Candidate{}, false
	}
	return recruitment.Candidate{
		JobApplicationID: req.JobApplicationID,
		Status:           req.Status,
	}, true
}

func (h *Handler) createCandidate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	candidate, ok := h.decodeCandidate(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateCandidate(r.Context(), candidate)
	if err != nil {
		shared.WriteStoreError(w, err, "candidate", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateCandidate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	candidate, ok := h.decodeCandidate(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateCandidate(r.Context(), id, candidate); err != nil {
		shared.WriteStoreError(w, err, "candidate", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteCandidate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteCandidate(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "candidate", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type interviewRequest struct {
	CandidateID   int64  `json:"candidateId"`
	InterviewerID *int64 `json:"interviewerId,omitempty"`
	Date          string `json:"date"`
	Result        string `json:"result"`
	Notes         string `json:"notes"`
}

func (h *Handler) listInterviews(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	interviews, err := h.Store.ListInterviews(r.Context(), shared.QueryID(r, "candidateId"))
	if err != nil {
		shared.WriteStoreError(w, err, "interviews", requestID)
		return
	}
	api.Success(w, interviews, requestID)
}

func (h *Handler) getInterview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	interview, err := h.Store.GetInterview(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "interview", requestID)
		return
	}
	api.Success(w, interview, requestID)
}

func (h *Handler) decodeInterview(w http.ResponseWriter, r *http.Request, requestID string) (recruitment.Interview, bool) {
	var req interviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return recruitment.Interview{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("candidateId", req.CandidateID, "candidateId is required")
	date, _ := v.Date("date", req.Date)
	if v.Reject(w, requestID) {
		return recruitment.Interview{}, false
	}
	return recruitment.Interview{
		CandidateID:   req.CandidateID,
		InterviewerID: req.InterviewerID,
		Date:          date,
		Result:        req.Result,
		Notes:         req.Notes,
	}, true
}

func (h *Handler) createInterview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	interview, ok := h.decodeInterview(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateInterview(r.Context(), interview)
	if err != nil {
		shared.WriteStoreError(w, err, "interview", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateInterview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	interview, ok := h.decodeInterview(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateInterview(r.Context(), id, interview); err != nil {
		shared.WriteStoreError(w, err, "interview", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteInterview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteInterview(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "interview", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type hrNeedRequestRequest struct {
	DepartmentID int64  `json:"departmentId"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	Status       string `json:"status"`
}

func (h *Handler) listHRNeedRequests(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	needs, err := h.Store.ListHRNeedRequests(r.Context(), shared.QueryID(r, "departmentId"))
	if err != nil {
		shared.WriteStoreError(w, err, "hr need requests", requestID)
		return
	}
	api.Success(w, needs, requestID)
}

func (h *Handler) getHRNeedRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	need, err := h.Store.GetHRNeedRequest(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "hr need request", requestID)
		return
	}
	api.Success(w, need, requestID)
}

func (h *Handler) decodeHRNeedRequest(w http.ResponseWriter, r *http.Request, requestID string) (recruitment.HRNeedRequest, bool) {
	var req hrNeedRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return recruitment.HRNeedRequest{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("departmentId", req.DepartmentID, "departmentId is required")
	v.Required("title", req.Title, "title is required")
	if req.Quantity <= 0 {
		v.Add("quantity", "must be positive")
	}
	if v.Reject(w, requestID) {
		return recruitment.HRNeedRequest{}, false
	}
	return recruitment.HRNeedRequest{
		DepartmentID: req.DepartmentID,
		Title:        req.Title,
		Quantity:     req.Quantity,
		Status:       req.Status,
	}, true
}

func (h *Handler) createHRNeedRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	need, ok := h.decodeHRNeedRequest(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateHRNeedRequest(r.Context(), need)
	if err != nil {
		shared.WriteStoreError(w, err, "hr need request", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateHRNeedRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	need, ok := h.decodeHRNeedRequest(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateHRNeedRequest(r.Context(), id, need); err != nil {
		shared.WriteStoreError(w, err, "hr need request", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteHRNeedRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteHRNeedRequest(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "hr need request", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type portalRequest struct {
	HRNeedID    int64  `json:"hrNeedId"`
	PublishDate string `json:"publishDate,omitempty"`
	ExpiryDate  string `json:"expiryDate,omitempty"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func (h *Handler) listPortals(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	portals, err := h.Store.ListPortals(r.Context(), shared.QueryID(r, "hrNeedId"))
	if err != nil {
		shared.WriteStoreError(w, err, "recruitment portals", requestID)
		return
	}
	api.Success(w, portals, requestID)
}

func (h *Handler) getPortal(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	portal, err := h.Store.GetPortal(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "recruitment portal", requestID)
		return
	}
	api.Success(w, portal, requestID)
}

func (h *Handler) decodePortal(w http.ResponseWriter, r *http.Request, requestID string) (recruitment.RecruitmentPortal, bool) {
	var req portalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return recruitment.RecruitmentPortal{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("hrNeedId", req.HRNeedID, "hrNeedId is required")
	v.Enum("status", req.Status, []string{"open", "closed"}, "must be open or closed")
	publishDate := time.Now()
	if req.PublishDate != "" {
		if parsed, ok := v.Date("publishDate", req.PublishDate); ok {
			publishDate = parsed
		}
	}
	var expiry *time.Time
	if req.ExpiryDate != "" {
		if parsed, ok := v.Date("expiryDate", req.ExpiryDate); ok {
			expiry = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return recruitment.RecruitmentPortal{}, false
	}
	status := req.Status
	if status == "" {
		status = "open"
	}
	return recruitment.RecruitmentPortal{
		HRNeedID:    req.HRNeedID,
		PublishDate: publishDate,
		ExpiryDate:  expiry,
		Status:      status,
		Notes:       req.Notes,
	}, true
}

func (h *Handler) createPortal(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	portal, ok := h.decodePortal(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreatePortal(r.Context(), portal)
	if err != nil {
		shared.WriteStoreError(w, err, "recruitment portal", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updatePortal(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	portal, ok := h.decodePortal(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdatePortal(r.Context(), id, portal); err != nil {
		shared.WriteStoreError(w, err, "recruitment portal", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deletePortal(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeletePortal(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "recruitment portal", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
