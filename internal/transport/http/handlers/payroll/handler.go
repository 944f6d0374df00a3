package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/payroll"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *payroll.Store
}

func NewHandler(store *payroll.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.With(middleware.Authorize(auth.EntitySalaries, auth.ActionView)).Get("/", h.listSalaries)
		r.With(middleware.Authorize(auth.EntitySalaries, auth.ActionView)).Get("/{id}", h.getSalary)
		r.With(middleware.Authorize(auth.EntitySalaries, auth.ActionView)).Get("/{id}/payslip.pdf", h.payslipPDF)
		r.With(middleware.Authorize(auth.EntitySalaries, auth.ActionCreate)).Post("/", h.createSalary)
		r.With(middleware.Authorize(auth.EntitySalaries, auth.ActionEdit)).Put("/{id}", h.updateSalary)
		r.With(middleware.Authorize(auth.EntitySalaries, auth.ActionDelete)).Delete("/{id}", h.deleteSalary)
	})
	crud(r, "/benefit-types", auth.EntityBenefitTypes, routeSet{
		list:   h.listBenefitTypes,
		get:    h.getBenefitType,
		create: h.createBenefitType,
		update: h.updateBenefitType,
		delete: h.deleteBenefitType,
	})
	crud(r, "/benefits", auth.EntityBenefits, routeSet{
		list:   h.listBenefits,
		get:    h.getBenefit,
		create: h.createBenefit,
		update: h.updateBenefit,
		delete: h.deleteBenefit,
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

// salaryRequest deliberately has no netSalary field: the stored amount is
// always derived server side from the other three.
type salaryRequest struct {
	EmployeeID int64   `json:"employeeId"`
	BaseSalary float64 `json:"baseSalary"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	PayDate    string  `json:"payDate"`
}

func (h *Handler) listSalaries(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	salaries, err := h.Store.ListSalaries(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "salaries", requestID)
		return
	}
	api.Success(w, salaries, requestID)
}

func (h *Handler) getSalary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	salary, err := h.Store.GetSalary(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "salary", requestID)
		return
	}
	api.Success(w, salary, requestID)
}

func (h *Handler) decodeSalary(w http.ResponseWriter, r *http.Request, requestID string) (payroll.Salary, bool) {
	var req salaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return payroll.Salary{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	if req.BaseSalary < 0 {
		v.Add("baseSalary", "must not be negative")
	}
	if req.Bonus < 0 {
		v.Add("bonus", "must not be negative")
	}
	if req.Deductions < 0 {
		v.Add("deductions", "must not be negative")
	}
	payDate := time.Now()
	if req.PayDate != "" {
		if parsed, ok := v.Date("payDate", req.PayDate); ok {
			payDate = parsed
		}
	}
	if v.Reject(w, requestID) {
		return payroll.Salary{}, false
	}
	return payroll.Salary{
		EmployeeID: req.EmployeeID,
		BaseSalary: req.BaseSalary,
		Bonus:      req.Bonus,
		Deductions: req.Deductions,
		NetSalary:  payroll.NetSalary(req.BaseSalary, req.Bonus, req.Deductions),
		PayDate:    payDate,
	}, true
}

func (h *Handler) createSalary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	salary, ok := h.decodeSalary(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateSalary(r.Context(), salary)
	if err != nil {
		shared.WriteStoreError(w, err, "salary", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateSalary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	salary, ok := h.decodeSalary(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateSalary(r.Context(), id, salary); err != nil {
		shared.WriteStoreError(w, err, "salary", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteSalary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteSalary(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "salary", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) payslipPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	data, err := h.Store.GetPayslipData(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "salary", requestID)
		return
	}
	writePayslip(w, data, requestID)
}

type benefitTypeRequest struct {
	Name string `json:"name"`
}

func (h *Handler) listBenefitTypes(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	types, err := h.Store.ListBenefitTypes(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "benefit types", requestID)
		return
	}
	api.Success(w, types, requestID)
}

func (h *Handler) getBenefitType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	bt, err := h.Store.GetBenefitType(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "benefit type", requestID)
		return
	}
	api.Success(w, bt, requestID)
}

func (h *Handler) decodeBenefitType(w http.ResponseWriter, r *http.Request, requestID string) (payroll.BenefitType, bool) {
	var req benefitTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return payroll.BenefitType{}, false
	}
	v := shared.NewValidator()
	v.Required("name", req.Name, "name is required")
	if v.Reject(w, requestID) {
		return payroll.BenefitType{}, false
	}
	return payroll.BenefitType{Name: req.Name}, true
}

func (h *Handler) createBenefitType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	bt, ok := h.decodeBenefitType(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateBenefitType(r.Context(), bt)
	if err != nil {
		shared.WriteStoreError(w, err, "benefit type", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateBenefitType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	bt, ok := h.decodeBenefitType(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateBenefitType(r.Context(), id, bt); err != nil {
		shared.WriteStoreError(w, err, "benefit type", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteBenefitType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteBenefitType(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "benefit type", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type benefitRequest struct {
	EmployeeID    int64   `json:"employeeId"`
	BenefitTypeID int64   `json:"benefitTypeId"`
	Amount        float64 `json:"amount"`
	StartDate     string  `json:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	IsActive      bool    `json:"isActive"`
}

func (h *Handler) listBenefits(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	benefits, err := h.Store.ListBenefits(r.Context(), shared.QueryID(r, "employeeId"))
	if err != nil {
		shared.WriteStoreError(w, err, "benefits", requestID)
		return
	}
	api.Success(w, benefits, requestID)
}

func (h *Handler) getBenefit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	benefit, err := h.Store.GetBenefit(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "benefit", requestID)
		return
	}
	api.Success(w, benefit, requestID)
}

func (h *Handler) decodeBenefit(w http.ResponseWriter, r *http.Request, requestID string) (payroll.Benefit, bool) {
	var req benefitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return payroll.Benefit{}, false
	}
	v := shared.NewValidator()
	v.RequiredID("employeeId", req.EmployeeID, "employeeId is required")
	v.RequiredID("benefitTypeId", req.BenefitTypeID, "benefitTypeId is required")
	if req.Amount < 0 {
		v.Add("amount", "must not be negative")
	}
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
		return payroll.Benefit{}, false
	}
	return payroll.Benefit{
		EmployeeID:    req.EmployeeID,
		BenefitTypeID: req.BenefitTypeID,
		Amount:        req.Amount,
		StartDate:     start,
		EndDate:       end,
		IsActive:      req.IsActive,
	}, true
}

func (h *Handler) createBenefit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	benefit, ok := h.decodeBenefit(w, r, requestID)
	if !ok {
		return
	}
	id, err := h.Store.CreateBenefit(r.Context(), benefit)
	if err != nil {
		shared.WriteStoreError(w, err, "benefit", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateBenefit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	benefit, ok := h.decodeBenefit(w, r, requestID)
	if !ok {
		return
	}
	if err := h.Store.UpdateBenefit(r.Context(), id, benefit); err != nil {
		shared.WriteStoreError(w, err, "benefit", requestID)
		return
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteBenefit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	if err := h.Store.DeleteBenefit(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "benefit", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
