package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms/internal/domain/auth"
)

func TestAuthorizeRequiresUser(t *testing.T) {
	handler := Authorize(auth.EntityEmployees, auth.ActionView)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthorizeDeniesByPolicy(t *testing.T) {
	handler := Authorize(auth.EntityUsers, auth.ActionView)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req = req.WithContext(WithUser(req.Context(), auth.UserContext{UserID: 2, Role: auth.RoleEmployee}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthorizeAllowsByPolicy(t *testing.T) {
	ran := false
	handler := Authorize(auth.EntityLeaveRequests, auth.ActionCreate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/leave-requests", nil)
	req = req.WithContext(WithUser(req.Context(), auth.UserContext{UserID: 3, Role: auth.RoleEmployee}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !ran {
		t.Fatal("expected handler to run")
	}
}
