package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hrms/internal/platform/config"
)

// These tests need a real database. Point TEST_DATABASE_URL at a scratch
// Postgres instance to enable them.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Load()
	cfg.DatabaseURL = dsn
	cfg.JWTSecret = "integration-test-secret"
	cfg.RunMigrations = true
	cfg.RunSeed = true
	cfg.SeedAdminUsername = "admin"
	cfg.SeedAdminPassword = "integration-admin-pw"
	cfg.MigrationsDir = filepath.Join("..", "..", "..", "migrations")
	cfg.FrontendDir = ""

	app, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(app.DB.Close)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func do(t *testing.T, app *App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode response %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, env
}

func login(t *testing.T, app *App, username, password string) string {
	t.Helper()
	status, env := do(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d", username, status)
	}
	var pair struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(env.Data, &pair); err != nil {
		t.Fatalf("login %s: decode tokens: %v", username, err)
	}
	return pair.AccessToken
}

func createdID(t *testing.T, env envelope) int64 {
	t.Helper()
	var out struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil || out.ID == 0 {
		t.Fatalf("expected created id in %s", env.Data)
	}
	return out.ID
}

func uniq(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestOrgLifecycleAndRestrictDeletes(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "integration-admin-pw")

	status, env := do(t, app, http.MethodPost, "/api/v1/company-profiles", token, map[string]any{
		"nameEn": uniq("Acme"),
	})
	if status != http.StatusCreated {
		t.Fatalf("create company: status %d (%v)", status, env.Error)
	}
	companyID := createdID(t, env)

	status, env = do(t, app, http.MethodPost, "/api/v1/branches", token, map[string]any{
		"code":      uniq("HQ"),
		"nameEn":    "Head Office",
		"companyId": companyID,
	})
	if status != http.StatusCreated {
		t.Fatalf("create branch: status %d (%v)", status, env.Error)
	}
	branchID := createdID(t, env)

	status, env = do(t, app, http.MethodPost, "/api/v1/departments", token, map[string]any{
		"nameEn":   uniq("Engineering"),
		"branchId": branchID,
	})
	if status != http.StatusCreated {
		t.Fatalf("create department: status %d (%v)", status, env.Error)
	}
	departmentID := createdID(t, env)

	status, env = do(t, app, http.MethodPost, "/api/v1/employees", token, map[string]any{
		"name":             uniq("Jordan Reyes"),
		"employmentStatus": "active",
		"departmentId":     departmentID,
	})
	if status != http.StatusCreated {
		t.Fatalf("create employee: status %d (%v)", status, env.Error)
	}
	employeeID := createdID(t, env)

	// The employee still references the department, so the delete must be
	// refused with a conflict rather than orphaning the row.
	status, env = do(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/departments/%d", departmentID), token, nil)
	if status != http.StatusConflict {
		t.Fatalf("delete referenced department: status %d, want 409", status)
	}
	if env.Error == nil || env.Error.Code != "constraint_violation" {
		t.Fatalf("delete referenced department: error %v, want constraint_violation", env.Error)
	}

	if status, env = do(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/employees/%d", employeeID), token, nil); status != http.StatusOK {
		t.Fatalf("delete employee: status %d (%v)", status, env.Error)
	}
	if status, env = do(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/departments/%d", departmentID), token, nil); status != http.StatusOK {
		t.Fatalf("delete department after employee removed: status %d (%v)", status, env.Error)
	}

	if status, _ = do(t, app, http.MethodGet, fmt.Sprintf("/api/v1/departments/%d", departmentID), token, nil); status != http.StatusNotFound {
		t.Fatalf("get deleted department: status %d, want 404", status)
	}
}

func TestSoftDeletedBranchStaysReadable(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "integration-admin-pw")

	status, env := do(t, app, http.MethodPost, "/api/v1/company-profiles", token, map[string]any{"nameEn": uniq("Globex")})
	if status != http.StatusCreated {
		t.Fatalf("create company: status %d (%v)", status, env.Error)
	}
	companyID := createdID(t, env)

	code := uniq("BR")
	status, env = do(t, app, http.MethodPost, "/api/v1/branches", token, map[string]any{
		"code":      code,
		"nameEn":    "Closing Branch",
		"companyId": companyID,
	})
	if status != http.StatusCreated {
		t.Fatalf("create branch: status %d (%v)", status, env.Error)
	}
	branchID := createdID(t, env)

	status, env = do(t, app, http.MethodPut, fmt.Sprintf("/api/v1/branches/%d", branchID), token, map[string]any{
		"code":      code,
		"nameEn":    "Closing Branch",
		"companyId": companyID,
		"isDeleted": true,
	})
	if status != http.StatusOK {
		t.Fatalf("soft delete branch: status %d (%v)", status, env.Error)
	}

	status, env = do(t, app, http.MethodGet, fmt.Sprintf("/api/v1/branches/%d", branchID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("get soft-deleted branch: status %d, want 200", status)
	}
	var branch struct {
		IsDeleted bool `json:"isDeleted"`
	}
	if err := json.Unmarshal(env.Data, &branch); err != nil {
		t.Fatalf("decode branch: %v", err)
	}
	if !branch.IsDeleted {
		t.Fatal("expected isDeleted to be true")
	}
}

func TestNetSalaryDerivedServerSide(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "integration-admin-pw")

	status, env := do(t, app, http.MethodPost, "/api/v1/employees", token, map[string]any{
		"name":             uniq("Pay Subject"),
		"employmentStatus": "active",
	})
	if status != http.StatusCreated {
		t.Fatalf("create employee: status %d (%v)", status, env.Error)
	}
	employeeID := createdID(t, env)

	// A netSalary field in the payload is not part of the contract and
	// must not leak into the stored amount.
	status, env = do(t, app, http.MethodPost, "/api/v1/salaries", token, map[string]any{
		"employeeId": employeeID,
		"baseSalary": 1000.0,
		"bonus":      200.0,
		"deductions": 150.5,
		"netSalary":  99999.0,
		"payDate":    "2026-01-31",
	})
	if status != http.StatusCreated {
		t.Fatalf("create salary: status %d (%v)", status, env.Error)
	}
	salaryID := createdID(t, env)

	status, env = do(t, app, http.MethodGet, fmt.Sprintf("/api/v1/salaries/%d", salaryID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("get salary: status %d (%v)", status, env.Error)
	}
	var salary struct {
		NetSalary float64 `json:"netSalary"`
	}
	if err := json.Unmarshal(env.Data, &salary); err != nil {
		t.Fatalf("decode salary: %v", err)
	}
	if salary.NetSalary != 1049.5 {
		t.Fatalf("netSalary = %v, want 1049.5", salary.NetSalary)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/salaries/%d/payslip.pdf", salaryID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("payslip: status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("payslip content type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("payslip body is not a PDF document")
	}
}

func TestLeaveBalanceOverAllocationAccepted(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin", "integration-admin-pw")

	status, env := do(t, app, http.MethodPost, "/api/v1/employees", token, map[string]any{
		"name":             uniq("Leave Subject"),
		"employmentStatus": "active",
	})
	if status != http.StatusCreated {
		t.Fatalf("create employee: status %d (%v)", status, env.Error)
	}
	employeeID := createdID(t, env)

	status, env = do(t, app, http.MethodPost, "/api/v1/leave-types", token, map[string]any{
		"name":           uniq("Annual"),
		"isPaid":         true,
		"maxDaysPerYear": 10,
		"isActive":       true,
	})
	if status != http.StatusCreated {
		t.Fatalf("create leave type: status %d (%v)", status, env.Error)
	}
	leaveTypeID := createdID(t, env)

	// Allocations above the type's yearly maximum are an HR decision,
	// not a validation error.
	status, env = do(t, app, http.MethodPost, "/api/v1/leave-balances", token, map[string]any{
		"employeeId":    employeeID,
		"leaveTypeId":   leaveTypeID,
		"year":          2026,
		"allocatedDays": 15.0,
		"usedDays":      0.0,
	})
	if status != http.StatusCreated {
		t.Fatalf("create over-allocated balance: status %d (%v)", status, env.Error)
	}

	// Same employee, type and year again must hit the uniqueness rule.
	status, env = do(t, app, http.MethodPost, "/api/v1/leave-balances", token, map[string]any{
		"employeeId":    employeeID,
		"leaveTypeId":   leaveTypeID,
		"year":          2026,
		"allocatedDays": 5.0,
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate balance: status %d, want 409", status)
	}
}

func TestDeletedUserLosesRefreshToken(t *testing.T) {
	app := newTestApp(t)
	adminToken := login(t, app, "admin", "integration-admin-pw")

	username := uniq("temp-user")
	status, env := do(t, app, http.MethodPost, "/api/v1/users", adminToken, map[string]any{
		"username": username,
		"password": "temp-password-1",
		"role":     "HR",
	})
	if status != http.StatusCreated {
		t.Fatalf("create user: status %d (%v)", status, env.Error)
	}
	userID := createdID(t, env)

	status, env = do(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "temp-password-1",
	})
	if status != http.StatusOK {
		t.Fatalf("login as new user: status %d (%v)", status, env.Error)
	}
	var pair struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(env.Data, &pair); err != nil {
		t.Fatalf("decode tokens: %v", err)
	}

	if status, env = do(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", userID), adminToken, nil); status != http.StatusOK {
		t.Fatalf("delete user: status %d (%v)", status, env.Error)
	}

	// The user's refresh tokens go with the account.
	status, _ = do(t, app, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refreshToken": pair.RefreshToken,
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("refresh after user delete: status %d, want 401", status)
	}
}

func TestRouteGating(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, http.MethodGet, "/api/v1/employees", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("anonymous list employees: status %d, want 401", status)
	}

	adminToken := login(t, app, "admin", "integration-admin-pw")

	username := uniq("emp-user")
	status, env := do(t, app, http.MethodPost, "/api/v1/users", adminToken, map[string]any{
		"username": username,
		"password": "employee-pw-1",
		"role":     "Employee",
	})
	if status != http.StatusCreated {
		t.Fatalf("create employee user: status %d (%v)", status, env.Error)
	}
	empToken := login(t, app, username, "employee-pw-1")

	if status, _ = do(t, app, http.MethodGet, "/api/v1/employees", empToken, nil); status != http.StatusOK {
		t.Fatalf("employee list employees: status %d, want 200", status)
	}
	if status, _ = do(t, app, http.MethodPost, "/api/v1/departments", empToken, map[string]any{"nameEn": "X", "branchId": 1}); status != http.StatusForbidden {
		t.Fatalf("employee create department: status %d, want 403", status)
	}
	if status, _ = do(t, app, http.MethodGet, "/api/v1/users", empToken, nil); status != http.StatusForbidden {
		t.Fatalf("employee list users: status %d, want 403", status)
	}
	if status, _ = do(t, app, http.MethodGet, "/api/v1/metrics", empToken, nil); status != http.StatusForbidden {
		t.Fatalf("employee metrics: status %d, want 403", status)
	}

	status, env = do(t, app, http.MethodGet, "/api/v1/policy", empToken, nil)
	if status != http.StatusOK {
		t.Fatalf("policy for employee: status %d (%v)", status, env.Error)
	}
	var matrix map[string]map[string][]string
	if err := json.Unmarshal(env.Data, &matrix); err != nil {
		t.Fatalf("decode policy matrix: %v", err)
	}
	if _, ok := matrix["admin"]; !ok {
		t.Fatal("policy matrix missing admin role")
	}
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	if status, _ := do(t, app, http.MethodGet, "/healthz", "", nil); status != http.StatusOK {
		t.Fatalf("healthz: status %d", status)
	}
	if status, _ := do(t, app, http.MethodGet, "/readyz", "", nil); status != http.StatusOK {
		t.Fatalf("readyz: status %d", status)
	}
}
