package shared

import (
	"testing"
	"time"
)

func TestValidatorRequired(t *testing.T) {
	v := NewValidator()
	v.Required("name", "", "name is required")
	v.Required("email", "jo@example.com", "email is required")

	issues := v.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Field != "name" {
		t.Fatalf("unexpected field %q", issues[0].Field)
	}
}

func TestValidatorRequiredID(t *testing.T) {
	v := NewValidator()
	v.RequiredID("employeeId", 0, "employee is required")
	v.RequiredID("departmentId", 4, "department is required")

	if len(v.Issues()) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(v.Issues()))
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	v.DateOrder("startDate", start, "endDate", end)

	if !v.HasIssues() {
		t.Fatal("expected date order issue")
	}
}

func TestParseDateFormats(t *testing.T) {
	if _, err := ParseDate("2024-02-29"); err != nil {
		t.Fatalf("plain date: %v", err)
	}
	if _, err := ParseDate("2024-02-29T10:00:00Z"); err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if _, err := ParseDate("29/02/2024"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if parsed, err := ParseDate(""); err != nil || !parsed.IsZero() {
		t.Fatal("empty input should parse to zero time")
	}
}
