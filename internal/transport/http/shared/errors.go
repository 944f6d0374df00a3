package shared

import (
	"net/http"

	"hrms/internal/platform/db"
	"hrms/internal/transport/http/api"
)

// WriteStoreError maps store failures onto the single error contract:
// missing rows are 404, referential-integrity failures 409, duplicates 409,
// anything else 500. Handlers never inspect pg errors themselves.
func WriteStoreError(w http.ResponseWriter, err error, entity, requestID string) {
	switch {
	case db.IsNotFound(err):
		api.Fail(w, http.StatusNotFound, "not_found", entity+" not found", requestID)
	case db.IsForeignKeyViolation(err):
		api.Fail(w, http.StatusConflict, "constraint_violation", "operation violates a relationship constraint on "+entity, requestID)
	case db.IsUniqueViolation(err):
		api.Fail(w, http.StatusConflict, "duplicate", entity+" already exists", requestID)
	case db.IsConstraintViolation(err):
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "payload violates a constraint on "+entity, requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation on "+entity+" failed", requestID)
	}
}
