package auth

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound wraps pgx.ErrNoRows so zero-row updates surface through the
// same not-found mapping as empty queries.
var ErrNotFound = fmt.Errorf("not found: %w", pgx.ErrNoRows)
