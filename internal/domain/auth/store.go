package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type credentialRow struct {
	User         User
	PasswordHash string
	MFASecretEnc []byte
}

func (s *Store) FindByUsername(ctx context.Context, username string) (credentialRow, error) {
	var row credentialRow
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, role, employee_id, mfa_enabled, mfa_secret_enc, password_hash, created_at, updated_at, last_login
    FROM users
    WHERE username = $1
  `, username).Scan(
		&row.User.ID, &row.User.Username, &row.User.Role, &row.User.EmployeeID,
		&row.User.MFAEnabled, &row.MFASecretEnc, &row.PasswordHash,
		&row.User.CreatedAt, &row.User.UpdatedAt, &row.User.LastLogin,
	)
	if err != nil {
		return credentialRow{}, err
	}
	return row, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*User, error) {
	var u User
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, role, employee_id, mfa_enabled, created_at, updated_at, last_login
    FROM users
    WHERE id = $1
  `, userID).Scan(&u.ID, &u.Username, &u.Role, &u.EmployeeID, &u.MFAEnabled, &u.CreatedAt, &u.UpdatedAt, &u.LastLogin)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, username, role, employee_id, mfa_enabled, created_at, updated_at, last_login
    FROM users
    ORDER BY username
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.EmployeeID, &u.MFAEnabled, &u.CreatedAt, &u.UpdatedAt, &u.LastLogin); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash, role string, employeeID *int64) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (username, password_hash, role, employee_id)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, username, passwordHash, role, employeeID).Scan(&id)
	return id, err
}

func (s *Store) UpdateUser(ctx context.Context, userID int64, username, role string, employeeID *int64) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE users
    SET username = $1, role = $2, employee_id = $3, updated_at = now()
    WHERE id = $4
  `, username, role, employeeID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
  `, passwordHash, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the user row; refresh_tokens go with it via the cascade,
// every other FK on users restricts.
func (s *Store) DeleteUser(ctx context.Context, userID int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}

func (s *Store) CreateRefreshToken(ctx context.Context, userID int64, tokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
    VALUES ($1,$2,$3)
  `, userID, tokenHash, expires)
	return err
}

func (s *Store) RefreshTokenUserID(ctx context.Context, tokenHash string) (int64, error) {
	var userID int64
	err := s.DB.QueryRow(ctx, `
    SELECT user_id
    FROM refresh_tokens
    WHERE token_hash = $1 AND expires_at > now() AND revoked_at IS NULL
  `, tokenHash).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *Store) RotateRefreshToken(ctx context.Context, userID int64, oldHash, newHash string, expires time.Time) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
    UPDATE refresh_tokens SET revoked_at = now()
    WHERE user_id = $1 AND token_hash = $2 AND revoked_at IS NULL
  `, userID, oldHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec(ctx, `
    INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
    VALUES ($1,$2,$3)
  `, userID, newHash, expires); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) RevokeRefreshToken(ctx context.Context, userID int64, tokenHash string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE refresh_tokens SET revoked_at = now()
    WHERE user_id = $1 AND token_hash = $2 AND revoked_at IS NULL
  `, userID, tokenHash)
	return err
}

func (s *Store) UpdateMFASecret(ctx context.Context, userID int64, secretEnc []byte) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET mfa_secret_enc = $1, updated_at = now() WHERE id = $2", secretEnc, userID)
	return err
}

func (s *Store) GetMFASecret(ctx context.Context, userID int64) ([]byte, error) {
	var secretEnc []byte
	err := s.DB.QueryRow(ctx, "SELECT mfa_secret_enc FROM users WHERE id = $1", userID).Scan(&secretEnc)
	if err != nil {
		return nil, err
	}
	return secretEnc, nil
}

func (s *Store) SetMFAEnabled(ctx context.Context, userID int64, enabled bool) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET mfa_enabled = $1, updated_at = now() WHERE id = $2", enabled, userID)
	return err
}

// EmployeeEmail resolves the contact address for reset mail through the
// employee link; users without one get an empty string.
func (s *Store) EmployeeEmail(ctx context.Context, userID int64) (string, error) {
	var address string
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(e.email, '')
    FROM users u
    LEFT JOIN employees e ON e.id = u.employee_id
    WHERE u.id = $1
  `, userID).Scan(&address)
	if err != nil {
		return "", err
	}
	return address, nil
}

func (s *Store) CreatePasswordReset(ctx context.Context, userID int64, tokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO password_resets (user_id, token_hash, expires_at)
    VALUES ($1,$2,$3)
  `, userID, tokenHash, expires)
	return err
}

func (s *Store) PasswordResetUserID(ctx context.Context, tokenHash string) (int64, error) {
	var userID int64
	err := s.DB.QueryRow(ctx, `
    SELECT user_id
    FROM password_resets
    WHERE token_hash = $1 AND expires_at > now() AND used_at IS NULL
  `, tokenHash).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *Store) MarkPasswordResetUsed(ctx context.Context, tokenHash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE password_resets SET used_at = now() WHERE token_hash = $1", tokenHash)
	return err
}
