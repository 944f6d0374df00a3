package engagement

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListSelfServiceRequests(ctx context.Context, employeeID int64) ([]SelfServiceRequest, error) {
	query := `
    SELECT id, employee_id, request_type, COALESCE(details,''), request_date, COALESCE(status,''),
           approved_by, resolved_at, created_at, updated_at
    FROM self_service_requests
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY request_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SelfServiceRequest
	for rows.Next() {
		var r SelfServiceRequest
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.RequestType, &r.Details, &r.RequestDate, &r.Status, &r.ApprovedBy, &r.ResolvedAt, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetSelfServiceRequest(ctx context.Context, id int64) (*SelfServiceRequest, error) {
	var r SelfServiceRequest
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, request_type, COALESCE(details,''), request_date, COALESCE(status,''),
           approved_by, resolved_at, created_at, updated_at
    FROM self_service_requests
    WHERE id = $1
  `, id).Scan(&r.ID, &r.EmployeeID, &r.RequestType, &r.Details, &r.RequestDate, &r.Status, &r.ApprovedBy, &r.ResolvedAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) CreateSelfServiceRequest(ctx context.Context, r SelfServiceRequest) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO self_service_requests (employee_id, request_type, details, request_date, status, approved_by, resolved_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, r.EmployeeID, r.RequestType, r.Details, r.RequestDate, r.Status, r.ApprovedBy, r.ResolvedAt).Scan(&id)
	return id, err
}

func (s *Store) UpdateSelfServiceRequest(ctx context.Context, id int64, r SelfServiceRequest) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE self_service_requests
    SET employee_id = $1, request_type = $2, details = $3, request_date = $4, status = $5,
        approved_by = $6, resolved_at = $7, updated_at = now()
    WHERE id = $8
  `, r.EmployeeID, r.RequestType, r.Details, r.RequestDate, r.Status, r.ApprovedBy, r.ResolvedAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteSelfServiceRequest(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM self_service_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListSurveys(ctx context.Context) ([]Survey, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, COALESCE(description,''), created_date, created_at, updated_at
    FROM surveys
    ORDER BY created_date DESC, id DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Survey
	for rows.Next() {
		var sv Survey
		if err := rows.Scan(&sv.ID, &sv.Title, &sv.Description, &sv.CreatedDate, &sv.CreatedAt, &sv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (s *Store) GetSurvey(ctx context.Context, id int64) (*Survey, error) {
	var sv Survey
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, COALESCE(description,''), created_date, created_at, updated_at
    FROM surveys
    WHERE id = $1
  `, id).Scan(&sv.ID, &sv.Title, &sv.Description, &sv.CreatedDate, &sv.CreatedAt, &sv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

func (s *Store) CreateSurvey(ctx context.Context, sv Survey) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO surveys (title, description, created_date)
    VALUES ($1,$2,$3)
    RETURNING id
  `, sv.Title, sv.Description, sv.CreatedDate).Scan(&id)
	return id, err
}

func (s *Store) UpdateSurvey(ctx context.Context, id int64, sv Survey) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE surveys
    SET title = $1, description = $2, created_date = $3, updated_at = now()
    WHERE id = $4
  `, sv.Title, sv.Description, sv.CreatedDate, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteSurvey(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM surveys WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListSurveyResponses(ctx context.Context, surveyID int64) ([]SurveyResponse, error) {
	query := `
    SELECT id, survey_id, employee_id, COALESCE(answers,''), submitted_at, created_at, updated_at
    FROM survey_responses
  `
	args := []any{}
	if surveyID > 0 {
		query += " WHERE survey_id = $1"
		args = append(args, surveyID)
	}
	query += " ORDER BY submitted_at DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SurveyResponse
	for rows.Next() {
		var r SurveyResponse
		if err := rows.Scan(&r.ID, &r.SurveyID, &r.EmployeeID, &r.Answers, &r.SubmittedAt, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetSurveyResponse(ctx context.Context, id int64) (*SurveyResponse, error) {
	var r SurveyResponse
	err := s.DB.QueryRow(ctx, `
    SELECT id, survey_id, employee_id, COALESCE(answers,''), submitted_at, created_at, updated_at
    FROM survey_responses
    WHERE id = $1
  `, id).Scan(&r.ID, &r.SurveyID, &r.EmployeeID, &r.Answers, &r.SubmittedAt, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) CreateSurveyResponse(ctx context.Context, r SurveyResponse) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO survey_responses (survey_id, employee_id, answers, submitted_at)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, r.SurveyID, r.EmployeeID, r.Answers, r.SubmittedAt).Scan(&id)
	return id, err
}

func (s *Store) UpdateSurveyResponse(ctx context.Context, id int64, r SurveyResponse) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE survey_responses
    SET survey_id = $1, employee_id = $2, answers = $3, submitted_at = $4, updated_at = now()
    WHERE id = $5
  `, r.SurveyID, r.EmployeeID, r.Answers, r.SubmittedAt, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteSurveyResponse(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM survey_responses WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
