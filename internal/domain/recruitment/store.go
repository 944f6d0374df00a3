package recruitment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListCVs windows the bank with limit/offset; limit <= 0 returns everything.
func (s *Store) ListCVs(ctx context.Context, limit, offset int) ([]CVEntry, error) {
	query := `
    SELECT id, full_name, COALESCE(email,''), COALESCE(phone,''), COALESCE(file_path,''),
           added_date, COALESCE(notes,''), created_at, updated_at
    FROM cv_bank
    ORDER BY added_date DESC, id DESC
  `
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	}
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CVEntry
	for rows.Next() {
		var cv CVEntry
		if err := rows.Scan(&cv.ID, &cv.FullName, &cv.Email, &cv.Phone, &cv.FilePath, &cv.AddedDate, &cv.Notes, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	return out, rows.Err()
}

func (s *Store) GetCV(ctx context.Context, id int64) (*CVEntry, error) {
	var cv CVEntry
	err := s.DB.QueryRow(ctx, `
    SELECT id, full_name, COALESCE(email,''), COALESCE(phone,''), COALESCE(file_path,''),
           added_date, COALESCE(notes,''), created_at, updated_at
    FROM cv_bank
    WHERE id = $1
  `, id).Scan(&cv.ID, &cv.FullName, &cv.Email, &cv.Phone, &cv.FilePath, &cv.AddedDate, &cv.Notes, &cv.CreatedAt, &cv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (s *Store) CreateCV(ctx context.Context, cv CVEntry) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO cv_bank (full_name, email, phone, file_path, added_date, notes)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, cv.FullName, cv.Email, cv.Phone, cv.FilePath, cv.AddedDate, cv.Notes).Scan(&id)
	return id, err
}

func (s *Store) UpdateCV(ctx context.Context, id int64, cv CVEntry) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE cv_bank
    SET full_name = $1, email = $2, phone = $3, file_path = $4, added_date = $5, notes = $6, updated_at = now()
    WHERE id = $7
  `, cv.FullName, cv.Email, cv.Phone, cv.FilePath, cv.AddedDate, cv.Notes, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteCV(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM cv_bank WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListJobApplications(ctx context.Context, jobID int64) ([]JobApplication, error) {
	query := `
    SELECT id, email, cv_id, job_id, applied_date, COALESCE(status,''), created_at, updated_at
    FROM job_applications
  `
	args := []any{}
	if jobID > 0 {
		query += " WHERE job_id = $1"
		args = append(args, jobID)
	}
	query += " ORDER BY applied_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobApplication
	for rows.Next() {
		var a JobApplication
		if err := rows.Scan(&a.ID, &a.Email, &a.CVID, &a.JobID, &a.AppliedDate, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetJobApplication(ctx context.Context, id int64) (*JobApplication, error) {
	var a JobApplication
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, cv_id, job_id, applied_date, COALESCE(status,''), created_at, updated_at
    FROM job_applications
    WHERE id = $1
  `, id).Scan(&a.ID, &a.Email, &a.CVID, &a.JobID, &a.AppliedDate, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateJobApplication(ctx context.Context, a JobApplication) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO job_applications (email, cv_id, job_id, applied_date, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, a.Email, a.CVID, a.JobID, a.AppliedDate, a.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateJobApplication(ctx context.Context, id int64, a JobApplication) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE job_applications
    SET email = $1, cv_id = $2, job_id = $3, applied_date = $4, status = $5, updated_at = now()
    WHERE id = $6
  `, a.Email, a.CVID, a.JobID, a.AppliedDate, a.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteJobApplication(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM job_applications WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, job_application_id, COALESCE(status,''), created_at, updated_at
    FROM candidates
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.JobApplicationID, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetCandidate(ctx context.Context, id int64) (*Candidate, error) {
	var c Candidate
	err := s.DB.QueryRow(ctx, `
    SELECT id, job_application_id, COALESCE(status,''), created_at, updated_at
    FROM candidates
    WHERE id = $1
  `, id).Scan(&c.ID, &c.JobApplicationID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateCandidate(ctx context.Context, c Candidate) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO candidates (job_application_id, status)
    VALUES ($1,$2)
    RETURNING id
  `, c.JobApplicationID, c.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateCandidate(ctx context.Context, id int64, c Candidate) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE candidates
    SET job_application_id = $1, status = $2, updated_at = now()
    WHERE id = $3
  `, c.JobApplicationID, c.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteCandidate(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM candidates WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListInterviews(ctx context.Context, candidateID int64) ([]Interview, error) {
	query := `
    SELECT id, candidate_id, interviewer_id, date, COALESCE(result,''), COALESCE(notes,''), created_at, updated_at
    FROM interviews
  `
	args := []any{}
	if candidateID > 0 {
		query += " WHERE candidate_id = $1"
		args = append(args, candidateID)
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interview
	for rows.Next() {
		var iv Interview
		if err := rows.Scan(&iv.ID, &iv.CandidateID, &iv.InterviewerID, &iv.Date, &iv.Result, &iv.Notes, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

func (s *Store) GetInterview(ctx context.Context, id int64) (*Interview, error) {
	var iv Interview
	err := s.DB.QueryRow(ctx, `
    SELECT id, candidate_id, interviewer_id, date, COALESCE(result,''), COALESCE(notes,''), created_at, updated_at
    FROM interviews
    WHERE id = $1
  `, id).Scan(&iv.ID, &iv.CandidateID, &iv.InterviewerID, &iv.Date, &iv.Result, &iv.Notes, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (s *Store) CreateInterview(ctx context.Context, iv Interview) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO interviews (candidate_id, interviewer_id, date, result, notes)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, iv.CandidateID, iv.InterviewerID, iv.Date, iv.Result, iv.Notes).Scan(&id)
	return id, err
}

func (s *Store) UpdateInterview(ctx context.Context, id int64, iv Interview) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE interviews
    SET candidate_id = $1, interviewer_id = $2, date = $3, result = $4, notes = $5, updated_at = now()
    WHERE id = $6
  `, iv.CandidateID, iv.InterviewerID, iv.Date, iv.Result, iv.Notes, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteInterview(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM interviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListHRNeedRequests(ctx context.Context, departmentID int64) ([]HRNeedRequest, error) {
	query := `
    SELECT id, department_id, title, quantity, COALESCE(status,''), created_at, updated_at
    FROM hr_need_requests
  `
	args := []any{}
	if departmentID > 0 {
		query += " WHERE department_id = $1"
		args = append(args, departmentID)
	}
	query += " ORDER BY id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HRNeedRequest
	for rows.Next() {
		var n HRNeedRequest
		if err := rows.Scan(&n.ID, &n.DepartmentID, &n.Title, &n.Quantity, &n.Status, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) GetHRNeedRequest(ctx context.Context, id int64) (*HRNeedRequest, error) {
	var n HRNeedRequest
	err := s.DB.QueryRow(ctx, `
    SELECT id, department_id, title, quantity, COALESCE(status,''), created_at, updated_at
    FROM hr_need_requests
    WHERE id = $1
  `, id).Scan(&n.ID, &n.DepartmentID, &n.Title, &n.Quantity, &n.Status, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Store) CreateHRNeedRequest(ctx context.Context, n HRNeedRequest) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO hr_need_requests (department_id, title, quantity, status)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, n.DepartmentID, n.Title, n.Quantity, n.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateHRNeedRequest(ctx context.Context, id int64, n HRNeedRequest) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE hr_need_requests
    SET department_id = $1, title = $2, quantity = $3, status = $4, updated_at = now()
    WHERE id = $5
  `, n.DepartmentID, n.Title, n.Quantity, n.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteHRNeedRequest(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM hr_need_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListPortals(ctx context.Context, hrNeedID int64) ([]RecruitmentPortal, error) {
	query := `
    SELECT id, hr_need_id, publish_date, expiry_date, COALESCE(status,''), COALESCE(notes,''), created_at, updated_at
    FROM recruitment_portals
  `
	args := []any{}
	if hrNeedID > 0 {
		query += " WHERE hr_need_id = $1"
		args = append(args, hrNeedID)
	}
	query += " ORDER BY publish_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecruitmentPortal
	for rows.Next() {
		var p RecruitmentPortal
		if err := rows.Scan(&p.ID, &p.HRNeedID, &p.PublishDate, &p.ExpiryDate, &p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetPortal(ctx context.Context, id int64) (*RecruitmentPortal, error) {
	var p RecruitmentPortal
	err := s.DB.QueryRow(ctx, `
    SELECT id, hr_need_id, publish_date, expiry_date, COALESCE(status,''), COALESCE(notes,''), created_at, updated_at
    FROM recruitment_portals
    WHERE id = $1
  `, id).Scan(&p.ID, &p.HRNeedID, &p.PublishDate, &p.ExpiryDate, &p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreatePortal(ctx context.Context, p RecruitmentPortal) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO recruitment_portals (hr_need_id, publish_date, expiry_date, status, notes)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, p.HRNeedID, p.PublishDate, p.ExpiryDate, p.Status, p.Notes).Scan(&id)
	return id, err
}

func (s *Store) UpdatePortal(ctx context.Context, id int64, p RecruitmentPortal) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE recruitment_portals
    SET hr_need_id = $1, publish_date = $2, expiry_date = $3, status = $4, notes = $5, updated_at = now()
    WHERE id = $6
  `, p.HRNeedID, p.PublishDate, p.ExpiryDate, p.Status, p.Notes, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeletePortal(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM recruitment_portals WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CloseExpiredPortals flips open postings whose expiry date has passed.
// Returns the number of portals closed so the sweeper can log it.
func (s *Store) CloseExpiredPortals(ctx context.Context, now time.Time) (int64, error) {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE recruitment_portals
    SET status = 'closed', updated_at = now()
    WHERE status = 'open' AND expiry_date IS NOT NULL AND expiry_date < $1
  `, now)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
