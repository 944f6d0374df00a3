package journey

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

func (s *Store) ListOnboardings(ctx context.Context, employeeID int64) ([]Onboarding, error) {
	query := `
    SELECT id, employee_id, start_date, end_date, assigned_mentor, COALESCE(checklist_status,''), created_at, updated_at
    FROM onboardings
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY start_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Onboarding
	for rows.Next() {
		var o Onboarding
		if err := rows.Scan(&o.ID, &o.EmployeeID, &o.StartDate, &o.EndDate, &o.AssignedMentor, &o.ChecklistStatus, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) GetOnboarding(ctx context.Context, id int64) (*Onboarding, error) {
	var o Onboarding
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, start_date, end_date, assigned_mentor, COALESCE(checklist_status,''), created_at, updated_at
    FROM onboardings
    WHERE id = $1
  `, id).Scan(&o.ID, &o.EmployeeID, &o.StartDate, &o.EndDate, &o.AssignedMentor, &o.ChecklistStatus, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) CreateOnboarding(ctx context.Context, o Onboarding) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO onboardings (employee_id, start_date, end_date, assigned_mentor, checklist_status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, o.EmployeeID, o.StartDate, o.EndDate, o.AssignedMentor, o.ChecklistStatus).Scan(&id)
	return id, err
}

func (s *Store) UpdateOnboarding(ctx context.Context, id int64, o Onboarding) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE onboardings
    SET employee_id = $1, start_date = $2, end_date = $3, assigned_mentor = $4, checklist_status = $5, updated_at = now()
    WHERE id = $6
  `, o.EmployeeID, o.StartDate, o.EndDate, o.AssignedMentor, o.ChecklistStatus, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteOnboarding(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM onboardings WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListOffboardings(ctx context.Context, employeeID int64) ([]Offboarding, error) {
	query := `
    SELECT id, employee_id, resignation_date, COALESCE(exit_reason,''), COALESCE(clearance_status,''), created_at, updated_at
    FROM offboardings
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY resignation_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Offboarding
	for rows.Next() {
		var o Offboarding
		if err := rows.Scan(&o.ID, &o.EmployeeID, &o.ResignationDate, &o.ExitReason, &o.ClearanceStatus, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) GetOffboarding(ctx context.Context, id int64) (*Offboarding, error) {
	var o Offboarding
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, resignation_date, COALESCE(exit_reason,''), COALESCE(clearance_status,''), created_at, updated_at
    FROM offboardings
    WHERE id = $1
  `, id).Scan(&o.ID, &o.EmployeeID, &o.ResignationDate, &o.ExitReason, &o.ClearanceStatus, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) CreateOffboarding(ctx context.Context, o Offboarding) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO offboardings (employee_id, resignation_date, exit_reason, clearance_status)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, o.EmployeeID, o.ResignationDate, o.ExitReason, o.ClearanceStatus).Scan(&id)
	return id, err
}

func (s *Store) UpdateOffboarding(ctx context.Context, id int64, o Offboarding) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE offboardings
    SET employee_id = $1, resignation_date = $2, exit_reason = $3, clearance_status = $4, updated_at = now()
    WHERE id = $5
  `, o.EmployeeID, o.ResignationDate, o.ExitReason, o.ClearanceStatus, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteOffboarding(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM offboardings WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListTrainings(ctx context.Context) ([]Training, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, COALESCE(description,''), start_date, end_date, created_at, updated_at
    FROM trainings
    ORDER BY title
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Training
	for rows.Next() {
		var tr Training
		if err := rows.Scan(&tr.ID, &tr.Title, &tr.Description, &tr.StartDate, &tr.EndDate, &tr.CreatedAt, &tr.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

func (s *Store) GetTraining(ctx context.Context, id int64) (*Training, error) {
	var tr Training
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, COALESCE(description,''), start_date, end_date, created_at, updated_at
    FROM trainings
    WHERE id = $1
  `, id).Scan(&tr.ID, &tr.Title, &tr.Description, &tr.StartDate, &tr.EndDate, &tr.CreatedAt, &tr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func (s *Store) CreateTraining(ctx context.Context, tr Training) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO trainings (title, description, start_date, end_date)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, tr.Title, tr.Description, tr.StartDate, tr.EndDate).Scan(&id)
	return id, err
}

func (s *Store) UpdateTraining(ctx context.Context, id int64, tr Training) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE trainings
    SET title = $1, description = $2, start_date = $3, end_date = $4, updated_at = now()
    WHERE id = $5
  `, tr.Title, tr.Description, tr.StartDate, tr.EndDate, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteTraining(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM trainings WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListEmployeeTrainings(ctx context.Context, employeeID, trainingID int64) ([]EmployeeTraining, error) {
	query := `
    SELECT employee_id, training_id, COALESCE(completion_status,''), enrolled_at
    FROM employee_trainings
  `
	args := []any{}
	switch {
	case employeeID > 0 && trainingID > 0:
		query += " WHERE employee_id = $1 AND training_id = $2"
		args = append(args, employeeID, trainingID)
	case employeeID > 0:
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	case trainingID > 0:
		query += " WHERE training_id = $1"
		args = append(args, trainingID)
	}
	query += " ORDER BY employee_id, training_id"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EmployeeTraining
	for rows.Next() {
		var et EmployeeTraining
		if err := rows.Scan(&et.EmployeeID, &et.TrainingID, &et.CompletionStatus, &et.EnrolledAt); err != nil {
			return nil, err
		}
		out = append(out, et)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployeeTraining(ctx context.Context, employeeID, trainingID int64) (*EmployeeTraining, error) {
	var et EmployeeTraining
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, training_id, COALESCE(completion_status,''), enrolled_at
    FROM employee_trainings
    WHERE employee_id = $1 AND training_id = $2
  `, employeeID, trainingID).Scan(&et.EmployeeID, &et.TrainingID, &et.CompletionStatus, &et.EnrolledAt)
	if err != nil {
		return nil, err
	}
	return &et, nil
}

func (s *Store) CreateEmployeeTraining(ctx context.Context, et EmployeeTraining) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employee_trainings (employee_id, training_id, completion_status)
    VALUES ($1,$2,$3)
  `, et.EmployeeID, et.TrainingID, et.CompletionStatus)
	return err
}

func (s *Store) UpdateEmployeeTraining(ctx context.Context, employeeID, trainingID int64, et EmployeeTraining) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employee_trainings
    SET completion_status = $1
    WHERE employee_id = $2 AND training_id = $3
  `, et.CompletionStatus, employeeID, trainingID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteEmployeeTraining(ctx context.Context, employeeID, trainingID int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM employee_trainings WHERE employee_id = $1 AND training_id = $2", employeeID, trainingID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
