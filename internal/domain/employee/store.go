package employee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// ListEmployees is the one list that can grow without bound, so it takes
// a limit/offset window; limit <= 0 means no window.
func (s *Store) ListEmployees(ctx context.Context, departmentID int64, limit, offset int) ([]Employee, error) {
	query := `
    SELECT id, name, COALESCE(email,''), COALESCE(phone,''), hire_date,
           COALESCE(employment_status,''), job_id, department_id, created_at, updated_at
    FROM employees
  `
	args := []any{}
	if departmentID > 0 {
		query += " WHERE department_id = $1"
		args = append(args, departmentID)
	}
	query += " ORDER BY name"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.HireDate, &e.EmploymentStatus, &e.JobID, &e.DepartmentID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(email,''), COALESCE(phone,''), hire_date,
           COALESCE(employment_status,''), job_id, department_id, created_at, updated_at
    FROM employees
    WHERE id = $1
  `, id).Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.HireDate, &e.EmploymentStatus, &e.JobID, &e.DepartmentID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e Employee) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, email, phone, hire_date, employment_status, job_id, department_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, e.Name, e.Email, e.Phone, e.HireDate, e.EmploymentStatus, e.JobID, e.DepartmentID).Scan(&id)
	return id, err
}

func (s *Store) UpdateEmployee(ctx context.Context, id int64, e Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $1, email = $2, phone = $3, hire_date = $4, employment_status = $5,
        job_id = $6, department_id = $7, updated_at = now()
    WHERE id = $8
  `, e.Name, e.Email, e.Phone, e.HireDate, e.EmploymentStatus, e.JobID, e.DepartmentID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListAttendance(ctx context.Context, employeeID int64) ([]Attendance, error) {
	query := `
    SELECT id, employee_id, date, check_in_time, check_out_time, COALESCE(status,''), created_at, updated_at
    FROM attendance_records
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attendance
	for rows.Next() {
		var a Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetAttendance(ctx context.Context, id int64) (*Attendance, error) {
	var a Attendance
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, date, check_in_time, check_out_time, COALESCE(status,''), created_at, updated_at
    FROM attendance_records
    WHERE id = $1
  `, id).Scan(&a.ID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateAttendance(ctx context.Context, a Attendance) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records (employee_id, date, check_in_time, check_out_time, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, a.EmployeeID, a.Date, a.CheckInTime, a.CheckOutTime, a.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateAttendance(ctx context.Context, id int64, a Attendance) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE attendance_records
    SET employee_id = $1, date = $2, check_in_time = $3, check_out_time = $4, status = $5, updated_at = now()
    WHERE id = $6
  `, a.EmployeeID, a.Date, a.CheckInTime, a.CheckOutTime, a.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteAttendance(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM attendance_records WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListDocuments(ctx context.Context, employeeID int64) ([]Document, error) {
	query := `
    SELECT id, employee_id, title, COALESCE(file_path,''), upload_date, created_at, updated_at
    FROM documents
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY upload_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Title, &d.FilePath, &d.UploadDate, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) GetDocument(ctx context.Context, id int64) (*Document, error) {
	var d Document
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, title, COALESCE(file_path,''), upload_date, created_at, updated_at
    FROM documents
    WHERE id = $1
  `, id).Scan(&d.ID, &d.EmployeeID, &d.Title, &d.FilePath, &d.UploadDate, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) CreateDocument(ctx context.Context, d Document) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (employee_id, title, file_path, upload_date)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, d.EmployeeID, d.Title, d.FilePath, d.UploadDate).Scan(&id)
	return id, err
}

func (s *Store) UpdateDocument(ctx context.Context, id int64, d Document) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE documents
    SET employee_id = $1, title = $2, file_path = $3, upload_date = $4, updated_at = now()
    WHERE id = $5
  `, d.EmployeeID, d.Title, d.FilePath, d.UploadDate, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteDocument(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM documents WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListAssets(ctx context.Context, assignedTo int64) ([]Asset, error) {
	query := `
    SELECT id, asset_name, COALESCE(serial_number,''), assigned_to, assigned_date, COALESCE(status,''), created_at, updated_at
    FROM assets
  `
	args := []any{}
	if assignedTo > 0 {
		query += " WHERE assigned_to = $1"
		args = append(args, assignedTo)
	}
	query += " ORDER BY asset_name"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Asset
	for rows.Next() {
		var a Asset
		if err := rows.Scan(&a.ID, &a.AssetName, &a.SerialNumber, &a.AssignedTo, &a.AssignedDate, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetAsset(ctx context.Context, id int64) (*Asset, error) {
	var a Asset
	err := s.DB.QueryRow(ctx, `
    SELECT id, asset_name, COALESCE(serial_number,''), assigned_to, assigned_date, COALESCE(status,''), created_at, updated_at
    FROM assets
    WHERE id = $1
  `, id).Scan(&a.ID, &a.AssetName, &a.SerialNumber, &a.AssignedTo, &a.AssignedDate, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateAsset(ctx context.Context, a Asset) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO assets (asset_name, serial_number, assigned_to, assigned_date, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, a.AssetName, a.SerialNumber, a.AssignedTo, a.AssignedDate, a.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateAsset(ctx context.Context, id int64, a Asset) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE assets
    SET asset_name = $1, serial_number = $2, assigned_to = $3, assigned_date = $4, status = $5, updated_at = now()
    WHERE id = $6
  `, a.AssetName, a.SerialNumber, a.AssignedTo, a.AssignedDate, a.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteAsset(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM assets WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListDisciplinaryActions(ctx context.Context, employeeID int64) ([]DisciplinaryAction, error) {
	query := `
    SELECT id, employee_id, taken_by, action_type, COALESCE(reason,''), action_date, created_at, updated_at
    FROM disciplinary_actions
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY action_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DisciplinaryAction
	for rows.Next() {
		var d DisciplinaryAction
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.TakenBy, &d.ActionType, &d.Reason, &d.ActionDate, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) GetDisciplinaryAction(ctx context.Context, id int64) (*DisciplinaryAction, error) {
	var d DisciplinaryAction
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, taken_by, action_type, COALESCE(reason,''), action_date, created_at, updated_at
    FROM disciplinary_actions
    WHERE id = $1
  `, id).Scan(&d.ID, &d.EmployeeID, &d.TakenBy, &d.ActionType, &d.Reason, &d.ActionDate, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) CreateDisciplinaryAction(ctx context.Context, d DisciplinaryAction) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO disciplinary_actions (employee_id, taken_by, action_type, reason, action_date)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, d.EmployeeID, d.TakenBy, d.ActionType, d.Reason, d.ActionDate).Scan(&id)
	return id, err
}

func (s *Store) UpdateDisciplinaryAction(ctx context.Context, id int64, d DisciplinaryAction) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE disciplinary_actions
    SET employee_id = $1, taken_by = $2, action_type = $3, reason = $4, action_date = $5, updated_at = now()
    WHERE id = $6
  `, d.EmployeeID, d.TakenBy, d.ActionType, d.Reason, d.ActionDate, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteDisciplinaryAction(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM disciplinary_actions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
