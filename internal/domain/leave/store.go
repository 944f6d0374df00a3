package leave

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

func (s *Store) ListLeaveTypes(ctx context.Context) ([]LeaveType, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, is_paid, requires_medical_note, deduct_from_balance, max_days_per_year, is_active, created_at, updated_at
    FROM leave_types
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaveType
	for rows.Next() {
		var lt LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.IsPaid, &lt.RequiresMedicalNote, &lt.DeductFromBalance, &lt.MaxDaysPerYear, &lt.IsActive, &lt.CreatedAt, &lt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, rows.Err()
}

func (s *Store) GetLeaveType(ctx context.Context, id int64) (*LeaveType, error) {
	var lt LeaveType
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, is_paid, requires_medical_note, deduct_from_balance, max_days_per_year, is_active, created_at, updated_at
    FROM leave_types
    WHERE id = $1
  `, id).Scan(&lt.ID, &lt.Name, &lt.IsPaid, &lt.RequiresMedicalNote, &lt.DeductFromBalance, &lt.MaxDaysPerYear, &lt.IsActive, &lt.CreatedAt, &lt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (s *Store) CreateLeaveType(ctx context.Context, lt LeaveType) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_types (name, is_paid, requires_medical_note, deduct_from_balance, max_days_per_year, is_active)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, lt.Name, lt.IsPaid, lt.RequiresMedicalNote, lt.DeductFromBalance, lt.MaxDaysPerYear, lt.IsActive).Scan(&id)
	return id, err
}

func (s *Store) UpdateLeaveType(ctx context.Context, id int64, lt LeaveType) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE leave_types
    SET name = $1, is_paid = $2, requires_medical_note = $3, deduct_from_balance = $4,
        max_days_per_year = $5, is_active = $6, updated_at = now()
    WHERE id = $7
  `, lt.Name, lt.IsPaid, lt.RequiresMedicalNote, lt.DeductFromBalance, lt.MaxDaysPerYear, lt.IsActive, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteLeaveType(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM leave_types WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListLeaveBalances(ctx context.Context, employeeID int64) ([]LeaveBalance, error) {
	query := `
    SELECT id, employee_id, leave_type_id, year, allocated_days, used_days, created_at, updated_at
    FROM leave_balances
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY year DESC, id"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaveBalance
	for rows.Next() {
		var b LeaveBalance
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.AllocatedDays, &b.UsedDays, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) GetLeaveBalance(ctx context.Context, id int64) (*LeaveBalance, error) {
	var b LeaveBalance
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, leave_type_id, year, allocated_days, used_days, created_at, updated_at
    FROM leave_balances
    WHERE id = $1
  `, id).Scan(&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.Year, &b.AllocatedDays, &b.UsedDays, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) CreateLeaveBalance(ctx context.Context, b LeaveBalance) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_balances (employee_id, leave_type_id, year, allocated_days, used_days)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, b.EmployeeID, b.LeaveTypeID, b.Year, b.AllocatedDays, b.UsedDays).Scan(&id)
	return id, err
}

func (s *Store) UpdateLeaveBalance(ctx context.Context, id int64, b LeaveBalance) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE leave_balances
    SET employee_id = $1, leave_type_id = $2, year = $3, allocated_days = $4, used_days = $5, updated_at = now()
    WHERE id = $6
  `, b.EmployeeID, b.LeaveTypeID, b.Year, b.AllocatedDays, b.UsedDays, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteLeaveBalance(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM leave_balances WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListLeaveRequests(ctx context.Context, employeeID int64) ([]LeaveRequest, error) {
	query := `
    SELECT id, employee_id, leave_type_id, start_date, end_date, COALESCE(reason,''), status, created_at, updated_at
    FROM leave_requests
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

	var out []LeaveRequest
	for rows.Next() {
		var lr LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}

func (s *Store) GetLeaveRequest(ctx context.Context, id int64) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, leave_type_id, start_date, end_date, COALESCE(reason,''), status, created_at, updated_at
    FROM leave_requests
    WHERE id = $1
  `, id).Scan(&lr.ID, &lr.EmployeeID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (s *Store) CreateLeaveRequest(ctx context.Context, lr LeaveRequest) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type_id, start_date, end_date, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, lr.EmployeeID, lr.LeaveTypeID, lr.StartDate, lr.EndDate, lr.Reason, lr.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateLeaveRequest(ctx context.Context, id int64, lr LeaveRequest) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET employee_id = $1, leave_type_id = $2, start_date = $3, end_date = $4, reason = $5, status = $6, updated_at = now()
    WHERE id = $7
  `, lr.EmployeeID, lr.LeaveTypeID, lr.StartDate, lr.EndDate, lr.Reason, lr.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteLeaveRequest(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM leave_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListPermissionTypes(ctx context.Context) ([]PermissionType, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, monthly_limit_in_hours, is_deductible, created_at, updated_at
    FROM permission_types
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PermissionType
	for rows.Next() {
		var pt PermissionType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.MonthlyLimitInHours, &pt.IsDeductible, &pt.CreatedAt, &pt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}

func (s *Store) GetPermissionType(ctx context.Context, id int64) (*PermissionType, error) {
	var pt PermissionType
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, monthly_limit_in_hours, is_deductible, created_at, updated_at
    FROM permission_types
    WHERE id = $1
  `, id).Scan(&pt.ID, &pt.Name, &pt.MonthlyLimitInHours, &pt.IsDeductible, &pt.CreatedAt, &pt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func (s *Store) CreatePermissionType(ctx context.Context, pt PermissionType) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO permission_types (name, monthly_limit_in_hours, is_deductible)
    VALUES ($1,$2,$3)
    RETURNING id
  `, pt.Name, pt.MonthlyLimitInHours, pt.IsDeductible).Scan(&id)
	return id, err
}

func (s *Store) UpdatePermissionType(ctx context.Context, id int64, pt PermissionType) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE permission_types
    SET name = $1, monthly_limit_in_hours = $2, is_deductible = $3, updated_at = now()
    WHERE id = $4
  `, pt.Name, pt.MonthlyLimitInHours, pt.IsDeductible, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeletePermissionType(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM permission_types WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListPermissions(ctx context.Context, employeeID int64) ([]Permission, error) {
	query := `
    SELECT id, employee_id, permission_type_id, date, hours, COALESCE(status,''), created_at, updated_at
    FROM permissions
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

	var out []Permission
	for rows.Next() {
		var p Permission
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.PermissionTypeID, &p.Date, &p.Hours, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetPermission(ctx context.Context, id int64) (*Permission, error) {
	var p Permission
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, permission_type_id, date, hours, COALESCE(status,''), created_at, updated_at
    FROM permissions
    WHERE id = $1
  `, id).Scan(&p.ID, &p.EmployeeID, &p.PermissionTypeID, &p.Date, &p.Hours, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreatePermission(ctx context.Context, p Permission) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO permissions (employee_id, permission_type_id, date, hours, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, p.EmployeeID, p.PermissionTypeID, p.Date, p.Hours, p.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdatePermission(ctx context.Context, id int64, p Permission) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE permissions
    SET employee_id = $1, permission_type_id = $2, date = $3, hours = $4, status = $5, updated_at = now()
    WHERE id = $6
  `, p.EmployeeID, p.PermissionTypeID, p.Date, p.Hours, p.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeletePermission(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM permissions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
