package payroll

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

func (s *Store) ListSalaries(ctx context.Context, employeeID int64) ([]Salary, error) {
	query := `
    SELECT id, employee_id, base_salary, bonus, deductions, net_salary, pay_date, created_at, updated_at
    FROM salaries
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY pay_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Salary
	for rows.Next() {
		var sal Salary
		if err := rows.Scan(&sal.ID, &sal.EmployeeID, &sal.BaseSalary, &sal.Bonus, &sal.Deductions, &sal.NetSalary, &sal.PayDate, &sal.CreatedAt, &sal.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sal)
	}
	return out, rows.Err()
}

func (s *Store) GetSalary(ctx context.Context, id int64) (*Salary, error) {
	var sal Salary
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, base_salary, bonus, deductions, net_salary, pay_date, created_at, updated_at
    FROM salaries
    WHERE id = $1
  `, id).Scan(&sal.ID, &sal.EmployeeID, &sal.BaseSalary, &sal.Bonus, &sal.Deductions, &sal.NetSalary, &sal.PayDate, &sal.CreatedAt, &sal.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sal, nil
}

func (s *Store) CreateSalary(ctx context.Context, sal Salary) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salaries (employee_id, base_salary, bonus, deductions, net_salary, pay_date)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, sal.EmployeeID, sal.BaseSalary, sal.Bonus, sal.Deductions, sal.NetSalary, sal.PayDate).Scan(&id)
	return id, err
}

func (s *Store) UpdateSalary(ctx context.Context, id int64, sal Salary) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE salaries
    SET employee_id = $1, base_salary = $2, bonus = $3, deductions = $4, net_salary = $5, pay_date = $6, updated_at = now()
    WHERE id = $7
  `, sal.EmployeeID, sal.BaseSalary, sal.Bonus, sal.Deductions, sal.NetSalary, sal.PayDate, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteSalary(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM salaries WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListBenefitTypes(ctx context.Context) ([]BenefitType, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, created_at, updated_at
    FROM benefit_types
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BenefitType
	for rows.Next() {
		var bt BenefitType
		if err := rows.Scan(&bt.ID, &bt.Name, &bt.CreatedAt, &bt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, bt)
	}
	return out, rows.Err()
}

func (s *Store) GetBenefitType(ctx context.Context, id int64) (*BenefitType, error) {
	var bt BenefitType
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, created_at, updated_at
    FROM benefit_types
    WHERE id = $1
  `, id).Scan(&bt.ID, &bt.Name, &bt.CreatedAt, &bt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &bt, nil
}

func (s *Store) CreateBenefitType(ctx context.Context, bt BenefitType) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO benefit_types (name)
    VALUES ($1)
    RETURNING id
  `, bt.Name).Scan(&id)
	return id, err
}

func (s *Store) UpdateBenefitType(ctx context.Context, id int64, bt BenefitType) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE benefit_types
    SET name = $1, updated_at = now()
    WHERE id = $2
  `, bt.Name, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteBenefitType(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM benefit_types WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListBenefits(ctx context.Context, employeeID int64) ([]Benefit, error) {
	query := `
    SELECT id, employee_id, benefit_type_id, amount, start_date, end_date, is_active, created_at, updated_at
    FROM benefits
  `
	args := []any{}
	if employeeID > 0 {
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY id"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Benefit
	for rows.Next() {
		var b Benefit
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.BenefitTypeID, &b.Amount, &b.StartDate, &b.EndDate, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) GetBenefit(ctx context.Context, id int64) (*Benefit, error) {
	var b Benefit
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, benefit_type_id, amount, start_date, end_date, is_active, created_at, updated_at
    FROM benefits
    WHERE id = $1
  `, id).Scan(&b.ID, &b.EmployeeID, &b.BenefitTypeID, &b.Amount, &b.StartDate, &b.EndDate, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) CreateBenefit(ctx context.Context, b Benefit) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO benefits (employee_id, benefit_type_id, amount, start_date, end_date, is_active)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, b.EmployeeID, b.BenefitTypeID, b.Amount, b.StartDate, b.EndDate, b.IsActive).Scan(&id)
	return id, err
}

func (s *Store) UpdateBenefit(ctx context.Context, id int64, b Benefit) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE benefits
    SET employee_id = $1, benefit_type_id = $2, amount = $3, start_date = $4, end_date = $5, is_active = $6, updated_at = now()
    WHERE id = $7
  `, b.EmployeeID, b.BenefitTypeID, b.Amount, b.StartDate, b.EndDate, b.IsActive, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteBenefit(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM benefits WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// PayslipData joins a salary row with the employee name for PDF rendering.
type PayslipData struct {
	Salary
	EmployeeName string
}

func (s *Store) GetPayslipData(ctx context.Context, salaryID int64) (*PayslipData, error) {
	var p PayslipData
	err := s.DB.QueryRow(ctx, `
    SELECT s.id, s.employee_id, s.base_salary, s.bonus, s.deductions, s.net_salary, s.pay_date,
           s.created_at, s.updated_at, e.name
    FROM salaries s
    JOIN employees e ON e.id = s.employee_id
    WHERE s.id = $1
  `, salaryID).Scan(&p.ID, &p.EmployeeID, &p.BaseSalary, &p.Bonus, &p.Deductions, &p.NetSalary, &p.PayDate, &p.CreatedAt, &p.UpdatedAt, &p.EmployeeName)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
