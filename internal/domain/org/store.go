package org

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

func (s *Store) ListCompanyProfiles(ctx context.Context) ([]CompanyProfile, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name_en, COALESCE(tax_number,''), COALESCE(insurance_number,''), COALESCE(phone,''),
           COALESCE(email,''), COALESCE(website,''), COALESCE(address,''), is_deleted, created_at, updated_at
    FROM company_profiles
    ORDER BY name_en
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CompanyProfile
	for rows.Next() {
		var c CompanyProfile
		if err := rows.Scan(&c.ID, &c.NameEn, &c.TaxNumber, &c.InsuranceNumber, &c.Phone, &c.Email, &c.Website, &c.Address, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCompanyProfile returns the row regardless of its is_deleted flag;
// soft delete is an advisory filter, not a removal.
func (s *Store) GetCompanyProfile(ctx context.Context, id int64) (*CompanyProfile, error) {
	var c CompanyProfile
	err := s.DB.QueryRow(ctx, `
    SELECT id, name_en, COALESCE(tax_number,''), COALESCE(insurance_number,''), COALESCE(phone,''),
           COALESCE(email,''), COALESCE(website,''), COALESCE(address,''), is_deleted, created_at, updated_at
    FROM company_profiles
    WHERE id = $1
  `, id).Scan(&c.ID, &c.NameEn, &c.TaxNumber, &c.InsuranceNumber, &c.Phone, &c.Email, &c.Website, &c.Address, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateCompanyProfile(ctx context.Context, c CompanyProfile) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO company_profiles (name_en, tax_number, insurance_number, phone, email, website, address, is_deleted)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, c.NameEn, c.TaxNumber, c.InsuranceNumber, c.Phone, c.Email, c.Website, c.Address, c.IsDeleted).Scan(&id)
	return id, err
}

func (s *Store) UpdateCompanyProfile(ctx context.Context, id int64, c CompanyProfile) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE company_profiles
    SET name_en = $1, tax_number = $2, insurance_number = $3, phone = $4, email = $5,
        website = $6, address = $7, is_deleted = $8, updated_at = now()
    WHERE id = $9
  `, c.NameEn, c.TaxNumber, c.InsuranceNumber, c.Phone, c.Email, c.Website, c.Address, c.IsDeleted, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteCompanyProfile(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM company_profiles WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListBranches(ctx context.Context, companyID int64) ([]Branch, error) {
	query := `
    SELECT id, code, name_en, company_id, is_deleted, created_at, updated_at
    FROM branches
  `
	args := []any{}
	if companyID > 0 {
		query += " WHERE company_id = $1"
		args = append(args, companyID)
	}
	query += " ORDER BY code"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Branch
	for rows.Next() {
		var b Branch
		if err := rows.Scan(&b.ID, &b.Code, &b.NameEn, &b.CompanyID, &b.IsDeleted, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) GetBranch(ctx context.Context, id int64) (*Branch, error) {
	var b Branch
	err := s.DB.QueryRow(ctx, `
    SELECT id, code, name_en, company_id, is_deleted, created_at, updated_at
    FROM branches
    WHERE id = $1
  `, id).Scan(&b.ID, &b.Code, &b.NameEn, &b.CompanyID, &b.IsDeleted, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) CreateBranch(ctx context.Context, b Branch) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO branches (code, name_en, company_id, is_deleted)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, b.Code, b.NameEn, b.CompanyID, b.IsDeleted).Scan(&id)
	return id, err
}

func (s *Store) UpdateBranch(ctx context.Context, id int64, b Branch) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE branches
    SET code = $1, name_en = $2, company_id = $3, is_deleted = $4, updated_at = now()
    WHERE id = $5
  `, b.Code, b.NameEn, b.CompanyID, b.IsDeleted, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteBranch(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM branches WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListDepartments(ctx context.Context, branchID int64) ([]Department, error) {
	query := `
    SELECT id, name_en, COALESCE(name_ar,''), COALESCE(location,''), COALESCE(description,''),
           branch_id, manager_id, is_deleted, created_at, updated_at
    FROM departments
  `
	args := []any{}
	if branchID > 0 {
		query += " WHERE branch_id = $1"
		args = append(args, branchID)
	}
	query += " ORDER BY name_en"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.NameEn, &d.NameAr, &d.Location, &d.Description, &d.BranchID, &d.ManagerID, &d.IsDeleted, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	var d Department
	err := s.DB.QueryRow(ctx, `
    SELECT id, name_en, COALESCE(name_ar,''), COALESCE(location,''), COALESCE(description,''),
           branch_id, manager_id, is_deleted, created_at, updated_at
    FROM departments
    WHERE id = $1
  `, id).Scan(&d.ID, &d.NameEn, &d.NameAr, &d.Location, &d.Description, &d.BranchID, &d.ManagerID, &d.IsDeleted, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) CreateDepartment(ctx context.Context, d Department) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (name_en, name_ar, location, description, branch_id, manager_id, is_deleted)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, d.NameEn, d.NameAr, d.Location, d.Description, d.BranchID, d.ManagerID, d.IsDeleted).Scan(&id)
	return id, err
}

func (s *Store) UpdateDepartment(ctx context.Context, id int64, d Department) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE departments
    SET name_en = $1, name_ar = $2, location = $3, description = $4, branch_id = $5,
        manager_id = $6, is_deleted = $7, updated_at = now()
    WHERE id = $8
  `, d.NameEn, d.NameAr, d.Location, d.Description, d.BranchID, d.ManagerID, d.IsDeleted, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM departments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListJobs(ctx context.Context, departmentID int64) ([]Job, error) {
	query := `
    SELECT id, title, COALESCE(description,''), department_id, posted_date, COALESCE(status,''), created_at, updated_at
    FROM jobs
  `
	args := []any{}
	if departmentID > 0 {
		query += " WHERE department_id = $1"
		args = append(args, departmentID)
	}
	query += " ORDER BY title"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.DepartmentID, &j.PostedDate, &j.Status, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (s *Store) GetJob(ctx context.Context, id int64) (*Job, error) {
	var j Job
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, COALESCE(description,''), department_id, posted_date, COALESCE(status,''), created_at, updated_at
    FROM jobs
    WHERE id = $1
  `, id).Scan(&j.ID, &j.Title, &j.Description, &j.DepartmentID, &j.PostedDate, &j.Status, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *Store) CreateJob(ctx context.Context, j Job) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO jobs (title, description, department_id, posted_date, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, j.Title, j.Description, j.DepartmentID, j.PostedDate, j.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateJob(ctx context.Context, id int64, j Job) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE jobs
    SET title = $1, description = $2, department_id = $3, posted_date = $4, status = $5, updated_at = now()
    WHERE id = $6
  `, j.Title, j.Description, j.DepartmentID, j.PostedDate, j.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
