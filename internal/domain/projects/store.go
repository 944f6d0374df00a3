package projects

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

func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, start_date, end_date, manager_id, created_at, updated_at
    FROM projects
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.ManagerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetProject(ctx context.Context, id int64) (*Project, error) {
	var p Project
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, start_date, end_date, manager_id, created_at, updated_at
    FROM projects
    WHERE id = $1
  `, id).Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.ManagerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProject(ctx context.Context, p Project) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO projects (name, start_date, end_date, manager_id)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, p.Name, p.StartDate, p.EndDate, p.ManagerID).Scan(&id)
	return id, err
}

func (s *Store) UpdateProject(ctx context.Context, id int64, p Project) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE projects
    SET name = $1, start_date = $2, end_date = $3, manager_id = $4, updated_at = now()
    WHERE id = $5
  `, p.Name, p.StartDate, p.EndDate, p.ManagerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListAssignments(ctx context.Context, projectID, employeeID int64) ([]Assignment, error) {
	query := `
    SELECT id, project_id, employee_id, COALESCE(role_in_project,''), hours_worked, COALESCE(status,''), created_at, updated_at
    FROM project_assignments
  `
	args := []any{}
	switch {
	case projectID > 0 && employeeID > 0:
		query += " WHERE project_id = $1 AND employee_id = $2"
		args = append(args, projectID, employeeID)
	case projectID > 0:
		query += " WHERE project_id = $1"
		args = append(args, projectID)
	case employeeID > 0:
		query += " WHERE employee_id = $1"
		args = append(args, employeeID)
	}
	query += " ORDER BY id"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.EmployeeID, &a.RoleInProject, &a.HoursWorked, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetAssignment(ctx context.Context, id int64) (*Assignment, error) {
	var a Assignment
	err := s.DB.QueryRow(ctx, `
    SELECT id, project_id, employee_id, COALESCE(role_in_project,''), hours_worked, COALESCE(status,''), created_at, updated_at
    FROM project_assignments
    WHERE id = $1
  `, id).Scan(&a.ID, &a.ProjectID, &a.EmployeeID, &a.RoleInProject, &a.HoursWorked, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateAssignment(ctx context.Context, a Assignment) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO project_assignments (project_id, employee_id, role_in_project, hours_worked, status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, a.ProjectID, a.EmployeeID, a.RoleInProject, a.HoursWorked, a.Status).Scan(&id)
	return id, err
}

func (s *Store) UpdateAssignment(ctx context.Context, id int64, a Assignment) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE project_assignments
    SET project_id = $1, employee_id = $2, role_in_project = $3, hours_worked = $4, status = $5, updated_at = now()
    WHERE id = $6
  `, a.ProjectID, a.EmployeeID, a.RoleInProject, a.HoursWorked, a.Status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteAssignment(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM project_assignments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
