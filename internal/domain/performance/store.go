package performance

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

func (s *Store) ListCriteria(ctx context.Context) ([]EvaluationCriterion, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, description, weight, created_at, updated_at
    FROM evaluation_criteria
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EvaluationCriterion
	for rows.Next() {
		var c EvaluationCriterion
		if err := rows.Scan(&c.ID, &c.Description, &c.Weight, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) GetCriterion(ctx context.Context, id int64) (*EvaluationCriterion, error) {
	var c EvaluationCriterion
	err := s.DB.QueryRow(ctx, `
    SELECT id, description, weight, created_at, updated_at
    FROM evaluation_criteria
    WHERE id = $1
  `, id).Scan(&c.ID, &c.Description, &c.Weight, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateCriterion(ctx context.Context, c EvaluationCriterion) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO evaluation_criteria (description, weight)
    VALUES ($1,$2)
    RETURNING id
  `, c.Description, c.Weight).Scan(&id)
	return id, err
}

func (s *Store) UpdateCriterion(ctx context.Context, id int64, c EvaluationCriterion) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE evaluation_criteria
    SET description = $1, weight = $2, updated_at = now()
    WHERE id = $3
  `, c.Description, c.Weight, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteCriterion(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM evaluation_criteria WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) ListEvaluations(ctx context.Context, employeeID int64) ([]Evaluation, error) {
	query := `
    SELECT id, employee_id, criterion_id, date, score, COALESCE(comments,''), created_at, updated_at
    FROM performance_evaluations
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

	var out []Evaluation
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.CriterionID, &e.Date, &e.Score, &e.Comments, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetEvaluation(ctx context.Context, id int64) (*Evaluation, error) {
	var e Evaluation
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, criterion_id, date, score, COALESCE(comments,''), created_at, updated_at
    FROM performance_evaluations
    WHERE id = $1
  `, id).Scan(&e.ID, &e.EmployeeID, &e.CriterionID, &e.Date, &e.Score, &e.Comments, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) CreateEvaluation(ctx context.Context, e Evaluation) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_evaluations (employee_id, criterion_id, date, score, comments)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, e.EmployeeID, e.CriterionID, e.Date, e.Score, e.Comments).Scan(&id)
	return id, err
}

func (s *Store) UpdateEvaluation(ctx context.Context, id int64, e Evaluation) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE performance_evaluations
    SET employee_id = $1, criterion_id = $2, date = $3, score = $4, comments = $5, updated_at = now()
    WHERE id = $6
  `, e.EmployeeID, e.CriterionID, e.Date, e.Score, e.Comments, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteEvaluation(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM performance_evaluations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
