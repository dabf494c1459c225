package repository

import (
	"context"

	"skill-fit/internal/database"

	"github.com/google/uuid"
)

type EmployeeSkill struct {
	SkillID   uuid.UUID
	SkillName string
	Level     float64
}

type SkillProfileRepository interface {
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	FindByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeSkill, error)
}

type PostgresSkillProfileRepository struct {
	db database.DB
}

func NewPostgresSkillProfileRepository(db database.DB) *PostgresSkillProfileRepository {
	return &PostgresSkillProfileRepository{db: db}
}

func (r *PostgresSkillProfileRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)`,
		employeeID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillProfileRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]EmployeeSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT es.skill_id, s.name, es.level
		 FROM employee_skills es
		 JOIN skills s ON s.id = es.skill_id
		 WHERE es.employee_id = $1
		 ORDER BY s.name ASC`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployeeSkill, 0)
	for rows.Next() {
		var it EmployeeSkill
		if err := rows.Scan(&it.SkillID, &it.SkillName, &it.Level); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
