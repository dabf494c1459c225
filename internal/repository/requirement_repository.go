package repository

import (
	"context"

	"skill-fit/internal/database"

	"github.com/google/uuid"
)

type PositionRequirement struct {
	SkillID       uuid.UUID
	SkillName     string
	RequiredLevel float64
	Weight        float64
	IsRequired    bool
}

type RequirementRepository interface {
	FindByPositionID(ctx context.Context, positionID uuid.UUID) ([]PositionRequirement, error)
	FindByPositionIDs(ctx context.Context, positionIDs []uuid.UUID) (map[uuid.UUID][]PositionRequirement, error)
}

type PostgresRequirementRepository struct {
	db database.DB
}

func NewPostgresRequirementRepository(db database.DB) *PostgresRequirementRepository {
	return &PostgresRequirementRepository{db: db}
}

func (r *PostgresRequirementRepository) FindByPositionID(ctx context.Context, positionID uuid.UUID) ([]PositionRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT pr.skill_id, s.name, pr.required_level, pr.weight, pr.is_required
		 FROM position_requirements pr
		 JOIN skills s ON s.id = pr.skill_id
		 WHERE pr.position_id = $1
		 ORDER BY s.name ASC`,
		positionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PositionRequirement, 0)
	for rows.Next() {
		var it PositionRequirement
		if err := rows.Scan(&it.SkillID, &it.SkillName, &it.RequiredLevel, &it.Weight, &it.IsRequired); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRequirementRepository) FindByPositionIDs(ctx context.Context, positionIDs []uuid.UUID) (map[uuid.UUID][]PositionRequirement, error) {
	if len(positionIDs) == 0 {
		return map[uuid.UUID][]PositionRequirement{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT pr.position_id, pr.skill_id, s.name, pr.required_level, pr.weight, pr.is_required
		 FROM position_requirements pr
		 JOIN skills s ON s.id = pr.skill_id
		 WHERE pr.position_id = ANY($1)
		 ORDER BY pr.position_id, s.name ASC`,
		positionIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]PositionRequirement, len(positionIDs))
	for rows.Next() {
		var posID uuid.UUID
		var it PositionRequirement
		if err := rows.Scan(&posID, &it.SkillID, &it.SkillName, &it.RequiredLevel, &it.Weight, &it.IsRequired); err != nil {
			return nil, err
		}
		out[posID] = append(out[posID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
