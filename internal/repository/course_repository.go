package repository

import (
	"context"

	"skill-fit/internal/database"

	"github.com/google/uuid"
)

type Course struct {
	ID       uuid.UUID
	Title    string
	Provider string
	URL      string
}

// CourseUpsert is one scraped catalog entry plus the skills it teaches.
type CourseUpsert struct {
	ExternalID string
	Title      string
	Provider   string
	URL        string
	SkillNames []string
	Relevance  int
}

type CourseRepository interface {
	// CoursesForSkills satisfies fitness.CourseCatalog: candidate course ids
	// grouped per skill, best candidates first.
	CoursesForSkills(ctx context.Context, skillIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Course, error)
	UpsertCourses(ctx context.Context, items []CourseUpsert) (int, int, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) CoursesForSkills(ctx context.Context, skillIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	if len(skillIDs) == 0 {
		return map[uuid.UUID][]uuid.UUID{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT cs.skill_id, cs.course_id
		 FROM course_skills cs
		 JOIN courses c ON c.id = cs.course_id
		 WHERE cs.skill_id = ANY($1)
		 ORDER BY cs.skill_id, cs.relevance DESC, c.title ASC`,
		skillIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]uuid.UUID, len(skillIDs))
	for rows.Next() {
		var skillID, courseID uuid.UUID
		if err := rows.Scan(&skillID, &courseID); err != nil {
			return nil, err
		}
		out[skillID] = append(out[skillID], courseID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCourseRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Course, error) {
	if len(ids) == 0 {
		return []Course{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, provider, url FROM courses WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Course, 0, len(ids))
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Provider, &c.URL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertCourses writes one scrape batch transactionally and returns the
// course and skill-link counts. Skills referenced by name are created on
// first sight.
func (r *PostgresCourseRepository) UpsertCourses(ctx context.Context, items []CourseUpsert) (int, int, error) {
	if len(items) == 0 {
		return 0, 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var courses, links int
	for _, it := range items {
		if it.ExternalID == "" || it.Title == "" {
			continue
		}

		var courseID uuid.UUID
		err := tx.QueryRow(ctx,
			`INSERT INTO courses (id, external_id, title, provider, url)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (provider, external_id)
			 DO UPDATE SET title = EXCLUDED.title, url = EXCLUDED.url, updated_at = now()
			 RETURNING id`,
			uuid.New(), it.ExternalID, it.Title, it.Provider, it.URL,
		).Scan(&courseID)
		if err != nil {
			return 0, 0, err
		}
		courses++

		for _, name := range it.SkillNames {
			if name == "" {
				continue
			}

			var skillID uuid.UUID
			err := tx.QueryRow(ctx,
				`INSERT INTO skills (id, name) VALUES ($1, $2)
				 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
				 RETURNING id`,
				uuid.New(), name,
			).Scan(&skillID)
			if err != nil {
				return 0, 0, err
			}

			if _, err := tx.Exec(ctx,
				`INSERT INTO course_skills (course_id, skill_id, relevance)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (course_id, skill_id)
				 DO UPDATE SET relevance = EXCLUDED.relevance`,
				courseID, skillID, it.Relevance,
			); err != nil {
				return 0, 0, err
			}
			links++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, err
	}
	return courses, links, nil
}
