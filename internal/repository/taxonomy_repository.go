package repository

import (
	"context"

	"skill-path/internal/database"
	"skill-path/internal/domain/skillset"
)

// TaxonomyRepository reads the external skill -> category mapping.
type TaxonomyRepository interface {
	FindAll(ctx context.Context) (map[string]string, error)
}

type PostgresTaxonomyRepository struct {
	db database.DB
}

func NewPostgresTaxonomyRepository(db database.DB) *PostgresTaxonomyRepository {
	return &PostgresTaxonomyRepository{db: db}
}

func (r *PostgresTaxonomyRepository) FindAll(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.Query(ctx, `SELECT skill, category FROM skill_categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var skill, category string
		if err := rows.Scan(&skill, &category); err != nil {
			return nil, err
		}
		skill = skillset.NormalizeToken(skill)
		if skill == "" {
			continue
		}
		out[skill] = skillset.NormalizeToken(category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
