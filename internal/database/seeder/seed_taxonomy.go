package seeder

import (
	"context"
	"fmt"

	"skill-path/internal/database"
)

// TaxonomySeeder installs the default skill -> category mapping. The
// taxonomy is only used for phase grouping and labeling, so missing
// entries are harmless.
type TaxonomySeeder struct{}

func (TaxonomySeeder) Name() string { return "taxonomy" }

func (TaxonomySeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Skill    string
		Category string
	}{
		{Skill: "python", Category: "programming language"},
		{Skill: "javascript", Category: "programming language"},
		{Skill: "typescript", Category: "programming language"},
		{Skill: "go", Category: "programming language"},
		{Skill: "rust", Category: "programming language"},
		{Skill: "java", Category: "programming language"},
		{Skill: "sql", Category: "database"},
		{Skill: "postgresql", Category: "database"},
		{Skill: "mysql", Category: "database"},
		{Skill: "mongodb", Category: "database"},
		{Skill: "redis", Category: "database"},
		{Skill: "docker", Category: "devops"},
		{Skill: "kubernetes", Category: "devops"},
		{Skill: "terraform", Category: "devops"},
		{Skill: "git", Category: "tooling"},
		{Skill: "linux", Category: "tooling"},
		{Skill: "aws", Category: "cloud"},
		{Skill: "gcp", Category: "cloud"},
		{Skill: "azure", Category: "cloud"},
		{Skill: "machine learning", Category: "data science"},
		{Skill: "deep learning", Category: "data science"},
		{Skill: "tensorflow", Category: "data science"},
		{Skill: "pytorch", Category: "data science"},
		{Skill: "pandas", Category: "data science"},
		{Skill: "spark", Category: "data engineering"},
		{Skill: "kafka", Category: "data engineering"},
		{Skill: "airflow", Category: "data engineering"},
		{Skill: "react", Category: "frontend"},
		{Skill: "vue", Category: "frontend"},
		{Skill: "node.js", Category: "backend"},
		{Skill: "django", Category: "backend"},
		{Skill: "flask", Category: "backend"},
		{Skill: "communication", Category: "soft skill"},
		{Skill: "problem solving", Category: "soft skill"},
		{Skill: "agile", Category: "process"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skill_categories (skill, category) VALUES ($1, $2) ON CONFLICT (skill) DO NOTHING`,
			it.Skill,
			it.Category,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
