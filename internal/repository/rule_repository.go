package repository

import (
	"context"

	"skill-path/internal/database"
	"skill-path/internal/domain/rules"
)

// RuleRepository reads the persisted rule table rows for one source.
// Rows come back in their raw serialized form; parsing and skipping of
// malformed rows belongs to the rule store.
type RuleRepository interface {
	FindBySource(ctx context.Context, src rules.Source) ([]rules.Row, error)
	ReplaceSource(ctx context.Context, src rules.Source, rows []rules.Row) (int, error)
}

type PostgresRuleRepository struct {
	db database.DB
}

func NewPostgresRuleRepository(db database.DB) *PostgresRuleRepository {
	return &PostgresRuleRepository{db: db}
}

func (r *PostgresRuleRepository) FindBySource(ctx context.Context, src rules.Source) ([]rules.Row, error) {
	rs, err := r.db.Query(
		ctx,
		`SELECT antecedent, consequent, support, confidence, lift FROM association_rules WHERE source = $1 ORDER BY id ASC`,
		string(src),
	)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	out := make([]rules.Row, 0)
	for rs.Next() {
		var row rules.Row
		if err := rs.Scan(&row.Antecedent, &row.Consequent, &row.Support, &row.Confidence, &row.Lift); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceSource swaps the stored rows of one source in a single
// transaction. Used by the import tool; the serving process never
// writes rules.
func (r *PostgresRuleRepository) ReplaceSource(ctx context.Context, src rules.Source, rows []rules.Row) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM association_rules WHERE source = $1`, string(src)); err != nil {
		return 0, err
	}

	inserted := 0
	for _, row := range rows {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO association_rules (source, antecedent, consequent, support, confidence, lift)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			string(src), row.Antecedent, row.Consequent, row.Support, row.Confidence, row.Lift,
		); err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}
