// Command ruleimport loads the mined rule table CSV exports into
// Postgres so the server can serve them without the files. Each
// configured source replaces its previous rows in one transaction.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"skill-path/internal/config"
	"skill-path/internal/database/migration"
	dbpostgres "skill-path/internal/database/postgres"
	"skill-path/internal/domain/rules"
	"skill-path/internal/repository"
	"skill-path/internal/rulesource"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Database.Enabled() {
		log.Fatal("no database configured; set DB_HOST and DB_NAME")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	repo := repository.NewPostgresRuleRepository(db)

	csvBySource := map[rules.Source]string{
		rules.SourceSkill:    cfg.Rules.SkillRulesCSV,
		rules.SourceCategory: cfg.Rules.CategoryRulesCSV,
		rules.SourceCombined: cfg.Rules.CombinedRulesCSV,
	}

	imported := 0
	for _, src := range rules.AllSources {
		path := csvBySource[src]
		if path == "" {
			log.Printf("source %s: no csv configured, skipping", src)
			continue
		}

		rows, err := rulesource.ReadFile(path)
		if err != nil {
			log.Fatalf("source %s: failed to read %s: %v", src, path, err)
		}

		n, err := repo.ReplaceSource(ctx, src, rows)
		if err != nil {
			log.Fatalf("source %s: failed to import: %v", src, err)
		}
		log.Printf("source %s: imported %d rows from %s", src, n, path)
		imported += n
	}

	log.Printf("done, %d rows imported", imported)
}
