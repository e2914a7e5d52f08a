package app

import (
	"context"
	"log"
	"time"

	"skill-path/internal/config"
	"skill-path/internal/database"
	"skill-path/internal/database/migration"
	dbpostgres "skill-path/internal/database/postgres"
	"skill-path/internal/database/seeder"
	"skill-path/internal/delivery/http/handler"
	"skill-path/internal/domain/ensemble"
	"skill-path/internal/domain/rules"
	"skill-path/internal/infrastructure/cache"
	"skill-path/internal/pkg/jwt"
	"skill-path/internal/repository"
	"skill-path/internal/rulesource"
	"skill-path/internal/usecase"
)

// Container wires the engine together. The database and the cache are
// both optional: without a database there is no auth and no taxonomy,
// without Redis every path is computed fresh. The rule store is always
// built, possibly empty, and the scorer degrades with it.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Store  *rules.Store
	Scorer *ensemble.Scorer

	JWT    jwt.Service
	Auth   usecase.AuthUsecase
	Gap    usecase.GapUsecase
	Path   usecase.LearningPathUsecase
	Scores usecase.ModelScoresUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Logger: logger}

	if cfg.Database.Enabled() {
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			logger.Printf("[App] database unavailable, continuing without it: %v", err)
		} else {
			if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
				_ = db.Close()
				return nil, err
			}
			if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
			c.DB = db
		}
	} else {
		logger.Printf("[App] no database configured, auth and taxonomy disabled")
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)

	c.Store = buildRuleStore(ctx, cfg.Rules, c.DB, logger)
	c.Scorer = ensemble.NewScorer(c.Store)
	if !c.Scorer.Available() {
		logger.Printf("[App] no rule tables loaded, serving in gap-only mode")
	}

	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	var taxonomy usecase.TaxonomyRepository
	if c.DB != nil {
		taxonomy = repository.NewPostgresTaxonomyRepository(c.DB)
		c.Auth = usecase.NewAuthUsecase(repository.NewPostgresUserRepository(c.DB), c.JWT)
	}

	c.Gap = usecase.NewGapUsecase()
	c.Scores = usecase.NewModelScoresUsecase(c.Scorer)
	c.Path = usecase.NewLearningPathUsecase(c.Scorer, taxonomy, c.Cache, cfg.Redis.TTL, logger)

	return c, nil
}

// buildRuleStore loads each source from the database when available,
// falling back to the configured CSV export otherwise. A source that
// yields nothing is simply absent; coverage degrades instead of the
// startup failing.
func buildRuleStore(ctx context.Context, cfg config.RulesConfig, db database.DB, logger *log.Logger) *rules.Store {
	store := rules.NewStore()

	csvBySource := map[rules.Source]string{
		rules.SourceSkill:    cfg.SkillRulesCSV,
		rules.SourceCategory: cfg.CategoryRulesCSV,
		rules.SourceCombined: cfg.CombinedRulesCSV,
	}

	var repo repository.RuleRepository
	if db != nil {
		repo = repository.NewPostgresRuleRepository(db)
	}

	for _, src := range rules.AllSources {
		rows := loadSourceRows(ctx, repo, src, csvBySource[src], logger)
		if len(rows) == 0 {
			continue
		}
		stats := store.Load(src, rows)
		logger.Printf("[RuleStore] source %s: loaded %d rules, skipped %d rows", src, stats.Loaded, stats.Skipped)
	}

	return store
}

func loadSourceRows(ctx context.Context, repo repository.RuleRepository, src rules.Source, csvPath string, logger *log.Logger) []rules.Row {
	if repo != nil {
		rows, err := repo.FindBySource(ctx, src)
		if err != nil {
			logger.Printf("[RuleStore] source %s: database read failed: %v", src, err)
		} else if len(rows) > 0 {
			return rows
		}
	}

	if csvPath == "" {
		return nil
	}
	rows, err := rulesource.ReadFile(csvPath)
	if err != nil {
		logger.Printf("[RuleStore] source %s: csv %s unreadable, skipping: %v", src, csvPath, err)
		return nil
	}
	return rows
}

// Health builds the health handler over the container's live backends.
func (c *Container) Health() *handler.HealthHandler {
	var db handler.Pinger
	if c.DB != nil {
		db = c.DB
	}
	var cachePinger handler.Pinger
	if c.Cache != nil {
		cachePinger = c.Cache
	}
	return handler.NewHealthHandler(c.Store, db, cachePinger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
