package usecase

import (
	"context"
	"log"
	"time"

	"skill-path/internal/domain/ensemble"
	"skill-path/internal/domain/gap"
	"skill-path/internal/domain/path"
	"skill-path/internal/domain/skillset"
)

// TaxonomyRepository supplies the external skill -> category mapping.
// It is used only for phase grouping and labeling, never for scoring;
// an error just means recommendations carry no category.
type TaxonomyRepository interface {
	FindAll(ctx context.Context) (map[string]string, error)
}

// PathParams are the caller-tunable knobs for one path build. Zero
// values fall back to the defaults.
type PathParams struct {
	UserSkills       []string
	TargetSkills     []string
	MaxPhases        int
	SkillsPerPhase   int
	WeightImportance float64
	WeightModel      float64
}

func (p PathParams) withDefaults() PathParams {
	if p.MaxPhases <= 0 {
		p.MaxPhases = path.DefaultMaxPhases
	}
	if p.SkillsPerPhase <= 0 {
		p.SkillsPerPhase = path.DefaultSkillsPerPhase
	}
	if p.WeightImportance == 0 && p.WeightModel == 0 {
		p.WeightImportance = path.DefaultWeights.Importance
		p.WeightModel = path.DefaultWeights.Model
	}
	return p
}

type LearningPathUsecase interface {
	BuildLearningPath(ctx context.Context, p PathParams) (path.Path, error)
}

// LearningPath orchestrates gap analysis, ensemble scoring, and phase
// building. Nothing here is allowed to be fatal: an unavailable
// ensemble degrades to gap-only ranking, a missing taxonomy drops
// category labels, and a broken cache is bypassed.
type LearningPath struct {
	scorer   *ensemble.Scorer
	taxonomy TaxonomyRepository
	cache    PathCache
	cacheTTL time.Duration
	logger   *log.Logger
}

func NewLearningPathUsecase(scorer *ensemble.Scorer, taxonomy TaxonomyRepository, cache PathCache, cacheTTL time.Duration, logger *log.Logger) *LearningPath {
	if logger == nil {
		logger = log.Default()
	}
	return &LearningPath{scorer: scorer, taxonomy: taxonomy, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (u *LearningPath) BuildLearningPath(ctx context.Context, p PathParams) (path.Path, error) {
	p = p.withDefaults()

	key := ""
	if u.cache != nil {
		key = LearningPathCacheKey(p)
		var cached path.Path
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Printf("[LearningPath] cache read failed, bypassing: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	userSet := skillset.FromSlice(p.UserSkills)
	targetSet := skillset.FromSlice(p.TargetSkills)

	gapResult := gap.Analyze(userSet, targetSet)
	missing := skillset.FromSlice(gapResult.Missing)

	var scores map[string]ensemble.ScoreDetail
	degraded := false
	if u.scorer != nil && u.scorer.Available() {
		scores = u.scorer.SkillModelScores(userSet, missing)
	} else {
		degraded = len(gapResult.Missing) > 0
	}

	recs := path.Prioritize(
		gapResult.Missing,
		gapResult.BaseImportance,
		scores,
		u.loadTaxonomy(ctx),
		path.Weights{Importance: p.WeightImportance, Model: p.WeightModel},
		u.logger,
	)

	built := path.Build(recs, path.Options{
		MaxPhases:      p.MaxPhases,
		SkillsPerPhase: p.SkillsPerPhase,
	}, degraded)

	if u.cache != nil && key != "" {
		if err := u.cache.SetJSON(ctx, key, built, u.cacheTTL); err != nil {
			u.logger.Printf("[LearningPath] cache write failed: %v", err)
		}
	}

	return built, nil
}

func (u *LearningPath) loadTaxonomy(ctx context.Context) map[string]string {
	if u.taxonomy == nil {
		return nil
	}
	m, err := u.taxonomy.FindAll(ctx)
	if err != nil {
		u.logger.Printf("[LearningPath] taxonomy unavailable, skipping categories: %v", err)
		return nil
	}
	return m
}
