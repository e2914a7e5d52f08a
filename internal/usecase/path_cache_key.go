package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"skill-path/internal/domain/skillset"
)

type pathCacheKeyInput struct {
	UserSkills       []string `json:"user_skills"`
	TargetSkills     []string `json:"target_skills"`
	MaxPhases        int      `json:"max_phases"`
	SkillsPerPhase   int      `json:"skills_per_phase"`
	WeightImportance float64  `json:"weight_importance"`
	WeightModel      float64  `json:"weight_model"`
}

// LearningPathCacheKey derives a deterministic cache key from the
// normalized request. Two requests with the same skills in different
// order or casing share a key.
func LearningPathCacheKey(p PathParams) string {
	in := pathCacheKeyInput{
		UserSkills:       skillset.FromSlice(p.UserSkills).Sorted(),
		TargetSkills:     skillset.FromSlice(p.TargetSkills).Sorted(),
		MaxPhases:        p.MaxPhases,
		SkillsPerPhase:   p.SkillsPerPhase,
		WeightImportance: p.WeightImportance,
		WeightModel:      p.WeightModel,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "path:build:" + hex.EncodeToString(sum[:])
}
