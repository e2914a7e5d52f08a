package usecase

import (
	"skill-path/internal/domain/ensemble"
	"skill-path/internal/domain/skillset"
)

// ModelScoresUsecase exposes the raw ensemble verdicts for diagnostic
// and advanced use. With no rule tables loaded it returns an entry with
// a zero score and no sources for every candidate, never an error.
type ModelScoresUsecase interface {
	SkillModelScores(userSkills, candidateSkills []string) map[string]ensemble.ScoreDetail
}

type ModelScores struct {
	scorer *ensemble.Scorer
}

func NewModelScoresUsecase(scorer *ensemble.Scorer) *ModelScores {
	return &ModelScores{scorer: scorer}
}

func (u *ModelScores) SkillModelScores(userSkills, candidateSkills []string) map[string]ensemble.ScoreDetail {
	return u.scorer.SkillModelScores(skillset.FromSlice(userSkills), skillset.FromSlice(candidateSkills))
}
