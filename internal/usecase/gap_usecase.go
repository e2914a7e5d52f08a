package usecase

import (
	"skill-path/internal/domain/gap"
	"skill-path/internal/domain/skillset"
)

// GapUsecase exposes the standalone gap analysis. It is pure and never
// fails: empty user or target sets yield a well-formed empty result.
type GapUsecase interface {
	AnalyzeGap(userSkills, targetSkills []string) gap.Result
}

type Gap struct{}

func NewGapUsecase() *Gap {
	return &Gap{}
}

func (u *Gap) AnalyzeGap(userSkills, targetSkills []string) gap.Result {
	return gap.Analyze(skillset.FromSlice(userSkills), skillset.FromSlice(targetSkills))
}
