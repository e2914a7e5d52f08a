// Package gap computes the difference between a user's skill set and a
// target role's skill set, with a heuristic importance per missing
// skill. It is deterministic and rule-independent, so it stays fully
// functional as a standalone fallback when no rule tables are loaded.
package gap

import "skill-path/internal/domain/skillset"

// Result of one gap analysis. Matching and Missing partition the target
// set; Extra lists user skills the target does not require (purely
// informational).
type Result struct {
	Matching []string
	Missing  []string
	Extra    []string
	Coverage float64

	// BaseImportance maps every missing skill to its heuristic
	// importance in [0,1], independent of rule evidence.
	BaseImportance map[string]float64
}

// Analyze computes matching/missing sets, coverage, and base importance
// per missing skill. An empty target yields zero coverage and no
// missing skills, never an error.
func Analyze(userSkills, targetSkills skillset.Set) Result {
	matching := userSkills.Intersect(targetSkills)
	missing := targetSkills.Diff(userSkills)
	extra := userSkills.Diff(targetSkills)

	coverage := 0.0
	if targetSkills.Len() > 0 {
		coverage = float64(matching.Len()) / float64(targetSkills.Len())
	}

	importance := make(map[string]float64, missing.Len())
	for skill := range missing {
		importance[skill] = BaseImportance(skill)
	}

	return Result{
		Matching:       matching.Sorted(),
		Missing:        missing.Sorted(),
		Extra:          extra.Sorted(),
		Coverage:       coverage,
		BaseImportance: importance,
	}
}

// BaseImportance starts every missing skill at a fixed baseline and
// adds clamped boosts for foundational and modern vocabulary
// membership.
func BaseImportance(skill string) float64 {
	score := importanceBaseline
	if foundationalSkills.Contains(skill) {
		score += foundationalBoost
	}
	if modernSkills.Contains(skill) {
		score += modernBoost
	}
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// IsFoundational reports foundational vocabulary membership; the path
// builder cites it in explanations.
func IsFoundational(skill string) bool {
	return foundationalSkills.Contains(skill)
}

// IsModern reports modern/high-demand vocabulary membership.
func IsModern(skill string) bool {
	return modernSkills.Contains(skill)
}
