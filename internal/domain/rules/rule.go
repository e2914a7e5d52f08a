// Package rules holds the pre-mined association rule tables and the
// subset-containment queries the ensemble scorer runs against them.
// Tables are loaded once at startup and immutable afterwards, so a
// single Store is safely shared across concurrent requests.
package rules

import "skill-path/internal/domain/skillset"

// Source identifies one of the three mined rule tables.
type Source string

const (
	// SourceSkill is the skill-level table (highest specificity).
	SourceSkill Source = "A1"
	// SourceCategory is the category-level table (lowest specificity).
	SourceCategory Source = "A2"
	// SourceCombined is the combined skill+category table.
	SourceCombined Source = "A3"
)

// AllSources lists the known sources in descending specificity order.
// The ensemble uses this order to break ties between sources whose mean
// confidence is equal.
var AllSources = []Source{SourceSkill, SourceCombined, SourceCategory}

// Specificity ranks a source for tie-breaking. Skill-level rules beat
// combined rules, which beat category-level rules. Unknown sources rank
// last.
func (s Source) Specificity() int {
	switch s {
	case SourceSkill:
		return 3
	case SourceCombined:
		return 2
	case SourceCategory:
		return 1
	default:
		return 0
	}
}

func (s Source) Valid() bool {
	return s.Specificity() > 0
}

// Rule is a single mined association rule. Immutable once loaded.
type Rule struct {
	Antecedent skillset.Set
	Consequent skillset.Set
	Support    float64
	Confidence float64
	Lift       float64
	Source     Source
}

// Row is the raw tabular form a rule arrives in, before itemset parsing.
type Row struct {
	Antecedent string
	Consequent string
	Support    float64
	Confidence float64
	Lift       float64
}
