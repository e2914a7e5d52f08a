package path

import (
	"fmt"
	"math"
	"sort"
)

// Phase is one ordered group of recommendations.
type Phase struct {
	Number        int
	Title         string
	Difficulty    string
	Skills        []Recommendation
	Categories    []string
	DurationWeeks int
}

// Path is the complete phased learning plan.
type Path struct {
	Phases        []Phase
	TotalWeeks    int
	ModelCoverage float64
	Summary       string
	Degraded      bool
}

// Options control phase partitioning. Zero values fall back to the
// defaults.
type Options struct {
	MaxPhases      int
	SkillsPerPhase int
	WeeksPerSkill  float64
}

const (
	DefaultMaxPhases      = 5
	DefaultSkillsPerPhase = 3
	// Static heuristic, not derived from the rule data.
	DefaultWeeksPerSkill = 1.5
)

func (o Options) withDefaults() Options {
	if o.MaxPhases <= 0 {
		o.MaxPhases = DefaultMaxPhases
	}
	if o.SkillsPerPhase <= 0 {
		o.SkillsPerPhase = DefaultSkillsPerPhase
	}
	if o.WeeksPerSkill <= 0 {
		o.WeeksPerSkill = DefaultWeeksPerSkill
	}
	return o
}

var difficultyLabels = []string{"Foundation", "Core", "Intermediate", "Advanced", "Expert"}

var phaseTitles = []string{
	"Foundation Skills",
	"Core Competencies",
	"Intermediate Skills",
	"Advanced Techniques",
	"Expert Level",
}

// Build partitions the ranked recommendations into at most
// opts.MaxPhases phases of at most opts.SkillsPerPhase skills each;
// phase 1 receives the highest-scoring skills. When the gap exceeds
// MaxPhases x SkillsPerPhase the final phase absorbs the overflow, so
// every missing skill lands in exactly one phase.
//
// An empty recommendation list yields a zero-phase path with a success
// message, not an error. degraded marks a path built without any rule
// evidence (ensemble unavailable); the summary says so.
func Build(recs []Recommendation, opts Options, degraded bool) Path {
	opts = opts.withDefaults()

	if len(recs) == 0 {
		return Path{
			Phases:        []Phase{},
			ModelCoverage: 1.0,
			Summary:       "You already have every skill the target role requires. No learning phases needed.",
		}
	}

	phases := make([]Phase, 0, opts.MaxPhases)
	for start := 0; start < len(recs); {
		number := len(phases) + 1
		end := start + opts.SkillsPerPhase
		if number == opts.MaxPhases || end > len(recs) {
			end = len(recs)
		}

		skills := recs[start:end:end]
		phases = append(phases, Phase{
			Number:        number,
			Title:         labelFor(phaseTitles, number),
			Difficulty:    labelFor(difficultyLabels, number),
			Skills:        skills,
			Categories:    distinctCategories(skills),
			DurationWeeks: int(math.Round(float64(len(skills)) * opts.WeeksPerSkill)),
		})
		start = end
	}

	totalWeeks := 0
	for _, p := range phases {
		totalWeeks += p.DurationWeeks
	}

	withEvidence := 0
	for _, r := range recs {
		if len(r.Sources) > 0 {
			withEvidence++
		}
	}
	coverage := float64(withEvidence) / float64(len(recs))

	summary := fmt.Sprintf(
		"%d missing skills organized into %d phases (~%d weeks). %.0f%% of skills carry association-rule evidence.",
		len(recs), len(phases), totalWeeks, coverage*100,
	)
	if degraded {
		summary += " Rule tables were unavailable; ranking used gap analysis only."
	}

	return Path{
		Phases:        phases,
		TotalWeeks:    totalWeeks,
		ModelCoverage: coverage,
		Summary:       summary,
		Degraded:      degraded,
	}
}

// labelFor clamps the phase number into the label vocabulary, so a
// six-phase plan still ends at Expert and a two-phase plan stops at
// Core.
func labelFor(labels []string, number int) string {
	idx := number - 1
	if idx >= len(labels) {
		idx = len(labels) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return labels[idx]
}

func distinctCategories(recs []Recommendation) []string {
	set := make(map[string]struct{})
	for _, r := range recs {
		if r.Category == "" {
			continue
		}
		set[r.Category] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
