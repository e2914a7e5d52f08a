// Package path merges gap analysis and ensemble scores into a ranked,
// phased learning plan. Every function is pure given a fixed rule
// store; identical inputs always produce identical output.
package path

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"skill-path/internal/domain/ensemble"
	"skill-path/internal/domain/gap"
	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

// Recommendation is one ranked missing skill with its scoring evidence.
type Recommendation struct {
	Skill          string
	Category       string
	BaseImportance float64
	ModelScore     float64
	FinalScore     float64
	Sources        []rules.Source
	Confidence     float64
	Lift           float64
	Explanation    string
}

// Weights combines base importance and model score into the final
// score. Each weight is clamped to [0,1]; a sum far from 1 is logged,
// never rejected.
type Weights struct {
	Importance float64
	Model      float64
}

// DefaultWeights splits the final score evenly.
var DefaultWeights = Weights{Importance: 0.5, Model: 0.5}

// Normalize clamps both weights into [0,1] and warns when their sum
// strays far from 1. Out-of-range weights are a caller mistake, but the
// engine must keep producing a ranking.
func (w Weights) Normalize(logger *log.Logger) Weights {
	out := Weights{Importance: clamp01(w.Importance), Model: clamp01(w.Model)}
	if out != w && logger != nil {
		logger.Printf("[PathBuilder] weights clamped: importance %.2f -> %.2f, model %.2f -> %.2f",
			w.Importance, out.Importance, w.Model, out.Model)
	}
	sum := out.Importance + out.Model
	if (sum < 0.8 || sum > 1.2) && logger != nil {
		logger.Printf("[PathBuilder] weight sum %.2f deviates from 1; scores remain comparable but not normalized", sum)
	}
	return out
}

// Prioritize ranks the missing skills by the weighted combination of
// base importance and ensemble model score. Sort is by final score
// descending, ties broken alphabetically ascending on the skill token,
// so output is deterministic for identical input.
//
// scores may be nil (ensemble unavailable); every skill then ranks on
// gap importance alone with a zero model score and no sources.
func Prioritize(
	missing []string,
	baseImportance map[string]float64,
	scores map[string]ensemble.ScoreDetail,
	categories map[string]string,
	w Weights,
	logger *log.Logger,
) []Recommendation {
	w = w.Normalize(logger)

	seen := make(skillset.Set, len(missing))
	out := make([]Recommendation, 0, len(missing))
	for _, raw := range missing {
		skill := skillset.NormalizeToken(raw)
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}

		base, ok := baseImportance[skill]
		if !ok {
			base = gap.BaseImportance(skill)
		}

		detail := scores[skill]
		final := w.Importance*base + w.Model*detail.ModelScore

		out = append(out, Recommendation{
			Skill:          skill,
			Category:       categories[skill],
			BaseImportance: base,
			ModelScore:     detail.ModelScore,
			FinalScore:     clamp01(final),
			Sources:        append([]rules.Source(nil), detail.Sources...),
			Confidence:     detail.ConfidenceMean,
			Lift:           detail.LiftMean,
			Explanation:    explain(skill, base, detail),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FinalScore != out[j].FinalScore {
			return out[i].FinalScore > out[j].FinalScore
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

// explain cites the importance rationale and, when present, the rule
// evidence behind a recommendation.
func explain(skill string, base float64, detail ensemble.ScoreDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The target role requires this skill (importance %.0f%%", base*100)
	switch {
	case gap.IsFoundational(skill):
		b.WriteString(", foundational)")
	case gap.IsModern(skill):
		b.WriteString(", high market demand)")
	default:
		b.WriteString(")")
	}
	b.WriteString(". ")

	if len(detail.Sources) == 0 {
		b.WriteString("No association-rule evidence is available for this skill; ranking uses gap-based priority only.")
		return b.String()
	}

	names := make([]string, 0, len(detail.Sources))
	for _, s := range detail.Sources {
		names = append(names, string(s))
	}
	fmt.Fprintf(&b,
		"%.0f%% of profiles with your current skills also show this skill (lift %.1fx, %d rules, per source %s).",
		detail.ConfidenceMean*100, detail.LiftMean, detail.TotalSignals, strings.Join(names, ", "),
	)
	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
