// Package ensemble unifies the signals of the independently mined rule
// tables into one normalized model score per candidate skill.
package ensemble

import (
	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

// SourceSignal aggregates the matching rules of one source for one
// candidate skill.
type SourceSignal struct {
	ConfidenceMean float64
	LiftMean       float64
	RuleCount      int
}

// ScoreDetail is the full ensemble verdict for one candidate skill.
//
// ModelScore is the max over sources of that source's mean confidence.
// The tables differ enormously in rule count (tens vs thousands), so a
// global average would let the largest table dominate regardless of
// precision; taking the best-supported single signal privileges
// precision over table size.
type ScoreDetail struct {
	PerSource      map[rules.Source]SourceSignal
	ModelScore     float64
	BestConfidence float64
	BestSource     rules.Source
	Sources        []rules.Source
	TotalSignals   int

	// ConfidenceMean and LiftMean aggregate across every matching rule
	// of every source; explanatory metadata only, never scored.
	ConfidenceMean float64
	LiftMean       float64
}

type Scorer struct {
	store *rules.Store
}

func NewScorer(store *rules.Store) *Scorer {
	return &Scorer{store: store}
}

// Available reports whether any rule table is loaded.
func (s *Scorer) Available() bool {
	return s != nil && s.store != nil && !s.store.Empty()
}

// SkillModelScores scores every candidate skill against the loaded rule
// tables given the user's current skills. Skills with no matching rule
// in any source get a zero ModelScore and an empty Sources list; the
// caller falls back to gap-only importance for them.
func (s *Scorer) SkillModelScores(userSkills, candidates skillset.Set) map[string]ScoreDetail {
	out := make(map[string]ScoreDetail, candidates.Len())
	if len(candidates) == 0 {
		return out
	}

	for _, skill := range candidates.Sorted() {
		out[skill] = s.scoreSkill(userSkills, skill)
	}
	return out
}

func (s *Scorer) scoreSkill(userSkills skillset.Set, skill string) ScoreDetail {
	d := ScoreDetail{PerSource: make(map[rules.Source]SourceSignal)}
	if !s.Available() {
		return d
	}

	var confSum, liftSum float64
	var ruleTotal int

	for _, src := range rules.AllSources {
		matched := s.store.QueryMatching(userSkills, skill, src)
		if len(matched) == 0 {
			continue
		}

		var srcConf, srcLift float64
		for _, r := range matched {
			srcConf += r.Confidence
			srcLift += r.Lift
		}
		n := float64(len(matched))
		sig := SourceSignal{
			ConfidenceMean: srcConf / n,
			LiftMean:       srcLift / n,
			RuleCount:      len(matched),
		}

		d.PerSource[src] = sig
		d.Sources = append(d.Sources, src)
		d.TotalSignals += len(matched)

		confSum += srcConf
		liftSum += srcLift
		ruleTotal += len(matched)

		// AllSources iterates in descending specificity, so a strict
		// greater-than keeps the more specific source on ties.
		if d.BestSource == "" || sig.ConfidenceMean > d.ModelScore {
			d.ModelScore = sig.ConfidenceMean
			d.BestConfidence = sig.ConfidenceMean
			d.BestSource = src
		}
	}

	if ruleTotal > 0 {
		d.ConfidenceMean = confSum / float64(ruleTotal)
		d.LiftMean = liftSum / float64(ruleTotal)
	}
	return d
}
