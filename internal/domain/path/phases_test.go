package path

import (
	"strings"
	"testing"

	"skill-path/internal/domain/rules"
)

func namedRecs(n int) []Recommendation {
	out := make([]Recommendation, n)
	for i := range out {
		out[i].Skill = string(rune('a' + i))
	}
	return out
}

func TestBuild_PartitionsAllSkills(t *testing.T) {
	recs := namedRecs(7)

	p := Build(recs, Options{MaxPhases: 5, SkillsPerPhase: 3}, false)

	if len(p.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(p.Phases))
	}
	total := 0
	for i, ph := range p.Phases {
		if ph.Number != i+1 {
			t.Fatalf("expected phase number %d, got %d", i+1, ph.Number)
		}
		total += len(ph.Skills)
	}
	if total != len(recs) {
		t.Fatalf("expected every skill in exactly one phase, got %d of %d", total, len(recs))
	}
	if p.Phases[0].Difficulty != "Foundation" || p.Phases[1].Difficulty != "Core" {
		t.Fatalf("unexpected difficulty labels: %s, %s", p.Phases[0].Difficulty, p.Phases[1].Difficulty)
	}
	if p.Phases[0].Title != "Foundation Skills" {
		t.Fatalf("unexpected phase title: %s", p.Phases[0].Title)
	}
}

func TestBuild_LastPhaseAbsorbsOverflow(t *testing.T) {
	p := Build(namedRecs(9), Options{MaxPhases: 2, SkillsPerPhase: 3}, false)

	if len(p.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(p.Phases))
	}
	if len(p.Phases[0].Skills) != 3 {
		t.Fatalf("expected 3 skills in phase 1, got %d", len(p.Phases[0].Skills))
	}
	if len(p.Phases[1].Skills) != 6 {
		t.Fatalf("expected overflow absorbed by last phase, got %d", len(p.Phases[1].Skills))
	}
}

func TestBuild_Durations(t *testing.T) {
	p := Build(namedRecs(4), Options{MaxPhases: 5, SkillsPerPhase: 3, WeeksPerSkill: 1.5}, false)

	// 3 skills round to 5 weeks, 1 skill rounds to 2 weeks.
	if p.Phases[0].DurationWeeks != 5 {
		t.Fatalf("expected 5 weeks for phase 1, got %d", p.Phases[0].DurationWeeks)
	}
	if p.Phases[1].DurationWeeks != 2 {
		t.Fatalf("expected 2 weeks for phase 2, got %d", p.Phases[1].DurationWeeks)
	}
	if p.TotalWeeks != 7 {
		t.Fatalf("expected total 7 weeks, got %d", p.TotalWeeks)
	}
}

func TestBuild_EmptyRecommendations(t *testing.T) {
	p := Build(nil, Options{}, false)

	if len(p.Phases) != 0 {
		t.Fatalf("expected zero phases, got %d", len(p.Phases))
	}
	if p.ModelCoverage != 1.0 {
		t.Fatalf("expected coverage 1.0 for empty gap, got %v", p.ModelCoverage)
	}
	if !strings.Contains(p.Summary, "already have every skill") {
		t.Fatalf("expected success summary, got %q", p.Summary)
	}
}

func TestBuild_ModelCoverage(t *testing.T) {
	p := Build([]Recommendation{
		{Skill: "a", Sources: []rules.Source{rules.SourceSkill}},
		{Skill: "b"},
	}, Options{}, false)

	if p.ModelCoverage != 0.5 {
		t.Fatalf("expected coverage 0.5, got %v", p.ModelCoverage)
	}
}

func TestBuild_DegradedSummary(t *testing.T) {
	p := Build([]Recommendation{{Skill: "spark"}}, Options{}, true)
	if !p.Degraded {
		t.Fatalf("expected degraded flag")
	}
	if !strings.Contains(p.Summary, "Rule tables were unavailable") {
		t.Fatalf("expected degraded note in summary, got %q", p.Summary)
	}
}

func TestBuild_LabelsClampPastVocabulary(t *testing.T) {
	p := Build(namedRecs(12), Options{MaxPhases: 6, SkillsPerPhase: 2}, false)

	last := p.Phases[len(p.Phases)-1]
	if last.Difficulty != "Expert" {
		t.Fatalf("expected label clamped to Expert, got %s", last.Difficulty)
	}
}

func TestBuild_DistinctCategoriesSorted(t *testing.T) {
	p := Build([]Recommendation{
		{Skill: "a", Category: "Data"},
		{Skill: "b", Category: "Cloud"},
		{Skill: "c", Category: "Data"},
	}, Options{MaxPhases: 1, SkillsPerPhase: 3}, false)

	got := p.Phases[0].Categories
	if len(got) != 2 || got[0] != "Cloud" || got[1] != "Data" {
		t.Fatalf("unexpected categories: %v", got)
	}
}
