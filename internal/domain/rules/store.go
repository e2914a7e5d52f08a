package rules

import "skill-path/internal/domain/skillset"

// Table is the ordered rule collection for one source.
type Table struct {
	Source  Source
	Rules   []Rule
	Skipped int
}

// LoadStats reports the outcome of loading one source.
type LoadStats struct {
	Source  Source
	Loaded  int
	Skipped int
}

// Store indexes the loaded rule tables. Populate it with Load before
// serving; it must not be mutated afterwards.
type Store struct {
	tables map[Source]*Table
}

func NewStore() *Store {
	return &Store{tables: make(map[Source]*Table)}
}

// Load parses rows into rules under the given source. A row whose
// antecedent or consequent cannot be parsed is skipped and counted,
// never fatal: the ensemble must stay usable with partial data.
// Confidence is clamped to [0,1]; rows with non-positive lift are
// skipped as malformed.
func (st *Store) Load(src Source, rows []Row) LoadStats {
	t := &Table{Source: src, Rules: make([]Rule, 0, len(rows))}

	for _, row := range rows {
		ant, err := ParseItemSet(row.Antecedent)
		if err != nil {
			t.Skipped++
			continue
		}
		cons, err := ParseItemSet(row.Consequent)
		if err != nil {
			t.Skipped++
			continue
		}
		if row.Lift <= 0 {
			t.Skipped++
			continue
		}

		conf := row.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}

		t.Rules = append(t.Rules, Rule{
			Antecedent: ant,
			Consequent: cons,
			Support:    row.Support,
			Confidence: conf,
			Lift:       row.Lift,
			Source:     src,
		})
	}

	st.tables[src] = t
	return LoadStats{Source: src, Loaded: len(t.Rules), Skipped: t.Skipped}
}

// QueryMatching returns the rules of src whose antecedent is fully
// contained in userSkills and whose consequent contains target. A rule
// applies only if the user already holds every antecedent skill.
func (st *Store) QueryMatching(userSkills skillset.Set, target string, src Source) []Rule {
	t, ok := st.tables[src]
	if !ok {
		return nil
	}
	target = skillset.NormalizeToken(target)
	if target == "" {
		return nil
	}

	var out []Rule
	for i := range t.Rules {
		r := &t.Rules[i]
		if !r.Consequent.Contains(target) {
			continue
		}
		if !r.Antecedent.SubsetOf(userSkills) {
			continue
		}
		out = append(out, *r)
	}
	return out
}

// Size reports the number of successfully parsed rules for src, zero if
// the source was never loaded.
func (st *Store) Size(src Source) int {
	t, ok := st.tables[src]
	if !ok {
		return 0
	}
	return len(t.Rules)
}

// SkippedRows reports how many rows were dropped as unparsable for src.
func (st *Store) SkippedRows(src Source) int {
	t, ok := st.tables[src]
	if !ok {
		return 0
	}
	return t.Skipped
}

// Sources returns the loaded, non-empty sources in descending
// specificity order.
func (st *Store) Sources() []Source {
	out := make([]Source, 0, len(st.tables))
	for _, src := range AllSources {
		if st.Size(src) > 0 {
			out = append(out, src)
		}
	}
	return out
}

// Empty reports whether no source has any rules. The engine then runs
// in gap-only mode.
func (st *Store) Empty() bool {
	return st == nil || len(st.Sources()) == 0
}
