package rules

import (
	"encoding/json"
	"errors"
	"strings"

	"skill-path/internal/domain/skillset"
)

var errEmptyItemSet = errors.New("empty item set")

// ParseItemSet parses a serialized antecedent/consequent cell into a
// normalized skill set. The mined exports serialize itemsets in several
// shapes depending on the tool that produced them:
//
//	frozenset({'python', 'sql'})
//	{'python', 'sql'}
//	['python', 'sql']
//	('python', 'sql')
//	["python", "sql"]
//	python, sql
//
// All of them are accepted. A cell that yields no tokens is an error;
// the loader skips the row and counts it.
func ParseItemSet(raw string) (skillset.Set, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errEmptyItemSet
	}

	if inner, ok := strings.CutPrefix(raw, "frozenset("); ok {
		inner = strings.TrimSuffix(inner, ")")
		raw = strings.TrimSpace(inner)
		if raw == "" {
			return nil, errEmptyItemSet
		}
	}

	if out, ok := parseJSONArray(raw); ok {
		return out, nil
	}

	if len(raw) >= 2 {
		open := raw[0]
		closing := raw[len(raw)-1]
		if (open == '{' && closing == '}') || (open == '[' && closing == ']') || (open == '(' && closing == ')') {
			raw = raw[1 : len(raw)-1]
		}
	}

	out := make(skillset.Set)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, `'"`)
		part = skillset.NormalizeToken(part)
		if part == "" {
			continue
		}
		out[part] = struct{}{}
	}
	if len(out) == 0 {
		return nil, errEmptyItemSet
	}
	return out, nil
}

func parseJSONArray(raw string) (skillset.Set, bool) {
	if !strings.HasPrefix(raw, "[") {
		return nil, false
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	out := skillset.FromSlice(items)
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
