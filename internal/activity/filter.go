package activity

import "strings"

// All disables the actor or action predicate.
const All = "all"

type Criteria struct {
	Query  string
	UserID string
	Action string
}

// Filter keeps the entries matching all three predicates, preserving input
// order. The query matches action, details or actor full name ignoring case.
func Filter(entries []Entry, c Criteria) []Entry {
	q := strings.ToLower(c.Query)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !matchesQuery(e, q) {
			continue
		}
		if c.UserID != "" && c.UserID != All && e.UserID.String() != c.UserID {
			continue
		}
		if c.Action != "" && c.Action != All && e.Action != c.Action {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e Entry, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Action), q) {
		return true
	}
	if e.Details != nil && strings.Contains(strings.ToLower(*e.Details), q) {
		return true
	}
	return e.User != nil && e.User.FullName != nil && strings.Contains(strings.ToLower(*e.User.FullName), q)
}

// Actions returns the distinct action labels in order of first appearance.
func Actions(entries []Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0)
	for _, e := range entries {
		if _, ok := seen[e.Action]; ok {
			continue
		}
		seen[e.Action] = struct{}{}
		out = append(out, e.Action)
	}
	return out
}
