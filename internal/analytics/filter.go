package analytics

import "github.com/davidahmann/declog/pkg/types"

// Criteria narrows a record sequence. Criteria sets are AND-combined;
// values within a set are OR-combined. An empty set imposes no
// constraint, so the zero Criteria selects everything.
type Criteria struct {
	Owners        []string
	Teams         []string
	Effectiveness []types.Effectiveness
}

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return len(c.Owners) == 0 && len(c.Teams) == 0 && len(c.Effectiveness) == 0
}

// Filter returns the records matching every supplied criterion, input
// order preserved. The result is always a fresh slice.
func Filter(records []types.DecisionRecord, c Criteria) []types.DecisionRecord {
	owners := toSet(c.Owners)
	teams := toSet(c.Teams)
	ratings := toSet(c.Effectiveness)

	out := make([]types.DecisionRecord, 0, len(records))
	for _, r := range records {
		if len(owners) > 0 && !owners[r.Owner] {
			continue
		}
		if len(teams) > 0 && !teams[r.Team] {
			continue
		}
		if len(ratings) > 0 && !ratings[r.Effectiveness] {
			continue
		}
		out = append(out, r)
	}
	return out
}

func toSet[T comparable](items []T) map[T]bool {
	set := make(map[T]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
