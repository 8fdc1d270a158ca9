package analytics

import (
	"sort"

	"github.com/davidahmann/declog/pkg/types"
)

// InputUsage is one (input type, exact input text) group with its
// occurrence count.
type InputUsage struct {
	InputType  types.InputType `json:"input_type"`
	InputsUsed string          `json:"inputs_used"`
	Count      int             `json:"count"`
}

// OwnerSummary is the per-owner performance roll-up.
type OwnerSummary struct {
	Owner            string  `json:"owner"`
	DecisionsMade    int     `json:"decisions_made"`
	PercentEffective float64 `json:"percent_effective"`
	AvgTimeToOutcome float64 `json:"avg_time_to_outcome_days"`
}

// InputUsageFrequency groups records by the pair (derived input type,
// exact inputs_used text) and counts occurrences, sorted by descending
// count. Ties keep first-encountered group order. Two distinct texts
// never merge, even when they classify to the same type.
func InputUsageFrequency(records []types.DecisionRecord) []InputUsage {
	index := make(map[string]int, len(records))
	groups := make([]InputUsage, 0, len(records))

	for _, r := range records {
		i, ok := index[r.InputsUsed]
		if !ok {
			i = len(groups)
			index[r.InputsUsed] = i
			groups = append(groups, InputUsage{
				InputType:  ClassifyInputType(r.InputsUsed),
				InputsUsed: r.InputsUsed,
			})
		}
		groups[i].Count++
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
	return groups
}

// OwnerPerformance rolls records up by owner: decision count, percent
// rated effective, and mean time to outcome. Output keeps first-seen
// owner order, so repeated calls over identical input are stable.
func OwnerPerformance(records []types.DecisionRecord) ([]OwnerSummary, error) {
	type ownerAcc struct {
		effective int
		totalDays int
	}

	index := make(map[string]int, len(records))
	order := make([]OwnerSummary, 0, len(records))
	accs := make([]ownerAcc, 0, len(records))

	for _, r := range records {
		days, err := TimeToOutcome(r)
		if err != nil {
			return nil, err
		}

		i, ok := index[r.Owner]
		if !ok {
			i = len(order)
			index[r.Owner] = i
			order = append(order, OwnerSummary{Owner: r.Owner})
			accs = append(accs, ownerAcc{})
		}
		order[i].DecisionsMade++
		accs[i].totalDays += days
		if r.Effectiveness == types.Effective {
			accs[i].effective++
		}
	}

	for i := range order {
		n := float64(order[i].DecisionsMade)
		order[i].PercentEffective = 100 * float64(accs[i].effective) / n
		order[i].AvgTimeToOutcome = float64(accs[i].totalDays) / n
	}
	return order, nil
}
