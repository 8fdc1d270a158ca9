package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/davidahmann/declog/pkg/types"
)

// Summary is the headline metric tile set for a record sequence.
type Summary struct {
	TotalCount           int     `json:"total_count"`
	AvgTimeToOutcome     float64 `json:"avg_time_to_outcome_days"`
	EffectiveRatePercent int     `json:"effective_rate_percent"`
	RepeatableWinCount   int     `json:"repeatable_win_count"`
}

// TimeToOutcome is the whole-day span between a decision and its
// measured result. A record violating the outcome_date >= decision_date
// invariant fails with types.ErrInvalidRecord rather than clamping.
func TimeToOutcome(r types.DecisionRecord) (int, error) {
	if r.OutcomeDate.Before(r.DecisionDate) {
		return 0, fmt.Errorf("%w: %s: outcome_date precedes decision_date", types.ErrInvalidRecord, r.ID)
	}
	return int(r.OutcomeDate.Sub(r.DecisionDate) / (24 * time.Hour)), nil
}

// SummaryMetrics computes the headline metrics. Empty input yields the
// zero Summary, never an error.
func SummaryMetrics(records []types.DecisionRecord) (Summary, error) {
	s := Summary{TotalCount: len(records)}
	if len(records) == 0 {
		return s, nil
	}

	totalDays := 0
	effective := 0
	for _, r := range records {
		days, err := TimeToOutcome(r)
		if err != nil {
			return Summary{}, err
		}
		totalDays += days
		if r.Effectiveness == types.Effective {
			effective++
		}
		if r.RepeatableWin {
			s.RepeatableWinCount++
		}
	}

	s.AvgTimeToOutcome = float64(totalDays) / float64(len(records))
	s.EffectiveRatePercent = int(math.Round(100 * float64(effective) / float64(len(records))))
	return s, nil
}

// StarDecisions returns the records flagged as high-impact exemplars,
// original order preserved.
func StarDecisions(records []types.DecisionRecord) []types.DecisionRecord {
	out := make([]types.DecisionRecord, 0, len(records))
	for _, r := range records {
		if r.StarDecision {
			out = append(out, r)
		}
	}
	return out
}

// EffectivenessBreakdown counts records per rating. Ratings absent in
// the data report zero, so chart axes stay stable.
func EffectivenessBreakdown(records []types.DecisionRecord) map[types.Effectiveness]int {
	counts := make(map[types.Effectiveness]int, len(types.EffectivenessValues))
	for _, e := range types.EffectivenessValues {
		counts[e] = 0
	}
	for _, r := range records {
		counts[r.Effectiveness]++
	}
	return counts
}
