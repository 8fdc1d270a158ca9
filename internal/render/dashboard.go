// Package render is the terminal presentation surface over the
// analytics engine: it assembles one dashboard document per call and
// writes it as aligned text or as JSON.
package render

import (
	"encoding/json"
	"io"

	"github.com/davidahmann/declog/internal/analytics"
	"github.com/davidahmann/declog/pkg/types"
)

// Row is a decision record joined with its derived columns.
type Row struct {
	types.DecisionRecord
	InputType         types.InputType `json:"input_type"`
	TimeToOutcomeDays int             `json:"time_to_outcome_days"`
}

// RatingCount is one bar of the effectiveness breakdown. The slice
// form keeps the category axis ordered, which a map cannot.
type RatingCount struct {
	Effectiveness types.Effectiveness `json:"effectiveness"`
	Count         int                 `json:"count"`
}

// Dashboard is the fully computed document for one filtered view of
// the decision log.
type Dashboard struct {
	Summary    analytics.Summary        `json:"summary"`
	Stars      []Row                    `json:"star_decisions"`
	Rows       []Row                    `json:"decisions"`
	Breakdown  []RatingCount            `json:"effectiveness_breakdown"`
	InputUsage []analytics.InputUsage   `json:"input_usage"`
	Owners     []analytics.OwnerSummary `json:"owner_performance"`
}

// Build filters the records and runs every engine query once.
func Build(records []types.DecisionRecord, c analytics.Criteria) (Dashboard, error) {
	filtered := analytics.Filter(records, c)

	summary, err := analytics.SummaryMetrics(filtered)
	if err != nil {
		return Dashboard{}, err
	}
	owners, err := analytics.OwnerPerformance(filtered)
	if err != nil {
		return Dashboard{}, err
	}
	rows, err := makeRows(filtered)
	if err != nil {
		return Dashboard{}, err
	}
	stars, err := makeRows(analytics.StarDecisions(filtered))
	if err != nil {
		return Dashboard{}, err
	}

	counts := analytics.EffectivenessBreakdown(filtered)
	breakdown := make([]RatingCount, 0, len(types.EffectivenessValues))
	for _, e := range types.EffectivenessValues {
		breakdown = append(breakdown, RatingCount{Effectiveness: e, Count: counts[e]})
	}

	return Dashboard{
		Summary:    summary,
		Stars:      stars,
		Rows:       rows,
		Breakdown:  breakdown,
		InputUsage: analytics.InputUsageFrequency(filtered),
		Owners:     owners,
	}, nil
}

func makeRows(records []types.DecisionRecord) ([]Row, error) {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		days, err := analytics.TimeToOutcome(r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			DecisionRecord:    r,
			InputType:         analytics.ClassifyInputType(r.InputsUsed),
			TimeToOutcomeDays: days,
		})
	}
	return rows, nil
}

// WriteJSON emits the dashboard as one indented JSON document.
func (d Dashboard) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
