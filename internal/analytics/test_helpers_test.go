package analytics

import (
	"testing"
	"time"

	"github.com/davidahmann/declog/pkg/types"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

// sampleRecords mirrors decisions/sample.yaml.
func sampleRecords(t *testing.T) []types.DecisionRecord {
	t.Helper()
	return []types.DecisionRecord{
		{
			ID: "D001", Owner: "Maria G.", Team: "Call Center",
			DecisionDate: date(t, "2025-07-01"), OutcomeDate: date(t, "2025-07-05"),
			Goal: "Lower ASA", WhatWasTried: "Realigned shift start times",
			InputsUsed: "Call volume trend, shift overlap data",
			Result:     "ASA dropped from 42s to 28s",
			Effectiveness: types.Effective, RepeatableWin: true, StarDecision: true,
		},
		{
			ID: "D002", Owner: "James K.", Team: "Referral",
			DecisionDate: date(t, "2025-07-03"), OutcomeDate: date(t, "2025-07-10"),
			Goal: "Faster Scheduling", WhatWasTried: "Removed manual form review",
			InputsUsed: "Referral approval logs",
			Result:     "Scheduling improved by 2 days",
			Effectiveness: types.SomewhatEffective,
		},
		{
			ID: "D003", Owner: "Linda T.", Team: "Billing",
			DecisionDate: date(t, "2025-07-05"), OutcomeDate: date(t, "2025-07-17"),
			Goal: "Lower AR Days", WhatWasTried: "Added denial triage in backlog",
			InputsUsed: "Anecdotal staff complaints",
			Result:     "No measurable impact yet",
			Effectiveness: types.NotEffective,
		},
		{
			ID: "D004", Owner: "Carlos V.", Team: "QA",
			DecisionDate: date(t, "2025-07-06"), OutcomeDate: date(t, "2025-07-11"),
			Goal: "Improve Patient Experience", WhatWasTried: "Call empathy scripts",
			InputsUsed: "Patient survey comments",
			Result:     "Survey scores improved",
			Effectiveness: types.Effective, RepeatableWin: true, StarDecision: true,
		},
		{
			ID: "D005", Owner: "Maria G.", Team: "Call Center",
			DecisionDate: date(t, "2025-07-08"), OutcomeDate: date(t, "2025-07-10"),
			Goal: "Reduce Call Transfers", WhatWasTried: "Expanded self-service tree",
			InputsUsed: "Top 10 call reasons analysis",
			Result:     "Transfers down 12%",
			Effectiveness: types.Effective, RepeatableWin: true,
		},
	}
}
