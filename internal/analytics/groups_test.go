package analytics

import (
	"errors"
	"testing"

	"github.com/davidahmann/declog/pkg/types"
)

func TestInputUsageFrequencyGroupsExactText(t *testing.T) {
	records := sampleRecords(t)
	// Same input text reused by a different owner must land in the
	// same group.
	extra := records[3]
	extra.ID = "D006"
	extra.Owner = "Linda T."
	records = append(records, extra)

	got := InputUsageFrequency(records)
	if len(got) != 5 {
		t.Fatalf("expected 5 groups, got %d", len(got))
	}

	if got[0].InputsUsed != "Patient survey comments" || got[0].Count != 2 {
		t.Fatalf("expected survey comments group first with count 2, got %+v", got[0])
	}
	if got[0].InputType != types.Feedback {
		t.Fatalf("expected feedback type, got %s", got[0].InputType)
	}
}

func TestInputUsageFrequencyNeverMergesDistinctText(t *testing.T) {
	got := InputUsageFrequency(sampleRecords(t))

	// D001, D002, D005 all classify as data analysis but carry three
	// distinct input texts.
	dataAnalysis := 0
	for _, g := range got {
		if g.InputType == types.DataAnalysis {
			dataAnalysis++
			if g.Count != 1 {
				t.Fatalf("group %q should have count 1, got %d", g.InputsUsed, g.Count)
			}
		}
	}
	if dataAnalysis != 3 {
		t.Fatalf("expected 3 data-analysis groups, got %d", dataAnalysis)
	}
}

func TestInputUsageFrequencyTiesKeepFirstSeenOrder(t *testing.T) {
	got := InputUsageFrequency(sampleRecords(t))

	// All five groups tie at count 1, so output order is input order.
	want := []string{
		"Call volume trend, shift overlap data",
		"Referral approval logs",
		"Anecdotal staff complaints",
		"Patient survey comments",
		"Top 10 call reasons analysis",
	}
	for i, g := range got {
		if g.InputsUsed != want[i] {
			t.Fatalf("at %d: got %q want %q", i, g.InputsUsed, want[i])
		}
	}
}

func TestOwnerPerformance(t *testing.T) {
	got, err := OwnerPerformance(sampleRecords(t))
	if err != nil {
		t.Fatalf("owner performance: %v", err)
	}

	if len(got) != 4 {
		t.Fatalf("expected 4 owners, got %d", len(got))
	}

	// First-seen owner order.
	wantOrder := []string{"Maria G.", "James K.", "Linda T.", "Carlos V."}
	for i, o := range got {
		if o.Owner != wantOrder[i] {
			t.Fatalf("at %d: got %s want %s", i, o.Owner, wantOrder[i])
		}
	}

	maria := got[0]
	if maria.DecisionsMade != 2 {
		t.Fatalf("maria decisions: got %d want 2", maria.DecisionsMade)
	}
	if maria.PercentEffective != 100 {
		t.Fatalf("maria effective: got %v want 100", maria.PercentEffective)
	}
	if maria.AvgTimeToOutcome != 3.0 {
		t.Fatalf("maria avg days: got %v want 3.0", maria.AvgTimeToOutcome)
	}
}

func TestOwnerPerformanceEmptyInput(t *testing.T) {
	got, err := OwnerPerformance(nil)
	if err != nil {
		t.Fatalf("owner performance over empty input: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no owners, got %d", len(got))
	}
}

func TestOwnerPerformancePropagatesInvalidRecord(t *testing.T) {
	records := sampleRecords(t)
	records[0].DecisionDate, records[0].OutcomeDate = records[0].OutcomeDate, records[0].DecisionDate

	_, err := OwnerPerformance(records)
	if !errors.Is(err, types.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestOwnerPerformanceIsDeterministic(t *testing.T) {
	first, err := OwnerPerformance(sampleRecords(t))
	if err != nil {
		t.Fatalf("owner performance: %v", err)
	}
	second, err := OwnerPerformance(sampleRecords(t))
	if err != nil {
		t.Fatalf("owner performance: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("output differs across calls at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
