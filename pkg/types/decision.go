package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRecord marks a decision record that violates a data-model
// invariant, detected either at load time or when a derived
// computation's precondition fails.
var ErrInvalidRecord = errors.New("invalid decision record")

// Effectiveness is the logged outcome rating of a decision.
type Effectiveness string

const (
	Effective         Effectiveness = "effective"
	SomewhatEffective Effectiveness = "somewhat_effective"
	NotEffective      Effectiveness = "not_effective"
)

// EffectivenessValues lists every rating in display order. Breakdown
// consumers rely on this for a stable category axis.
var EffectivenessValues = []Effectiveness{Effective, SomewhatEffective, NotEffective}

func (e Effectiveness) Valid() bool {
	switch e {
	case Effective, SomewhatEffective, NotEffective:
		return true
	}
	return false
}

// InputType is the coarse classification of the evidence behind a
// decision. It is derived per query, never stored.
type InputType string

const (
	DataAnalysis InputType = "data_analysis"
	Feedback     InputType = "feedback"
	Observation  InputType = "observation"
)

// DecisionRecord is one logged operational decision. Records are
// immutable once loaded; the yaml tags define the source schema.
type DecisionRecord struct {
	ID            string        `yaml:"id" json:"id"`
	Owner         string        `yaml:"owner" json:"owner"`
	Team          string        `yaml:"team" json:"team"`
	DecisionDate  time.Time     `yaml:"decision_date" json:"decision_date"`
	OutcomeDate   time.Time     `yaml:"outcome_date" json:"outcome_date"`
	Goal          string        `yaml:"goal" json:"goal"`
	WhatWasTried  string        `yaml:"what_was_tried" json:"what_was_tried"`
	InputsUsed    string        `yaml:"inputs_used" json:"inputs_used"`
	Result        string        `yaml:"result" json:"result"`
	Effectiveness Effectiveness `yaml:"effectiveness" json:"effectiveness"`
	RepeatableWin bool          `yaml:"repeatable_win" json:"repeatable_win"`
	StarDecision  bool          `yaml:"star_decision" json:"star_decision"`
}

// Validate checks the schema constraints. Every failure wraps
// ErrInvalidRecord.
func (r DecisionRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRecord)
	}
	if r.Owner == "" {
		return fmt.Errorf("%w: %s: owner is required", ErrInvalidRecord, r.ID)
	}
	if r.Team == "" {
		return fmt.Errorf("%w: %s: team is required", ErrInvalidRecord, r.ID)
	}
	if r.DecisionDate.IsZero() {
		return fmt.Errorf("%w: %s: decision_date is required", ErrInvalidRecord, r.ID)
	}
	if r.OutcomeDate.IsZero() {
		return fmt.Errorf("%w: %s: outcome_date is required", ErrInvalidRecord, r.ID)
	}
	if r.OutcomeDate.Before(r.DecisionDate) {
		return fmt.Errorf("%w: %s: outcome_date precedes decision_date", ErrInvalidRecord, r.ID)
	}
	if !r.Effectiveness.Valid() {
		return fmt.Errorf("%w: %s: unknown effectiveness %q", ErrInvalidRecord, r.ID, r.Effectiveness)
	}
	return nil
}
