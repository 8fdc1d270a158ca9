// Package store holds the authoritative decision log for one session.
// Records are loaded once, validated, and held read-only thereafter.
package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidahmann/declog/pkg/types"
)

// ErrLoad marks a failed load: source unreadable, undecodable, or a
// record failing schema validation. Validation failures additionally
// wrap types.ErrInvalidRecord.
var ErrLoad = errors.New("load decision log")

// Store is the immutable, ordered decision set for a session. It has
// no mutation API; construct a new Store for a new session.
type Store struct {
	records []types.DecisionRecord
}

type source struct {
	Decisions []types.DecisionRecord `yaml:"decisions"`
}

// Load reads a YAML decision log from path and validates every record.
func Load(path string) (*Store, error) {
	// #nosec G304 -- path is operator-provided records path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	var src source
	if err := yaml.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	s, err := FromRecords(src.Decisions)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	return s, nil
}

// FromRecords builds a store from already-decoded records, validating
// each and rejecting duplicate IDs. The input slice is copied, never
// aliased.
func FromRecords(records []types.DecisionRecord) (*Store, error) {
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("%w: duplicate id %s", types.ErrInvalidRecord, r.ID)
		}
		seen[r.ID] = true
	}

	owned := make([]types.DecisionRecord, len(records))
	copy(owned, records)
	return &Store{records: owned}, nil
}

// All returns the full sequence in insertion order. The returned slice
// is a fresh copy so no caller can alias the canonical list.
func (s *Store) All() []types.DecisionRecord {
	out := make([]types.DecisionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}
