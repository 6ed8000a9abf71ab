package statutory

import (
	"sync"
)

// Store holds the process-wide rate table and ceilings. Calculations read a
// consistent snapshot; Reload is the invalidation hook for configuration
// changes.
type Store struct {
	mu       sync.RWMutex
	table    RateTable
	ceilings Ceilings
}

func NewStore(table RateTable, ceilings Ceilings) (*Store, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if ceilings.OrdinaryMonthly.IsNegative() || ceilings.AdditionalAnnual.IsNegative() || ceilings.MinWageThreshold.IsNegative() {
		return nil, ErrNegativeCeiling
	}
	return &Store{table: table, ceilings: ceilings}, nil
}

// Snapshot returns the current table and ceilings. The returned values must
// be treated as read-only.
func (s *Store) Snapshot() (RateTable, Ceilings) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.ceilings
}

// Reload swaps in a new table and ceilings after validation. In-flight
// calculations keep the snapshot they started with.
func (s *Store) Reload(table RateTable, ceilings Ceilings) error {
	if err := table.Validate(); err != nil {
		return err
	}
	if ceilings.OrdinaryMonthly.IsNegative() || ceilings.AdditionalAnnual.IsNegative() || ceilings.MinWageThreshold.IsNegative() {
		return ErrNegativeCeiling
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.ceilings = ceilings
	return nil
}

// Compute runs a calculation against the current snapshot.
func (s *Store) Compute(in Input) (Contribution, error) {
	table, ceilings := s.Snapshot()
	return Compute(table, ceilings, in)
}
