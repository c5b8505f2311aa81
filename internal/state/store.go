// Package state provides the snapshot store shared by the loader and
// the UI. The dataset is replaced wholesale on load and reload; views
// only ever see immutable copies.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/fancyactive/backstage/internal/sales"
)

// Snapshot is the latest dataset available to the UI.
type Snapshot struct {
	Sales     sales.Table
	LoadedAt  time.Time
	LastError error
}

// Store coordinates dataset replacement with UI reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored table. When err is non-nil the previous
// table is kept and the error recorded, so a failed reload never blanks
// the dashboard.
func (s *Store) Update(table sales.Table, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Sales = cloneTable(table)
	s.snapshot.LastError = nil
	s.snapshot.LoadedAt = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Sales = cloneTable(s.snapshot.Sales)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneTable(table sales.Table) sales.Table {
	if len(table) == 0 {
		return nil
	}
	dup := make(sales.Table, len(table))
	copy(dup, table)
	return dup
}
