package usecase

import (
	"sort"
	"sync"

	"packtrack/internal/domain/entities"
)

// BillStore is the in-memory collection backing the UI: the single source of
// local truth, updated optimistically ahead of remote confirmation and
// replaced wholesale by subscription snapshots.
//
// All mutations are read-modify-write under one lock against the latest
// state, so interleaved bulk and single-item edits never lose updates. The
// store keeps insertion recency order: new bills go to the front.

type BillStore struct {
	mu    sync.Mutex
	bills []entities.Bill
}

func NewBillStore() *BillStore {
	return &BillStore{}
}

// UpsertLocal inserts the bill at the front or patches it in place when the
// id already exists.
func (s *BillStore) UpsertLocal(b entities.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bills {
		if s.bills[i].ID == b.ID {
			s.bills[i] = b
			return
		}
	}
	s.bills = append([]entities.Bill{b}, s.bills...)
}

// RemoveLocal drops the bill with the given id, if present.
func (s *BillStore) RemoveLocal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bills {
		if s.bills[i].ID == id {
			s.bills = append(s.bills[:i], s.bills[i+1:]...)
			return
		}
	}
}

// RemoveAllLocal drops every bill whose id is in ids.
func (s *BillStore) RemoveAllLocal(ids []string) {
	selected := idSet(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bills[:0]
	for _, b := range s.bills {
		if !selected[b.ID] {
			kept = append(kept, b)
		}
	}
	s.bills = kept
}

// ReplaceAll swaps the whole collection, used by remote subscription
// snapshots. The backend is the eventual source of truth; an optimistic
// write racing a snapshot is expected to reconcile on the next push.
func (s *BillStore) ReplaceAll(bills []entities.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills = append([]entities.Bill(nil), bills...)
}

// ApplyBatch runs a pure transform over the current list and installs the
// result atomically, so readers never observe a partially applied bulk edit.
func (s *BillStore) ApplyBatch(transform func(bills []entities.Bill) []entities.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := append([]entities.Bill(nil), s.bills...)
	s.bills = transform(snapshot)
}

// Get returns the bill with the given id and whether it was found.
func (s *BillStore) Get(id string) (entities.Bill, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bills {
		if b.ID == id {
			return b, true
		}
	}
	return entities.Bill{}, false
}

// Snapshot returns a copy of the full collection in store order.
func (s *BillStore) Snapshot() []entities.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Bill(nil), s.bills...)
}

// Len reports the number of bills currently held.
func (s *BillStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bills)
}

// TodayView returns every bill registered on refDate, newest first.
func (s *BillStore) TodayView(refDate string) []entities.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.Bill
	for _, b := range s.bills {
		if b.EntryDate == refDate {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// BacklogView returns still-pending bills from days strictly before refDate,
// oldest overdue first. Together with TodayView it covers every pending bill
// dated on or before refDate, with no overlap.
func (s *BillStore) BacklogView(refDate string) []entities.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.Bill
	for _, b := range s.bills {
		if b.Status == entities.BillStatusPending && b.EntryDate < refDate {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryDate < out[j].EntryDate
	})
	return out
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
