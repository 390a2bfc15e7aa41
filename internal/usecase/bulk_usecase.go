package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"packtrack/internal/domain/entities"

	"github.com/rs/zerolog"
)

var ErrEmptySelection = errors.New("empty bill selection")

// BulkFailure records one bill whose remote sync failed within a batch.
type BulkFailure struct {
	BillID string `json:"bill_id"`
	Cause  string `json:"cause"`
}

// BulkResult reports the outcome of a bulk operation. Local state always
// reflects the full batch; Failures lists bills whose remote call failed.
// Sibling successes are never undone by a partial failure.
type BulkResult struct {
	Affected []entities.Bill `json:"affected"`
	Failures []BulkFailure   `json:"failures,omitempty"`
}

// IBulkUseCase applies grouped mutations across a selected id set with the
// same optimistic discipline as single-item operations: the new local state
// is computed in one batch, installed atomically, and the remote fan-out
// runs per bill, concurrently, behind a settle barrier.

type IBulkUseCase interface {
	PackSelected(ctx context.Context, ids []string) (BulkResult, error)
	RetagSelected(ctx context.Context, ids []string, description, colorTheme string) (BulkResult, error)
	DeleteSelected(ctx context.Context, ids []string) (BulkResult, error)
}

type BulkUseCase struct {
	store *BillStore
	sync  *SyncRuntime
	log   zerolog.Logger
}

var _ IBulkUseCase = (*BulkUseCase)(nil)

func NewBulkUseCase(store *BillStore, sync *SyncRuntime, log zerolog.Logger) *BulkUseCase {
	return &BulkUseCase{store: store, sync: sync, log: log}
}

// PackSelected transitions every selected pending bill to packed with one
// consistent batch timestamp, then persists each affected bill remotely.
func (u *BulkUseCase) PackSelected(ctx context.Context, ids []string) (BulkResult, error) {
	ids = normalizeSelection(ids)
	if len(ids) == 0 {
		return BulkResult{}, ErrEmptySelection
	}

	batchNow := time.Now().UTC()
	affected := u.applySelected(ids, func(b *entities.Bill) {
		b.Pack(batchNow)
	})
	return u.settlePersist(ctx, affected), nil
}

// RetagSelected applies a shared group name and color tag to the selection.
func (u *BulkUseCase) RetagSelected(ctx context.Context, ids []string, description, colorTheme string) (BulkResult, error) {
	ids = normalizeSelection(ids)
	if len(ids) == 0 {
		return BulkResult{}, ErrEmptySelection
	}

	batchNow := time.Now().UTC()
	affected := u.applySelected(ids, func(b *entities.Bill) {
		b.Description = description
		b.ColorTheme = colorTheme
		b.Touch(batchNow)
	})
	return u.settlePersist(ctx, affected), nil
}

// DeleteSelected fires remote deletes for the whole selection concurrently,
// then removes all selected bills locally regardless of individual remote
// outcomes: the operator already confirmed the delete.
func (u *BulkUseCase) DeleteSelected(ctx context.Context, ids []string) (BulkResult, error) {
	ids = normalizeSelection(ids)
	if len(ids) == 0 {
		return BulkResult{}, ErrEmptySelection
	}

	selected := idSet(ids)
	var affected []entities.Bill
	for _, b := range u.store.Snapshot() {
		if selected[b.ID] {
			affected = append(affected, b)
		}
	}

	var failures []BulkFailure
	if gateway := u.sync.Gateway(); gateway != nil {
		failures = u.fanOut(affected, func(b entities.Bill) error {
			return gateway.Remove(ctx, b.ID)
		})
	}

	u.store.RemoveAllLocal(ids)
	return BulkResult{Affected: affected, Failures: failures}, nil
}

// applySelected runs mutate over every selected bill inside one atomic
// batch replace, so readers never observe a partially applied bulk edit.
func (u *BulkUseCase) applySelected(ids []string, mutate func(b *entities.Bill)) []entities.Bill {
	selected := idSet(ids)

	var affected []entities.Bill
	u.store.ApplyBatch(func(bills []entities.Bill) []entities.Bill {
		for i := range bills {
			if selected[bills[i].ID] {
				mutate(&bills[i])
				affected = append(affected, bills[i])
			}
		}
		return bills
	})
	return affected
}

// settlePersist fans the affected bills out to the remote gateway and waits
// for all calls to settle. Per-item failures are logged and reported, never
// rolled back.
func (u *BulkUseCase) settlePersist(ctx context.Context, affected []entities.Bill) BulkResult {
	gateway := u.sync.Gateway()
	if gateway == nil || len(affected) == 0 {
		return BulkResult{Affected: affected}
	}

	failures := u.fanOut(affected, func(b entities.Bill) error {
		_, err := gateway.Persist(ctx, b, nil)
		return err
	})
	return BulkResult{Affected: affected, Failures: failures}
}

func (u *BulkUseCase) fanOut(bills []entities.Bill, call func(b entities.Bill) error) []BulkFailure {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []BulkFailure
	)
	for _, b := range bills {
		wg.Add(1)
		go func(b entities.Bill) {
			defer wg.Done()
			if err := call(b); err != nil {
				u.log.Warn().Err(err).Str("bill_id", b.ID).Msg("bulk remote call failed")
				mu.Lock()
				failures = append(failures, BulkFailure{BillID: b.ID, Cause: err.Error()})
				mu.Unlock()
			}
		}(b)
	}
	wg.Wait()
	return failures
}

func normalizeSelection(ids []string) []string {
	out := ids[:0:0]
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
