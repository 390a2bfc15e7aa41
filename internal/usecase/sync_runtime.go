package usecase

import (
	"context"
	"sync"

	"packtrack/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// SyncRuntime owns the remote gateway handle and the active subscription,
// pumping full remote snapshots into the local store. It exists so that the
// gateway is explicit injected state rather than an ambient singleton, and
// so that a configuration change swaps the connection without discarding the
// in-memory store.
//
// A nil gateway means offline mode; the runtime is still usable and
// Reconfigure can bring it online later.

type SyncRuntime struct {
	store *BillStore
	log   zerolog.Logger

	mu      sync.Mutex
	gateway interfaces.IRemoteGateway
	sub     interfaces.ISubscription
	done    chan struct{}
}

func NewSyncRuntime(store *BillStore, gateway interfaces.IRemoteGateway, log zerolog.Logger) *SyncRuntime {
	return &SyncRuntime{store: store, gateway: gateway, log: log}
}

// Gateway returns the currently configured gateway, or nil when offline.
func (r *SyncRuntime) Gateway() interfaces.IRemoteGateway {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gateway
}

// Start subscribes to the remote change feed and begins replacing the local
// store with each delivered snapshot. No-op when offline.
func (r *SyncRuntime) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.startLocked(ctx)
}

func (r *SyncRuntime) startLocked(ctx context.Context) error {
	if r.gateway == nil || r.sub != nil {
		return nil
	}

	sub, err := r.gateway.Subscribe(ctx)
	if err != nil {
		return err
	}
	r.sub = sub
	r.done = make(chan struct{})

	go func(sub interfaces.ISubscription, done chan struct{}) {
		defer close(done)
		for snapshot := range sub.Updates() {
			r.store.ReplaceAll(snapshot)
			r.log.Debug().Int("bills", len(snapshot)).Msg("remote snapshot applied")
		}
	}(sub, r.done)

	return nil
}

// Reconfigure tears down the current subscription and gateway handle and
// installs a new one, keeping the local store intact. Passing nil takes the
// runtime offline.
func (r *SyncRuntime) Reconfigure(ctx context.Context, gateway interfaces.IRemoteGateway) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.gateway = gateway
	return r.startLocked(ctx)
}

// Close cancels the active subscription. The store keeps its last state.
func (r *SyncRuntime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *SyncRuntime) stopLocked() {
	if r.sub == nil {
		return
	}
	r.sub.Close()
	<-r.done
	r.sub = nil
	r.done = nil
}
