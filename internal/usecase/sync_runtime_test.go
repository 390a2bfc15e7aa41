package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"packtrack/internal/domain/entities"
	mock_interfaces "packtrack/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type fakeSubscription struct {
	ch   chan []entities.Bill
	once sync.Once
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{ch: make(chan []entities.Bill, 4)}
}

func (f *fakeSubscription) Updates() <-chan []entities.Bill { return f.ch }

func (f *fakeSubscription) Close() {
	f.once.Do(func() { close(f.ch) })
}

func waitForStoreLen(t *testing.T, store *BillStore, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if store.Len() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("store never reached %d bills, has %d", want, store.Len())
}

func TestSyncRuntime_OfflineStartIsNoop(t *testing.T) {
	store := NewBillStore()
	rt := NewSyncRuntime(store, nil, zerolog.Nop())

	if err := rt.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.Gateway() != nil {
		t.Fatalf("expected nil gateway")
	}
	rt.Close()
}

func TestSyncRuntime_PumpsSnapshotsIntoStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewBillStore()
	gw := mock_interfaces.NewMockIRemoteGateway(ctrl)
	sub := newFakeSubscription()
	gw.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	rt := NewSyncRuntime(store, gw, zerolog.Nop())
	if err := rt.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rt.Close()

	sub.ch <- []entities.Bill{{ID: "r1"}, {ID: "r2"}}
	waitForStoreLen(t, store, 2)

	// A later snapshot replaces wholesale, including deletions.
	sub.ch <- []entities.Bill{{ID: "r2"}}
	waitForStoreLen(t, store, 1)
	if _, ok := store.Get("r2"); !ok {
		t.Fatalf("expected r2 to survive the replace")
	}
}

func TestSyncRuntime_ReconfigureKeepsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewBillStore()
	oldGW := mock_interfaces.NewMockIRemoteGateway(ctrl)
	oldSub := newFakeSubscription()
	oldGW.EXPECT().Subscribe(gomock.Any()).Return(oldSub, nil)

	rt := NewSyncRuntime(store, oldGW, zerolog.Nop())
	if err := rt.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	oldSub.ch <- []entities.Bill{{ID: "from-old"}}
	waitForStoreLen(t, store, 1)

	newGW := mock_interfaces.NewMockIRemoteGateway(ctrl)
	newSub := newFakeSubscription()
	newGW.EXPECT().Subscribe(gomock.Any()).Return(newSub, nil)

	if err := rt.Reconfigure(context.Background(), newGW); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rt.Close()

	// Unrelated in-memory state survives the reconnection until the new
	// backend delivers its snapshot.
	if _, ok := store.Get("from-old"); !ok {
		t.Fatalf("expected store kept across reconfigure")
	}
	if rt.Gateway() != newGW {
		t.Fatalf("expected new gateway installed")
	}

	newSub.ch <- []entities.Bill{{ID: "from-new"}}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := store.Get("from-new"); ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("new subscription never delivered")
}

func TestSyncRuntime_ReconfigureToNilGoesOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewBillStore()
	gw := mock_interfaces.NewMockIRemoteGateway(ctrl)
	sub := newFakeSubscription()
	gw.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	rt := NewSyncRuntime(store, gw, zerolog.Nop())
	if err := rt.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := rt.Reconfigure(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.Gateway() != nil {
		t.Fatalf("expected offline after reconfigure(nil)")
	}
}
