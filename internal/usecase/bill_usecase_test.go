package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"packtrack/internal/domain/entities"
	mock_interfaces "packtrack/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newTestBillUseCase(t *testing.T, gatewayed bool) (*BillUseCase, *BillStore, *mock_interfaces.MockIRemoteGateway, *mock_interfaces.MockIFieldExtractor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := NewBillStore()
	extractor := mock_interfaces.NewMockIFieldExtractor(ctrl)

	var gw *mock_interfaces.MockIRemoteGateway
	rt := NewSyncRuntime(store, nil, zerolog.Nop())
	if gatewayed {
		gw = mock_interfaces.NewMockIRemoteGateway(ctrl)
		rt = NewSyncRuntime(store, gw, zerolog.Nop())
	}

	uc := NewBillUseCase(store, rt, extractor, nil, zerolog.Nop())
	return uc, store, gw, extractor
}

func TestBillUseCase_AddFromImage(t *testing.T) {
	image := []byte("jpeg-bytes")

	t.Run("empty image", func(t *testing.T) {
		uc, _, _, _ := newTestBillUseCase(t, false)
		_, err := uc.AddFromImage(context.Background(), nil, AddOptions{})
		if !errors.Is(err, ErrEmptyImage) {
			t.Fatalf("expected ErrEmptyImage, got %v", err)
		}
	})

	t.Run("extraction failure aborts before any write", func(t *testing.T) {
		uc, store, _, extractor := newTestBillUseCase(t, false)
		extractor.EXPECT().Extract(gomock.Any(), image).Return(entities.ExtractedFields{}, errors.New("vision timeout"))

		_, err := uc.AddFromImage(context.Background(), image, AddOptions{})
		if !errors.Is(err, ErrExtractionFailed) {
			t.Fatalf("expected ErrExtractionFailed, got %v", err)
		}
		if store.Len() != 0 {
			t.Fatalf("expected untouched store, got %d bills", store.Len())
		}
	})

	t.Run("duplicate halts before local and remote writes", func(t *testing.T) {
		uc, store, _, extractor := newTestBillUseCase(t, false)
		store.UpsertLocal(entities.Bill{ID: "existing", InvoiceNo: "INV-001 "})
		extractor.EXPECT().Extract(gomock.Any(), image).Return(entities.ExtractedFields{InvoiceNo: "inv-001", CustomerName: "ACME"}, nil)

		_, err := uc.AddFromImage(context.Background(), image, AddOptions{})
		if !errors.Is(err, ErrDuplicateInvoice) {
			t.Fatalf("expected ErrDuplicateInvoice, got %v", err)
		}

		var dup *DuplicateError
		if !errors.As(err, &dup) {
			t.Fatalf("expected DuplicateError, got %T", err)
		}
		if dup.Existing.ID != "existing" || dup.Candidate.CustomerName != "ACME" {
			t.Fatalf("unexpected conflict payload: %+v", dup)
		}
		if store.Len() != 1 {
			t.Fatalf("expected store unchanged, got %d bills", store.Len())
		}
	})

	t.Run("save as copy skips the duplicate check", func(t *testing.T) {
		uc, store, _, extractor := newTestBillUseCase(t, false)
		store.UpsertLocal(entities.Bill{ID: "existing", InvoiceNo: "INV-001"})
		extractor.EXPECT().Extract(gomock.Any(), image).Return(entities.ExtractedFields{InvoiceNo: "INV-001"}, nil)

		bill, err := uc.AddFromImage(context.Background(), image, AddOptions{SaveAsCopy: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bill.ID == "" || store.Len() != 2 {
			t.Fatalf("expected second bill saved, got %d bills", store.Len())
		}
	})

	t.Run("offline creation keeps bill local with placeholder image", func(t *testing.T) {
		uc, store, _, extractor := newTestBillUseCase(t, false)
		extractor.EXPECT().Extract(gomock.Any(), image).Return(entities.ExtractedFields{CustomerName: "ACME", InvoiceNo: "INV-9"}, nil)

		bill, err := uc.AddFromImage(context.Background(), image, AddOptions{EntryDate: "2024-01-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Len() != 1 {
			t.Fatalf("expected exactly one bill, got %d", store.Len())
		}
		if !strings.HasPrefix(bill.ImageURL, "data:image/jpeg;base64,") {
			t.Fatalf("expected local placeholder image, got %q", bill.ImageURL)
		}
		if bill.Status != entities.BillStatusPending {
			t.Fatalf("expected pending, got %s", bill.Status)
		}
		if bill.EntryDate != "2024-01-03" {
			t.Fatalf("expected entry date preserved, got %q", bill.EntryDate)
		}
		if bill.CreatedAt.IsZero() || bill.UpdatedAt.IsZero() {
			t.Fatalf("expected timestamps set")
		}
		if bill.PackedAt != nil {
			t.Fatalf("pending bill must not carry packed_at")
		}
	})

	t.Run("persist failure rolls the optimistic insert back", func(t *testing.T) {
		uc, store, gw, extractor := newTestBillUseCase(t, true)
		store.UpsertLocal(entities.Bill{ID: "pre-existing", InvoiceNo: "OTHER"})
		before := store.Len()

		extractor.EXPECT().Extract(gomock.Any(), image).Return(entities.ExtractedFields{InvoiceNo: "INV-9"}, nil)
		gw.EXPECT().Persist(gomock.Any(), gomock.Any(), image).Return(entities.Bill{}, errors.New("backend down"))

		_, err := uc.AddFromImage(context.Background(), image, AddOptions{})
		if err == nil {
			t.Fatalf("expected persist error")
		}
		if store.Len() != before {
			t.Fatalf("expected full rollback: before=%d after=%d", before, store.Len())
		}
	})

	t.Run("persist success reconciles the gateway-rewritten bill", func(t *testing.T) {
		uc, store, gw, extractor := newTestBillUseCase(t, true)
		extractor.EXPECT().Extract(gomock.Any(), image).Return(entities.ExtractedFields{InvoiceNo: "INV-9"}, nil)
		gw.EXPECT().Persist(gomock.Any(), gomock.Any(), image).DoAndReturn(
			func(_ context.Context, b entities.Bill, _ []byte) (entities.Bill, error) {
				b.ImageURL = "https://images.example/bills/" + b.ID + ".jpg"
				return b, nil
			},
		)

		bill, err := uc.AddFromImage(context.Background(), image, AddOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, ok := store.Get(bill.ID)
		if !ok {
			t.Fatalf("expected bill in store")
		}
		if !strings.HasPrefix(stored.ImageURL, "https://images.example/") {
			t.Fatalf("expected remote image url, got %q", stored.ImageURL)
		}
	})
}

func TestBillUseCase_QuickAdd(t *testing.T) {
	t.Run("negative box count", func(t *testing.T) {
		uc, _, _, _ := newTestBillUseCase(t, false)
		_, err := uc.QuickAdd(context.Background(), QuickAddInput{BoxCount: -1})
		if !errors.Is(err, ErrInvalidBoxCount) {
			t.Fatalf("expected ErrInvalidBoxCount, got %v", err)
		}
	})

	t.Run("invalid entry date", func(t *testing.T) {
		uc, _, _, _ := newTestBillUseCase(t, false)
		_, err := uc.QuickAdd(context.Background(), QuickAddInput{EntryDate: "03/01/2024"})
		if !errors.Is(err, ErrInvalidEntryDate) {
			t.Fatalf("expected ErrInvalidEntryDate, got %v", err)
		}
	})

	t.Run("bypasses duplicate detection", func(t *testing.T) {
		uc, store, _, _ := newTestBillUseCase(t, false)
		store.UpsertLocal(entities.Bill{ID: "existing", InvoiceNo: "INV-1"})

		bill, err := uc.QuickAdd(context.Background(), QuickAddInput{InvoiceNo: "INV-1", CustomerName: " ACME "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Len() != 2 {
			t.Fatalf("expected duplicate invoice allowed in quick add, got %d bills", store.Len())
		}
		if bill.CustomerName != "ACME" {
			t.Fatalf("expected trimmed name, got %q", bill.CustomerName)
		}
		if bill.EntryDate == "" {
			t.Fatalf("expected entry date defaulted to today")
		}
	})

	t.Run("online quick add persists without image", func(t *testing.T) {
		uc, _, gw, _ := newTestBillUseCase(t, true)
		gw.EXPECT().Persist(gomock.Any(), gomock.Any(), nil).DoAndReturn(
			func(_ context.Context, b entities.Bill, _ []byte) (entities.Bill, error) { return b, nil },
		)

		if _, err := uc.QuickAdd(context.Background(), QuickAddInput{CustomerName: "ACME"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBillUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _, _ := newTestBillUseCase(t, false)
		_, err := uc.Update(context.Background(), " ", BillPatch{})
		if !errors.Is(err, ErrInvalidBillID) {
			t.Fatalf("expected ErrInvalidBillID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, _, _, _ := newTestBillUseCase(t, false)
		_, err := uc.Update(context.Background(), "missing", BillPatch{})
		if !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("local apply is synchronous", func(t *testing.T) {
		uc, store, _, _ := newTestBillUseCase(t, false)
		store.UpsertLocal(entities.Bill{ID: "b-1", BoxCount: 1})

		boxes := 5
		updated, err := uc.Update(context.Background(), "b-1", BillPatch{BoxCount: &boxes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.BoxCount != 5 {
			t.Fatalf("expected 5 boxes, got %d", updated.BoxCount)
		}
		if updated.UpdatedAt.IsZero() {
			t.Fatalf("expected updated_at refreshed")
		}
	})

	t.Run("remote persist failure never rolls the edit back", func(t *testing.T) {
		uc, store, gw, _ := newTestBillUseCase(t, true)
		store.UpsertLocal(entities.Bill{ID: "b-1", CustomerName: "old"})

		persisted := make(chan struct{})
		gw.EXPECT().Persist(gomock.Any(), gomock.Any(), nil).DoAndReturn(
			func(_ context.Context, _ entities.Bill, _ []byte) (entities.Bill, error) {
				defer close(persisted)
				return entities.Bill{}, errors.New("backend down")
			},
		)

		name := "new"
		if _, err := uc.Update(context.Background(), "b-1", BillPatch{CustomerName: &name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case <-persisted:
		case <-time.After(2 * time.Second):
			t.Fatalf("remote persist never fired")
		}

		got, _ := store.Get("b-1")
		if got.CustomerName != "new" {
			t.Fatalf("edit was rolled back: %q", got.CustomerName)
		}
	})
}

func TestBillUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, _, _, _ := newTestBillUseCase(t, false)
		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("remote failure does not block local removal", func(t *testing.T) {
		uc, store, gw, _ := newTestBillUseCase(t, true)
		store.UpsertLocal(entities.Bill{ID: "b-1"})
		gw.EXPECT().Remove(gomock.Any(), "b-1").Return(errors.New("backend down"))

		if err := uc.Delete(context.Background(), "b-1"); err != nil {
			t.Fatalf("expected best-effort delete, got %v", err)
		}
		if _, ok := store.Get("b-1"); ok {
			t.Fatalf("expected local removal")
		}
	})
}

func TestBillUseCase_Online(t *testing.T) {
	offline, _, _, _ := newTestBillUseCase(t, false)
	if offline.Online() {
		t.Fatalf("expected offline")
	}
	online, _, _, _ := newTestBillUseCase(t, true)
	if !online.Online() {
		t.Fatalf("expected online")
	}
}
