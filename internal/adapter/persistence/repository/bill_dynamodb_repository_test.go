package repository

import (
	"testing"
	"time"

	"packtrack/internal/domain/entities"
)

func TestBillItemMapping(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 30, 0, 0, time.UTC)

	t.Run("pending bill has no packed_at attribute", func(t *testing.T) {
		b := entities.Bill{ID: "b-1", Status: entities.BillStatusPending, EntryDate: "2024-01-03", CreatedAt: now, UpdatedAt: now}
		it := toBillItem(b)
		if it.PackedAt != "" {
			t.Fatalf("expected empty packed_at, got %q", it.PackedAt)
		}
		back := fromBillItem(it)
		if back.PackedAt != nil {
			t.Fatalf("expected nil PackedAt, got %v", back.PackedAt)
		}
		if back.EntryDate != "2024-01-03" || !back.CreatedAt.Equal(now) {
			t.Fatalf("unexpected round trip: %+v", back)
		}
	})

	t.Run("packed bill round-trips packed_at", func(t *testing.T) {
		packedAt := now.Add(time.Hour)
		b := entities.Bill{ID: "b-1", Status: entities.BillStatusPacked, CreatedAt: now, UpdatedAt: packedAt, PackedAt: &packedAt}
		back := fromBillItem(toBillItem(b))
		if back.PackedAt == nil || !back.PackedAt.Equal(packedAt) {
			t.Fatalf("expected packed_at %v, got %v", packedAt, back.PackedAt)
		}
		if back.Status != entities.BillStatusPacked {
			t.Fatalf("unexpected status %s", back.Status)
		}
	})
}
