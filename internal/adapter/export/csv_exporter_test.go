package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"packtrack/internal/domain/entities"
)

func TestWriteCSV(t *testing.T) {
	packedAt := time.Date(2024, 1, 3, 17, 45, 0, 0, time.UTC)
	bills := []entities.Bill{
		{
			ID: "b-1", EntryDate: "2024-01-03", BillDate: "02/01/2024",
			CustomerName: "ACME Traders", Address: "12 Dock Rd",
			Description: "morning route", ColorTheme: "teal",
			InvoiceNo: "INV-001", Status: entities.BillStatusPacked,
			PackedAt: &packedAt, BoxCount: 3,
			IsDelivery: true, HasCRN: false, IsAdditionalBill: true, IsEditedBill: false,
		},
		{
			ID: "b-2", EntryDate: "2024-01-03",
			Status: entities.BillStatusPending, BoxCount: 0,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, bills); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	header := rows[0]
	if len(header) != 14 || header[0] != "Entry Date" || header[13] != "Edited" {
		t.Fatalf("unexpected header: %v", header)
	}

	packed := rows[1]
	if packed[5] != "teal" {
		t.Fatalf("expected resolved theme name, got %q", packed[5])
	}
	if packed[7] != "packed" || packed[8] == "" {
		t.Fatalf("expected packed status with timestamp, got %v", packed)
	}
	if packed[9] != "3" || packed[10] != "Yes" || packed[11] != "No" || packed[12] != "Yes" || packed[13] != "No" {
		t.Fatalf("unexpected flag columns: %v", packed)
	}

	pending := rows[2]
	if pending[8] != "" {
		t.Fatalf("pending bill must have a blank Packed At, got %q", pending[8])
	}
}
