package entities

import "time"

// BillStatus represents the packing lifecycle of a bill.
//
// Domain notes:
//   - Every bill starts as pending and moves to packed exactly once,
//     via an explicit pack action. There is no reverse transition.
//   - Packed bills stay in the store indefinitely as report line items.

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPacked  BillStatus = "packed"
)

// EntryDateLayout is the date-only format used for EntryDate.
// Lexicographic order on this layout matches chronological order, which the
// backlog/today views rely on.
const EntryDateLayout = "2006-01-02"

// Bill is the central packing/shipping record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Field notes:
//   - BillDate is the date printed on the physical bill, kept as free text
//     exactly as extracted; EntryDate is the logical day the bill was
//     registered and is never empty once the bill exists.
//   - ImageURL is either empty, a local data: placeholder (offline mode),
//     or a remote object-store URL (online mode).
//   - PackedAt is set if and only if Status is packed.

type Bill struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customer_name"`
	Address      string     `json:"address"`
	InvoiceNo    string     `json:"invoice_no"`
	BillDate     string     `json:"bill_date"`
	Status       BillStatus `json:"status"`

	IsDelivery       bool `json:"is_delivery"`
	HasCRN           bool `json:"has_crn"`
	IsEditedBill     bool `json:"is_edited_bill"`
	IsAdditionalBill bool `json:"is_additional_bill"`

	BoxCount    int    `json:"box_count"`
	Description string `json:"description"`
	ColorTheme  string `json:"color_theme,omitempty"`

	EntryDate string `json:"entry_date"`
	ImageURL  string `json:"image_url,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PackedAt  *time.Time `json:"packed_at,omitempty"`
}

// ExtractedFields holds the candidate fields produced by the AI
// field-extraction collaborator. Any field may come back empty.
type ExtractedFields struct {
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	InvoiceNo    string `json:"invoice_no"`
	BillDate     string `json:"bill_date"`
}

// Pack transitions the bill to packed. Packing an already packed bill is a
// no-op so a repeated bulk pack never rewrites PackedAt.
func (b *Bill) Pack(now time.Time) {
	if b.Status == BillStatusPacked {
		return
	}
	b.Status = BillStatusPacked
	packedAt := now
	b.PackedAt = &packedAt
	b.UpdatedAt = now
}

// Touch refreshes UpdatedAt. Call on every mutation.
func (b *Bill) Touch(now time.Time) {
	b.UpdatedAt = now
}
