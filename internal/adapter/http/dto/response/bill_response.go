package response

import (
	"time"

	"packtrack/internal/domain/entities"
	"packtrack/internal/usecase"
)

type BillResponse struct {
	ID               string     `json:"id"`
	CustomerName     string     `json:"customer_name"`
	Address          string     `json:"address"`
	InvoiceNo        string     `json:"invoice_no"`
	BillDate         string     `json:"bill_date"`
	Status           string     `json:"status"`
	IsDelivery       bool       `json:"is_delivery"`
	HasCRN           bool       `json:"has_crn"`
	IsEditedBill     bool       `json:"is_edited_bill"`
	IsAdditionalBill bool       `json:"is_additional_bill"`
	BoxCount         int        `json:"box_count"`
	Description      string     `json:"description"`
	ColorTheme       string     `json:"color_theme"`
	ThemeHex         string     `json:"theme_hex"`
	EntryDate        string     `json:"entry_date"`
	ImageURL         string     `json:"image_url"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	PackedAt         *time.Time `json:"packed_at,omitempty"`
}

func FromBill(b entities.Bill) BillResponse {
	theme := entities.ResolveTheme(b.ColorTheme, b.Description)
	return BillResponse{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		Address:          b.Address,
		InvoiceNo:        b.InvoiceNo,
		BillDate:         b.BillDate,
		Status:           string(b.Status),
		IsDelivery:       b.IsDelivery,
		HasCRN:           b.HasCRN,
		IsEditedBill:     b.IsEditedBill,
		IsAdditionalBill: b.IsAdditionalBill,
		BoxCount:         b.BoxCount,
		Description:      b.Description,
		ColorTheme:       theme.Name,
		ThemeHex:         theme.Hex,
		EntryDate:        b.EntryDate,
		ImageURL:         b.ImageURL,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		PackedAt:         b.PackedAt,
	}
}

func FromBills(bills []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, FromBill(b))
	}
	return out
}

// ExtractedFieldsResponse mirrors what was read off a scanned image.
type ExtractedFieldsResponse struct {
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	InvoiceNo    string `json:"invoice_no"`
	BillDate     string `json:"bill_date"`
}

func FromExtractedFields(f entities.ExtractedFields) ExtractedFieldsResponse {
	return ExtractedFieldsResponse{
		CustomerName: f.CustomerName,
		Address:      f.Address,
		InvoiceNo:    f.InvoiceNo,
		BillDate:     f.BillDate,
	}
}

// DuplicateConflictResponse is returned when a scanned invoice number
// already exists and the caller did not ask for a copy.
type DuplicateConflictResponse struct {
	Existing  BillResponse            `json:"existing"`
	Candidate ExtractedFieldsResponse `json:"candidate"`
}

type BulkFailureResponse struct {
	BillID string `json:"bill_id"`
	Cause  string `json:"cause"`
}

type BulkResultResponse struct {
	Affected []BillResponse        `json:"affected"`
	Failures []BulkFailureResponse `json:"failures"`
}

func FromBulkResult(res usecase.BulkResult) BulkResultResponse {
	out := BulkResultResponse{
		Affected: FromBills(res.Affected),
		Failures: make([]BulkFailureResponse, 0, len(res.Failures)),
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, BulkFailureResponse{BillID: f.BillID, Cause: f.Cause})
	}
	return out
}

type StatusResponse struct {
	Online bool `json:"online"`
}
