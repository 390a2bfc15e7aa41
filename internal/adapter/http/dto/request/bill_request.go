package request

import (
	"strings"

	"packtrack/internal/usecase"
)

// ScanBillRequest carries the multipart form fields accompanying a bill
// photograph. The image itself arrives as the "image" file part.
type ScanBillRequest struct {
	EntryDate   string `form:"entry_date"`
	Description string `form:"description"`
	BoxCount    int    `form:"box_count"`
	ColorTheme  string `form:"color_theme"`
	SaveAsCopy  bool   `form:"save_as_copy"`
}

func (r ScanBillRequest) ToOptions() usecase.AddOptions {
	return usecase.AddOptions{
		EntryDate:   strings.TrimSpace(r.EntryDate),
		Description: strings.TrimSpace(r.Description),
		BoxCount:    r.BoxCount,
		ColorTheme:  strings.TrimSpace(r.ColorTheme),
		SaveAsCopy:  r.SaveAsCopy,
	}
}

// QuickAddRequest is a manually entered bill.
type QuickAddRequest struct {
	CustomerName     string `json:"customer_name"`
	Address          string `json:"address"`
	InvoiceNo        string `json:"invoice_no"`
	BillDate         string `json:"bill_date"`
	EntryDate        string `json:"entry_date"`
	Description      string `json:"description"`
	BoxCount         int    `json:"box_count"`
	ColorTheme       string `json:"color_theme"`
	IsDelivery       bool   `json:"is_delivery"`
	HasCRN           bool   `json:"has_crn"`
	IsAdditionalBill bool   `json:"is_additional_bill"`
}

func (r QuickAddRequest) ToInput() usecase.QuickAddInput {
	return usecase.QuickAddInput{
		CustomerName:     r.CustomerName,
		Address:          r.Address,
		InvoiceNo:        r.InvoiceNo,
		BillDate:         r.BillDate,
		EntryDate:        strings.TrimSpace(r.EntryDate),
		Description:      r.Description,
		BoxCount:         r.BoxCount,
		ColorTheme:       r.ColorTheme,
		IsDelivery:       r.IsDelivery,
		HasCRN:           r.HasCRN,
		IsAdditionalBill: r.IsAdditionalBill,
	}
}

// UpdateBillRequest is a partial edit; absent fields stay untouched.
type UpdateBillRequest struct {
	CustomerName     *string `json:"customer_name"`
	Address          *string `json:"address"`
	InvoiceNo        *string `json:"invoice_no"`
	BillDate         *string `json:"bill_date"`
	BoxCount         *int    `json:"box_count"`
	Description      *string `json:"description"`
	ColorTheme       *string `json:"color_theme"`
	IsDelivery       *bool   `json:"is_delivery"`
	HasCRN           *bool   `json:"has_crn"`
	IsEditedBill     *bool   `json:"is_edited_bill"`
	IsAdditionalBill *bool   `json:"is_additional_bill"`
}

func (r UpdateBillRequest) ToPatch() usecase.BillPatch {
	return usecase.BillPatch{
		CustomerName:     r.CustomerName,
		Address:          r.Address,
		InvoiceNo:        r.InvoiceNo,
		BillDate:         r.BillDate,
		BoxCount:         r.BoxCount,
		Description:      r.Description,
		ColorTheme:       r.ColorTheme,
		IsDelivery:       r.IsDelivery,
		HasCRN:           r.HasCRN,
		IsEditedBill:     r.IsEditedBill,
		IsAdditionalBill: r.IsAdditionalBill,
	}
}

// BulkSelectionRequest selects bills for a bulk pack or delete.
type BulkSelectionRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// BulkRetagRequest applies a shared group name and color to a selection.
type BulkRetagRequest struct {
	IDs         []string `json:"ids" binding:"required"`
	Description string   `json:"description"`
	ColorTheme  string   `json:"color_theme"`
}
