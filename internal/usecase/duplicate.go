package usecase

import (
	"strings"

	"packtrack/internal/domain/entities"
)

// FindDuplicate reports the first bill whose invoice number matches the
// candidate after trimming and case-folding, in slice order. An empty
// normalized candidate never matches: blank invoice numbers are not
// duplicates of each other.
//
// The check runs only for extracted invoice numbers. Manual quick-adds
// bypass it: operator-supplied numbers are assumed intentional.
func FindDuplicate(bills []entities.Bill, invoiceNo string) *entities.Bill {
	candidate := normalizeInvoiceNo(invoiceNo)
	if candidate == "" {
		return nil
	}
	for i := range bills {
		if normalizeInvoiceNo(bills[i].InvoiceNo) == candidate {
			return &bills[i]
		}
	}
	return nil
}

func normalizeInvoiceNo(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
