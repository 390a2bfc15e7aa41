package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"packtrack/internal/domain/entities"
)

var reportHeader = []string{
	"Entry Date",
	"Bill Date",
	"Customer Name",
	"Address",
	"Group Name",
	"Color Theme",
	"Invoice No",
	"Status",
	"Packed At",
	"Boxes",
	"Delivery",
	"CRN",
	"Additional",
	"Edited",
}

const packedAtLayout = "2006-01-02 15:04:05"

// WriteCSV renders the daily report: one row per bill, columns matching the
// operator-facing spreadsheet. Packed At is blank for pending bills; the
// color column carries the resolved palette name so implicitly colored
// groups export consistently.
func WriteCSV(w io.Writer, bills []entities.Bill) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, b := range bills {
		packedAt := ""
		if b.PackedAt != nil {
			packedAt = b.PackedAt.Local().Format(packedAtLayout)
		}
		row := []string{
			b.EntryDate,
			b.BillDate,
			b.CustomerName,
			b.Address,
			b.Description,
			entities.ResolveTheme(b.ColorTheme, b.Description).Name,
			b.InvoiceNo,
			string(b.Status),
			packedAt,
			strconv.Itoa(b.BoxCount),
			yesNo(b.IsDelivery),
			yesNo(b.HasCRN),
			yesNo(b.IsAdditionalBill),
			yesNo(b.IsEditedBill),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
