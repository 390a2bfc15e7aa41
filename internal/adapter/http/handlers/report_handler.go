package handlers

import (
	"fmt"
	"net/http"
	"time"

	"packtrack/internal/adapter/export"
	"packtrack/internal/domain/entities"
	"packtrack/internal/usecase"
	"packtrack/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler streams bill reports.

type ReportHandler struct {
	usecase usecase.IBillUseCase
}

func NewReportHandler(uc usecase.IBillUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// ExportCSV streams every bill as a CSV attachment. An optional ?date=
// query restricts the export to a single entry date.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	bills := h.usecase.Snapshot()

	if date := c.Query("date"); date != "" {
		if _, err := time.Parse(entities.EntryDateLayout, date); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		filtered := make([]entities.Bill, 0, len(bills))
		for _, b := range bills {
			if b.EntryDate == date {
				filtered = append(filtered, b)
			}
		}
		bills = filtered
	}

	filename := fmt.Sprintf("bills-%s.csv", time.Now().Format(entities.EntryDateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if err := export.WriteCSV(c.Writer, bills); err != nil {
		// Headers are already on the wire; nothing left to do but abort.
		c.Abort()
	}
}
