package handlers

import (
	"errors"
	"io"
	"net/http"

	request "packtrack/internal/adapter/http/dto/request"
	response "packtrack/internal/adapter/http/dto/response"
	"packtrack/internal/logger"
	"packtrack/internal/usecase"
	"packtrack/internal/usecase/interfaces"
	"packtrack/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	errInvalidBillPayload = pkg.NewDomainErrorSimple("INVALID_BILL_INPUT", "Invalid bill payload", http.StatusBadRequest)
	errMissingImage       = pkg.NewDomainErrorSimple("MISSING_IMAGE", "Image file part is required", http.StatusBadRequest)
)

// BillHandler handles HTTP requests for the bill lifecycle.

type BillHandler struct {
	usecase usecase.IBillUseCase
	log     zerolog.Logger
}

func NewBillHandler(uc usecase.IBillUseCase) *BillHandler {
	return &BillHandler{usecase: uc, log: logger.WithComponent("bill-handler")}
}

// ScanBill registers a bill from an uploaded photograph. Fields are
// extracted from the image; form fields carry the manual metadata.
func (h *BillHandler) ScanBill(c *gin.Context) {
	var form request.ScanBillRequest
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}

	bill, err := h.usecase.AddFromImage(c.Request.Context(), image, form.ToOptions())
	if err != nil {
		var dup *usecase.DuplicateError
		if errors.As(err, &dup) {
			h.log.Info().Str("invoice_no", dup.Candidate.InvoiceNo).Msg("scan rejected: duplicate invoice")
			c.JSON(http.StatusConflict, response.DuplicateConflictResponse{
				Existing:  response.FromBill(dup.Existing),
				Candidate: response.FromExtractedFields(dup.Candidate),
			})
			return
		}
		h.log.Error().Err(err).Msg("scan failed")
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info().Str("bill_id", bill.ID).Str("invoice_no", bill.InvoiceNo).Msg("scan success")

	c.JSON(http.StatusCreated, response.FromBill(bill))
}

// QuickAdd registers a manually entered bill without an image.
func (h *BillHandler) QuickAdd(c *gin.Context) {
	var payload request.QuickAddRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	bill, err := h.usecase.QuickAdd(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.log.Error().Err(err).Msg("quick add failed")
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBill(bill))
}

// ListToday returns the bills registered for the given date (today by default).
func (h *BillHandler) ListToday(c *gin.Context) {
	bills, err := h.usecase.TodayView(c.Query("date"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBills(bills))
}

// ListBacklog returns pending bills left over from earlier dates.
func (h *BillHandler) ListBacklog(c *gin.Context) {
	bills, err := h.usecase.BacklogView(c.Query("date"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBills(bills))
}

func (h *BillHandler) UpdateBill(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdateBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillPayload.HTTPStatus, errInvalidBillPayload.ToHTTPError())
		return
	}

	bill, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

func (h *BillHandler) DeleteBill(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BillHandler) GetBill(c *gin.Context) {
	bill, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBillError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBill(bill))
}

// Status reports whether the remote sync gateway is wired up.
func (h *BillHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusResponse{Online: h.usecase.Online()})
}

func mapBillError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillID), errors.Is(err, usecase.ErrInvalidEntryDate),
		errors.Is(err, usecase.ErrInvalidBoxCount), errors.Is(err, usecase.ErrEmptyImage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateInvoice):
		return pkg.NewDomainErrorSimple("DUPLICATE_INVOICE", "A bill with this invoice number already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrExtractionFailed):
		return pkg.NewDomainErrorSimple("EXTRACTION_FAILED", "Could not read bill fields from the image", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrUploadFailed), errors.Is(err, interfaces.ErrPersistFailed):
		return pkg.NewDomainError("REMOTE_PERSIST_FAILED", "Could not save the bill remotely", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
