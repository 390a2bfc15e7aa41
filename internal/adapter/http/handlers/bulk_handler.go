package handlers

import (
	"errors"
	"net/http"

	request "packtrack/internal/adapter/http/dto/request"
	response "packtrack/internal/adapter/http/dto/response"
	"packtrack/internal/usecase"
	"packtrack/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSelection = pkg.NewDomainErrorSimple("INVALID_SELECTION", "Selection must contain at least one bill id", http.StatusBadRequest)

// BulkHandler handles multi-select operations over bills.

type BulkHandler struct {
	usecase usecase.IBulkUseCase
}

func NewBulkHandler(uc usecase.IBulkUseCase) *BulkHandler {
	return &BulkHandler{usecase: uc}
}

// PackSelected marks every selected bill as packed.
func (h *BulkHandler) PackSelected(c *gin.Context) {
	var payload request.BulkSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelection.HTTPStatus, errInvalidSelection.ToHTTPError())
		return
	}

	res, err := h.usecase.PackSelected(c.Request.Context(), payload.IDs)
	if err != nil {
		appErr := mapBulkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulkResult(res))
}

// RetagSelected applies a shared description and color theme to the selection.
func (h *BulkHandler) RetagSelected(c *gin.Context) {
	var payload request.BulkRetagRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelection.HTTPStatus, errInvalidSelection.ToHTTPError())
		return
	}

	res, err := h.usecase.RetagSelected(c.Request.Context(), payload.IDs, payload.Description, payload.ColorTheme)
	if err != nil {
		appErr := mapBulkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulkResult(res))
}

// DeleteSelected removes every selected bill.
func (h *BulkHandler) DeleteSelected(c *gin.Context) {
	var payload request.BulkSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelection.HTTPStatus, errInvalidSelection.ToHTTPError())
		return
	}

	res, err := h.usecase.DeleteSelected(c.Request.Context(), payload.IDs)
	if err != nil {
		appErr := mapBulkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulkResult(res))
}

func mapBulkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptySelection):
		return errInvalidSelection
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
