package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"packtrack/internal/adapter/http/handlers/mocks"
	"packtrack/internal/domain/entities"
	"packtrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleBill() entities.Bill {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	return entities.Bill{
		ID:           "bill-1",
		CustomerName: "Acme Traders",
		InvoiceNo:    "INV-100",
		Status:       entities.BillStatusPending,
		BoxCount:     2,
		EntryDate:    "2024-03-10",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newScanRequest(t *testing.T, fields map[string]string, withImage bool) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if withImage {
		fw, err := mw.CreateFormFile("image", "bill.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("jpeg-bytes")); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/bills/scan", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestBillHandler_ScanBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing image part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills/scan", h.ScanBill)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newScanRequest(t, map[string]string{"box_count": "1"}, false))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate invoice returns conflict payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		existing := sampleBill()
		candidate := entities.ExtractedFields{CustomerName: "Acme Traders", InvoiceNo: "INV-100"}
		uc.EXPECT().AddFromImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Bill{}, &usecase.DuplicateError{Existing: existing, Candidate: candidate})

		r := gin.New()
		r.POST("/v1/bills/scan", h.ScanBill)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newScanRequest(t, nil, true))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var payload map[string]map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if payload["existing"]["id"] != "bill-1" || payload["candidate"]["invoice_no"] != "INV-100" {
			t.Fatalf("unexpected conflict payload: %v", payload)
		}
	})

	t.Run("extraction failure maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		uc.EXPECT().AddFromImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Bill{}, usecase.ErrExtractionFailed)

		r := gin.New()
		r.POST("/v1/bills/scan", h.ScanBill)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newScanRequest(t, nil, true))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success forwards form options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		uc.EXPECT().AddFromImage(gomock.Any(), []byte("jpeg-bytes"), usecase.AddOptions{
			EntryDate:   "2024-03-10",
			Description: "morning batch",
			BoxCount:    3,
			SaveAsCopy:  true,
		}).Return(sampleBill(), nil)

		r := gin.New()
		r.POST("/v1/bills/scan", h.ScanBill)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, newScanRequest(t, map[string]string{
			"entry_date":   "2024-03-10",
			"description":  "morning batch",
			"box_count":    "3",
			"save_as_copy": "true",
		}, true))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestBillHandler_QuickAdd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		r := gin.New()
		r.POST("/v1/bills", h.QuickAdd)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		uc.EXPECT().QuickAdd(gomock.Any(), gomock.Any()).Return(sampleBill(), nil)

		r := gin.New()
		r.POST("/v1/bills", h.QuickAdd)

		req := httptest.NewRequest(http.MethodPost, "/v1/bills", bytes.NewBufferString(`{"customer_name":"Acme Traders","invoice_no":"INV-100"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestBillHandler_Views(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("today view passes the date filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		uc.EXPECT().TodayView("2024-03-10").Return([]entities.Bill{sampleBill()}, nil)

		r := gin.New()
		r.GET("/v1/bills", h.ListToday)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bills?date=2024-03-10", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var bills []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &bills); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(bills) != 1 || bills[0]["id"] != "bill-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("backlog view maps invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		uc.EXPECT().BacklogView("not-a-date").Return(nil, usecase.ErrInvalidEntryDate)

		r := gin.New()
		r.GET("/v1/bills/backlog", h.ListBacklog)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bills/backlog?date=not-a-date", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBillHandler_UpdateBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.Bill{}, usecase.ErrBillNotFound)

		r := gin.New()
		r.PATCH("/v1/bills/:id", h.UpdateBill)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/missing", bytes.NewBufferString(`{"box_count":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns patched bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		five := 5
		updated := sampleBill()
		updated.BoxCount = 5
		uc.EXPECT().Update(gomock.Any(), "bill-1", usecase.BillPatch{BoxCount: &five}).Return(updated, nil)

		r := gin.New()
		r.PATCH("/v1/bills/:id", h.UpdateBill)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bills/bill-1", bytes.NewBufferString(`{"box_count":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBillHandler_DeleteBill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "bill-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/bills/:id", h.DeleteBill)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/bills/bill-1", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillUseCase(ctrl)
		h := NewBillHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrBillNotFound)

		r := gin.New()
		r.DELETE("/v1/bills/:id", h.DeleteBill)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/bills/missing", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBillHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillUseCase(ctrl)
	h := NewBillHandler(uc)

	uc.EXPECT().Online().Return(true)

	r := gin.New()
	r.GET("/v1/status", h.Status)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"online":true}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapBillError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invoice duplicate", usecase.ErrDuplicateInvoice, http.StatusConflict},
		{"not found", usecase.ErrBillNotFound, http.StatusNotFound},
		{"empty image", usecase.ErrEmptyImage, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapBillError(tc.err); got.HTTPStatus != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, got.HTTPStatus)
			}
		})
	}
}
