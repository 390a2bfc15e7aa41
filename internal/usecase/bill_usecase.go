package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"packtrack/internal/domain/entities"
	"packtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrBillNotFound     = errors.New("bill not found")
	ErrInvalidBillID    = errors.New("invalid bill id")
	ErrInvalidEntryDate = errors.New("invalid entry date")
	ErrInvalidBoxCount  = errors.New("invalid box count")
	ErrEmptyImage       = errors.New("empty image payload")
	ErrExtractionFailed = errors.New("field extraction failed")
	ErrDuplicateInvoice = errors.New("duplicate invoice number")
)

// DuplicateError carries the operator decision point raised when an
// extracted invoice number matches an existing record. Creation halts before
// any local or remote write; the caller resubmits with SaveAsCopy once the
// operator has confirmed. It matches ErrDuplicateInvoice under errors.Is.
type DuplicateError struct {
	Existing  entities.Bill
	Candidate entities.ExtractedFields
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate invoice number %q (existing bill %s)", e.Candidate.InvoiceNo, e.Existing.ID)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateInvoice
}

// AddOptions tunes bill creation from a captured image.
type AddOptions struct {
	// EntryDate is the currently viewed day (YYYY-MM-DD); empty means today.
	EntryDate   string
	Description string
	BoxCount    int
	ColorTheme  string
	// SaveAsCopy skips the duplicate check after the operator explicitly
	// confirmed saving a second bill for the same invoice number.
	SaveAsCopy bool
}

// QuickAddInput is a manually entered bill. Quick-adds never run the
// duplicate check.
type QuickAddInput struct {
	CustomerName string
	Address      string
	InvoiceNo    string
	BillDate     string
	EntryDate    string
	Description  string
	BoxCount     int
	ColorTheme   string

	IsDelivery       bool
	HasCRN           bool
	IsAdditionalBill bool
}

// BillPatch is a partial field edit; nil members are left untouched.
type BillPatch struct {
	CustomerName *string
	Address      *string
	InvoiceNo    *string
	BillDate     *string
	BoxCount     *int
	Description  *string
	ColorTheme   *string

	IsDelivery       *bool
	HasCRN           *bool
	IsEditedBill     *bool
	IsAdditionalBill *bool
}

// IBillUseCase drives the bill creation/mutation state machine:
// duplicate check, optimistic local apply, remote persist, rollback on
// creation failure.

type IBillUseCase interface {
	AddFromImage(ctx context.Context, image []byte, opts AddOptions) (entities.Bill, error)
	QuickAdd(ctx context.Context, in QuickAddInput) (entities.Bill, error)
	Update(ctx context.Context, id string, patch BillPatch) (entities.Bill, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Bill, error)
	TodayView(refDate string) ([]entities.Bill, error)
	BacklogView(refDate string) ([]entities.Bill, error)
	Snapshot() []entities.Bill
	Online() bool
}

type BillUseCase struct {
	store      *BillStore
	sync       *SyncRuntime
	extractor  interfaces.IFieldExtractor
	compressor interfaces.IImageCompressor
	log        zerolog.Logger
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(store *BillStore, sync *SyncRuntime, extractor interfaces.IFieldExtractor, compressor interfaces.IImageCompressor, log zerolog.Logger) *BillUseCase {
	return &BillUseCase{store: store, sync: sync, extractor: extractor, compressor: compressor, log: log}
}

// AddFromImage runs the full creation attempt for a captured bill photo:
// compress, extract candidate fields, duplicate-check the extracted invoice
// number, then hand off to the common optimistic create path.
func (u *BillUseCase) AddFromImage(ctx context.Context, image []byte, opts AddOptions) (entities.Bill, error) {
	if len(image) == 0 {
		return entities.Bill{}, ErrEmptyImage
	}
	if opts.BoxCount < 0 {
		return entities.Bill{}, ErrInvalidBoxCount
	}

	if u.compressor != nil {
		image = u.compressor.Compress(image)
	}

	fields, err := u.extractor.Extract(ctx, image)
	if err != nil {
		// Nothing was written yet, so there is nothing to roll back.
		return entities.Bill{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	if !opts.SaveAsCopy && strings.TrimSpace(fields.InvoiceNo) != "" {
		if existing := FindDuplicate(u.store.Snapshot(), fields.InvoiceNo); existing != nil {
			u.log.Info().
				Str("invoice_no", fields.InvoiceNo).
				Str("existing_id", existing.ID).
				Msg("duplicate invoice detected, awaiting operator decision")
			return entities.Bill{}, &DuplicateError{Existing: *existing, Candidate: fields}
		}
	}

	entryDate, err := resolveEntryDate(opts.EntryDate)
	if err != nil {
		return entities.Bill{}, err
	}

	now := time.Now().UTC()
	bill := entities.Bill{
		ID:           uuid.NewString(),
		CustomerName: fields.CustomerName,
		Address:      fields.Address,
		InvoiceNo:    fields.InvoiceNo,
		BillDate:     fields.BillDate,
		Status:       entities.BillStatusPending,
		BoxCount:     opts.BoxCount,
		Description:  opts.Description,
		ColorTheme:   opts.ColorTheme,
		EntryDate:    entryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.create(ctx, bill, image)
}

// QuickAdd creates a manually entered bill, skipping capture, extraction and
// the duplicate check entirely.
func (u *BillUseCase) QuickAdd(ctx context.Context, in QuickAddInput) (entities.Bill, error) {
	if in.BoxCount < 0 {
		return entities.Bill{}, ErrInvalidBoxCount
	}
	entryDate, err := resolveEntryDate(in.EntryDate)
	if err != nil {
		return entities.Bill{}, err
	}

	now := time.Now().UTC()
	bill := entities.Bill{
		ID:               uuid.NewString(),
		CustomerName:     strings.TrimSpace(in.CustomerName),
		Address:          strings.TrimSpace(in.Address),
		InvoiceNo:        strings.TrimSpace(in.InvoiceNo),
		BillDate:         strings.TrimSpace(in.BillDate),
		Status:           entities.BillStatusPending,
		IsDelivery:       in.IsDelivery,
		HasCRN:           in.HasCRN,
		IsAdditionalBill: in.IsAdditionalBill,
		BoxCount:         in.BoxCount,
		Description:      in.Description,
		ColorTheme:       in.ColorTheme,
		EntryDate:        entryDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.create(ctx, bill, nil)
}

// create applies the optimistic insert and attempts remote persistence.
//
// Offline: the bill stays local-only with the image embedded as a data:
// placeholder. Online: a persist failure removes the optimistic insert again
// (full rollback) before the error is surfaced; the operator may retry.
func (u *BillUseCase) create(ctx context.Context, bill entities.Bill, image []byte) (entities.Bill, error) {
	gateway := u.sync.Gateway()
	if gateway == nil && len(image) > 0 {
		bill.ImageURL = placeholderImageURL(image)
	}

	u.store.UpsertLocal(bill)

	if gateway == nil {
		u.log.Debug().Str("bill_id", bill.ID).Msg("offline mode, bill kept local-only")
		return bill, nil
	}

	persisted, err := gateway.Persist(ctx, bill, image)
	if err != nil {
		u.store.RemoveLocal(bill.ID)
		u.log.Error().Err(err).Str("bill_id", bill.ID).Msg("creation persist failed, optimistic insert rolled back")
		return entities.Bill{}, err
	}

	// The gateway may have rewritten ImageURL to the uploaded location;
	// reconcile the local copy with the authoritative one.
	u.store.UpsertLocal(persisted)
	return persisted, nil
}

// Update applies a field edit locally and fires the remote persist without
// blocking. A persist failure here is logged but never rolled back: edits
// are explicit user intent, and silently reverting a field the user just
// typed is more surprising than a transient sync lag.
func (u *BillUseCase) Update(ctx context.Context, id string, patch BillPatch) (entities.Bill, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bill{}, ErrInvalidBillID
	}
	if patch.BoxCount != nil && *patch.BoxCount < 0 {
		return entities.Bill{}, ErrInvalidBoxCount
	}

	bill, ok := u.store.Get(id)
	if !ok {
		return entities.Bill{}, ErrBillNotFound
	}

	applyPatch(&bill, patch)
	bill.Touch(time.Now().UTC())
	u.store.UpsertLocal(bill)

	if gateway := u.sync.Gateway(); gateway != nil {
		go func(b entities.Bill) {
			if _, err := gateway.Persist(context.WithoutCancel(ctx), b, nil); err != nil {
				u.log.Warn().Err(err).Str("bill_id", b.ID).Msg("edit persist failed, local state kept")
			}
		}(bill)
	}
	return bill, nil
}

// Delete removes the bill remotely best-effort and locally unconditionally:
// once the operator confirmed the delete, a remote failure must not
// resurrect the record.
func (u *BillUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBillID
	}
	if _, ok := u.store.Get(id); !ok {
		return ErrBillNotFound
	}

	if gateway := u.sync.Gateway(); gateway != nil {
		if err := gateway.Remove(ctx, id); err != nil {
			u.log.Warn().Err(err).Str("bill_id", id).Msg("remote delete failed, proceeding with local removal")
		}
	}
	u.store.RemoveLocal(id)
	return nil
}

func (u *BillUseCase) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Bill{}, ErrInvalidBillID
	}
	bill, ok := u.store.Get(id)
	if !ok {
		return entities.Bill{}, ErrBillNotFound
	}
	return bill, nil
}

func (u *BillUseCase) TodayView(refDate string) ([]entities.Bill, error) {
	ref, err := resolveEntryDate(refDate)
	if err != nil {
		return nil, err
	}
	return u.store.TodayView(ref), nil
}

func (u *BillUseCase) BacklogView(refDate string) ([]entities.Bill, error) {
	ref, err := resolveEntryDate(refDate)
	if err != nil {
		return nil, err
	}
	return u.store.BacklogView(ref), nil
}

func (u *BillUseCase) Snapshot() []entities.Bill {
	return u.store.Snapshot()
}

// Online reports whether a remote gateway is currently configured. Offline
// is a status indicator, never an error.
func (u *BillUseCase) Online() bool {
	return u.sync.Gateway() != nil
}

func applyPatch(b *entities.Bill, p BillPatch) {
	if p.CustomerName != nil {
		b.CustomerName = *p.CustomerName
	}
	if p.Address != nil {
		b.Address = *p.Address
	}
	if p.InvoiceNo != nil {
		b.InvoiceNo = *p.InvoiceNo
	}
	if p.BillDate != nil {
		b.BillDate = *p.BillDate
	}
	if p.BoxCount != nil {
		b.BoxCount = *p.BoxCount
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.ColorTheme != nil {
		b.ColorTheme = *p.ColorTheme
	}
	if p.IsDelivery != nil {
		b.IsDelivery = *p.IsDelivery
	}
	if p.HasCRN != nil {
		b.HasCRN = *p.HasCRN
	}
	if p.IsEditedBill != nil {
		b.IsEditedBill = *p.IsEditedBill
	}
	if p.IsAdditionalBill != nil {
		b.IsAdditionalBill = *p.IsAdditionalBill
	}
}

func resolveEntryDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC().Format(entities.EntryDateLayout), nil
	}
	if _, err := time.Parse(entities.EntryDateLayout, raw); err != nil {
		return "", ErrInvalidEntryDate
	}
	return raw, nil
}

func placeholderImageURL(image []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
}
