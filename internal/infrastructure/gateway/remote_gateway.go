package gateway

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"packtrack/internal/domain/entities"
	"packtrack/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

const defaultPollInterval = 10 * time.Second

// RemoteGateway composes the DynamoDB record store and the S3 image store
// into the persistence boundary the usecases depend on.
//
// Persist is a small saga: upload the new image first, rewrite the record's
// ImageURL, upsert the record, then clean up the replaced image. Each phase
// has a defined compensating action instead of ad hoc nested error handling:
// a failed record upsert deletes the image that was just uploaded, so no
// orphaned object is ever left behind.

type RemoteGateway struct {
	records      interfaces.IBillRecordStore
	images       interfaces.IImageStore
	pollInterval time.Duration
	log          zerolog.Logger
}

var _ interfaces.IRemoteGateway = (*RemoteGateway)(nil)

func NewRemoteGateway(records interfaces.IBillRecordStore, images interfaces.IImageStore, pollInterval time.Duration, log zerolog.Logger) *RemoteGateway {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &RemoteGateway{records: records, images: images, pollInterval: pollInterval, log: log}
}

func (g *RemoteGateway) Persist(ctx context.Context, bill entities.Bill, imagePayload []byte) (entities.Bill, error) {
	if len(imagePayload) == 0 {
		persisted, err := g.records.Put(ctx, bill)
		if err != nil {
			return entities.Bill{}, fmt.Errorf("%w: %v", interfaces.ErrPersistFailed, err)
		}
		return persisted, nil
	}

	priorURL := g.priorImageURL(ctx, bill)

	uploadedURL, err := g.images.Upload(ctx, bill.ID, imagePayload)
	if err != nil {
		return entities.Bill{}, fmt.Errorf("%w: %v", interfaces.ErrUploadFailed, err)
	}
	bill.ImageURL = uploadedURL

	persisted, err := g.records.Put(ctx, bill)
	if err != nil {
		// Compensate the upload so no orphaned object remains.
		if delErr := g.images.Delete(ctx, uploadedURL); delErr != nil {
			g.log.Warn().Err(delErr).Str("url", uploadedURL).Msg("compensating image delete failed")
		}
		return entities.Bill{}, fmt.Errorf("%w: %v", interfaces.ErrPersistFailed, err)
	}

	// The replaced image is removed only after the new record is safely in
	// place. Cleanup failure is logged, never fatal.
	if priorURL != "" && priorURL != uploadedURL && g.images.Owns(priorURL) {
		if err := g.images.Delete(ctx, priorURL); err != nil {
			g.log.Warn().Err(err).Str("url", priorURL).Msg("prior image cleanup failed")
		}
	}
	return persisted, nil
}

// priorImageURL resolves the image the remote record currently points at,
// falling back to the caller's view when the record cannot be read.
func (g *RemoteGateway) priorImageURL(ctx context.Context, bill entities.Bill) string {
	existing, err := g.records.GetByID(ctx, bill.ID)
	if err != nil {
		g.log.Debug().Err(err).Str("bill_id", bill.ID).Msg("prior record lookup failed")
		return bill.ImageURL
	}
	if existing.ID == "" {
		return ""
	}
	return existing.ImageURL
}

// Remove deletes the record, then its stored image best-effort. An image
// deletion failure is observability-only and never surfaces to the caller.
func (g *RemoteGateway) Remove(ctx context.Context, id string) error {
	existing, err := g.records.GetByID(ctx, id)
	if err != nil {
		g.log.Debug().Err(err).Str("bill_id", id).Msg("record lookup before delete failed")
	}

	if err := g.records.Delete(ctx, id); err != nil {
		return err
	}

	if url := existing.ImageURL; url != "" && g.images.Owns(url) {
		if err := g.images.Delete(ctx, url); err != nil {
			g.log.Warn().Err(err).Str("bill_id", id).Str("url", url).Msg("image delete failed")
		}
	}
	return nil
}

// Subscribe starts a polling subscription over the record store. The
// backend offers no push channel, so full snapshots are re-read on an
// interval and delivered whenever the set's fingerprint changes; the first
// snapshot is delivered immediately.
func (g *RemoteGateway) Subscribe(ctx context.Context) (interfaces.ISubscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := &pollSubscription{
		updates: make(chan []entities.Bill),
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		defer close(sub.updates)

		var lastFingerprint uint64
		deliver := func() {
			bills, err := g.records.ListAll(ctx)
			if err != nil {
				if ctx.Err() == nil {
					g.log.Warn().Err(err).Msg("subscription poll failed")
				}
				return
			}
			fp := snapshotFingerprint(bills)
			if fp == lastFingerprint {
				return
			}
			lastFingerprint = fp
			select {
			case sub.updates <- bills:
			case <-ctx.Done():
			}
		}

		deliver()
		ticker := time.NewTicker(g.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deliver()
			}
		}
	}()

	return sub, nil
}

type pollSubscription struct {
	updates chan []entities.Bill
	cancel  context.CancelFunc
	done    chan struct{}
}

func (s *pollSubscription) Updates() <-chan []entities.Bill { return s.updates }

func (s *pollSubscription) Close() {
	s.cancel()
	<-s.done
}

// snapshotFingerprint hashes ids and update stamps order-independently. Any
// add, delete or edit (every edit refreshes UpdatedAt) changes the value.
// Zero is never returned so the unset lastFingerprint always mismatches and
// the initial snapshot fires even when the remote set is empty.
func snapshotFingerprint(bills []entities.Bill) uint64 {
	keys := make([]string, 0, len(bills))
	for _, b := range bills {
		keys = append(keys, b.ID+"@"+b.UpdatedAt.UTC().Format(time.RFC3339Nano))
	}
	sort.Strings(keys)

	h := fnv.New64a()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	fp := h.Sum64()
	if fp == 0 {
		fp = 1
	}
	return fp
}
