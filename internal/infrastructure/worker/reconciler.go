package worker

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/sessionbook/booking-api/internal/api/metrics"
	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/ports"
)

const (
	defaultWorkers  = 4
	defaultInterval = time.Minute
	channelBuffer   = 256
)

// Reconciler periodically sweeps confirmed bookings whose live window has
// fully elapsed and persists the completed status. Dashboards derive the
// phase at read time regardless; the sweep keeps the stored status from
// drifting behind forever.
//
// References are sharded over a fixed set of workers by consistent hashing,
// so status updates for one booking are never applied concurrently.
type Reconciler struct {
	workers  []chan string
	bookings ports.BookingRepository
	interval time.Duration
	log      zerolog.Logger
}

// NewReconciler creates a Reconciler with numWorkers sharded workers.
// Non-positive arguments fall back to defaults.
func NewReconciler(numWorkers int, interval time.Duration, bookings ports.BookingRepository, log zerolog.Logger) *Reconciler {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	r := &Reconciler{
		workers:  make([]chan string, numWorkers),
		bookings: bookings,
		interval: interval,
		log:      log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan string, channelBuffer)
	}
	return r
}

// Start launches the worker goroutines and the sweep ticker. Everything
// stops when ctx is cancelled.
func (r *Reconciler) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
	go r.runSweeper(ctx)
}

// Sweep enqueues every confirmed booking whose live window has elapsed at
// now. Exposed separately so it can be driven directly in tests.
func (r *Reconciler) Sweep(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-domain.LiveGraceWindow)
	stale, err := r.bookings.ListConfirmedBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, b := range stale {
		r.enqueue(b.Reference)
	}
	return nil
}

func (r *Reconciler) runSweeper(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := r.Sweep(ctx, now); err != nil {
				r.log.Error().Err(err).Msg("booking sweep failed")
			}
		}
	}
}

// enqueue sends a reference to the worker responsible for it. The call is
// non-blocking up to channelBuffer capacity.
func (r *Reconciler) enqueue(reference string) {
	r.workers[r.shardIndex(reference)] <- reference
}

// shardIndex maps a reference deterministically to a worker index.
func (r *Reconciler) shardIndex(reference string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(reference))
	return int(h.Sum32() % uint32(len(r.workers)))
}

func (r *Reconciler) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case reference, ok := <-ch:
			if !ok {
				return
			}
			if err := r.bookings.UpdateStatus(ctx, reference, domain.BookingCompleted); err != nil {
				r.log.Error().Err(err).
					Str("reference", reference).
					Int("worker_id", id).
					Msg("booking completion failed")
				continue
			}
			metrics.BookingsCompletedTotal.Inc()
			r.log.Info().Str("reference", reference).Msg("booking marked completed")
		}
	}
}
