package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/academia-online/courses-api/internal/api/metrics"
	"github.com/academia-online/courses-api/internal/core/domain"
	"github.com/academia-online/courses-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher routes enrollment lifecycle events to a fixed set of workers
// using consistent hashing on the enrollment ID, guaranteeing per-enrollment
// ordering of the audit trail.
type Dispatcher struct {
	workers []chan domain.EnrollmentEvent
	audit   ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, audit ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.EnrollmentEvent, numWorkers),
		audit:   audit,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.EnrollmentEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an event to the worker responsible for its enrollment.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(event domain.EnrollmentEvent) {
	d.workers[d.shardIndex(event.EnrollmentID)] <- event
}

// shardIndex maps an enrollment ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(enrollmentID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(enrollmentID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.EnrollmentEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := d.audit.InsertEvent(writeCtx, &event)
			cancel()
			if err != nil {
				metrics.AuditEventsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("enrollment_id", event.EnrollmentID).
					Str("action", string(event.Action)).
					Int("worker_id", id).
					Msg("audit event write failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues("ok").Inc()
		}
	}
}
