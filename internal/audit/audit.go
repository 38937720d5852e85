package audit

import (
	"context"
	"time"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/id"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

// Outcome describes how an audited operation concluded.
type Outcome string

const (
	OutcomeGranted  Outcome = "GRANTED"
	OutcomeDenied   Outcome = "DENIED"
	OutcomeApplied  Outcome = "APPLIED"
	OutcomeRejected Outcome = "REJECTED"
)

// Emitter records governance audit events.
type Emitter struct {
	store       storage.AuditStore
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewEmitter creates a new audit emitter.
func NewEmitter(store storage.AuditStore) *Emitter {
	return &Emitter{store: store, clock: time.Now, idGenerator: id.NewID}
}

// NewEmitterWithClock creates an emitter with injected time and ID sources.
func NewEmitterWithClock(store storage.AuditStore, clock func() time.Time, idGenerator func() (string, error)) *Emitter {
	return &Emitter{store: store, clock: clock, idGenerator: idGenerator}
}

// Emit records an audit event. It is a no-op when the store is nil. A nil
// error from Emit means the event is durable; callers treat a non-nil error
// as a failure of the audited operation itself.
func (e *Emitter) Emit(ctx context.Context, evt storage.AuditEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.ID == "" {
		eventID, err := e.idGenerator()
		if err != nil {
			return err
		}
		evt.ID = eventID
	}
	if evt.CreatedAt.IsZero() {
		evt.CreatedAt = e.clock().UTC()
	}
	return e.store.AppendAuditEvent(ctx, evt)
}
