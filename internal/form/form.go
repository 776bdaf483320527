// Package form holds the per-visitor contact form: field values, per-field
// errors and the Editing -> Submitted -> Editing cycle with its timed reset.
package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"pondpatrol-web/internal/domain"
)

// State of the contact form
type State int

const (
	Editing State = iota
	Submitted
)

func (s State) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "editing"
}

// DefaultResetDelay is how long the thank-you state is shown
const DefaultResetDelay = 5 * time.Second

// ErrClosed is returned by Submit after Close
var ErrClosed = errors.New("form: closed")

// Snapshot is an immutable copy of the form for rendering
type Snapshot struct {
	Values  domain.ContactRequest
	Errors  domain.ValidationErrors
	State   State
	Inquiry *domain.Inquiry
}

// Submitted reports whether the thank-you state is showing
func (s Snapshot) Submitted() bool {
	return s.State == Submitted
}

// Form is safe for concurrent use.
type Form struct {
	// submitMu serialises Submit so one form accepts at most one inquiry per cycle
	submitMu sync.Mutex
	mu       sync.Mutex
	uc       domain.ContactUsecase
	clock    Clock
	delay    time.Duration
	values   domain.ContactRequest
	errors   domain.ValidationErrors
	state    State
	inquiry  *domain.Inquiry
	timer    Timer
	// gen invalidates reset callbacks that were scheduled before a later submit or Close
	gen    uint64
	closed bool
}

// New creates an empty form in the Editing state. A nil clock uses RealClock and a
// non-positive delay uses DefaultResetDelay.
func New(uc domain.ContactUsecase, clock Clock, delay time.Duration) *Form {
	if clock == nil {
		clock = RealClock{}
	}
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	return &Form{
		uc:     uc,
		clock:  clock,
		delay:  delay,
		errors: domain.ValidationErrors{},
	}
}

// Edit sets one field. An active error on that field is cleared; other errors
// stay until the next submit. Edits are ignored while Submitted or after Close,
// and for unknown field names. It reports whether the edit was applied.
func (f *Form) Edit(field, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.state == Submitted {
		return false
	}
	if !f.values.Set(field, value) {
		return false
	}
	delete(f.errors, field)
	return true
}

// Load replaces every field at once (a full form post), clearing the errors
// of the fields whose value changed.
func (f *Form) Load(req domain.ContactRequest) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.state == Submitted {
		return false
	}
	for _, field := range domain.ContactFields {
		if req.Get(field) != f.values.Get(field) {
			delete(f.errors, field)
		}
	}
	f.values = req
	return true
}

// Submit validates the current values. On success the form moves to Submitted
// and schedules the reset; on validation failure the error map is replaced
// wholesale and a domain.ValidationErrors is returned. Submitting while already
// Submitted is a no-op.
func (f *Form) Submit(ctx context.Context, meta domain.SubmitMeta) (*domain.Inquiry, error) {
	f.submitMu.Lock()
	defer f.submitMu.Unlock()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrClosed
	}
	if f.state == Submitted {
		inq := f.inquiry
		f.mu.Unlock()
		return inq, nil
	}
	req := f.values
	f.mu.Unlock()

	inq, err := f.uc.Submit(ctx, &req, meta)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrClosed
	}

	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		f.errors = verrs.Clone()
		return nil, verrs
	}
	if err != nil {
		return nil, err
	}

	f.errors = domain.ValidationErrors{}
	f.state = Submitted
	f.inquiry = inq
	f.gen++
	gen := f.gen
	f.timer = f.clock.AfterFunc(f.delay, func() { f.reset(gen) })
	return inq, nil
}

// reset returns to an empty Editing form unless the callback is stale
func (f *Form) reset(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.gen {
		return
	}
	f.values = domain.ContactRequest{}
	f.errors = domain.ValidationErrors{}
	f.state = Editing
	f.inquiry = nil
	f.timer = nil
}

// Close cancels a pending reset. A closed form never changes again.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// Snapshot copies the current state
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	var inq *domain.Inquiry
	if f.inquiry != nil {
		c := *f.inquiry
		inq = &c
	}
	return Snapshot{
		Values:  f.values,
		Errors:  f.errors.Clone(),
		State:   f.state,
		Inquiry: inq,
	}
}
