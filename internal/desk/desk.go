package desk

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/reservation-desk/internal/model"
)

// Clock returns the current time.  Tests inject a fixed clock.
type Clock func() time.Time

// EventSink is told about every change to the reservation list.  Calls
// happen after the desk lock is released; implementations must not call
// back into the desk synchronously.
type EventSink interface {
	ReservationAdded(ctx context.Context, r model.Reservation)
	ReservationDeleted(ctx context.Context, r model.Reservation)
}

type nopSink struct{}

func (nopSink) ReservationAdded(context.Context, model.Reservation)   {}
func (nopSink) ReservationDeleted(context.Context, model.Reservation) {}

// Desk owns a single State and applies actions to it one at a time.
type Desk struct {
	id       uuid.UUID
	mu       sync.Mutex
	state    State
	revision uint64
	clock    Clock
	sink     EventSink
}

// New constructs a Desk in the initial state.  A nil clock uses time.Now
// and a nil sink drops events.
func New(clock Clock, sink EventSink) *Desk {
	if clock == nil {
		clock = time.Now
	}
	if sink == nil {
		sink = nopSink{}
	}
	return &Desk{
		id:    uuid.New(),
		state: NewState(clock()),
		clock: clock,
		sink:  sink,
	}
}

// Dispatch applies a and returns a snapshot of the resulting state.
func (d *Desk) Dispatch(ctx context.Context, a Action) (State, Change, error) {
	d.mu.Lock()
	next, ch, err := Reduce(d.state, a, d.clock())
	if err != nil {
		d.mu.Unlock()
		return State{}, Change{}, err
	}
	d.state = next
	d.revision++
	snap := d.state.Snapshot()
	d.mu.Unlock()

	d.notify(ctx, ch)
	return snap, ch, nil
}

func (d *Desk) notify(ctx context.Context, ch Change) {
	switch ch.Kind {
	case ChangeAdded:
		log.Printf("desk: reservation %d added (name=%q party=%q)", ch.Reservation.ID, ch.Reservation.CustomerName, ch.Reservation.PartySize)
		d.sink.ReservationAdded(ctx, ch.Reservation)
	case ChangeDeleted:
		log.Printf("desk: reservation %d deleted", ch.Reservation.ID)
		d.sink.ReservationDeleted(ctx, ch.Reservation)
	}
}

// State returns a snapshot of the current state.
func (d *Desk) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Snapshot()
}

// Revision counts the actions applied so far.  It changes whenever the
// rendered view may have changed.
func (d *Desk) Revision() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.revision
}

// ID identifies this desk instance.  It differs across restarts and
// replicas even when their revisions match.
func (d *Desk) ID() uuid.UUID { return d.id }

// CacheTag names the current state of this desk: instance id plus
// revision.  Two desks never share a tag.
func (d *Desk) CacheTag() string {
	return d.id.String() + ":" + strconv.FormatUint(d.Revision(), 10)
}

// Get returns the reservation with the given id or ErrNotFound.
func (d *Desk) Get(id int) (model.Reservation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := Find(d.state, id)
	if !ok {
		return model.Reservation{}, ErrNotFound
	}
	return r, nil
}

// PickDate opens the picker in the given mode, presents p with the current
// reservation date and feeds the outcome to OnDateChange.  The picker is
// hidden afterwards even when p fails.
func (d *Desk) PickDate(ctx context.Context, p DatePicker, mode model.PickerMode) (State, error) {
	s, _, err := d.Dispatch(ctx, Action{Kind: ActOpenPicker, Mode: mode})
	if err != nil {
		return State{}, err
	}

	value, ok, perr := p.Present(ctx, s.ReservationDate, s.PickerMode)
	var picked *time.Time
	if perr == nil && ok {
		picked = &value
	}
	s, _, err = d.Dispatch(ctx, Action{Kind: ActDateChanged, Date: picked})
	if err != nil {
		return State{}, err
	}
	if perr != nil {
		return s, fmt.Errorf("date picker: %w", perr)
	}
	return s, nil
}
