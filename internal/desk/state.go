package desk

import (
	"time"

	"github.com/iliyamo/reservation-desk/internal/model"
)

// State holds the transient form input and the committed reservations.
type State struct {
	CustomerName    string
	PartySize       string
	ReservationDate time.Time

	PickerVisible bool
	PickerMode    model.PickerMode

	ModalOpen bool

	Reservations []model.Reservation
	// NextID is the id the next confirmed reservation receives.  It only
	// grows, so ids are unique across the desk's whole history.
	NextID int
}

// NewState returns the initial state: modal closed, empty list, the
// reservation date set to now.
func NewState(now time.Time) State {
	return State{
		ReservationDate: now,
		PickerMode:      model.PickerDate,
		NextID:          1,
	}
}

// Snapshot returns a copy of s whose reservation slice does not alias s.
func (s State) Snapshot() State {
	out := s
	out.Reservations = make([]model.Reservation, len(s.Reservations))
	copy(out.Reservations, s.Reservations)
	return out
}
