// Package queue defines message payloads exchanged over the message broker
// and the consumer that records them.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/reservation-desk/internal/model"
)

// Event types published for changes to the reservation list.
const (
	TypeReservationAdded   = "reservation.added"
	TypeReservationDeleted = "reservation.deleted"
)

// ReservationEvent is published whenever a reservation is added to or
// removed from the desk.  It carries the full record so consumers never
// need to query the desk.
type ReservationEvent struct {
	EventID     uuid.UUID         `json:"event_id"`
	Type        string            `json:"type"`
	Reservation model.Reservation `json:"reservation"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// NewReservationEvent stamps a new event with a random id.
func NewReservationEvent(typ string, r model.Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		EventID:     uuid.New(),
		Type:        typ,
		Reservation: r,
		OccurredAt:  at.UTC(),
	}
}
