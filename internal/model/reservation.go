package model

import "time"

// Reservation is one committed booking on the desk.  Records are only
// created by confirming the add form and only removed by an explicit
// delete; there is no edit.
//
// Fields:
//  ID              – desk-assigned identifier, never reused.
//  CustomerName    – free text, may be empty.
//  PartySize       – raw text as typed, no numeric coercion.
//  ReservationDate – date/time chosen in the picker (defaults to the
//                    moment the form was last reset).
type Reservation struct {
	ID              int       `json:"id"`
	CustomerName    string    `json:"customer_name"`
	PartySize       string    `json:"party_size"`
	ReservationDate time.Time `json:"reservation_date"`
}
