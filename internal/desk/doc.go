// Package desk implements the reservation desk: the add-form state machine
// and the list of committed reservations.
//
// All state lives in one State value.  Every operation is a pure function
// from (State, input) to a new State; Desk wraps a State and serialises
// dispatches so HTTP handlers can share it.
package desk
