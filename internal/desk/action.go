package desk

import (
	"fmt"
	"time"

	"github.com/iliyamo/reservation-desk/internal/model"
)

// ActionKind names a user interaction on the desk.
type ActionKind string

const (
	ActOpenForm    ActionKind = "open_form"
	ActSetName     ActionKind = "set_name"
	ActSetParty    ActionKind = "set_party_size"
	ActUpdateForm  ActionKind = "update_form"
	ActOpenPicker  ActionKind = "open_picker"
	ActDateChanged ActionKind = "date_changed"
	ActConfirm     ActionKind = "confirm"
	ActCancel      ActionKind = "cancel"
	ActDelete      ActionKind = "delete"
)

// Action is one event bound to a transition.  Only the fields relevant to
// Kind are read.
type Action struct {
	Kind  ActionKind
	Text  string           // ActSetName, ActSetParty
	Name  *string          // ActUpdateForm; nil leaves the name as is
	Party *string          // ActUpdateForm; nil leaves the party size as is
	Mode  model.PickerMode // ActOpenPicker; empty means date
	Date  *time.Time       // ActDateChanged; nil means dismissed
	ID    int              // ActDelete
}

// ChangeKind describes how an action affected the reservation list.
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeAdded
	ChangeDeleted
)

// Change reports a list mutation caused by an action.
type Change struct {
	Kind        ChangeKind
	Reservation model.Reservation
}

// Reduce applies a to s.  now is only read by ActConfirm, which resets the
// reservation date to it.
func Reduce(s State, a Action, now time.Time) (State, Change, error) {
	switch a.Kind {
	case ActOpenForm:
		return OpenAddForm(s), Change{}, nil
	case ActSetName:
		return SetCustomerName(s, a.Text), Change{}, nil
	case ActSetParty:
		return SetPartySize(s, a.Text), Change{}, nil
	case ActUpdateForm:
		return UpdateForm(s, a.Name, a.Party), Change{}, nil
	case ActOpenPicker:
		mode := a.Mode
		if mode == "" {
			mode = model.PickerDate
		}
		if !mode.Valid() {
			return s, Change{}, fmt.Errorf("%w: picker mode %q", ErrInvalidAction, a.Mode)
		}
		return openPicker(s, mode), Change{}, nil
	case ActDateChanged:
		return OnDateChange(s, a.Date), Change{}, nil
	case ActConfirm:
		next, rec := ConfirmAdd(s, now)
		return next, Change{Kind: ChangeAdded, Reservation: rec}, nil
	case ActCancel:
		return CancelAdd(s), Change{}, nil
	case ActDelete:
		rec, ok := Find(s, a.ID)
		if !ok {
			return s, Change{}, nil
		}
		next, _ := DeleteRecord(s, a.ID)
		return next, Change{Kind: ChangeDeleted, Reservation: rec}, nil
	}
	return s, Change{}, fmt.Errorf("%w: %q", ErrInvalidAction, a.Kind)
}
