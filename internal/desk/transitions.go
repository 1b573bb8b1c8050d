package desk

import (
	"time"

	"github.com/iliyamo/reservation-desk/internal/model"
)

// OpenAddForm shows the add form.  Field values from a previous session are
// kept.
func OpenAddForm(s State) State {
	s.ModalOpen = true
	return s
}

// SetCustomerName stores the typed name as-is.
func SetCustomerName(s State, text string) State {
	s.CustomerName = text
	return s
}

// SetPartySize stores the typed party size as-is.
func SetPartySize(s State, text string) State {
	s.PartySize = text
	return s
}

// UpdateForm sets whichever of name and party size is non-nil in one step.
func UpdateForm(s State, name, partySize *string) State {
	if name != nil {
		s = SetCustomerName(s, *name)
	}
	if partySize != nil {
		s = SetPartySize(s, *partySize)
	}
	return s
}

// OpenDatePicker shows the picker in date mode.
func OpenDatePicker(s State) State {
	return openPicker(s, model.PickerDate)
}

// OpenTimePicker shows the picker in time mode.
func OpenTimePicker(s State) State {
	return openPicker(s, model.PickerTime)
}

func openPicker(s State, mode model.PickerMode) State {
	s.PickerVisible = true
	s.PickerMode = mode
	return s
}

// OnDateChange handles the picker result.  A nil value means the picker was
// dismissed and the committed date stays.  The picker is hidden either way.
func OnDateChange(s State, value *time.Time) State {
	if value != nil {
		s.ReservationDate = *value
	}
	s.PickerVisible = false
	return s
}

// ConfirmAdd appends a reservation built from the form, resets the form and
// closes the modal.  The returned record is the one appended.
func ConfirmAdd(s State, now time.Time) (State, model.Reservation) {
	if s.NextID < 1 {
		s.NextID = 1
	}
	rec := model.Reservation{
		ID:              s.NextID,
		CustomerName:    s.CustomerName,
		PartySize:       s.PartySize,
		ReservationDate: s.ReservationDate,
	}
	list := make([]model.Reservation, len(s.Reservations), len(s.Reservations)+1)
	copy(list, s.Reservations)
	s.Reservations = append(list, rec)
	s.NextID++

	s.CustomerName = ""
	s.PartySize = ""
	s.ReservationDate = now
	s.ModalOpen = false
	return s, rec
}

// CancelAdd closes the modal.  Form fields are left untouched so the next
// OpenAddForm shows them again.
func CancelAdd(s State) State {
	s.ModalOpen = false
	return s
}

// DeleteRecord removes the first reservation with the given id.  The bool
// is false when nothing matched, in which case s is returned unchanged.
func DeleteRecord(s State, id int) (State, bool) {
	for i, r := range s.Reservations {
		if r.ID != id {
			continue
		}
		list := make([]model.Reservation, 0, len(s.Reservations)-1)
		list = append(list, s.Reservations[:i]...)
		list = append(list, s.Reservations[i+1:]...)
		s.Reservations = list
		return s, true
	}
	return s, false
}

// Find returns the reservation with the given id.
func Find(s State, id int) (model.Reservation, bool) {
	for _, r := range s.Reservations {
		if r.ID == id {
			return r, true
		}
	}
	return model.Reservation{}, false
}
