package desk

import (
	"time"

	"github.com/iliyamo/reservation-desk/internal/model"
)

// Layouts for the single supported locale.  SelectedLayout is the label
// under the picker button; ListLayout is used in the reservation list.
const (
	SelectedLayout = "2/1/2006, 15:04:05"
	ListLayout     = "Mon Jan 02 2006"
)

// View is the rendered desk: the add form and the reservation list.
type View struct {
	ModalOpen bool      `json:"modal_open"`
	Form      FormView  `json:"form"`
	Rows      []RowView `json:"reservations"`
	Revision  uint64    `json:"revision"`
}

// FormView renders the transient input of the add form.
type FormView struct {
	CustomerName    string           `json:"customer_name"`
	PartySize       string           `json:"party_size"`
	ReservationDate time.Time        `json:"reservation_date"`
	Selected        string           `json:"selected"`
	PickerVisible   bool             `json:"picker_visible"`
	PickerMode      model.PickerMode `json:"picker_mode"`
}

// RowView renders one reservation in the list.
type RowView struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customer_name"`
	PartySize    string `json:"party_size"`
	Date         string `json:"date"`
}

// Render builds the view for s.  Rows keep insertion order.
func Render(s State, revision uint64) View {
	v := View{
		ModalOpen: s.ModalOpen,
		Form: FormView{
			CustomerName:    s.CustomerName,
			PartySize:       s.PartySize,
			ReservationDate: s.ReservationDate,
			Selected:        s.ReservationDate.Format(SelectedLayout),
			PickerVisible:   s.PickerVisible,
			PickerMode:      s.PickerMode,
		},
		Rows:     make([]RowView, 0, len(s.Reservations)),
		Revision: revision,
	}
	for _, r := range s.Reservations {
		v.Rows = append(v.Rows, RenderRow(r))
	}
	return v
}

// RenderRow renders a single reservation.
func RenderRow(r model.Reservation) RowView {
	return RowView{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		PartySize:    r.PartySize,
		Date:         r.ReservationDate.Format(ListLayout),
	}
}

// View renders the desk's current state.
func (d *Desk) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Render(d.state, d.revision)
}
