package model

// PickerMode selects which half of the reservation date the picker edits.
type PickerMode string

const (
	PickerDate PickerMode = "date" // calendar day
	PickerTime PickerMode = "time" // clock time
)

// Valid reports whether m is a known picker mode.
func (m PickerMode) Valid() bool {
	return m == PickerDate || m == PickerTime
}
