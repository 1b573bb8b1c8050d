package desk

import (
	"context"
	"time"

	"github.com/iliyamo/reservation-desk/internal/model"
)

// DatePicker is the date/time chooser shown over the add form.  Present
// blocks until the user picks a value or dismisses the chooser; ok is false
// on dismissal.
type DatePicker interface {
	Present(ctx context.Context, initial time.Time, mode model.PickerMode) (value time.Time, ok bool, err error)
}

// PickerFunc adapts a function to DatePicker.
type PickerFunc func(ctx context.Context, initial time.Time, mode model.PickerMode) (time.Time, bool, error)

// Present calls f.
func (f PickerFunc) Present(ctx context.Context, initial time.Time, mode model.PickerMode) (time.Time, bool, error) {
	return f(ctx, initial, mode)
}

// FixedPicker always answers with the same outcome.  A nil Value behaves
// like a dismissal.
type FixedPicker struct {
	Value *time.Time
}

// Present returns p.Value.
func (p FixedPicker) Present(context.Context, time.Time, model.PickerMode) (time.Time, bool, error) {
	if p.Value == nil {
		return time.Time{}, false, nil
	}
	return *p.Value, true, nil
}
