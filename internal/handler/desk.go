package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-desk/internal/desk"
	"github.com/iliyamo/reservation-desk/internal/model"
)

// DeskHandler exposes the reservation desk over HTTP.  Every mutating
// endpoint maps onto exactly one desk action and answers with the rendered
// view, so clients can redraw from the response alone.
type DeskHandler struct {
	Desk *desk.Desk
}

// NewDeskHandler constructs a DeskHandler and panics if d is nil.
func NewDeskHandler(d *desk.Desk) *DeskHandler {
	if d == nil {
		panic("nil desk passed to NewDeskHandler")
	}
	return &DeskHandler{Desk: d}
}

func (h *DeskHandler) dispatch(c echo.Context, a desk.Action) error {
	if _, _, err := h.Desk.Dispatch(c.Request().Context(), a); err != nil {
		if errors.Is(err, desk.ErrInvalidAction) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "desk error"})
	}
	return c.JSON(http.StatusOK, h.Desk.View())
}

// GetView handles GET /v1/desk.
func (h *DeskHandler) GetView(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Desk.View())
}

// OpenForm handles POST /v1/desk/form.
func (h *DeskHandler) OpenForm(c echo.Context) error {
	return h.dispatch(c, desk.Action{Kind: desk.ActOpenForm})
}

// CancelForm handles DELETE /v1/desk/form.  Typed values survive.
func (h *DeskHandler) CancelForm(c echo.Context) error {
	return h.dispatch(c, desk.Action{Kind: desk.ActCancel})
}

// UpdateForm handles PATCH /v1/desk/form.  Either field may be omitted;
// empty strings are stored as given.
func (h *DeskHandler) UpdateForm(c echo.Context) error {
	var body struct {
		CustomerName *string `json:"customer_name"`
		PartySize    *string `json:"party_size"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.CustomerName == nil && body.PartySize == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_name or party_size is required"})
	}
	return h.dispatch(c, desk.Action{Kind: desk.ActUpdateForm, Name: body.CustomerName, Party: body.PartySize})
}

// OpenPicker handles POST /v1/desk/form/picker.  mode defaults to "date".
func (h *DeskHandler) OpenPicker(c echo.Context) error {
	var body struct {
		Mode model.PickerMode `json:"mode"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	return h.dispatch(c, desk.Action{Kind: desk.ActOpenPicker, Mode: body.Mode})
}

// ChangeDate handles PUT /v1/desk/form/date.  The client is the picker
// surface: a body without "value" means the user dismissed it and the
// previous date stays.
func (h *DeskHandler) ChangeDate(c echo.Context) error {
	var body struct {
		Value *time.Time `json:"value"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "value must be an RFC3339 timestamp"})
	}
	mode := h.Desk.State().PickerMode
	if _, err := h.Desk.PickDate(c.Request().Context(), desk.FixedPicker{Value: body.Value}, mode); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "desk error"})
	}
	return c.JSON(http.StatusOK, h.Desk.View())
}

// Confirm handles POST /v1/desk/form/confirm.  It returns 201 with the new
// reservation.
func (h *DeskHandler) Confirm(c echo.Context) error {
	_, ch, err := h.Desk.Dispatch(c.Request().Context(), desk.Action{Kind: desk.ActConfirm})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "desk error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"reservation": ch.Reservation,
		"row":         desk.RenderRow(ch.Reservation),
	})
}

// ListReservations handles GET /v1/reservations.
func (h *DeskHandler) ListReservations(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"reservations": h.Desk.View().Rows})
}

// GetReservation handles GET /v1/reservations/:id.
func (h *DeskHandler) GetReservation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	r, err := h.Desk.Get(id)
	if errors.Is(err, desk.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "desk error"})
	}
	c.Logger().Infof("reservation details: %+v", r)
	return c.JSON(http.StatusOK, echo.Map{"reservation": r, "row": desk.RenderRow(r)})
}

// DeleteReservation handles DELETE /v1/reservations/:id.  Deleting an id
// that does not exist is a no-op and still answers 204.
func (h *DeskHandler) DeleteReservation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	if _, _, err := h.Desk.Dispatch(c.Request().Context(), desk.Action{Kind: desk.ActDelete, ID: id}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "desk error"})
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
