package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-desk/internal/desk"
)

// Health returns the liveness handler.  It answers 200 with the number of
// reservations on the desk and the current revision.
func Health(d *desk.Desk) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":       "ok",
			"reservations": len(d.State().Reservations),
			"revision":     d.Revision(),
		})
	}
}
