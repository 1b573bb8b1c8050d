package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-desk/internal/desk"
	"github.com/iliyamo/reservation-desk/internal/handler"
)

// RegisterRoutes registers routes that sit outside the /v1 group.
// Currently only the health check.
func RegisterRoutes(e *echo.Echo, d *desk.Desk) {
	e.GET("/healthz", handler.Health(d))
}

// RegisterDesk registers the desk endpoints under /v1.  limit guards every
// desk route; cache wraps only the list views.  The reservation detail
// route stays uncached so each lookup reaches the handler and is logged.
// Either middleware may be nil.
func RegisterDesk(e *echo.Echo, h *handler.DeskHandler, limit, cache echo.MiddlewareFunc) {
	var groupMW []echo.MiddlewareFunc
	if limit != nil {
		groupMW = append(groupMW, limit)
	}
	var viewMW []echo.MiddlewareFunc
	if cache != nil {
		viewMW = append(viewMW, cache)
	}
	g := e.Group("/v1", groupMW...)

	// ---- Desk view and add form ----
	g.GET("/desk", h.GetView, viewMW...)
	g.POST("/desk/form", h.OpenForm)
	g.PATCH("/desk/form", h.UpdateForm)
	g.DELETE("/desk/form", h.CancelForm)
	g.POST("/desk/form/picker", h.OpenPicker)
	g.PUT("/desk/form/date", h.ChangeDate)
	g.POST("/desk/form/confirm", h.Confirm)

	// ---- Reservations ----
	g.GET("/reservations", h.ListReservations, viewMW...)
	g.GET("/reservations/:id", h.GetReservation)
	g.DELETE("/reservations/:id", h.DeleteReservation)
}
