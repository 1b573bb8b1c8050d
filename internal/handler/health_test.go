package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-desk/internal/desk"
)

func TestHealth(t *testing.T) {
	d := desk.New(nil, nil)
	if _, _, err := d.Dispatch(context.Background(), desk.Action{Kind: desk.ActConfirm}); err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/healthz", nil), rec)
	if err := Health(d)(c); err != nil {
		t.Fatal(err)
	}
	var body struct {
		Status       string `json:"status"`
		Reservations int    `json:"reservations"`
		Revision     uint64 `json:"revision"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || body.Status != "ok" || body.Reservations != 1 || body.Revision != 1 {
		t.Errorf("got %d %+v", rec.Code, body)
	}
}
