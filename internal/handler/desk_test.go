package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-desk/internal/desk"
)

var (
	clockNow = time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC)
	picked   = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
)

func newServer(t *testing.T) (*echo.Echo, *desk.Desk) {
	t.Helper()
	d := desk.New(func() time.Time { return clockNow }, nil)
	h := NewDeskHandler(d)
	e := echo.New()
	e.GET("/v1/desk", h.GetView)
	e.POST("/v1/desk/form", h.OpenForm)
	e.PATCH("/v1/desk/form", h.UpdateForm)
	e.DELETE("/v1/desk/form", h.CancelForm)
	e.POST("/v1/desk/form/picker", h.OpenPicker)
	e.PUT("/v1/desk/form/date", h.ChangeDate)
	e.POST("/v1/desk/form/confirm", h.Confirm)
	e.GET("/v1/reservations", h.ListReservations)
	e.GET("/v1/reservations/:id", h.GetReservation)
	e.DELETE("/v1/reservations/:id", h.DeleteReservation)
	return e, d
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) desk.View {
	t.Helper()
	var v desk.View
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode view: %v (body %s)", err, rec.Body.String())
	}
	return v
}

func TestDeskFlow(t *testing.T) {
	e, d := newServer(t)

	rec := do(t, e, http.MethodPost, "/v1/desk/form", "")
	if rec.Code != http.StatusOK || !decodeView(t, rec).ModalOpen {
		t.Fatalf("open form: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPatch, "/v1/desk/form", `{"customer_name":"Ana","party_size":"4"}`)
	v := decodeView(t, rec)
	if v.Form.CustomerName != "Ana" || v.Form.PartySize != "4" {
		t.Fatalf("form = %+v", v.Form)
	}

	rec = do(t, e, http.MethodPost, "/v1/desk/form/picker", "")
	if v := decodeView(t, rec); !v.Form.PickerVisible || v.Form.PickerMode != "date" {
		t.Fatalf("picker = %+v", v.Form)
	}

	rec = do(t, e, http.MethodPut, "/v1/desk/form/date", `{"value":"2024-03-01T00:00:00Z"}`)
	v = decodeView(t, rec)
	if v.Form.PickerVisible || !v.Form.ReservationDate.Equal(picked) {
		t.Fatalf("after date change = %+v", v.Form)
	}

	rec = do(t, e, http.MethodPost, "/v1/desk/form/confirm", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("confirm: %d %s", rec.Code, rec.Body.String())
	}
	s := d.State()
	if len(s.Reservations) != 1 || s.Reservations[0].CustomerName != "Ana" || !s.Reservations[0].ReservationDate.Equal(picked) {
		t.Fatalf("reservations = %+v", s.Reservations)
	}
	if s.CustomerName != "" || s.PartySize != "" || !s.ReservationDate.Equal(clockNow) || s.ModalOpen {
		t.Fatalf("form not reset: %+v", s)
	}

	do(t, e, http.MethodPost, "/v1/desk/form", "")
	do(t, e, http.MethodPatch, "/v1/desk/form", `{"customer_name":"Luis","party_size":"2"}`)
	rec = do(t, e, http.MethodDelete, "/v1/desk/form", "")
	v = decodeView(t, rec)
	if v.ModalOpen || len(v.Rows) != 1 {
		t.Fatalf("after cancel: modal=%v rows=%d", v.ModalOpen, len(v.Rows))
	}
	if v.Form.CustomerName != "Luis" {
		t.Errorf("cancel cleared name: %q", v.Form.CustomerName)
	}

	rec = do(t, e, http.MethodDelete, "/v1/reservations/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", rec.Code)
	}
	if n := len(d.State().Reservations); n != 0 {
		t.Fatalf("len after delete = %d", n)
	}
}

func TestChangeDateDismissed(t *testing.T) {
	e, d := newServer(t)
	do(t, e, http.MethodPut, "/v1/desk/form/date", `{"value":"2024-03-01T00:00:00Z"}`)
	do(t, e, http.MethodPost, "/v1/desk/form/picker", `{"mode":"time"}`)

	rec := do(t, e, http.MethodPut, "/v1/desk/form/date", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	s := d.State()
	if !s.ReservationDate.Equal(picked) || s.PickerVisible {
		t.Errorf("state = %v/%v, want %v/hidden", s.ReservationDate, s.PickerVisible, picked)
	}
}

func TestBadRequests(t *testing.T) {
	e, _ := newServer(t)
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"empty patch", http.MethodPatch, "/v1/desk/form", `{}`, http.StatusBadRequest},
		{"bad json", http.MethodPatch, "/v1/desk/form", `{"customer_name":`, http.StatusBadRequest},
		{"bad mode", http.MethodPost, "/v1/desk/form/picker", `{"mode":"week"}`, http.StatusBadRequest},
		{"bad date", http.MethodPut, "/v1/desk/form/date", `{"value":"tomorrow"}`, http.StatusBadRequest},
		{"bad id get", http.MethodGet, "/v1/reservations/abc", "", http.StatusBadRequest},
		{"bad id delete", http.MethodDelete, "/v1/reservations/abc", "", http.StatusBadRequest},
		{"missing", http.MethodGet, "/v1/reservations/9", "", http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/v1/reservations/9", "", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestListAndGet(t *testing.T) {
	e, _ := newServer(t)
	for _, name := range []string{"Ana", "Luis"} {
		do(t, e, http.MethodPatch, "/v1/desk/form", `{"customer_name":"`+name+`"}`)
		do(t, e, http.MethodPost, "/v1/desk/form/confirm", "")
	}

	rec := do(t, e, http.MethodGet, "/v1/reservations", "")
	var list struct {
		Reservations []desk.RowView `json:"reservations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Reservations) != 2 || list.Reservations[0].CustomerName != "Ana" || list.Reservations[1].ID != 2 {
		t.Fatalf("list = %+v", list.Reservations)
	}
	if list.Reservations[0].Date != "Tue Feb 20 2024" {
		t.Errorf("date = %q", list.Reservations[0].Date)
	}

	rec = do(t, e, http.MethodGet, "/v1/reservations/2", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"customer_name":"Luis"`) {
		t.Errorf("get: %d %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateFormIsOneDispatch(t *testing.T) {
	e, d := newServer(t)
	before := d.Revision()

	rec := do(t, e, http.MethodPatch, "/v1/desk/form", `{"customer_name":"Ana","party_size":"4"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := d.Revision() - before; got != 1 {
		t.Errorf("revision advanced by %d, want 1", got)
	}
	s := d.State()
	if s.CustomerName != "Ana" || s.PartySize != "4" {
		t.Errorf("form = %q/%q, want Ana/4", s.CustomerName, s.PartySize)
	}

	do(t, e, http.MethodPatch, "/v1/desk/form", `{"party_size":""}`)
	s = d.State()
	if s.CustomerName != "Ana" || s.PartySize != "" {
		t.Errorf("partial update = %q/%q, want Ana/empty", s.CustomerName, s.PartySize)
	}
}
