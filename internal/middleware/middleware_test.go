package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-desk/internal/config"
)

func newContext(method, target, path string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(path)
	return c
}

func TestCacheKeyDependsOnRevision(t *testing.T) {
	c := newContext(http.MethodGet, "/v1/reservations?x=1", "/v1/reservations")
	k1 := cacheKey("p", c, "1")
	k2 := cacheKey("p", c, "2")
	if k1 == k2 {
		t.Fatalf("keys for different revisions are equal: %s", k1)
	}
	if cacheKey("p", c, "1") != k1 {
		t.Errorf("key is not stable")
	}
	if k1[:2] != "p:" {
		t.Errorf("key %q missing prefix", k1)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"ok":true}`))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, gotHdr, body, ok := decodePayload(bs)
	if !ok || status != http.StatusOK || string(body) != `{"ok":true}` || gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("decode = %d %v %q %v", status, gotHdr, body, ok)
	}
	if _, _, _, ok := decodePayload(bs[:5]); ok {
		t.Errorf("decode of truncated payload succeeded")
	}
}

func TestMiddlewarePassThroughWithoutRedis(t *testing.T) {
	called := 0
	h := func(c echo.Context) error { called++; return c.NoContent(http.StatusNoContent) }

	mws := []echo.MiddlewareFunc{
		NewRedisCache(config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}}, nil, func() string { return "0" }),
		NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil),
	}
	for _, mw := range mws {
		c := newContext(http.MethodGet, "/", "/")
		if err := mw(h)(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
	}
	if called != 2 {
		t.Errorf("handler called %d times, want 2", called)
	}
}

func TestRateKey(t *testing.T) {
	c := newContext(http.MethodDelete, "/v1/reservations/3", "/v1/reservations/:id")
	tests := []struct {
		strategy string
		want	 string
	}{
		{"ip", "rl:ip:10.0.0.1"},
		{"route", "rl:route:DELETE /v1/reservations/:id"},
		{"", "rl:ip:10.0.0.1:route:DELETE /v1/reservations/:id"},
	}
	for _, tt := range tests {
		got := rateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: tt.strategy}, c)
		if got != tt.want {
			t.Errorf("rateKey(%q) = %q, want %q", tt.strategy, got, tt.want)
		}
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	if got := retryAfterSeconds(1500); got != 2 {
		t.Errorf("retryAfterSeconds(1500) = %d, want 2", got)
	}
	if got := retryAfterSeconds(-10); got != 0 {
		t.Errorf("retryAfterSeconds(-10) = %d, want 0", got)
	}
}

func TestSkipCachedHeader(t *testing.T) {
	for _, k := range []string{"content-length", "X-Cache", "X-Request-Id", "X-RateLimit-Remaining"} {
		if !skipCachedHeader(k) {
			t.Errorf("skipCachedHeader(%q) = false", k)
		}
	}
	if skipCachedHeader("Content-Type") {
		t.Errorf("Content-Type skipped")
	}
}
