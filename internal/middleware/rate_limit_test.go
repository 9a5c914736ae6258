package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fleet", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 3)
	h := rl.Handler(okHandler())

	for i := 0; i < 3; i++ {
		if rec := doRequest(h, "10.0.0.7:51000"); rec.Code != http.StatusOK {
			t.Errorf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	if rec := doRequest(h, "10.0.0.7:51000"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %d", rec.Code)
	}
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	h := rl.Handler(okHandler())

	if rec := doRequest(h, "10.0.0.7:51000"); rec.Code != http.StatusOK {
		t.Errorf("first client: expected 200, got %d", rec.Code)
	}
	if rec := doRequest(h, "10.0.0.7:51000"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("first client: expected 429, got %d", rec.Code)
	}

	// A different IP has its own budget.
	if rec := doRequest(h, "10.0.0.8:51000"); rec.Code != http.StatusOK {
		t.Errorf("second client: expected 200, got %d", rec.Code)
	}
}

func TestRateLimiterExemptsLoopback(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	h := rl.Handler(okHandler())

	for i := 0; i < 5; i++ {
		if rec := doRequest(h, "127.0.0.1:51000"); rec.Code != http.StatusOK {
			t.Errorf("loopback request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}
