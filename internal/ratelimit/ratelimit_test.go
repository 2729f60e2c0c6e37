package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(t *testing.T, rps float64, burst int) (*Limiter, *fakeClock) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(ctx, rps, burst)
	l.now = clock.now
	return l, clock
}

func TestAllow_FirstRequestAllowed(t *testing.T) {
	l, _ := newTestLimiter(t, 10, 5)

	if !l.Allow("192.168.1.1") {
		t.Error("expected first request from new client to be allowed")
	}
}

func TestAllow_BurstThenDeny(t *testing.T) {
	burst := 3
	l, _ := newTestLimiter(t, 1, burst)

	for i := 0; i < burst; i++ {
		if !l.Allow("192.168.1.1") {
			t.Errorf("request %d within burst of %d should be allowed", i+1, burst)
		}
	}
	if l.Allow("192.168.1.1") {
		t.Error("request exceeding burst should be denied")
	}
}

func TestAllow_TokensReplenishOverTime(t *testing.T) {
	l, clock := newTestLimiter(t, 10, 2)

	l.Allow("192.168.1.1")
	l.Allow("192.168.1.1")
	if l.Allow("192.168.1.1") {
		t.Fatal("expected request to be denied after exhausting burst")
	}

	// At 10 tokens/sec, 150ms gives 1.5 tokens.
	clock.advance(150 * time.Millisecond)

	if !l.Allow("192.168.1.1") {
		t.Error("expected request to be allowed after token replenishment")
	}
}

func TestAllow_TokensCappedAtBurst(t *testing.T) {
	burst := 3
	l, clock := newTestLimiter(t, 100, burst)

	l.Allow("192.168.1.1")
	clock.advance(time.Hour)

	allowed := 0
	for i := 0; i < burst+2; i++ {
		if l.Allow("192.168.1.1") {
			allowed++
		}
	}
	if allowed != burst {
		t.Errorf("expected exactly %d requests allowed, got %d", burst, allowed)
	}
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, 1, 1)

	l.Allow("10.0.0.1")
	if l.Allow("10.0.0.1") {
		t.Error("expected second request from first client to be denied")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("expected second client to be allowed")
	}
}

func TestSweep_ForgetsIdleClients(t *testing.T) {
	l, clock := newTestLimiter(t, 1, 1)

	l.Allow("10.0.0.1")
	clock.advance(idleTimeout + time.Second)
	l.sweep()

	l.mu.Lock()
	n := len(l.buckets)
	l.mu.Unlock()
	if n != 0 {
		t.Errorf("expected idle client to be forgotten, %d remain", n)
	}
}

func TestMiddleware_AllowsThenLimits(t *testing.T) {
	l, _ := newTestLimiter(t, 1, 1)
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK || first.Body.String() != "ok" {
		t.Fatalf("expected first request to pass, got %d %q", first.Code, first.Body.String())
	}

	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/content", nil)
	req.RemoteAddr = "192.168.1.1:54321"
	handler.ServeHTTP(second, req)

	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", second.Code)
	}
	if got := second.Header().Get("Retry-After"); got != "1" {
		t.Errorf("expected Retry-After=1, got %q", got)
	}
	if ct := second.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json error body, got %s", ct)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"RemoteAddrWithPort", "203.0.113.7:5555", "", "203.0.113.7"},
		{"BareRemoteAddr", "203.0.113.7", "", "203.0.113.7"},
		{"ForwardedSingle", "10.0.0.1:80", "198.51.100.2", "198.51.100.2"},
		{"ForwardedChain", "10.0.0.1:80", "198.51.100.2, 10.0.0.9", "198.51.100.2"},
		{"IPv6", "[2001:db8::1]:443", "", "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
