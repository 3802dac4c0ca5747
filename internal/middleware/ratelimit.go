package middleware

import (
	"net/http"
	"sync"
	"time"
)

type client struct {
	count       int
	windowStart time.Time
}

// RateLimiter caps requests per remote address over a fixed window. It is
// in-memory and per-instance, enough for the single chat endpoint it guards.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   int
	window  time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
	}
	go rl.janitor()
	return rl
}

// janitor drops entries whose window has long expired so the map does not
// grow without bound.
func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		for addr, c := range rl.clients {
			if time.Since(c.windowStart) > 2*rl.window {
				delete(rl.clients, addr)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) allow(addr string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	c, ok := rl.clients[addr]
	if !ok || now.Sub(c.windowStart) > rl.window {
		rl.clients[addr] = &client{count: 1, windowStart: now}
		return true
	}

	c.count++
	return c.count <= rl.limit
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// RealIP middleware has already rewritten RemoteAddr when the
		// request came through a proxy.
		if !rl.allow(r.RemoteAddr) {
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.", r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
