// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out one token bucket per client key.
// It is safe for concurrent use.
type Limiter struct {
	mu         sync.Mutex
	clients    map[string]*client
	every      time.Duration // one token per interval
	burst      int
	idle       time.Duration // buckets unused this long are dropped
	lastSweep  time.Time
	trustProxy bool
	now        func() time.Time
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter allowing perMinute requests per client per minute,
// with bursts of up to burst requests. Values below 1 are treated as 1.
// trustProxy keys clients by X-Forwarded-For / X-Real-IP; only enable it
// behind a proxy that sets those headers.
func New(perMinute, burst int, trustProxy bool) *Limiter {
	if perMinute < 1 {
		perMinute = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		clients:    make(map[string]*client),
		every:      time.Minute / time.Duration(perMinute),
		burst:      burst,
		idle:       5 * time.Minute,
		trustProxy: trustProxy,
		now:        time.Now,
	}
}

// Allow reports whether a request from key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	return c.lim.AllowN(now, 1)
}

// sweep drops idle buckets. It runs at most once per idle interval.
// Callers hold l.mu.
func (l *Limiter) sweep(now time.Time) {
	l.lastSweep = now
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > l.idle {
			delete(l.clients, key)
		}
	}
}

// Middleware rejects requests over the limit with 429 and a Retry-After
// header. Clients are keyed by ClientIP.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	retry := strconv.Itoa(int((l.every + time.Second - 1) / time.Second))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(ClientIP(r, l.trustProxy)) {
			w.Header().Set("Retry-After", retry)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP extracts the client IP from an HTTP request. With trustProxy it
// checks X-Forwarded-For and X-Real-IP first; otherwise the headers are
// ignored, since any client can set them. It falls back to RemoteAddr.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// First entry of X-Forwarded-For is the client
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}
