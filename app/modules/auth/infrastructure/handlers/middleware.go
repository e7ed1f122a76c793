package authhandlers

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/domainerr"
	"github.com/Black-And-White-Club/clip-arena/pkg/httpx"
	"golang.org/x/time/rate"
)

// ErrRateLimited is written when a client exhausts its redeem budget.
var ErrRateLimited = domainerr.RateLimited("rate_limited", "too many attempts, try again later")

const (
	// pruneAbove is the bucket count that triggers an idle sweep.
	pruneAbove = 500
	idleTTL    = 10 * time.Minute
)

type bucket struct {
	tokens *rate.Limiter
	seen   time.Time
}

// ClientLimiter keeps one token bucket per client address.
type ClientLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	every   rate.Limit
	burst   int
	now     func() time.Time
}

func NewClientLimiter(every rate.Limit, burst int) *ClientLimiter {
	return &ClientLimiter{
		buckets: make(map[string]*bucket),
		every:   every,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow spends one token from the client's bucket.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.buckets) > pruneAbove {
		l.sweep(now)
	}

	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{tokens: rate.NewLimiter(l.every, l.burst)}
		l.buckets[client] = b
	}
	b.seen = now
	return b.tokens.AllowN(now, 1)
}

// Len reports how many clients are tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *ClientLimiter) sweep(now time.Time) {
	cutoff := now.Add(-idleTTL)
	for client, b := range l.buckets {
		if b.seen.Before(cutoff) {
			delete(l.buckets, client)
		}
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects requests over the client's budget with a JSON 429.
func RateLimit(limiter *ClientLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientAddr(r)
			if !limiter.Allow(client) {
				if logger != nil {
					logger.WarnContext(r.Context(), "Redeem rate limit exceeded",
						attr.ExtractCorrelationID(r.Context()),
						attr.String("client", client),
						attr.String("path", r.URL.Path),
					)
				}
				httpx.Error(r.Context(), w, logger, ErrRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var corsAllowMethods = strings.Join([]string{
	http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
}, ", ")

var corsAllowHeaders = strings.Join([]string{"Content-Type", "Authorization", httpx.CorrelationHeader}, ", ")

// AllowOrigins answers preflights and echoes allow-listed origins.
// An empty list adds no CORS headers.
func AllowOrigins(allowed []string) func(http.Handler) http.Handler {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && set[origin] {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
