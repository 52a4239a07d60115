package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/FrostPlanner_Go/internal/logger"
)

// AuthMiddleware validates API key
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Allow public access to documentation and health check endpoints
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Use constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				tracker.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ClientTracker rate limits clients by IP and counts failed authentication.
// Idle clients expire after TrackingWindow.
type ClientTracker struct {
	mu         sync.Mutex
	limit      rate.Limit
	burst      int
	limiters   *expirable.LRU[string, *rate.Limiter]
	failedAuth *expirable.LRU[string, int]
	rejected   *expirable.LRU[string, int]
}

// NewClientTracker allows each client perSecond requests with the given burst
func NewClientTracker(perSecond float64, burst int) *ClientTracker {
	return &ClientTracker{
		limit:      rate.Limit(perSecond),
		burst:      burst,
		limiters:   expirable.NewLRU[string, *rate.Limiter](TrackedClients, nil, TrackingWindow),
		failedAuth: expirable.NewLRU[string, int](TrackedClients, nil, TrackingWindow),
		rejected:   expirable.NewLRU[string, int](TrackedClients, nil, TrackingWindow),
	}
}

// RecordFailedAuth records a failed authentication attempt and returns the count in the window
func (c *ClientTracker) RecordFailedAuth(ip string) int {
	c.mu.Lock()
	count, _ := c.failedAuth.Get(ip)
	count++
	c.failedAuth.Add(ip, count)
	c.mu.Unlock()

	if count >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// Allow reports whether ip may make a request now
func (c *ClientTracker) Allow(ip string) bool {
	c.mu.Lock()
	limiter, ok := c.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(c.limit, c.burst)
		c.limiters.Add(ip, limiter)
	}
	c.mu.Unlock()

	if limiter.Allow() {
		return true
	}

	c.mu.Lock()
	rejected, _ := c.rejected.Get(ip)
	rejected++
	c.rejected.Add(ip, rejected)
	c.mu.Unlock()

	// Log every HighRateLogEvery rejections to avoid log spam
	if rejected%HighRateLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "rejected", rejected)
	}
	return false
}

// RateLimitMiddleware rejects clients that exceed their request rate
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !tracker.Allow(ip) {
				w.Header().Set(HeaderRetryAfter, "1")
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// X-Forwarded-For: client, proxy1, proxy2
			// The rightmost entry is the hop that connected to our trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
