package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
)

// Middleware limits requests per client IP within scope. Every response
// carries X-RateLimit-Limit and X-RateLimit-Remaining; rejections add
// Retry-After in whole seconds.
func (r *RateLimiter) Middleware(scope string, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			client := clientIP(req)
			d := r.Take(scope, client)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(r.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			if !d.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(d.RetryAfter.Seconds()))))
				log.Debug().Str("scope", scope).Str("client", client).Msg("Rate limit exceeded")
				writeJSON(w, log, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

// clientIP strips the port from RemoteAddr. RealIP may already have left a
// bare address.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
