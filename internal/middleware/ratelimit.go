package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit allows each client IP limit requests per window, refilled evenly,
// with bursts up to limit. Idle clients are forgotten after a few windows.
// A non-positive limit disables limiting.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 || per <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	every := rate.Every(per / time.Duration(limit))
	idle := 3 * per

	var mu sync.Mutex
	visitors := make(map[string]*visitor)
	lastSweep := time.Now()

	allow := func(ip string) (bool, time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if now.Sub(lastSweep) > idle {
			for key, v := range visitors {
				if now.Sub(v.lastSeen) > idle {
					delete(visitors, key)
				}
			}
			lastSweep = now
		}
		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(every, limit)}
			visitors[ip] = v
		}
		v.lastSeen = now
		res := v.limiter.ReserveN(now, 1)
		if delay := res.DelayFrom(now); delay > 0 {
			res.CancelAt(now)
			return false, delay
		}
		return true, 0
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, wait := allow(clientIPForRateLimit(r))
			if !ok {
				secs := int(wait.Seconds())
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIPForRateLimit keys on the connection address. Proxy headers are
// honored only through chi's RealIP, which rewrites RemoteAddr upstream.
func clientIPForRateLimit(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
