// Package middleware содержит HTTP-middleware сервера: логирование, метрики,
// CORS, заголовки безопасности и ограничение частоты запросов.
package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
	"training-plan-server/internal/metrics"
	"training-plan-server/internal/util"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

type Middleware func(http.Handler) http.Handler

// Logger : запись о каждом запросе и метрики по шаблону маршрута chi
func Logger() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := routePattern(r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			duration := time.Since(start)

			metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			metrics.HTTPDuration.WithLabelValues(route, r.Method).Observe(duration.Seconds())

			slog.Info("request completed",
				"requestId", chimw.GetReqID(r.Context()),
				"method", r.Method,
				"route", route,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", duration,
			)
		})
	}
}

// routePattern : шаблон вместо пути, чтобы userId и id активностей не попадали в метки
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

// CORS : "*" разрешает любой origin
func CORS(allowedOrigin string) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// SecurityHeaders : заголовки безопасности для всех ответов
func SecurityHeaders() Middleware {
	return chi.Chain(
		chimw.SetHeader("X-Content-Type-Options", "nosniff"),
		chimw.SetHeader("X-Frame-Options", "DENY"),
		chimw.SetHeader("Referrer-Policy", "no-referrer"),
		chimw.SetHeader("X-DNS-Prefetch-Control", "off"),
		chimw.SetHeader("Cross-Origin-Opener-Policy", "same-origin"),
		chimw.SetHeader("Strict-Transport-Security", "max-age=15552000; includeSubDomains"),
	).Handler
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter : token bucket на каждый IP. Устаревшие записи удаляются
// при обращении, отдельной горутины нет.
type IPRateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*limiterEntry
	rps         rate.Limit
	burst       int
	idleTTL     time.Duration
	lastCleanup time.Time
	now         func() time.Time
}

func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters:    make(map[string]*limiterEntry),
		rps:         rate.Limit(rps),
		burst:       burst,
		idleTTL:     time.Hour,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) > l.idleTTL {
		for key, entry := range l.limiters {
			if now.Sub(entry.lastSeen) > l.idleTTL {
				delete(l.limiters, key)
			}
		}
		l.lastCleanup = now
	}

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Middleware : 429 с телом в формате {success, message}
func (l *IPRateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !l.Allow(ip) {
				slog.Warn("too many requests", "ip", ip, "path", r.URL.Path)
				w.Header().Set("Retry-After", "5")
				util.WriteJSON(w, http.StatusTooManyRequests, map[string]interface{}{
					"success": false,
					"message": "слишком много запросов, попробуйте позже",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP : RemoteAddr, который chimw.RealIP уже переписал из заголовков прокси
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
