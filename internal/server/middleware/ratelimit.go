package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter ограничивает частоту запросов per-IP счетчиком с
// фиксированным окном. Sync ID угадываем перебором, лимит делает
// перебор непрактичным, не ломая нормальную синхронизацию.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	rate    int
	span    time.Duration
	logger  *slog.Logger
	done    chan struct{}
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter создает limiter: rate запросов на окно span с каждого IP
func NewRateLimiter(rate int, span time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		rate:    rate,
		span:    span,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

// Allow сообщает, укладывается ли очередной запрос с key в лимит
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.span {
		rl.windows[key] = &window{start: now, count: 1}
		return true
	}
	if w.count >= rl.rate {
		return false
	}
	w.count++
	return true
}

// Stop останавливает фоновую чистку устаревших окон
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(rl.span * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictStale()
		case <-rl.done:
			return
		}
	}
}

func (rl *RateLimiter) evictStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-2 * rl.span)
	for key, w := range rl.windows {
		if w.start.Before(cutoff) {
			delete(rl.windows, key)
		}
	}
}

// RateLimitMiddleware отвечает 429 на запросы сверх лимита по IP клиента
func RateLimitMiddleware(rate int, span time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, span, logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r)
			if !limiter.Allow(ip) {
				logger.Warn("rate limit exceeded",
					"ip", ip,
					"method", r.Method,
					"path", sanitizePath(r.URL.Path),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded, please try again later"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP определяет IP клиента с учетом прокси-заголовков.
// X-Forwarded-For содержит цепочку, первый элемент — исходный клиент.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
