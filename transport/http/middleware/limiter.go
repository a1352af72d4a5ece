package middleware

import (
	"context"
	"multimedia/shared"
	"multimedia/shared/cache"
	"multimedia/shared/constant"
	"multimedia/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client in fixed windows. The window index is
// part of the key, so a busy client cannot keep extending its own window.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter
	if !limiter.Enable || limiter.MaxRequests <= 0 || limiter.WindowSeconds <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			window := now.Unix() / int64(limiter.WindowSeconds)
			resetIn := int(int64(limiter.WindowSeconds) - now.Unix()%int64(limiter.WindowSeconds))

			key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r), strconv.FormatInt(window, 10))

			count, ok := a.hit(r.Context(), key, limiter.WindowSeconds)
			if !ok {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w, resetIn)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hit bumps the counter under key. ok is false when the cache is unusable;
// requests are then let through unthrottled.
func (a *appMiddleware) hit(ctx context.Context, key string, ttl int) (count int, ok bool) {
	err := a.cache.Get(ctx, key, &count)
	if err != nil && !cache.IsMiss(err) {
		log.Warn().Err(err).Msg("rate limiter cache unavailable")

		return 0, false
	}

	count++

	if err = a.cache.Save(ctx, key, count, ttl); err != nil {
		log.Warn().Err(err).Msg("rate limiter cache unavailable")

		return 0, false
	}

	return count, true
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownUserAgent
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
