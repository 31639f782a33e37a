package middleware

import (
	"net/http"

	"github.com/garrettladley/lumi/internal/storage"
	"github.com/garrettladley/lumi/internal/xerrors"
	"github.com/garrettladley/lumi/internal/xhttp"
	"github.com/garrettladley/lumi/internal/xslog"
)

// RateLimit rejects clients that exceed the per-IP budget with a 429 that
// carries Retry-After.
func RateLimit(limiter storage.RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := xhttp.GetRequestIP(r)

			result, err := limiter.Allow(ctx, ip)
			if err != nil {
				xslog.FromContext(ctx).ErrorContext(ctx, "rate limit check failed",
					xslog.Error(err),
					xslog.IP(ip),
				)
				xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(xerrors.WithMessage("rate limit check failed")))
				return
			}

			if !result.Allowed {
				xerrors.WriteError(ctx, w, xerrors.TooManyRequests(
					xerrors.WithRetryAfter(result.RetryAfter),
					xerrors.WithReason("ip_rate_limit"),
				))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
