package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/lumi/internal/xcontext"
	"github.com/garrettladley/lumi/internal/xhttp"
	"github.com/garrettladley/lumi/internal/xslog"
)

// RequestContext tags the request with a request ID and the client session,
// and stores a logger carrying both in the context.
func RequestContext(base *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			ctx := xcontext.SetRequestID(r.Context(), id)
			xhttp.SetHeaderRequestID(w, id)

			logger := base.With(xslog.RequestID(id))
			if sid := xhttp.GetRequestHeaderSessionID(r); sid != "" {
				ctx = xcontext.SetSessionID(ctx, sid)
				logger = logger.With(xslog.SessionID(sid))
			}

			next.ServeHTTP(w, r.WithContext(xslog.WithLogger(ctx, logger)))
		})
	}
}

// requestID keeps a caller-supplied UUID so client and simulator logs share
// it. Anything else is replaced.
func requestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(xhttp.XRequestID)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
