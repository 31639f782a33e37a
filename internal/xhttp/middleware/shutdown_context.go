package middleware

import (
	"net/http"

	"github.com/garrettladley/lumi/internal/xcontext"
)

// ShutdownContext marks requests whose base context is already cancelled, so
// handlers can tell a draining server from a client that went away.
func ShutdownContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx := r.Context(); ctx.Err() != nil {
			r = r.WithContext(xcontext.SetShutdownInProgress(ctx, true))
		}
		next.ServeHTTP(w, r)
	})
}
