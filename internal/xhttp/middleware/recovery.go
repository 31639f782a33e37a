package middleware

import (
	"net/http"

	"github.com/garrettladley/lumi/internal/xhttp"
	"github.com/garrettladley/lumi/internal/xslog"
)

// Recovery turns a handler panic into the device's JSON error body.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				xslog.FromContext(r.Context()).ErrorContext(
					r.Context(),
					"panic recovered",
					xslog.RequestGroup(r),
					xslog.ErrorGroupWithStack(err),
				)
				xhttp.WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"status":  "error",
					"message": "Internal error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
