package simulator

import (
	"log/slog"
	"net/http"

	"github.com/garrettladley/lumi/internal/storage"
	"github.com/garrettladley/lumi/internal/xhttp/middleware"
)

// Routes mounts the device API on a mux wrapped in the standard middleware
// chain. The health check is exempt from rate limiting.
func Routes(h *Handler, limiter storage.RateLimiter, logger *slog.Logger) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/status", h.HandleStatus)
	api.HandleFunc("POST /api/led/face/{face}", h.HandleSetFace)
	api.HandleFunc("POST /api/led/reset", h.HandleReset)
	api.HandleFunc("GET /api/led/patterns", h.HandlePatterns)
	api.HandleFunc("POST /api/led/pattern/json", h.HandleUploadPattern)
	api.HandleFunc("POST /api/led/pattern/{id}", h.HandleRunPattern)
	api.HandleFunc("POST /api/led/stop", h.HandleStop)
	api.HandleFunc("/", h.HandleNotFound)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.Handle("/", middleware.Chain(api,
		middleware.RateLimit(limiter),
		middleware.VersionCheck,
	))

	return middleware.Chain(mux,
		middleware.RequestContext(logger),
		middleware.Recovery,
		middleware.ShutdownContext,
		middleware.Logging,
		middleware.SecurityHeaders,
	)
}
