package httpapi

import (
	"net/http"

	"github.com/eprasetya/vlrscout/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, recoverPanic(logger, mux)))
}

func registerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.HandleFunc("POST /v1/runs", handler.StartRun)
	mux.HandleFunc("GET /v1/runs", handler.ListRuns)
	mux.HandleFunc("GET /v1/runs/{runID}", handler.GetRun)
	mux.HandleFunc("POST /v1/runs/{runID}/cancel", handler.CancelRun)

	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/events/{eventID}/export", handler.ExportEvent)
}
