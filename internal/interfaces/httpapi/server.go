package httpapi

import (
	"log/slog"
	"net/http"
)

// NewRouter assembles the route table and the middleware chain.
// Tracing sits outermost so the access log and handlers observe the
// server span.
func NewRouter(handler *Handler, logger *slog.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerIngestionRoutes(mux, handler)
	registerStatsRoutes(mux, handler)

	var chain http.Handler = mux
	chain = recoverPanic(logger, chain)
	chain = CORS(corsAllowedOrigins, chain)
	chain = RequestLogging(logger, chain)
	return RequestTracing(chain)
}

func recoverPanic(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
