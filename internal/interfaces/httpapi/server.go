package httpapi

import (
	"net/http"
	"time"

	"github.com/leaguepulse/leaguepulse/internal/platform/logging"
)

// RouterConfig carries the knobs the middleware chain needs.
type RouterConfig struct {
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	// VerboseErrors exposes unmapped error text in 500 responses. Dev only.
	VerboseErrors bool
}

func NewRouter(
	handler *Handler,
	verifier TokenVerifier,
	logger *logging.Logger,
	cfg RouterConfig,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	verboseInternalErrors = cfg.VerboseErrors

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler)
	registerAuthorizedRoutes(mux, handler, verifier)

	var root http.Handler = recoverPanic(logger, mux)
	root = CORS(cfg.CORSAllowedOrigins, root)
	if cfg.RateLimitEnabled {
		root = RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow, root)
	}

	return RequestTracing(RequestLogging(logger, root))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
