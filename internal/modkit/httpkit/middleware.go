package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"deepclean/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// cors carries the startup-fixed origin and method allow-lists
func CommonStack(cors middleware.CORSOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.LoggerContext,
		middleware.AccessLog,

		// cross-origin
		middleware.CORS(cors),
		middleware.Compress(flate.BestSpeed),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
