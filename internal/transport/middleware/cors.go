package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/asonkiya/novel-chrome-extension/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing for the
// browser extension and the reader frontend. Allowed origins may read the
// request ID header. Preflight requests are answered directly.
func CORS(cfg config.CORSConfig) Middleware {
	origins := strings.Split(cfg.AllowedOrigins, ",")
	methods := cfg.AllowedMethods
	headers := cfg.AllowedHeaders

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")
			if origin != "" && isAllowedOrigin(origin, origins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isAllowedOrigin matches origin against the configured list. "*" allows
// any origin and "scheme://*" allows any origin of that scheme, which is how
// unpacked extensions with changing IDs are admitted.
func isAllowedOrigin(origin string, allowed []string) bool {
	for _, a := range allowed {
		a = strings.TrimSpace(a)
		switch {
		case a == "*", a == origin:
			return true
		case strings.HasSuffix(a, "://*"):
			scheme := strings.TrimSuffix(a, "*")
			if strings.HasPrefix(origin, scheme) && len(origin) > len(scheme) {
				return true
			}
		}
	}
	return false
}
