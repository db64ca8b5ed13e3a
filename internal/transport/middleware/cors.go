package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/tourcrew-backend/internal/config"
)

// CORS answers preflight requests and tags responses for allowed origins.
// The matched origin is echoed back, so "*" also works with credentials.
func CORS(cfg config.CORSConfig) Middleware {
	wildcard := false
	allowed := make(map[string]struct{})
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		switch o = strings.TrimSpace(o); o {
		case "":
		case "*":
			wildcard = true
		default:
			allowed[o] = struct{}{}
		}
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := allowed[origin]; ok || wildcard {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
