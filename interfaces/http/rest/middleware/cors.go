package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSOptions configures the allow-list CORS middleware.
type CORSOptions struct {
	// AllowedOrigins is matched exactly. The first entry is the fallback.
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS adds CORS headers to every response. A recognised Origin is echoed
// back; any other origin is answered with the first allowed origin, so the
// browser rejects the response on the caller's side.
func CORS(opts CORSOptions) func(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(opts.AllowedOrigins))
	for _, origin := range opts.AllowedOrigins {
		allowed[origin] = struct{}{}
	}

	var fallback string
	if len(opts.AllowedOrigins) > 0 {
		fallback = opts.AllowedOrigins[0]
	}
	methods := strings.Join(opts.AllowedMethods, ", ")
	headers := strings.Join(opts.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(opts.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if _, ok := allowed[origin]; !ok {
				origin = fallback
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			if opts.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", maxAge)
			}
			h.Add("Vary", "Origin")

			next.ServeHTTP(w, r)
		})
	}
}
