package server

import (
	"net/http"
	"strconv"
	"strings"
)

// allowedMethods is advertised both by OPTIONS and by the CORS headers.
var allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

const allowedHeaders = "content-type, accept"

// corsHeaders returns the fixed header set written on every response.
func corsHeaders(origin string, maxAge int) map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Methods": strings.Join(allowedMethods, ", "),
		"Access-Control-Allow-Headers": allowedHeaders,
		"Access-Control-Max-Age":       strconv.Itoa(maxAge),
	}
}

// withCORS sets the CORS headers before anything else runs, so routed,
// unrouted and failed requests all carry them.
func withCORS(headers map[string]string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}
