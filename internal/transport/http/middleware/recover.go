package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recover converts a handler panic into a 500 JSON envelope. The panic
// value is echoed in the response only outside production; production
// callers get a generic message and the detail stays in the log.
// Restart-on-corruption is the supervisor's job, not this middleware's.
func Recover(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil || rec == http.ErrAbortHandler {
					return
				}
				slog.Error("panic in handler",
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				detail := "Something went wrong"
				if !production {
					detail = fmt.Sprint(rec)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"message": "Internal server error",
					"error":   detail,
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
