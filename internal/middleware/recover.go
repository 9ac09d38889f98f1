package middleware

import (
	"fmt"
	"net/http"

	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/utils"
)

// Recoverer turns a panic into a JSON 500 and logs it.
func Recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					log.With(map[string]interface{}{"path": r.URL.Path}).Error(err, "Panic recovered")
					utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
