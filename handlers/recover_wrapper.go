package handlers

import (
	"net/http"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Recoverer converts a handler panic into a 500 response. The stack goes
// to the server log only, never into the response body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				logrus.WithFields(logrus.Fields{
					"path":  r.URL.Path,
					"panic": rec,
				}).Errorf("panic recovered:\n%s", stack)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
