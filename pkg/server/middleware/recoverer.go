package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/de-tools/video-curator/pkg/handlers/response"
	"github.com/rs/zerolog"
)

const internalErrorMessage = "Internal server error"

// Recoverer turns a handler panic into a 500 with the usual JSON error body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			zerolog.Ctx(r.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			if r.Header.Get("Connection") != "Upgrade" {
				response.Error(w, r, http.StatusInternalServerError, internalErrorMessage)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
