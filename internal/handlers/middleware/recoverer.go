package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nkiryanov/postboard/internal/handlers/render"
)

type errorLogger interface {
	Error(msg string, args ...any)
}

// Recoverer turns a handler panic into 500 with the usual error envelope
func Recoverer(l errorLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				// Server relies on this panic to abort the response
				if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}

				l.Error("Panic while serving request",
					"request_id", chimw.GetReqID(r.Context()),
					"method", r.Method,
					"uri", r.RequestURI,
					"panic", rvr,
					"stack", string(debug.Stack()),
				)
				render.InternalError(w)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
