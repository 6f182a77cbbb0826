package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
)

// Logger puts the service logger on the request context so handlers can log
// with the request in scope.
func (s *Server) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxKeyLogger, s.sugarLogger)))
	})
}

// CountCompleted records one completed-request datapoint per response, with
// the method and final status attached.
func (s *Server) CountCompleted(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			// Nothing was written, net/http will answer 200.
			status = http.StatusOK
		}

		s.completedCount.Add(r.Context(), 1,
			attribute.String("method", r.Method),
			attribute.String("status", strconv.Itoa(status)),
		)
	})
}
