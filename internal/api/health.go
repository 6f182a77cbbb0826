package api

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// HealthResponse is the liveness payload answered on /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *HealthResponse) Render(w http.ResponseWriter, r *http.Request) error {
	// Stamped at render time so every probe carries its own clock reading.
	h.Timestamp = time.Now().UTC().Format(time.RFC3339)

	return nil
}

// Health reports that the process is up and serving.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	// The Logger middleware always runs above this handler. The worst
	// case, the recoverer middleware will save us.
	// nolint
	logger := r.Context().Value(CtxKeyLogger).(*zap.SugaredLogger)
	logger.Infow("health probe")

	if err := render.Render(w, r, &HealthResponse{Status: "OK", Message: "Server is running"}); err != nil {
		s.sugarLogger.Errorw(err.Error())
	}
}
