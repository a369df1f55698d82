package health

import (
	"context"
	"net/http"

	"github.com/de-tools/video-curator/pkg/handlers/response"
	"github.com/de-tools/video-curator/pkg/models/api"
	"github.com/rs/zerolog"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

// NewHandler returns a health handler; db may be nil when no database is wired.
func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("database ping failed")
			response.JSON(w, r, http.StatusServiceUnavailable, api.HealthResponse{Status: "unavailable"})
			return
		}
	}
	response.JSON(w, r, http.StatusOK, api.HealthResponse{Status: "ok"})
}
