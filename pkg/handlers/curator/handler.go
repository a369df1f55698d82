package curator

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/video-curator/pkg/adapters"
	"github.com/de-tools/video-curator/pkg/handlers/response"
	"github.com/de-tools/video-curator/pkg/models/api"
	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/de-tools/video-curator/pkg/services/curator"
	"github.com/rs/zerolog"
)

const maxRequestBody = 1 << 20

type Handler struct {
	curator curator.Curator
}

func NewHandler(c curator.Curator) *Handler {
	return &Handler{curator: c}
}

func (h *Handler) Curate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CurateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("failed to decode curate request")
		response.Error(w, r, http.StatusInternalServerError, curator.MsgInternalError)
		return
	}

	result, err := h.curator.Curate(ctx, adapters.MapCurateRequestApiToDomain(req))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrValidation) {
			status = http.StatusBadRequest
		}
		response.Error(w, r, status, curator.FailureMessage(err))
		return
	}

	response.JSON(w, r, http.StatusOK, api.CurateResponse{
		Message: result.Message,
		Count:   result.Count,
	})
}
