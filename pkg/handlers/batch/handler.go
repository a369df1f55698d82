package batch

import (
	"context"
	"net/http"

	"github.com/de-tools/video-curator/pkg/adapters"
	"github.com/de-tools/video-curator/pkg/handlers/response"
	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/rs/zerolog"
)

const RunIDHeader = "X-Batch-Run-Id"

type Runner interface {
	Run(ctx context.Context) (*domain.BatchReport, error)
}

type Handler struct {
	runner Runner
}

func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner}
}

// RunBatch processes the whole syllabus before responding. The run is
// detached from the request, so a client hanging up does not stop it.
func (h *Handler) RunBatch(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())
	logger := zerolog.Ctx(ctx)

	report, err := h.runner.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("batch failed")
		response.Error(w, r, http.StatusInternalServerError, "Failed to fetch syllabus data")
		return
	}

	if report.RunID != "" {
		w.Header().Set(RunIDHeader, report.RunID)
	}
	response.JSON(w, r, http.StatusOK, adapters.MapBatchReportDomainToApi(report))
}
