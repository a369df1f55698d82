package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const unknownErrorMessage = "Unknown error"

var ErrFetchRecords = errors.New("failed to fetch work items")

// RecordSource supplies the ordered work items for one batch.
type RecordSource interface {
	ListWorkItems(ctx context.Context) ([]domain.WorkItem, error)
}

// Worker curates a single item. A returned error means the call itself failed
// (transport, malformed response); a non-OK result is a reported failure.
type Worker interface {
	Process(ctx context.Context, item domain.WorkItem) (domain.WorkerResult, error)
}

type Runner struct {
	source   RecordSource
	worker   Worker
	pacer    Pacer
	newRunID func() string
}

func NewRunner(source RecordSource, worker Worker, pacer Pacer) *Runner {
	return &Runner{
		source:   source,
		worker:   worker,
		pacer:    pacer,
		newRunID: uuid.NewString,
	}
}

// Run processes every item from the source, one at a time and in order,
// pausing after each one. Per-item failures are recorded in the report; only
// a failure to read the source is returned as an error.
func (r *Runner) Run(ctx context.Context) (*domain.BatchReport, error) {
	runID := r.newRunID()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)
	start := time.Now()

	items, err := r.source.ListWorkItems(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch work items")
		batchRuns.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %w", ErrFetchRecords, err)
	}

	logger.Info().Int("total", len(items)).Msg("batch started")
	report := domain.NewBatchReport(runID, len(items))

	for _, item := range items {
		res, err := r.process(ctx, item)
		switch {
		case err != nil:
			msg := err.Error()
			if msg == "" {
				msg = unknownErrorMessage
			}
			logger.Error().Err(err).Int64("topic_id", item.ID).Msg("error processing item")
			report.Record(item, domain.OutcomeError, msg)
		case res.OK:
			report.Record(item, domain.OutcomeSuccess, res.Message)
		default:
			logger.Warn().Int64("topic_id", item.ID).Str("message", res.Message).Msg("item failed")
			report.Record(item, domain.OutcomeError, res.Message)
		}
		batchItems.WithLabelValues(string(report.Details[len(report.Details)-1].Status)).Inc()

		r.pacer.Pause(ctx)
	}

	batchRuns.WithLabelValues("completed").Inc()
	batchDuration.Observe(time.Since(start).Seconds())
	logger.Info().
		Int("total", report.Total).
		Int("processed", report.Processed).
		Int("errors", report.Errors).
		Msg("batch finished")

	return report, nil
}

func (r *Runner) process(ctx context.Context, item domain.WorkItem) (res domain.WorkerResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("worker panic: %v", p)
		}
	}()
	return r.worker.Process(ctx, item)
}
