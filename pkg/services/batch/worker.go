package batch

import (
	"context"

	"github.com/de-tools/video-curator/pkg/adapters"
	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/de-tools/video-curator/pkg/services/curator"
	"github.com/de-tools/video-curator/pkg/store/postgres/syllabus"
)

// LocalWorker runs the curator in-process, reporting failures the same way
// the HTTP endpoint would.
type LocalWorker struct {
	curator curator.Curator
}

func NewLocalWorker(c curator.Curator) *LocalWorker {
	return &LocalWorker{curator: c}
}

func (w *LocalWorker) Process(ctx context.Context, item domain.WorkItem) (domain.WorkerResult, error) {
	res, err := w.curator.Curate(ctx, item)
	if err != nil {
		return domain.WorkerResult{OK: false, Message: curator.FailureMessage(err)}, nil
	}
	return domain.WorkerResult{OK: true, Message: res.Message, Count: res.Count}, nil
}

type syllabusSource struct {
	store syllabus.Store
}

func NewSyllabusSource(store syllabus.Store) RecordSource {
	return &syllabusSource{store: store}
}

func (s *syllabusSource) ListWorkItems(ctx context.Context) ([]domain.WorkItem, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.WorkItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, adapters.MapStoreSyllabusEntryToDomain(e))
	}
	return items, nil
}
