package curator

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/video-curator/pkg/adapters"
	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/de-tools/video-curator/pkg/services/youtube"
	"github.com/de-tools/video-curator/pkg/store/postgres/videos"
	"github.com/rs/zerolog"
)

const (
	MsgRequired      = "Topic and subtopic are required"
	MsgNoVideos      = "No videos found for the given topic and subtopic"
	MsgSearchFailed  = "Failed to search videos"
	MsgSaveFailed    = "Failed to save videos to database"
	MsgInternalError = "Internal server error"
)

// Result is a successful curation: either nothing found or Count videos saved.
type Result struct {
	Message string
	Count   int
}

type Curator interface {
	Curate(ctx context.Context, item domain.WorkItem) (Result, error)
}

type Service struct {
	searcher youtube.Searcher
	store    videos.Store
}

func NewService(searcher youtube.Searcher, store videos.Store) *Service {
	return &Service{
		searcher: searcher,
		store:    store,
	}
}

// Curate searches videos for item and upserts them tagged with the item's id.
// Errors wrap domain.ErrValidation, domain.ErrUpstream or domain.ErrWrite.
func (s *Service) Curate(ctx context.Context, item domain.WorkItem) (Result, error) {
	logger := zerolog.Ctx(ctx).With().
		Int64("topic_id", item.ID).
		Str("topic", item.Topic).
		Str("subtopic", item.Subtopic).
		Logger()

	if item.Topic == "" || item.Subtopic == "" {
		return Result{}, fmt.Errorf("%w: topic and subtopic are required", domain.ErrValidation)
	}

	found, err := s.searcher.Search(ctx, item.Topic, item.Subtopic)
	if err != nil {
		logger.Error().Err(err).Msg("failed to search videos")
		return Result{}, fmt.Errorf("search videos: %w", err)
	}

	if len(found) == 0 {
		logger.Info().Msg("no videos found")
		return Result{Message: MsgNoVideos}, nil
	}

	for i := range found {
		found[i].Topic = item.Topic
		found[i].Subtopic = item.Subtopic
		found[i].TopicID = item.ID
	}

	if _, err := s.store.Upsert(ctx, adapters.MapDomainVideosToStore(found)); err != nil {
		logger.Error().Err(err).Msg("failed to save videos")
		return Result{}, fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}

	videosSaved.Add(float64(len(found)))
	logger.Info().Int("count", len(found)).Msg("videos saved")

	return Result{
		Message: fmt.Sprintf("Successfully saved %d videos for %s - %s", len(found), item.Topic, item.Subtopic),
		Count:   len(found),
	}, nil
}

// FailureMessage is the caller-facing message for an error returned by Curate.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return MsgRequired
	case errors.Is(err, domain.ErrUpstream):
		return MsgSearchFailed
	case errors.Is(err, domain.ErrWrite):
		return MsgSaveFailed
	default:
		return MsgInternalError
	}
}
