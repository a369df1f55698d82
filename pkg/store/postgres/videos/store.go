package videos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/de-tools/video-curator/pkg/models/store"
	"github.com/de-tools/video-curator/pkg/store/postgres"
)

const columnsPerRow = 9

const upsertPrefix = `
	INSERT INTO curated_videos (
		video_id, channel_name, title, description, thumbnail_url,
		published_at, topic, subtopic, topic_id
	) VALUES `

const upsertSuffix = `
	ON CONFLICT (video_id) DO UPDATE SET
		channel_name = EXCLUDED.channel_name,
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		thumbnail_url = EXCLUDED.thumbnail_url,
		published_at = EXCLUDED.published_at,
		topic = EXCLUDED.topic,
		subtopic = EXCLUDED.subtopic,
		topic_id = EXCLUDED.topic_id`

type Store interface {
	// Upsert writes all rows in a single statement, overwriting rows that share a video id.
	// Rows must not repeat a video id.
	Upsert(ctx context.Context, rows []store.CuratedVideo) (int64, error)
}

type videoStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &videoStore{db: db}, nil
}

func (s *videoStore) Upsert(ctx context.Context, rows []store.CuratedVideo) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query, args := buildUpsert(rows)
	res, err := postgres.Conn(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("upsert curated videos: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("upsert curated videos: %w", err)
	}
	return affected, nil
}

func buildUpsert(rows []store.CuratedVideo) (string, []any) {
	var sb strings.Builder
	sb.WriteString(upsertPrefix)

	args := make([]any, 0, len(rows)*columnsPerRow)
	for i, r := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := 0; c < columnsPerRow; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*columnsPerRow+c+1)
		}
		sb.WriteString(")")

		args = append(args,
			r.VideoID, r.ChannelName, r.Title, r.Description, r.ThumbnailURL,
			r.PublishedAt, r.Topic, r.Subtopic, r.TopicID,
		)
	}
	sb.WriteString(upsertSuffix)

	return sb.String(), args
}
