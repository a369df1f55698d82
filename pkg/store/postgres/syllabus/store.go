package syllabus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/video-curator/pkg/models/store"
	"github.com/de-tools/video-curator/pkg/store/postgres"
	"github.com/rs/zerolog"
)

const (
	listQuery        = `SELECT id, topic, subtopic FROM syllabus ORDER BY id`
	listLimitedQuery = `SELECT id, topic, subtopic FROM syllabus ORDER BY id LIMIT $1`
)

type Store interface {
	List(ctx context.Context) ([]store.SyllabusEntry, error)
}

type syllabusStore struct {
	db    *sql.DB
	limit int
}

// NewStore returns a Store that reads at most limit rows per List call; 0 means no limit.
func NewStore(db *sql.DB, limit int) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if limit < 0 {
		return nil, fmt.Errorf("record limit must not be negative: %d", limit)
	}
	return &syllabusStore{
		db:    db,
		limit: limit,
	}, nil
}

func (s *syllabusStore) List(ctx context.Context) ([]store.SyllabusEntry, error) {
	logger := zerolog.Ctx(ctx)

	var (
		rows *sql.Rows
		err  error
	)
	conn := postgres.Conn(ctx, s.db)
	if s.limit > 0 {
		rows, err = conn.QueryContext(ctx, listLimitedQuery, s.limit)
	} else {
		rows, err = conn.QueryContext(ctx, listQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("syllabus query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close syllabus query rows")
		}
	}(rows)

	entries := []store.SyllabusEntry{}
	for rows.Next() {
		var e store.SyllabusEntry
		if err := rows.Scan(&e.ID, &e.Topic, &e.Subtopic); err != nil {
			return nil, fmt.Errorf("failed to scan syllabus row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("syllabus rows: %w", err)
	}

	return entries, nil
}
