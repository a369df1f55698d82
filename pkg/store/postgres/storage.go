package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const SyllabusTableSchema = `
	CREATE TABLE IF NOT EXISTS syllabus (
		id BIGSERIAL PRIMARY KEY,
		topic TEXT NOT NULL,
		subtopic TEXT NOT NULL
	);
`

const CuratedVideosTableSchema = `
	CREATE TABLE IF NOT EXISTS curated_videos (
		video_id TEXT PRIMARY KEY,
		channel_name TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		thumbnail_url TEXT NOT NULL,
		published_at TIMESTAMPTZ NOT NULL,
		topic TEXT NOT NULL,
		subtopic TEXT NOT NULL,
		topic_id BIGINT NOT NULL
	);
`

var bootQueries = []string{
	SyllabusTableSchema,
	CuratedVideosTableSchema,
}

type Settings struct {
	URL string
}

func NewDB(ctx context.Context, settings Settings) (*sql.DB, error) {
	if settings.URL == "" {
		return nil, fmt.Errorf("database url is empty")
	}

	db, err := sql.Open("pgx", settings.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates the tables the curator reads and writes if they are missing.
// All boot queries run in one transaction.
func Migrate(ctx context.Context, db *sql.DB) error {
	return InTransaction(ctx, db, func(ctx context.Context) error {
		conn := Conn(ctx, db)
		for _, query := range bootQueries {
			if _, err := conn.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("failed to run migration: %w", err)
			}
		}
		return nil
	})
}
