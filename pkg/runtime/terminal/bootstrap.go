package terminal

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/video-curator/pkg/runtime/terminal/commands"
	"github.com/de-tools/video-curator/pkg/services/batch"
	"github.com/de-tools/video-curator/pkg/services/config"
	"github.com/de-tools/video-curator/pkg/services/curator"
	"github.com/de-tools/video-curator/pkg/services/youtube"
	"github.com/de-tools/video-curator/pkg/store/client"
	"github.com/de-tools/video-curator/pkg/store/postgres"
	"github.com/de-tools/video-curator/pkg/store/postgres/syllabus"
	"github.com/de-tools/video-curator/pkg/store/postgres/videos"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Bootstrap loads configuration and connects to postgres. Logs go to stderr so
// reports on stdout stay readable.
func Bootstrap(ctx context.Context, path string) (*commands.App, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url is required")
	}
	db, err := postgres.NewDB(ctx, postgres.Settings{URL: cfg.Database.URL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	syllabusStore, err := syllabus.NewStore(db, cfg.Batch.RecordLimit)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create syllabus store: %w", err)
	}
	videoStore, err := videos.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create video store: %w", err)
	}

	pacer, err := batch.NewPacer(cfg.Batch.Pacing, batch.Policy{
		Delay:       cfg.Batch.Delay,
		Concurrency: cfg.Batch.Concurrency,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create pacer: %w", err)
	}

	searcher := youtube.NewClient(youtube.Config{
		APIKey:      cfg.YouTube.APIKey,
		BaseURL:     cfg.YouTube.BaseURL,
		MaxResults:  cfg.YouTube.MaxResults,
		QueryPrefix: cfg.YouTube.QueryPrefix,
		QuerySuffix: cfg.YouTube.QuerySuffix,
		Timeout:     cfg.YouTube.Timeout,
	}, nil)

	app := &commands.App{
		Curator: curator.NewService(searcher, videoStore),
		Source:  batch.NewSyllabusSource(syllabusStore),
		Pacer:   pacer,
		Migrate: func(ctx context.Context) error {
			return postgres.Migrate(ctx, db)
		},
		Close:  db.Close,
		Logger: logger,
	}

	if cfg.Worker.URL != "" {
		remote, err := client.NewCuratorClient(client.CuratorConfig{
			URL:     cfg.Worker.URL,
			Token:   cfg.Worker.Token,
			Timeout: cfg.Worker.Timeout,
		}, nil)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create curator client: %w", err)
		}
		app.Remote = remote
	}

	return app, nil
}
