package main

import (
	"fmt"
	"os"

	"github.com/de-tools/video-curator/pkg/server"
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
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the video curator",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (environment variables with the CURATOR_ prefix override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	if cfg.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	db, err := postgres.NewDB(ctx, postgres.Settings{URL: cfg.Database.URL})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate postgres schema: %w", err)
	}

	syllabusStore, err := syllabus.NewStore(db, cfg.Batch.RecordLimit)
	if err != nil {
		return fmt.Errorf("failed to create syllabus store: %w", err)
	}
	videoStore, err := videos.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create video store: %w", err)
	}

	searcher := youtube.NewClient(youtube.Config{
		APIKey:      cfg.YouTube.APIKey,
		BaseURL:     cfg.YouTube.BaseURL,
		MaxResults:  cfg.YouTube.MaxResults,
		QueryPrefix: cfg.YouTube.QueryPrefix,
		QuerySuffix: cfg.YouTube.QuerySuffix,
		Timeout:     cfg.YouTube.Timeout,
	}, nil)
	curatorService := curator.NewService(searcher, videoStore)

	worker, err := client.NewCuratorClient(client.CuratorConfig{
		URL:     cfg.Worker.URL,
		Token:   cfg.Worker.Token,
		Timeout: cfg.Worker.Timeout,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to create curator client: %w", err)
	}

	pacer, err := batch.NewPacer(cfg.Batch.Pacing, batch.Policy{
		Delay:       cfg.Batch.Delay,
		Concurrency: cfg.Batch.Concurrency,
	})
	if err != nil {
		return fmt.Errorf("failed to create pacer: %w", err)
	}
	runner := batch.NewRunner(batch.NewSyllabusSource(syllabusStore), worker, pacer)

	logger.Info().
		Str("worker_url", cfg.Worker.URL).
		Str("pacing", cfg.Batch.Pacing).
		Dur("delay", cfg.Batch.Delay).
		Int("record_limit", cfg.Batch.RecordLimit).
		Msg("configuration loaded")

	webAPI := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		APIKey:          cfg.Server.APIKey,
		Dependencies: server.Dependencies{
			Curator: curatorService,
			Runner:  runner,
			DB:      db,
			Logger:  logger,
		},
	})

	return webAPI.Start()
}
