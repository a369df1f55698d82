package commands

import (
	"context"

	"github.com/de-tools/video-curator/pkg/services/batch"
	"github.com/de-tools/video-curator/pkg/services/curator"
	"github.com/rs/zerolog"
)

// App is the wired application a command runs against.
type App struct {
	Curator curator.Curator
	Source  batch.RecordSource
	Pacer   batch.Pacer
	// Remote is the HTTP worker for --remote batches; nil when worker.url is unset.
	Remote  batch.Worker
	Migrate func(ctx context.Context) error
	Close   func() error
	Logger  zerolog.Logger
}

// Loader builds an App from the config file at path.
type Loader func(ctx context.Context, path string) (*App, error)

func (a *App) close() {
	if a.Close != nil {
		_ = a.Close()
	}
}
