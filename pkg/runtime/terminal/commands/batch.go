package commands

import (
	"fmt"

	"github.com/de-tools/video-curator/pkg/runtime/terminal/export"
	"github.com/de-tools/video-curator/pkg/services/batch"
	"github.com/spf13/cobra"
)

type BatchCmd struct {
	configPath *string
	remote     bool
	load       Loader
	reporter   *export.Reporter
}

func NewBatchCmd(configPath *string, load Loader, reporter *export.Reporter) *cobra.Command {
	bc := &BatchCmd{configPath: configPath, load: load, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Curate videos for every syllabus row",
		RunE:  bc.run,
	}

	cmd.Flags().BoolVar(&bc.remote, "remote", false, "Send each item to the configured worker.url instead of curating in-process")

	return cmd
}

func (bc *BatchCmd) run(cmd *cobra.Command, _ []string) error {
	app, err := bc.load(cmd.Context(), *bc.configPath)
	if err != nil {
		return err
	}
	defer app.close()
	ctx := app.Logger.WithContext(cmd.Context())

	var worker batch.Worker = batch.NewLocalWorker(app.Curator)
	if bc.remote {
		if app.Remote == nil {
			return fmt.Errorf("--remote requires worker.url to be configured")
		}
		worker = app.Remote
	}

	report, err := batch.NewRunner(app.Source, worker, app.Pacer).Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to run batch: %w", err)
	}

	return bc.reporter.Handle(report)
}
