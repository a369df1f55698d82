package commands

import (
	"fmt"

	"github.com/de-tools/video-curator/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

func NewMigrateCmd(configPath *string, load Loader, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the syllabus and curated_videos tables if they are missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.Migrate(app.Logger.WithContext(cmd.Context())); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			return reporter.Message("schema is up to date")
		},
	}
}
