package commands

import (
	"fmt"

	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/de-tools/video-curator/pkg/runtime/terminal/export"
	"github.com/de-tools/video-curator/pkg/services/curator"
	"github.com/spf13/cobra"
)

type CurateCmd struct {
	configPath *string
	item       domain.WorkItem
	load       Loader
	reporter   *export.Reporter
}

func NewCurateCmd(configPath *string, load Loader, reporter *export.Reporter) *cobra.Command {
	cc := &CurateCmd{configPath: configPath, load: load, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Curate videos for a single topic and subtopic",
		RunE:  cc.run,
	}

	cmd.Flags().Int64Var(&cc.item.ID, "topic-id", 0, "Syllabus row id the videos are linked to")
	cmd.Flags().StringVar(&cc.item.Topic, "topic", "", "Topic to search for")
	cmd.Flags().StringVar(&cc.item.Subtopic, "subtopic", "", "Subtopic to search for")

	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("subtopic")

	return cmd
}

func (cc *CurateCmd) run(cmd *cobra.Command, _ []string) error {
	app, err := cc.load(cmd.Context(), *cc.configPath)
	if err != nil {
		return err
	}
	defer app.close()
	ctx := app.Logger.WithContext(cmd.Context())

	res, err := app.Curator.Curate(ctx, cc.item)
	if err != nil {
		return fmt.Errorf("%s: %w", curator.FailureMessage(err), err)
	}

	return cc.reporter.Message("%s", res.Message)
}
