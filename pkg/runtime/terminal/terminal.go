package terminal

import (
	"io"
	"os"

	"github.com/de-tools/video-curator/pkg/runtime/terminal/commands"
	"github.com/de-tools/video-curator/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	configPath string
	load       commands.Loader
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	// Loader defaults to Bootstrap.
	Loader commands.Loader
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Loader == nil {
		opts.Loader = Bootstrap
	}

	cli := &CLI{
		load:     opts.Loader,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "curator",
		Short:         "Educational video curation tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "",
		"Path to a config file (environment variables with the CURATOR_ prefix override it)")

	cmd.AddCommand(commands.NewBatchCmd(&cli.configPath, cli.load, cli.reporter))
	cmd.AddCommand(commands.NewCurateCmd(&cli.configPath, cli.load, cli.reporter))
	cmd.AddCommand(commands.NewMigrateCmd(&cli.configPath, cli.load, cli.reporter))

	return cmd
}
