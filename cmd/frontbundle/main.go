package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"frontbundle/internal/bundle"
	"frontbundle/internal/config"
	"frontbundle/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cfg is loaded once per invocation in PersistentPreRunE.
var cfg *config.Config

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "frontbundle",
	Short: "Bundle frontend sources into one review document",
	Long: `frontbundle concatenates a curated set of frontend files into a single
text report for manual code review.

The priority trail (API client, contexts, providers, hooks, App, router) comes
first, then every .js/.jsx file under src/components and src/pages in
directory order. node_modules, .git, dist, build and public are never entered.

All settings are compiled in; run it from the project root with no arguments.
Set FRONTBUNDLE_LOG_LEVEL=debug to trace selection on stderr.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if err := logging.Initialize(loaded.Logging); err != nil {
			return err
		}
		logging.Annotate(zap.String("run_id", uuid.NewString()))
		logging.BootDebug("config loaded: %d trail entries, %d target dirs, output %s",
			len(loaded.World.Trail), len(loaded.World.TargetDirs), loaded.Report.OutputFile)
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
	RunE: runBundle,
}

// runBundle performs a single bundle in the working directory.
func runBundle(cmd *cobra.Command, args []string) error {
	b, err := bundle.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := b.Run(cmd.Context()); err != nil {
		logging.Get(logging.CategoryReport).Error("bundle failed: %v", err)
		return err
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
