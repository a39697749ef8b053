package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gamesitetools/internal/components/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var debug *bool
var configPath *string
var dumpDir *string

var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:   "gamesite-cli",
	Short: "gamesite-cli scrapes game collections and game lengths.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*debug)

		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load .env: %w", err)
		}

		tel, err = telemetry.SetupFromEnv(cmd.Context(), "gamesite-cli")
		if os.IsNotExist(err) {
			slog.Debug("no telemetry.json5 found, telemetry export is disabled")
			return nil
		}
		return err
	},
}

func init() {
	debug = rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logs.")
	configPath = rootCmd.PersistentFlags().String("config", "gamesite.json5", "The config file to read, searched for upwards from the cwd.")
	dumpDir = rootCmd.PersistentFlags().String("dump-dir", "", "Write every http request and response to this directory.")
}

func ExecuteContext(ctx context.Context) {
	if err := execute(ctx, rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs cmd and then flushes telemetry, cobra skips the post run hooks
// of a failed command and those are the runs worth tracing.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if shutdownErr := tel.Shutdown(shutdownCtx); shutdownErr != nil {
		err = errors.Join(err, fmt.Errorf("flush telemetry: %w", shutdownErr))
	}
	return err
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
