// Command rtxstatus decodes CMSIS-RTOS2 status and flags error codes on the
// host, e.g. when reading a crash log pulled off a board.
package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rtxstatus",
		Short:         "Decode CMSIS-RTOS2 (RTX) status codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd, logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newLookupCmd(), newTableCmd(), newDiagCmd())
	return root
}

func setupLogging(cmd *cobra.Command, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", level)
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), lvl))
	return nil
}

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
}

func main() {
	// Flag errors are returned before PersistentPreRunE runs.
	slog.SetDefault(newLogger(os.Stderr, slog.LevelWarn))
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
