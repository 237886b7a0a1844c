package cmd

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "plox",
		Short:        "plox",
		SilenceUsage: true,
		Long:         `CLI tool for linting and sorting game mod load orders.`,
	}

	directory string
	gameFlag  string
	logLevel  string

	baseLogger = logrus.New()

	// runID correlates every log line emitted by a single invocation,
	// the same way sqltest/fixture.go mints a fresh uuid per test run.
	runID = uuid.Must(uuid.NewV4()).String()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to the mod installation / rules directory")
	rootCmd.PersistentFlags().StringVarP(&gameFlag, "game", "g", "openmw", "game to lint for: morrowind, openmw, or cyberpunk")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level: debug, info, warn, error")
	return rootCmd.Execute()
}

// fieldLogger returns the shared logger tagged with this invocation's
// run id, for passing into plox.Options.Logger.
func fieldLogger() logrus.FieldLogger {
	return baseLogger.WithField("run", runID)
}

func init() {
	cobra.OnInitialize(func() {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		baseLogger.SetLevel(level)
	})
}
