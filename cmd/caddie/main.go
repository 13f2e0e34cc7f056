package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stitts-dev/caddie/pkg/logger"
)

var log *logrus.Logger

var rootCmd = &cobra.Command{
	Use:   "caddie",
	Short: "Club recommendations from the command line",
	Long:  "Runs the recommendation engine against scenario files, checks course fixtures and prints the generic club table.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		log = logger.InitLogger(level, false)
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
