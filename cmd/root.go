package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/daisy/pkg/logger"
)

// NewRootCmd builds the daisy command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "daisy",
		Short: "daisy - server-rendered daisyUI components for Go",
		Long: `daisy renders daisyUI widgets as templ components. The binary serves a
live gallery of every widget and prints the variant to class-token tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := logger.GetLogger()
			log.ConfigureFromEnv()
			if cmd.Flags().Changed("log-level") {
				log.SetLogLevel(logLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(),
		newRenderCmd(),
		newVariantsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
