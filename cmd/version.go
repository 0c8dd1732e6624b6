package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/daisy/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the daisy version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Version())
				return
			}
			fmt.Fprintln(out, version.String())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")
	return cmd
}
