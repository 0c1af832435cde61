package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbdm-dev/dbdm/logging"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "dbdm",
	Short: "Dotfile link manager",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is dbdm.conf in $PWD)")
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(checkCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
