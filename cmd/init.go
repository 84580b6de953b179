package cmd

import (
	"github.com/spf13/cobra"

	"codetune/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize codetune configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure codetune and generates a .codetune.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
