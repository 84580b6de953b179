package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "codetune",
	Short: "Build fine-tuning datasets from code and manage fine-tune jobs",
	Long: `Codetune converts a CSV of prompt/completion pairs into a JSONL
training file and submits it to the fine-tuning service. It can also mine
JavaScript/TypeScript sources for new training examples by walking their
syntax trees.

Running codetune with no subcommand runs upload.`,
	Args: cobra.NoArgs,
	RunE: runUpload,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".codetune.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
