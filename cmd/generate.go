package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <model> <prompt>",
	Short: "Generate a completion from a model",
	Long: `Forwards the prompt verbatim to the completions endpoint for the
given model (typically a fine-tuned one) and prints the first choice's
text.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	text, err := client.Complete(context.Background(), args[0], args[1], cfg.MaxTokens)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
