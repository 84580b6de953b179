package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"codetune/internal/finetune"
)

var statusCmd = &cobra.Command{
	Use:   "status <job-id>",
	Short: "Show the current status of one fine-tune job",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	job, err := client.GetJob(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Job %s: %s\n", job.ID, job.Status)
	if job.Status == finetune.StatusSucceeded && job.FineTunedModel != "" {
		fmt.Printf("Fine-tuned model: %s\n", job.FineTunedModel)
	}
	return nil
}
