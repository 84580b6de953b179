package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List fine-tune jobs visible to the credential",
	Long: `Fetches every fine-tune job visible to the credential and prints
one line per job: id, status, and the resulting model id (or null while the
job has not produced one). Jobs appear in the order the service returns
them.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	jobs, err := client.ListJobs(context.Background())
	if err != nil {
		return err
	}

	for _, job := range jobs {
		model := job.FineTunedModel
		if model == "" {
			model = "null"
		}
		fmt.Printf("%s %s %s\n", job.ID, job.Status, model)
	}
	return nil
}
