package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"codetune/internal/dataset"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [csv-file]",
	Short: "Convert the CSV dataset to JSONL and submit a fine-tune job",
	Long: `Converts the CSV dataset into a JSONL training file, uploads it to
the fine-tuning service, and creates a fine-tune job for the configured base
model. Prints the job id without waiting for the job to finish. Every run
creates a new remote job.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().String("out", "", "JSONL output path (overrides config)")
	uploadCmd.Flags().String("model", "", "base model to fine-tune (overrides config)")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	csvPath := cfg.CSVPath
	if len(args) > 0 {
		csvPath = args[0]
	}

	// Flag lookups tolerate the flags being absent: the root command reuses
	// this runner without registering them.
	jsonlPath, _ := cmd.Flags().GetString("out")
	if jsonlPath == "" {
		jsonlPath = cfg.JSONLPath
	}
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = cfg.Model
	}

	n, err := dataset.ConvertFile(csvPath, jsonlPath)
	if err != nil {
		return err
	}
	debugf("Wrote %d examples to %s", n, jsonlPath)

	client, err := newClient()
	if err != nil {
		return err
	}

	fileID, err := client.UploadDataset(ctx, jsonlPath)
	if err != nil {
		return err
	}
	debugf("Uploaded training file %s", fileID)

	job, err := client.CreateJob(ctx, fileID, model)
	if err != nil {
		return err
	}

	fmt.Printf("Created fine-tune job %s (status %s)\n", job.ID, job.Status)
	return nil
}
