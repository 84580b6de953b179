// Package finetune wraps the OpenAI files, fine-tunes and completions
// endpoints behind a small client. The prompt/completion JSONL format is the
// legacy completions training format, so the legacy fine-tunes endpoints are
// the ones that accept it; the newer fine-tuning-jobs API takes chat
// transcripts and has no list call.
package finetune

import (
	"context"
	"fmt"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"
)

// Client talks to the fine-tuning service. No retries, no timeouts beyond
// what the caller's context carries.
type Client struct {
	api *openai.Client
}

// NewClient creates a client authenticated with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

// NewClientWithBaseURL creates a client pointed at an alternate API base URL.
// Used by tests to target a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// UploadDataset streams the JSONL file at path to the service with the
// fine-tune purpose and returns the file id.
func (c *Client) UploadDataset(ctx context.Context, path string) (string, error) {
	file, err := c.api.CreateFile(ctx, openai.FileRequest{
		FileName: filepath.Base(path),
		FilePath: path,
		Purpose:  "fine-tune",
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", path, err)
	}
	return file.ID, nil
}

// CreateJob submits a fine-tune request for the uploaded training file and
// returns immediately with the new job; it does not wait for completion.
// There is no idempotency key, so re-running creates a duplicate job.
func (c *Client) CreateJob(ctx context.Context, fileID, model string) (Job, error) {
	ft, err := c.api.CreateFineTune(ctx, openai.FineTuneRequest{
		TrainingFile: fileID,
		Model:        model,
	})
	if err != nil {
		return Job{}, fmt.Errorf("creating fine-tune: %w", err)
	}
	return jobFromFineTune(ft), nil
}

// GetJob retrieves the current state of one fine-tune job.
func (c *Client) GetJob(ctx context.Context, id string) (Job, error) {
	ft, err := c.api.GetFineTune(ctx, id)
	if err != nil {
		return Job{}, fmt.Errorf("retrieving fine-tune %s: %w", id, err)
	}
	return jobFromFineTune(ft), nil
}

// ListJobs fetches every fine-tune job visible to the credential, in the
// order the service returns them.
func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	resp, err := c.api.ListFineTunes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing fine-tunes: %w", err)
	}
	jobs := make([]Job, 0, len(resp.Data))
	for _, ft := range resp.Data {
		jobs = append(jobs, jobFromFineTune(ft))
	}
	return jobs, nil
}

// Complete forwards the model and prompt verbatim to the completions
// endpoint and returns the first choice's text.
func (c *Client) Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error) {
	resp, err := c.api.CreateCompletion(ctx, openai.CompletionRequest{
		Model:     model,
		Prompt:    prompt,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("creating completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("creating completion: no choices returned")
	}
	return resp.Choices[0].Text, nil
}

func jobFromFineTune(ft openai.FineTune) Job {
	job := Job{
		ID:             ft.ID,
		Status:         JobStatus(ft.Status),
		Model:          ft.Model,
		FineTunedModel: ft.FineTunedModel,
	}
	if len(ft.TrainingFiles) > 0 {
		job.TrainingFileID = ft.TrainingFiles[0].ID
	}
	return job
}
