package finetune

// JobStatus is the lifecycle state of a remote fine-tune job. The service
// owns and mutates the job; this tool only reads it.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusRunning   JobStatus = "running"
	StatusSucceeded JobStatus = "succeeded"
	StatusFailed    JobStatus = "failed"
	// StatusCancelled shows up on read even though jobs are never cancelled
	// from here.
	StatusCancelled JobStatus = "cancelled"
)

// Job is the local view of a remote fine-tune job.
type Job struct {
	ID             string
	Status         JobStatus
	Model          string // base model the job trains from
	TrainingFileID string
	FineTunedModel string // empty until the job succeeds
}
