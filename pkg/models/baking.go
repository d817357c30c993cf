package models

import "time"

// BakeJob describes a system prompt to encode into model weights, with the
// training-generation parameters the baking service expects.
type BakeJob struct {
	Name      string `json:"name" yaml:"name"`
	BaseModel string `json:"base_model" yaml:"base_model"`
	Prompt    string `json:"prompt" yaml:"prompt"`
	Stims     int    `json:"stims" yaml:"stims"`
	Rollouts  int    `json:"rollouts" yaml:"rollouts"`
	Epochs    int    `json:"epochs" yaml:"epochs"`
}

// JobState is the lifecycle state of a baking job.
type JobState string

const (
	JobQueued    JobState = "queued"
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

// BakeHandle identifies a submitted baking job and the model it produces.
type BakeHandle struct {
	ID          string    `json:"id"`
	BakedModel  string    `json:"baked_model"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// JobStatus reports the progress of a baking job.
type JobStatus struct {
	HandleID     string   `json:"handle_id"`
	State        JobState `json:"state"`
	StimsDone    int      `json:"stims_done"`
	RolloutsDone int      `json:"rollouts_done"`
}
