// Package baking wraps the external prompt-baking service that encodes a
// system prompt into model weights. The real service is proprietary and out
// of reach here; a deterministic in-process mock ships with the demo.
package baking

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bakeoff-ai/bakeoff/pkg/models"
)

// ErrUnknownHandle is returned when a status query names a handle that was
// never submitted.
var ErrUnknownHandle = errors.New("unknown bake handle")

// Client submits baking jobs and reports their progress.
type Client interface {
	// Submit sends a baking job and returns a handle for the resulting model.
	Submit(ctx context.Context, job models.BakeJob) (models.BakeHandle, error)
	// Status reports the progress of a previously submitted job.
	Status(ctx context.Context, handleID string) (models.JobStatus, error)
}

// MockClient simulates the baking service in-process. Handles and baked
// model IDs are derived from the job contents, so resubmitting the same job
// yields the same model.
type MockClient struct {
	mu   sync.Mutex
	jobs map[string]models.BakeJob
}

// NewMock creates a MockClient.
func NewMock() *MockClient {
	return &MockClient{jobs: make(map[string]models.BakeJob)}
}

// Submit validates the job and returns its deterministic handle.
func (m *MockClient) Submit(ctx context.Context, job models.BakeJob) (models.BakeHandle, error) {
	if job.BaseModel == "" {
		return models.BakeHandle{}, fmt.Errorf("submit bake job: base model required")
	}
	if job.Prompt == "" {
		return models.BakeHandle{}, fmt.Errorf("submit bake job: prompt required")
	}

	h := sha256.Sum256([]byte(job.BaseModel + "\x00" + job.Prompt))
	id := fmt.Sprintf("bake_%x", h[:6])

	m.mu.Lock()
	m.jobs[id] = job
	m.mu.Unlock()

	return models.BakeHandle{
		ID:          id,
		BakedModel:  fmt.Sprintf("%s-baked-%x", job.BaseModel, h[:4]),
		SubmittedAt: time.Now().UTC(),
	}, nil
}

// Status reports the job as completed with all stims and rollouts done. The
// mock has no training to wait for.
func (m *MockClient) Status(ctx context.Context, handleID string) (models.JobStatus, error) {
	m.mu.Lock()
	job, ok := m.jobs[handleID]
	m.mu.Unlock()
	if !ok {
		return models.JobStatus{}, ErrUnknownHandle
	}
	return models.JobStatus{
		HandleID:     handleID,
		State:        models.JobCompleted,
		StimsDone:    job.Stims,
		RolloutsDone: job.Rollouts,
	}, nil
}

var _ Client = (*MockClient)(nil)
