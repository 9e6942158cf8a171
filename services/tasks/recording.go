// File: services/tasks/recording.go
package tasks

import (
	"encoding/json"

	"dialvet/models"

	"github.com/hibiken/asynq"
)

const TypeArchiveRecording = "recording:archive"

// NewArchiveRecordingTask builds the queue task that fetches a completed
// call's recording and uploads it to the object store.
func NewArchiveRecordingTask(payload models.RecordingPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeArchiveRecording, b), nil
}

// Enqueuer hands tasks to the queue. The call path treats enqueue failures
// as non-fatal; archiving is best effort.
type Enqueuer interface {
	EnqueueArchiveRecording(payload models.RecordingPayload) error
}

// AsynqEnqueuer is the Redis-backed production Enqueuer.
type AsynqEnqueuer struct {
	client *asynq.Client
}

func NewAsynqEnqueuer(opts asynq.RedisClientOpt) *AsynqEnqueuer {
	return &AsynqEnqueuer{client: asynq.NewClient(opts)}
}

func (e *AsynqEnqueuer) EnqueueArchiveRecording(payload models.RecordingPayload) error {
	task, err := NewArchiveRecordingTask(payload)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(task, asynq.MaxRetry(5))
	return err
}
