package jobqueue

import (
	"context"
	"encoding/json"

	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// JobWriter publishes jobs to the jobs topic. Messages are keyed by target
// id so all jobs for one round land on one partition and are consumed in
// order.
type JobWriter struct {
	writer KafkaWriter
}

// NewJobWriter creates a new JobWriter.
func NewJobWriter(writer KafkaWriter) *JobWriter {
	return &JobWriter{writer: writer}
}

// Enqueue publishes a single job.
func (w *JobWriter) Enqueue(ctx context.Context, job models.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(job.TargetID),
		Value: data,
	}

	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish job",
			"job_id", job.JobID, "target_id", job.TargetID, "action", job.Action, "error", err)
		return err
	}

	logger.Log.Infow("job published",
		"job_id", job.JobID, "target_id", job.TargetID, "action", job.Action)
	return nil
}

// Close closes the underlying writer.
func (w *JobWriter) Close() error {
	return w.writer.Close()
}
