package jobqueue

import (
	"context"
	"encoding/json"

	"github.com/parlorgames/party-rounds/internal/logger"
	"github.com/parlorgames/party-rounds/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaReader defines a Kafka reader abstraction.
type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)       // Fetches without committing
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error // Commits consumed offsets
	Close() error                                                  // Closes the Kafka reader
}

// Delivery is one fetched job plus the transport handle needed to settle it.
type Delivery struct {
	Job models.Job

	msg kafka.Message
}

// Consumer adapts a Kafka consumer group to the ack/nack/dead-letter
// contract the dispatcher expects. Nack re-publishes the job unchanged
// (attempt incremented) before committing, so redelivery does not block the
// partition; DeadLetter records the job and failure reason on a separate
// topic for operator inspection.
type Consumer struct {
	reader  KafkaReader
	requeue KafkaWriter
	dead    KafkaWriter
}

// NewConsumer creates a new Consumer.
func NewConsumer(reader KafkaReader, requeue, dead KafkaWriter) *Consumer {
	return &Consumer{reader: reader, requeue: requeue, dead: dead}
}

// Fetch blocks for the next job. Messages that do not decode as jobs are
// dead-lettered and skipped; they can never be processed, so redelivering
// them would only wedge the partition.
func (c *Consumer) Fetch(ctx context.Context) (*Delivery, error) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return nil, err
		}

		var job models.Job
		if err := json.Unmarshal(msg.Value, &job); err != nil {
			logger.Log.Errorw("malformed job message, dead-lettering",
				"offset", msg.Offset, "error", err)

			if err := c.dead.WriteMessages(ctx, kafka.Message{Key: msg.Key, Value: msg.Value}); err != nil {
				return nil, err
			}
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				return nil, err
			}
			continue
		}

		return &Delivery{Job: job, msg: msg}, nil
	}
}

// Ack marks the job done.
func (c *Consumer) Ack(ctx context.Context, d *Delivery) error {
	return c.reader.CommitMessages(ctx, d.msg)
}

// Nack requeues the job unchanged for redelivery.
func (c *Consumer) Nack(ctx context.Context, d *Delivery) error {
	job := d.Job
	job.Attempt++

	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	if err := c.requeue.WriteMessages(ctx, kafka.Message{Key: d.msg.Key, Value: data}); err != nil {
		return err
	}

	logger.Log.Infow("job requeued",
		"job_id", job.JobID, "target_id", job.TargetID, "action", job.Action, "attempt", job.Attempt)

	return c.reader.CommitMessages(ctx, d.msg)
}

// DeadLetter records the job as terminally failed with full context.
func (c *Consumer) DeadLetter(ctx context.Context, d *Delivery, reason string) error {
	record := models.DeadLetter{Job: d.Job, Reason: reason}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := c.dead.WriteMessages(ctx, kafka.Message{Key: d.msg.Key, Value: data}); err != nil {
		return err
	}

	logger.Log.Errorw("job dead-lettered",
		"job_id", d.Job.JobID, "target_id", d.Job.TargetID, "action", d.Job.Action, "reason", reason)

	return c.reader.CommitMessages(ctx, d.msg)
}

// Close closes the reader and both writers.
func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return err
	}
	if err := c.requeue.Close(); err != nil {
		return err
	}
	return c.dead.Close()
}
