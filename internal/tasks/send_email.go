package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/langschool/contentapi/internal/email"
)

// SendEmailTask delivers one message through the configured email.Sender.
type SendEmailTask struct {
	Message email.Message `json:"message"`
}

func (t SendEmailTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "send_email",
		MaxAttempts: 3,
		Backoff:     time.Minute,
		Timeout:     30 * time.Second,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: true,
		},
	}
}

func SendEmailProcessor(sender email.Sender) backlite.QueueProcessor[SendEmailTask] {
	return func(ctx context.Context, task SendEmailTask) error {
		if sender == nil {
			return errors.New("email sender not configured")
		}
		if err := sender.Send(ctx, task.Message); err != nil {
			return fmt.Errorf("send email: %w", err)
		}
		return nil
	}
}

func NewSendEmailQueue(sender email.Sender) backlite.Queue {
	return backlite.NewQueue(SendEmailProcessor(sender))
}

// TaskAdder enqueues tasks. *Client satisfies it.
type TaskAdder interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// QueuedSender is an email.Sender that hands messages to the task queue, so
// HTTP handlers return without waiting on the SMTP relay.
type QueuedSender struct {
	queue TaskAdder
}

func NewQueuedSender(queue TaskAdder) *QueuedSender {
	return &QueuedSender{queue: queue}
}

func (s *QueuedSender) Send(ctx context.Context, msg email.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.queue.Add(SendEmailTask{Message: msg}).Save(); err != nil {
		return fmt.Errorf("enqueue email to %s: %w", msg.To, err)
	}
	return nil
}
