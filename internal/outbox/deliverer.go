package outbox

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/ironforge/finance-server/internal/webhook"
)

// ChangePoster is the webhook surface the outbox delivers through.
type ChangePoster interface {
	PostChange(ctx context.Context, event webhook.ChangeEvent) error
}

// Deliverer is the worker that drains the queue and pushes each change event
// to the webhook, retrying transient failures with exponential backoff.
// Events that exhaust their retries are logged and dropped; the optimistic
// local mutation is never rolled back.
type Deliverer struct {
	poster      ChangePoster
	logger      *logrus.Logger
	queue       chan webhook.ChangeEvent
	maxRetries  uint64
	postTimeout time.Duration
}

func NewDeliverer(poster ChangePoster, logger *logrus.Logger, queue chan webhook.ChangeEvent, maxRetries uint64, postTimeout time.Duration) *Deliverer {
	return &Deliverer{
		poster:      poster,
		logger:      logger,
		queue:       queue,
		maxRetries:  maxRetries,
		postTimeout: postTimeout,
	}
}

// Run drains the queue until it is closed.
func (d *Deliverer) Run() {
	for event := range d.queue {
		d.deliver(event)
	}
}

func (d *Deliverer) deliver(event webhook.ChangeEvent) {
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), d.postTimeout)
		defer cancel()
		return d.poster.PostChange(ctx, event)
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), d.maxRetries)
	if err := backoff.Retry(operation, policy); err != nil {
		d.logger.WithError(err).WithField("changeType", event.ChangeType).
			Error("Outbox.deliver.dropped")
		return
	}

	d.logger.WithField("changeType", event.ChangeType).Info("Outbox.deliver.sent")
}
