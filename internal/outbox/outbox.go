// Package outbox queues change events for background delivery to the remote
// webhook. Writes against the local snapshot commit immediately; the outbox
// makes delivery best-effort with bounded retry instead of blocking the
// request path on the webhook.
package outbox

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironforge/finance-server/internal/webhook"
)

const defaultQueueDepth = 1000

// Outbox owns the event queue and the delivery workers.
type Outbox struct {
	queue      chan webhook.ChangeEvent
	numWorkers int
	logger     *logrus.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	poster   ChangePoster

	maxRetries  uint64
	postTimeout time.Duration
}

// NewOutbox creates an Outbox delivering through poster with numWorkers
// workers.
func NewOutbox(poster ChangePoster, logger *logrus.Logger, numWorkers int, maxRetries uint64, postTimeout time.Duration) *Outbox {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Outbox{
		queue:       make(chan webhook.ChangeEvent, defaultQueueDepth),
		numWorkers:  numWorkers,
		logger:      logger,
		poster:      poster,
		maxRetries:  maxRetries,
		postTimeout: postTimeout,
	}
}

// Start launches the delivery workers.
func (o *Outbox) Start() {
	for i := 0; i < o.numWorkers; i++ {
		o.wg.Add(1)
		deliverer := NewDeliverer(o.poster, o.logger, o.queue, o.maxRetries, o.postTimeout)
		go func() {
			defer o.wg.Done()
			deliverer.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
func (o *Outbox) Stop() {
	o.stopOnce.Do(func() {
		close(o.queue)
		o.wg.Wait()
	})
}

// QueueDepth returns the number of events waiting for delivery.
func (o *Outbox) QueueDepth() int {
	return len(o.queue)
}

// Enqueue accepts a change event for background delivery. When the queue is
// full the event is dropped with a log line rather than blocking the request
// path; the webhook contract is best-effort.
func (o *Outbox) Enqueue(changeType string, changeData any) {
	event := webhook.ChangeEvent{
		ChangeType: changeType,
		ChangeData: changeData,
		Timestamp:  time.Now().UTC(),
	}

	select {
	case o.queue <- event:
	default:
		o.logger.WithField("changeType", changeType).Warn("Outbox.Enqueue.queue full, event dropped")
	}
}
