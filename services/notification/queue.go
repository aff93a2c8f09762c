package notification

import (
	"context"
	"fmt"

	"justnest/models"
	"justnest/services/tasks"

	"github.com/hibiken/asynq"
)

// QueuedRelay hands notifications to the relay worker instead of publishing
// them on the request path.
type QueuedRelay struct {
	client *asynq.Client
}

// NewQueuedRelay returns a relay enqueuing on client.
func NewQueuedRelay(client *asynq.Client) *QueuedRelay {
	return &QueuedRelay{client: client}
}

func (q *QueuedRelay) Broadcast(ctx context.Context, n models.Notification) error {
	task, opts, err := tasks.NewRelayTask(n)
	if err != nil {
		return fmt.Errorf("failed to build relay task: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue %s for %s: %w", n.Event, n.Room, err)
	}
	return nil
}
