package tasks

import (
	"encoding/json"
	"time"

	"justnest/models"

	"github.com/hibiken/asynq"
)

// TypeRelayNotification is the task that republishes a notification on Redis pub/sub.
const TypeRelayNotification = "notification:relay"

// NewRelayTask wraps n in a relay task. Relays are short-lived: a notification
// that cannot be delivered within a few attempts is stale anyway.
func NewRelayTask(n models.Notification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRelayNotification, b)
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(10 * time.Second),
		asynq.Retention(0),
	}
	return task, opts, nil
}

// ParseRelayTask decodes the notification carried by a relay task.
func ParseRelayTask(task *asynq.Task) (models.Notification, error) {
	var n models.Notification
	err := json.Unmarshal(task.Payload(), &n)
	return n, err
}
