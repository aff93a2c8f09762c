package notification

import (
	"context"
	"errors"
	"time"

	"justnest/models"
)

// Broadcaster delivers a notification to every subscriber of its room.
type Broadcaster interface {
	Broadcast(ctx context.Context, n models.Notification) error
}

// NotificationService fans room events out to the configured broadcasters.
type NotificationService interface {
	Notify(ctx context.Context, room, event string, data map[string]any) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	// Origin is stamped on every notification so relayed copies can be
	// recognised by the instance that sent them.
	Origin string

	sinks []Broadcaster
	now   func() time.Time
}

// NewDefaultNotificationService builds a service over the non-nil sinks.
func NewDefaultNotificationService(sinks ...Broadcaster) *DefaultNotificationService {
	s := &DefaultNotificationService{now: time.Now}
	for _, sink := range sinks {
		if sink != nil {
			s.sinks = append(s.sinks, sink)
		}
	}
	return s
}

// Notify sends to every sink, even when an earlier one fails, and joins the errors.
func (s *DefaultNotificationService) Notify(ctx context.Context, room, event string, data map[string]any) error {
	n := models.Notification{Event: event, Room: room, Data: data, SentAt: s.now().UTC(), Origin: s.Origin}

	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Broadcast(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
