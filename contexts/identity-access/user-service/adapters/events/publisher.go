package events

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"webshop/contexts/identity-access/user-service/ports"
	sharedevents "webshop/internal/shared/events"
)

// Bus is the message bus surface the publisher needs.
type Bus interface {
	Publish(ctx context.Context, topic string, event sharedevents.Envelope) error
}

// Publisher maps module events onto the shared envelope and hands them to
// the bus.
type Publisher struct {
	bus    Bus
	logger *slog.Logger
}

func NewPublisher(bus Bus, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{bus: bus, logger: logger}
}

func (p Publisher) PublishUserRegistered(ctx context.Context, event ports.UserRegisteredEvent) error {
	if p.bus == nil {
		return nil
	}
	return p.bus.Publish(ctx, sharedevents.TopicUserRegistered, sharedevents.Envelope{
		EventID:        strings.ReplaceAll(uuid.NewString(), "-", ""),
		EventType:      "user.registered",
		SourceService:  "identity-access/user-service",
		OccurredAtUTC:  event.OccurredAt.UTC(),
		EntityType:     "user",
		EntityID:       event.UserID,
		PayloadVersion: 1,
		Payload: map[string]any{
			"user_id": event.UserID,
			"email":   event.Email,
			"role":    string(event.Role),
		},
	})
}
