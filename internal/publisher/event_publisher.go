package publisher

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/pubsub"
	"github.com/vidinfra/erpdesk/internal/types"
)

// EventPublisher publishes entity lifecycle events to the domain events topic
type EventPublisher interface {
	Publish(ctx context.Context, event *types.DomainEvent) error
	Close() error
}

type eventPublisher struct {
	pubSub pubsub.PubSub
	topic  string
	logger *logger.Logger
}

func NewEventPublisher(pubSub pubsub.PubSub, logger *logger.Logger) EventPublisher {
	return &eventPublisher{
		pubSub: pubSub,
		topic:  types.DomainEventsTopic,
		logger: logger,
	}
}

// NewEvent stamps an event with the caller, request and clock taken from ctx
func NewEvent(ctx context.Context, eventName, entityType, entityID string, payload any) (*types.DomainEvent, error) {
	event := &types.DomainEvent{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOMAIN_EVENT),
		EventName:  eventName,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     types.GetUserID(ctx),
		RequestID:  types.GetRequestID(ctx),
		Timestamp:  types.Now(ctx),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHintf("failed to encode %s payload", eventName).
				Mark(ierr.ErrSystem)
		}
		event.Payload = data
	}
	return event, nil
}

func (p *eventPublisher) Publish(ctx context.Context, event *types.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return ierr.WithError(err).WithHint("failed to encode domain event").Mark(ierr.ErrSystem)
	}

	messageID := event.ID
	if messageID == "" {
		messageID = watermill.NewUUID()
	}

	msg := message.NewMessage(messageID, payload)
	msg.Metadata.Set("event_name", event.EventName)
	msg.Metadata.Set("entity_type", event.EntityType)

	p.logger.Debugw("publishing domain event",
		"event_id", event.ID,
		"event_name", event.EventName,
		"entity_id", event.EntityID,
		"topic", p.topic,
	)

	if err := p.pubSub.Publish(ctx, p.topic, msg); err != nil {
		p.logger.Errorw("failed to publish domain event",
			"error", err,
			"event_id", event.ID,
			"event_name", event.EventName,
		)
		return ierr.WithError(err).WithHint("failed to publish domain event").Mark(ierr.ErrSystem)
	}
	return nil
}

func (p *eventPublisher) Close() error {
	return p.pubSub.Close()
}
