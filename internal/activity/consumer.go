package activity

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/pubsub"
	pubsubRouter "github.com/vidinfra/erpdesk/internal/pubsub/router"
	"github.com/vidinfra/erpdesk/internal/types"
)

// Consumer feeds the activity log from the domain events topic
type Consumer struct {
	pubSub pubsub.PubSub
	log    *Log
	logger *logger.Logger
}

func NewConsumer(pubSub pubsub.PubSub, log *Log, logger *logger.Logger) *Consumer {
	return &Consumer{
		pubSub: pubSub,
		log:    log,
		logger: logger,
	}
}

// RegisterHandler subscribes the consumer on the router
func (c *Consumer) RegisterHandler(router *pubsubRouter.Router) {
	router.AddNoPublishHandler(
		"activity_log_handler",
		types.DomainEventsTopic,
		c.pubSub,
		c.processMessage,
	)
	c.logger.Infow("registered activity log handler", "topic", types.DomainEventsTopic)
}

func (c *Consumer) processMessage(msg *message.Message) error {
	var event types.DomainEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return ierr.WithError(err).
			WithHint("malformed domain event").
			Mark(ierr.ErrValidation)
	}

	ctx := msg.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c.logger.Debugw("recording activity",
		"event_id", event.ID,
		"event_name", event.EventName,
		"entity_id", event.EntityID,
	)
	return c.log.Record(ctx, &event)
}
