package activity

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidinfra/erpdesk/internal/config"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/publisher"
	"github.com/vidinfra/erpdesk/internal/pubsub/memory"
	pubsubRouter "github.com/vidinfra/erpdesk/internal/pubsub/router"
	"github.com/vidinfra/erpdesk/internal/types"
)

func event(id, name, entityType, entityID string) *types.DomainEvent {
	return &types.DomainEvent{
		ID:         id,
		EventName:  name,
		EntityType: entityType,
		EntityID:   entityID,
		Timestamp:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLog_NewestFirstAndFilters(t *testing.T) {
	ctx := context.Background()
	l := NewLog(logger.NewNopLogger())

	require.NoError(t, l.Record(ctx, event("e1", "deal.created", types.EntityTypeDeal, "d1")))
	require.NoError(t, l.Record(ctx, event("e2", "invoice.created", types.EntityTypeInvoice, "INV-2024-0001")))
	require.NoError(t, l.Record(ctx, event("e3", "deal.updated", types.EntityTypeDeal, "d1")))
	// redelivery
	require.NoError(t, l.Record(ctx, event("e1", "deal.created", types.EntityTypeDeal, "d1")))

	entries, total := l.List(ctx, nil)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"e3", "e2", "e1"}, lo.Map(entries, func(e *Entry, _ int) string { return e.ID }))

	f := types.NewActivityFilter()
	f.EntityType = types.EntityTypeDeal
	f.Limit = lo.ToPtr(1)
	entries, total = l.List(ctx, f)
	assert.Equal(t, 2, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "e3", entries[0].ID)
}

func TestConsumer_ProcessMessage(t *testing.T) {
	l := NewLog(logger.NewNopLogger())
	c := NewConsumer(nil, l, logger.NewNopLogger())

	payload, err := json.Marshal(event("e1", "ticket.commented", types.EntityTypeTicket, "t1"))
	require.NoError(t, err)
	require.NoError(t, c.processMessage(message.NewMessage("e1", payload)))

	entries, _ := l.List(context.Background(), nil)
	require.Len(t, entries, 1)
	assert.Equal(t, "ticket.commented", entries[0].EventName)

	err = c.processMessage(message.NewMessage("bad", []byte("{")))
	assert.True(t, ierr.IsValidation(err))
}

func TestPublishedEventsReachTheLog(t *testing.T) {
	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()

	ps := memory.NewPubSub(cfg, log)
	router, err := pubsubRouter.NewRouter(cfg, log)
	require.NoError(t, err)

	activityLog := NewLog(log)
	NewConsumer(ps, activityLog, log).RegisterHandler(router)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = router.Run(ctx) }()
	<-router.Running()

	pub := publisher.NewEventPublisher(ps, log)
	ev, err := publisher.NewEvent(types.SetUserID(ctx, "amira"), "client.created", types.EntityTypeClient, "client_1", map[string]string{"name": "Acme"})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(ctx, ev))

	require.Eventually(t, func() bool {
		_, total := activityLog.List(ctx, nil)
		return total == 1
	}, 2*time.Second, 10*time.Millisecond)

	entries, _ := activityLog.List(ctx, nil)
	assert.Equal(t, "amira", entries[0].UserID)
	assert.JSONEq(t, `{"name":"Acme"}`, string(entries[0].Payload))
	require.NoError(t, router.Close())
}
