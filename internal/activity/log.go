// Package activity keeps the newest-first log of domain events published by
// the services.
package activity

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

// Entry is one recorded domain event
type Entry struct {
	types.DomainEvent
}

func (e *Entry) GetID() string { return e.ID }

func (e *Entry) Clone() *Entry {
	c := *e
	c.Payload = append([]byte(nil), e.Payload...)
	return &c
}

type Log struct {
	entries *store.Memory[*Entry]
	logger  *logger.Logger
}

func NewLog(logger *logger.Logger) *Log {
	return &Log{
		entries: store.NewMemory[*Entry]("activity", store.OrderNewestFirst),
		logger:  logger,
	}
}

// Record stores the event. Redelivered events are ignored.
func (l *Log) Record(ctx context.Context, event *types.DomainEvent) error {
	if l.entries.Exists(ctx, event.ID) {
		l.logger.Debugw("skipping duplicate activity", "event_id", event.ID)
		return nil
	}
	return l.entries.Create(ctx, &Entry{DomainEvent: *event})
}

var sortKeys = map[string]projector.KeyFunc[*Entry]{
	"timestamp":   projector.Defined(func(e *Entry) projector.Value { return projector.Time(e.Timestamp) }),
	"event_name":  projector.Defined(func(e *Entry) projector.Value { return projector.String(e.EventName) }),
	"entity_type": projector.Defined(func(e *Entry) projector.Value { return projector.String(e.EntityType) }),
}

// List returns a page of entries and the total number matching the filter
func (l *Log) List(ctx context.Context, filter *types.ActivityFilter) ([]*Entry, int) {
	if filter == nil {
		filter = types.NewNoLimitActivityFilter()
	}
	preds := []projector.Predicate[*Entry]{
		projector.Contains(filter.GetQuery(),
			func(e *Entry) string { return e.EventName },
			func(e *Entry) string { return e.EntityID },
			func(e *Entry) string { return e.UserID },
		),
		projector.Equals(filter.EntityType, func(e *Entry) string { return e.EntityType }),
		projector.Equals(filter.EntityID, func(e *Entry) string { return e.EntityID }),
		projector.Equals(filter.EventName, func(e *Entry) string { return e.EventName }),
	}

	items := projector.Filter(l.entries.List(ctx, nil), preds...)
	items = projector.Sort(items, projector.SortStateFor(filter.QueryFilter), sortKeys)
	return types.Paginate(items, filter.GetOffset(), filter.GetLimit()), len(items)
}
