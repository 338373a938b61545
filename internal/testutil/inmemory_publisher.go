package testutil

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"github.com/vidinfra/erpdesk/internal/publisher"
	"github.com/vidinfra/erpdesk/internal/types"
)

// InMemoryEventPublisher records published domain events for assertions
type InMemoryEventPublisher struct {
	mu     sync.RWMutex
	events []*types.DomainEvent
	err    error
}

var _ publisher.EventPublisher = (*InMemoryEventPublisher)(nil)

func NewInMemoryEventPublisher() *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		events: make([]*types.DomainEvent, 0),
	}
}

func (p *InMemoryEventPublisher) Publish(_ context.Context, event *types.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

// FailWith makes every following Publish return err
func (p *InMemoryEventPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *InMemoryEventPublisher) Events() []*types.DomainEvent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*types.DomainEvent{}, p.events...)
}

// EventNames lists the published event names in publish order
func (p *InMemoryEventPublisher) EventNames() []string {
	return lo.Map(p.Events(), func(e *types.DomainEvent, _ int) string { return e.EventName })
}

func (p *InMemoryEventPublisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = make([]*types.DomainEvent, 0)
	p.err = nil
}

func (p *InMemoryEventPublisher) Close() error {
	return nil
}
