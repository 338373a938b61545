package types

import (
	"encoding/json"
	"time"
)

// DomainEventsTopic is the pubsub topic every service publishes to
const DomainEventsTopic = "erpdesk.domain_events"

// DomainEvent is an entity lifecycle change published by the services
type DomainEvent struct {
	ID         string          `json:"id"`
	EventName  string          `json:"event_name"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	UserID     string          `json:"user_id"`
	RequestID  string          `json:"request_id,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

const (
	EntityTypeInvoice  = "invoice"
	EntityTypeExpense  = "expense"
	EntityTypeDeal     = "deal"
	EntityTypeQuote    = "quote"
	EntityTypeClient   = "client"
	EntityTypeAsset    = "asset"
	EntityTypeTicket   = "ticket"
	EntityTypeEvent    = "event"
	EntityTypeProject  = "project"
	EntityTypeTask     = "task"
	EntityTypeSequence = "sequence"
)

// Generic lifecycle actions, combined with the entity type as <entity>.<action>
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event names with their own semantics beyond create/update/delete
const (
	EventInvoiceNumberReserved = "invoice.number.reserved"
	EventInvoiceNumberReleased = "invoice.number.released"
	EventTicketCommented       = "ticket.commented"
	EventProjectHealthUpdated  = "project.health.updated"
	EventProjectFileUploaded   = "project.file.uploaded"
	EventProjectFileVersioned  = "project.file.versioned"
	EventProjectFileOverwrite  = "project.file.overwritten"
	EventProjectFileRenamed    = "project.file.renamed"
	EventProjectFileReverted   = "project.file.reverted"
)

// EventName builds <entity>.<action>
func EventName(entityType, action string) string {
	return entityType + "." + action
}

// ActivitySortKeys are the sort keys accepted by the activity log
var ActivitySortKeys = []string{"timestamp", "event_name", "entity_type"}

type ActivityFilter struct {
	*QueryFilter

	EntityType string `form:"entity_type" json:"entity_type,omitempty"`
	EntityID   string `form:"entity_id" json:"entity_id,omitempty"`
	EventName  string `form:"event_name" json:"event_name,omitempty"`
}

func NewActivityFilter() *ActivityFilter {
	return &ActivityFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitActivityFilter() *ActivityFilter {
	return &ActivityFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *ActivityFilter) Validate() error {
	if f == nil {
		return nil
	}
	return validateFilter(f.QueryFilter, ActivitySortKeys, nil)
}
