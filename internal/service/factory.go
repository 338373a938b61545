package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/activity"
	"github.com/vidinfra/erpdesk/internal/blob"
	"github.com/vidinfra/erpdesk/internal/config"
	"github.com/vidinfra/erpdesk/internal/domain/asset"
	"github.com/vidinfra/erpdesk/internal/domain/client"
	"github.com/vidinfra/erpdesk/internal/domain/deal"
	"github.com/vidinfra/erpdesk/internal/domain/event"
	"github.com/vidinfra/erpdesk/internal/domain/expense"
	"github.com/vidinfra/erpdesk/internal/domain/invoice"
	"github.com/vidinfra/erpdesk/internal/domain/project"
	"github.com/vidinfra/erpdesk/internal/domain/quote"
	"github.com/vidinfra/erpdesk/internal/domain/task"
	"github.com/vidinfra/erpdesk/internal/domain/ticket"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/publisher"
	"github.com/vidinfra/erpdesk/internal/sequence"
	"github.com/vidinfra/erpdesk/internal/suggestion"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	InvoiceRepo invoice.Repository
	ExpenseRepo expense.Repository
	DealRepo    deal.Repository
	QuoteRepo   quote.Repository
	ClientRepo  client.Repository
	AssetRepo   asset.Repository
	TicketRepo  ticket.Repository
	EventRepo   event.Repository
	ProjectRepo project.Repository
	TaskRepo    task.Repository

	Allocator   *sequence.Allocator
	Suggestions *suggestion.Store
	Blob        blob.Store
	ActivityLog *activity.Log

	// Publishers
	EventPublisher publisher.EventPublisher
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	invoiceRepo invoice.Repository,
	expenseRepo expense.Repository,
	dealRepo deal.Repository,
	quoteRepo quote.Repository,
	clientRepo client.Repository,
	assetRepo asset.Repository,
	ticketRepo ticket.Repository,
	eventRepo event.Repository,
	projectRepo project.Repository,
	taskRepo task.Repository,
	allocator *sequence.Allocator,
	suggestions *suggestion.Store,
	blobStore blob.Store,
	activityLog *activity.Log,
	eventPublisher publisher.EventPublisher,
) ServiceParams {
	return ServiceParams{
		Logger:         logger,
		Config:         config,
		InvoiceRepo:    invoiceRepo,
		ExpenseRepo:    expenseRepo,
		DealRepo:       dealRepo,
		QuoteRepo:      quoteRepo,
		ClientRepo:     clientRepo,
		AssetRepo:      assetRepo,
		TicketRepo:     ticketRepo,
		EventRepo:      eventRepo,
		ProjectRepo:    projectRepo,
		TaskRepo:       taskRepo,
		Allocator:      allocator,
		Suggestions:    suggestions,
		Blob:           blobStore,
		ActivityLog:    activityLog,
		EventPublisher: eventPublisher,
	}
}

// publishEvent records an entity change on the domain events topic. Failures
// are logged; the change itself has already been applied.
func (p ServiceParams) publishEvent(ctx context.Context, eventName, entityType, entityID string, payload any) {
	if p.EventPublisher == nil {
		return
	}

	ev, err := publisher.NewEvent(ctx, eventName, entityType, entityID, payload)
	if err == nil {
		err = p.EventPublisher.Publish(ctx, ev)
	}
	if err != nil {
		p.Logger.Errorw("failed to publish domain event",
			"event_name", eventName,
			"entity_id", entityID,
			"error", err,
		)
	}
}

func requireID(kind, id string) error {
	if id == "" {
		return ierr.NewErrorf("%s ID is required", kind).
			WithHintf("%s ID is required", kind).
			Mark(ierr.ErrValidation)
	}
	return nil
}
