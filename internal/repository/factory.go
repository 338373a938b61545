package repository

import (
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
	"github.com/vidinfra/erpdesk/internal/logger"
	memoryRepo "github.com/vidinfra/erpdesk/internal/repository/memory"
)

func NewInvoiceRepository(logger *logger.Logger) invoice.Repository {
	return memoryRepo.NewInvoiceRepository(logger)
}

func NewExpenseRepository(logger *logger.Logger) expense.Repository {
	return memoryRepo.NewExpenseRepository(logger)
}

func NewDealRepository(logger *logger.Logger) deal.Repository {
	return memoryRepo.NewDealRepository(logger)
}

func NewQuoteRepository(logger *logger.Logger) quote.Repository {
	return memoryRepo.NewQuoteRepository(logger)
}

func NewClientRepository(logger *logger.Logger) client.Repository {
	return memoryRepo.NewClientRepository(logger)
}

func NewAssetRepository(logger *logger.Logger) asset.Repository {
	return memoryRepo.NewAssetRepository(logger)
}

func NewTicketRepository(logger *logger.Logger) ticket.Repository {
	return memoryRepo.NewTicketRepository(logger)
}

func NewCompanyEventRepository(logger *logger.Logger) event.Repository {
	return memoryRepo.NewCompanyEventRepository(logger)
}

func NewProjectRepository(logger *logger.Logger) project.Repository {
	return memoryRepo.NewProjectRepository(logger)
}

func NewTaskRepository(logger *logger.Logger) task.Repository {
	return memoryRepo.NewTaskRepository(logger)
}
