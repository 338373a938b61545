package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
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
	"github.com/vidinfra/erpdesk/internal/kvstore"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/repository"
	"github.com/vidinfra/erpdesk/internal/sequence"
	"github.com/vidinfra/erpdesk/internal/suggestion"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
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
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	stores      Stores
	publisher   *InMemoryEventPublisher
	kv          *kvstore.MemoryStore
	allocator   *sequence.Allocator
	suggestions *suggestion.Store
	blob        blob.Store
	activityLog *activity.Log
	logger      *logger.Logger
	config      *config.Configuration
	now         time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelInfo
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	s.setupContext()
	s.setupStores()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
	s.ctx = types.WithNow(s.ctx, s.now)
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		InvoiceRepo: repository.NewInvoiceRepository(s.logger),
		ExpenseRepo: repository.NewExpenseRepository(s.logger),
		DealRepo:    repository.NewDealRepository(s.logger),
		QuoteRepo:   repository.NewQuoteRepository(s.logger),
		ClientRepo:  repository.NewClientRepository(s.logger),
		AssetRepo:   repository.NewAssetRepository(s.logger),
		TicketRepo:  repository.NewTicketRepository(s.logger),
		EventRepo:   repository.NewCompanyEventRepository(s.logger),
		ProjectRepo: repository.NewProjectRepository(s.logger),
		TaskRepo:    repository.NewTaskRepository(s.logger),
	}

	s.publisher = NewInMemoryEventPublisher()
	s.kv = kvstore.NewMemoryStore()
	s.allocator = sequence.NewAllocator(s.kv, s.config, s.logger)
	s.suggestions = suggestion.NewStore()
	s.blob = blob.NewMemoryStore(s.config.Blob.PublicBaseURL)
	s.activityLog = activity.NewLog(s.logger)
}

type clearable interface {
	Clear()
}

func (s *BaseServiceTestSuite) clearStores() {
	for _, repo := range []any{
		s.stores.InvoiceRepo,
		s.stores.ExpenseRepo,
		s.stores.DealRepo,
		s.stores.QuoteRepo,
		s.stores.ClientRepo,
		s.stores.AssetRepo,
		s.stores.TicketRepo,
		s.stores.EventRepo,
		s.stores.ProjectRepo,
		s.stores.TaskRepo,
	} {
		if c, ok := repo.(clearable); ok {
			c.Clear()
		}
	}
	s.publisher.Clear()
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetNow moves the clock seen by the services
func (s *BaseServiceTestSuite) SetNow(now time.Time) {
	s.now = now
	s.ctx = types.WithNow(s.ctx, now)
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetPublisher returns the recording event publisher
func (s *BaseServiceTestSuite) GetPublisher() *InMemoryEventPublisher {
	return s.publisher
}

func (s *BaseServiceTestSuite) GetKVStore() *kvstore.MemoryStore {
	return s.kv
}

func (s *BaseServiceTestSuite) GetAllocator() *sequence.Allocator {
	return s.allocator
}

func (s *BaseServiceTestSuite) GetSuggestions() *suggestion.Store {
	return s.suggestions
}

func (s *BaseServiceTestSuite) GetBlob() blob.Store {
	return s.blob
}

func (s *BaseServiceTestSuite) GetActivityLog() *activity.Log {
	return s.activityLog
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
