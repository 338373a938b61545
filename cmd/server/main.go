package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vidinfra/erpdesk/internal/activity"
	"github.com/vidinfra/erpdesk/internal/api"
	v1 "github.com/vidinfra/erpdesk/internal/api/v1"
	"github.com/vidinfra/erpdesk/internal/blob"
	"github.com/vidinfra/erpdesk/internal/config"
	"github.com/vidinfra/erpdesk/internal/kvstore"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/publisher"
	"github.com/vidinfra/erpdesk/internal/pyroscope"
	"github.com/vidinfra/erpdesk/internal/pubsub/memory"
	pubsubRouter "github.com/vidinfra/erpdesk/internal/pubsub/router"
	"github.com/vidinfra/erpdesk/internal/repository"
	"github.com/vidinfra/erpdesk/internal/seed"
	"github.com/vidinfra/erpdesk/internal/sentry"
	"github.com/vidinfra/erpdesk/internal/sequence"
	"github.com/vidinfra/erpdesk/internal/service"
	"github.com/vidinfra/erpdesk/internal/suggestion"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Initialize Fx application
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,
			pyroscope.NewPyroscopeService,

			// Storage
			provideKVStore,
			blob.NewStore,
			sequence.NewAllocator,
			suggestion.NewStore,

			// Events
			memory.NewPubSub,
			publisher.NewEventPublisher,
			pubsubRouter.NewRouter,
			activity.NewLog,
			activity.NewConsumer,

			// Repositories
			repository.NewInvoiceRepository,
			repository.NewExpenseRepository,
			repository.NewDealRepository,
			repository.NewQuoteRepository,
			repository.NewClientRepository,
			repository.NewAssetRepository,
			repository.NewTicketRepository,
			repository.NewCompanyEventRepository,
			repository.NewProjectRepository,
			repository.NewTaskRepository,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			pyroscope.RegisterHooks,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewInvoiceService,
			service.NewExpenseService,
			service.NewDealService,
			service.NewQuoteService,
			service.NewClientService,
			service.NewAssetService,
			service.NewTicketService,
			service.NewCompanyEventService,
			service.NewProjectService,
			service.NewTaskService,
			service.NewDashboardService,
			service.NewSuggestionService,
			service.NewActivityService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			api.NewRouter,
			provideSeeder,
		),
		fx.Invoke(
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideKVStore(lc fx.Lifecycle, cfg *config.Configuration, log *logger.Logger) (kvstore.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := kvstore.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

func provideHandlers(
	logger *logger.Logger,
	kv kvstore.Store,
	invoiceService service.InvoiceService,
	expenseService service.ExpenseService,
	dealService service.DealService,
	quoteService service.QuoteService,
	clientService service.ClientService,
	assetService service.AssetService,
	ticketService service.TicketService,
	eventService service.CompanyEventService,
	projectService service.ProjectService,
	taskService service.TaskService,
	dashboardService service.DashboardService,
	suggestionService service.SuggestionService,
	activityService service.ActivityService,
) api.Handlers {
	return api.Handlers{
		Health:     v1.NewHealthHandler(kv, logger),
		Invoice:    v1.NewInvoiceHandler(invoiceService, logger),
		Expense:    v1.NewExpenseHandler(expenseService, logger),
		Deal:       v1.NewDealHandler(dealService, logger),
		Quote:      v1.NewQuoteHandler(quoteService, logger),
		Client:     v1.NewClientHandler(clientService, logger),
		Asset:      v1.NewAssetHandler(assetService, logger),
		Ticket:     v1.NewTicketHandler(ticketService, logger),
		Event:      v1.NewEventHandler(eventService, logger),
		Project:    v1.NewProjectHandler(projectService, logger),
		Task:       v1.NewTaskHandler(taskService, logger),
		Dashboard:  v1.NewDashboardHandler(dashboardService, logger),
		Suggestion: v1.NewSuggestionHandler(suggestionService, logger),
		Activity:   v1.NewActivityHandler(activityService, logger),
	}
}

func provideSeeder(
	logger *logger.Logger,
	clientService service.ClientService,
	dealService service.DealService,
	quoteService service.QuoteService,
	expenseService service.ExpenseService,
	assetService service.AssetService,
	ticketService service.TicketService,
	eventService service.CompanyEventService,
	projectService service.ProjectService,
	taskService service.TaskService,
) *seed.Seeder {
	return &seed.Seeder{
		Clients:  clientService,
		Deals:    dealService,
		Quotes:   quoteService,
		Expenses: expenseService,
		Assets:   assetService,
		Tickets:  ticketService,
		Events:   eventService,
		Projects: projectService,
		Tasks:    taskService,
		Logger:   logger,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	router *pubsubRouter.Router,
	consumer *activity.Consumer,
	eventPublisher publisher.EventPublisher,
	seeder *seed.Seeder,
	sentryService *sentry.Service,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startMessageRouter(lc, router, consumer, eventPublisher, log)
		startAPIServer(lc, r, cfg, log)
		if cfg.Seed.Enabled {
			startSeeder(lc, seeder, sentryService, log)
		}
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}

func startMessageRouter(
	lc fx.Lifecycle,
	router *pubsubRouter.Router,
	consumer *activity.Consumer,
	eventPublisher publisher.EventPublisher,
	logger *logger.Logger,
) {
	// Register handlers before starting the router
	consumer.RegisterHandler(router)

	runCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting message router")
			go func() {
				if err := router.Run(runCtx); err != nil {
					logger.Errorw("message router failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping message router")
			cancel()
			if err := router.Close(); err != nil {
				return err
			}
			return eventPublisher.Close()
		},
	})
}

func startSeeder(lc fx.Lifecycle, seeder *seed.Seeder, sentryService *sentry.Service, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx = types.SetUserID(ctx, types.DefaultUserID)
			if err := seeder.Run(ctx); err != nil {
				log.Errorw("failed to seed mock data", "error", err)
				sentryService.CaptureException(ctx, err)
			}
			return nil
		},
	})
}
