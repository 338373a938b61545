package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/vidinfra/erpdesk/internal/api/v1"
	"github.com/vidinfra/erpdesk/internal/config"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/pyroscope"
	"github.com/vidinfra/erpdesk/internal/rest/middleware"
	"github.com/vidinfra/erpdesk/internal/sentry"
)

type Handlers struct {
	Health     *v1.HealthHandler
	Invoice    *v1.InvoiceHandler
	Expense    *v1.ExpenseHandler
	Deal       *v1.DealHandler
	Quote      *v1.QuoteHandler
	Client     *v1.ClientHandler
	Asset      *v1.AssetHandler
	Ticket     *v1.TicketHandler
	Event      *v1.EventHandler
	Project    *v1.ProjectHandler
	Task       *v1.TaskHandler
	Dashboard  *v1.DashboardHandler
	Suggestion *v1.SuggestionHandler
	Activity   *v1.ActivityHandler
}

func NewRouter(
	handlers Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	sentryService *sentry.Service,
	pyroscopeService *pyroscope.Service,
) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(sentryService),
		middleware.PyroscopeMiddleware(pyroscopeService),
		middleware.RequestIDMiddleware,
		middleware.UserMiddleware,
		middleware.CORSMiddleware(cfg.Server.AllowedOrigins),
		middleware.LoggingMiddleware(logger),
		middleware.ErrorHandler(logger, sentryService),
		middleware.RateLimitMiddleware(cfg.Server.RateLimit),
	)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/health", handlers.Health.Health)

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.GetInvoices)
		invoices.GET("/next-number", handlers.Invoice.PeekNextNumber)
		invoices.POST("/reservations", handlers.Invoice.ReserveNumber)
		invoices.DELETE("/reservations/:number", handlers.Invoice.ReleaseNumber)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id", handlers.Invoice.UpdateInvoice)
		invoices.DELETE("/:id", handlers.Invoice.DeleteInvoice)
	}

	expenses := router.Group("/expenses")
	{
		expenses.POST("", handlers.Expense.CreateExpense)
		expenses.GET("", handlers.Expense.GetExpenses)
		expenses.GET("/:id", handlers.Expense.GetExpense)
		expenses.PUT("/:id", handlers.Expense.UpdateExpense)
		expenses.DELETE("/:id", handlers.Expense.DeleteExpense)
	}

	deals := router.Group("/deals")
	{
		deals.POST("", handlers.Deal.CreateDeal)
		deals.GET("", handlers.Deal.GetDeals)
		deals.GET("/:id", handlers.Deal.GetDeal)
		deals.PUT("/:id", handlers.Deal.UpdateDeal)
		deals.DELETE("/:id", handlers.Deal.DeleteDeal)
	}

	quotes := router.Group("/quotes")
	{
		quotes.POST("", handlers.Quote.CreateQuote)
		quotes.GET("", handlers.Quote.GetQuotes)
		quotes.GET("/:id", handlers.Quote.GetQuote)
		quotes.PUT("/:id", handlers.Quote.UpdateQuote)
		quotes.DELETE("/:id", handlers.Quote.DeleteQuote)
	}

	clients := router.Group("/clients")
	{
		clients.POST("", handlers.Client.CreateClient)
		clients.GET("", handlers.Client.GetClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.PUT("/:id", handlers.Client.UpdateClient)
		clients.DELETE("/:id", handlers.Client.DeleteClient)
	}

	assets := router.Group("/assets")
	{
		assets.POST("", handlers.Asset.CreateAsset)
		assets.GET("", handlers.Asset.GetAssets)
		assets.GET("/:id", handlers.Asset.GetAsset)
		assets.PUT("/:id", handlers.Asset.UpdateAsset)
		assets.DELETE("/:id", handlers.Asset.DeleteAsset)
	}

	tickets := router.Group("/tickets")
	{
		tickets.POST("", handlers.Ticket.CreateTicket)
		tickets.GET("", handlers.Ticket.GetTickets)
		tickets.GET("/:id", handlers.Ticket.GetTicket)
		tickets.PUT("/:id", handlers.Ticket.UpdateTicket)
		tickets.DELETE("/:id", handlers.Ticket.DeleteTicket)
		tickets.POST("/:id/comments", handlers.Ticket.AddComment)
	}

	events := router.Group("/events")
	{
		events.POST("", handlers.Event.CreateCompanyEvent)
		events.GET("", handlers.Event.GetCompanyEvents)
		events.GET("/:id", handlers.Event.GetCompanyEvent)
		events.PUT("/:id", handlers.Event.UpdateCompanyEvent)
		events.DELETE("/:id", handlers.Event.DeleteCompanyEvent)
	}

	projects := router.Group("/projects")
	{
		projects.POST("", handlers.Project.CreateProject)
		projects.GET("", handlers.Project.GetProjects)
		projects.GET("/:id", handlers.Project.GetProject)
		projects.PUT("/:id", handlers.Project.UpdateProject)
		projects.DELETE("/:id", handlers.Project.DeleteProject)
		projects.POST("/:id/health", handlers.Project.RecalculateHealth)
		projects.POST("/:id/files", handlers.Project.UploadFile)
		projects.POST("/:id/files/:file_id/revert", handlers.Project.RevertFile)
	}

	tasks := router.Group("/tasks")
	{
		tasks.POST("", handlers.Task.CreateTask)
		tasks.GET("", handlers.Task.GetTasks)
		tasks.GET("/:id", handlers.Task.GetTask)
		tasks.PUT("/:id", handlers.Task.UpdateTask)
		tasks.DELETE("/:id", handlers.Task.DeleteTask)
	}

	router.GET("/dashboard", handlers.Dashboard.GetDashboard)
	router.GET("/suggestions/:list", handlers.Suggestion.GetSuggestions)
	router.GET("/activity", handlers.Activity.GetActivity)
}
