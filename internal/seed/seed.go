// Package seed loads a small set of mock records so a fresh portal has
// something to show. Records are created through the services, so they get
// ids, defaults, suggestions and activity like any other write. Invoices are
// not seeded; numbering starts clean.
package seed

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/service"
	"github.com/vidinfra/erpdesk/internal/types"
)

type Seeder struct {
	Clients  service.ClientService
	Deals    service.DealService
	Quotes   service.QuoteService
	Expenses service.ExpenseService
	Assets   service.AssetService
	Tickets  service.TicketService
	Events   service.CompanyEventService
	Projects service.ProjectService
	Tasks    service.TaskService
	Logger   *logger.Logger
}

// Run creates the mock data. It stops at the first failed write.
func (s *Seeder) Run(ctx context.Context) error {
	now := types.Now(ctx)
	day := func(offset int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	steps := []struct {
		name string
		fn   func(context.Context, func(int) time.Time) (int, error)
	}{
		{"clients", s.seedClients},
		{"deals", s.seedDeals},
		{"expenses", s.seedExpenses},
		{"assets", s.seedAssets},
		{"tickets", s.seedTickets},
		{"events", s.seedEvents},
		{"projects", s.seedProjects},
	}

	for _, step := range steps {
		n, err := step.fn(ctx, day)
		if err != nil {
			return ierr.WithError(err).
				WithHintf("Failed to seed %s", step.name).
				Mark(ierr.ErrSystem)
		}
		s.Logger.Infow("seeded mock data", "collection", step.name, "count", n)
	}
	return nil
}

func amount(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func (s *Seeder) seedClients(ctx context.Context, _ func(int) time.Time) (int, error) {
	reqs := []dto.CreateClientRequest{
		{Name: "Layla Haddad", Company: "Gulf Logistics", Email: "layla@gulflogistics.example", Phone: "+971 4 555 0101", Industry: "Logistics", Address: "Dubai", Status: types.ClientStatusActive, TotalRevenue: amount(84000)},
		{Name: "Tom Becker", Company: "Nordwind GmbH", Email: "t.becker@nordwind.example", Industry: "Manufacturing", Address: "Hamburg", Status: types.ClientStatusActive, TotalRevenue: amount(51250)},
		{Name: "Priya Nair", Company: "Coral Health", Email: "priya@coralhealth.example", Industry: "Healthcare", Status: types.ClientStatusProspect},
		{Name: "Marco Ruiz", Company: "Ruiz & Hijos", Email: "marco@ruiz.example", Industry: "Retail", Status: types.ClientStatusInactive, TotalRevenue: amount(9800)},
	}
	for _, req := range reqs {
		if _, err := s.Clients.CreateClient(ctx, req); err != nil {
			return 0, err
		}
	}
	return len(reqs), nil
}

func (s *Seeder) seedDeals(ctx context.Context, day func(int) time.Time) (int, error) {
	reqs := []dto.CreateDealRequest{
		{Title: "Fleet tracking rollout", Company: "Gulf Logistics", ContactName: "Layla Haddad", Value: amount(120000), Probability: 60, Stage: types.DealStageProposal, Owner: "Sara Ahmed", ExpectedClose: lo.ToPtr(day(30))},
		{Title: "Plant maintenance contract", Company: "Nordwind GmbH", ContactName: "Tom Becker", Value: amount(45000), Probability: 80, Stage: types.DealStageNegotiation, Owner: "Omar Khalil", ExpectedClose: lo.ToPtr(day(14))},
		{Title: "Clinic scheduling pilot", Company: "Coral Health", ContactName: "Priya Nair", Value: amount(18000), Probability: 20, Stage: types.DealStageLead, Owner: "Sara Ahmed"},
		{Title: "POS upgrade", Company: "Ruiz & Hijos", Value: amount(7500), Probability: 100, Stage: types.DealStageWon, Owner: "Omar Khalil", ExpectedClose: lo.ToPtr(day(-20))},
	}

	var first string
	for i, req := range reqs {
		d, err := s.Deals.CreateDeal(ctx, req)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			first = d.ID
		}
	}

	_, err := s.Quotes.CreateQuote(ctx, dto.CreateQuoteRequest{
		DealID:      first,
		ClientName:  "Gulf Logistics",
		Description: "Phase one: 40 vehicles",
		Amount:      amount(48000),
		Status:      types.QuoteStatusSent,
		ValidUntil:  lo.ToPtr(day(21)),
	})
	if err != nil {
		return 0, err
	}
	return len(reqs), nil
}

func (s *Seeder) seedExpenses(ctx context.Context, day func(int) time.Time) (int, error) {
	reqs := []dto.CreateExpenseRequest{
		{Date: day(-40), Vendor: "Emirates", Category: "Travel", Description: "Client visit, Hamburg", Amount: amount(2350), PaymentMethod: "corporate card", SubmittedBy: "Omar Khalil", Status: types.ExpenseStatusReimbursed},
		{Date: day(-12), Vendor: "Office Depot", Category: "Supplies", Amount: amount(310), PaymentMethod: "cash", SubmittedBy: "Sara Ahmed", Status: types.ExpenseStatusApproved},
		{Date: day(-3), Vendor: "AWS", Category: "Software", Description: "Monthly hosting", Amount: amount(1280), PaymentMethod: "bank transfer", SubmittedBy: "IT", Status: types.ExpenseStatusPending},
	}
	for _, req := range reqs {
		if _, err := s.Expenses.CreateExpense(ctx, req); err != nil {
			return 0, err
		}
	}
	return len(reqs), nil
}

func (s *Seeder) seedAssets(ctx context.Context, day func(int) time.Time) (int, error) {
	reqs := []dto.CreateAssetRequest{
		{Name: "Dell Latitude 7440", Category: "IT Equipment", SerialNumber: "DL7440-0192", PurchaseDate: day(-400), PurchaseCost: amount(5200), Location: "HQ", AssignedTo: "Sara Ahmed", Status: types.AssetStatusActive},
		{Name: "Toyota Hilux", Category: "Vehicles", SerialNumber: "HLX-22-771", PurchaseDate: day(-900), PurchaseCost: amount(98000), Location: "Warehouse", Status: types.AssetStatusInMaintenance},
		{Name: "Canon iR-ADV", Category: "Office Equipment", PurchaseDate: day(-2000), PurchaseCost: amount(14000), Location: "HQ", Status: types.AssetStatusDisposed},
	}
	for _, req := range reqs {
		if _, err := s.Assets.CreateAsset(ctx, req); err != nil {
			return 0, err
		}
	}
	return len(reqs), nil
}

func (s *Seeder) seedTickets(ctx context.Context, _ func(int) time.Time) (int, error) {
	reqs := []dto.CreateTicketRequest{
		{Subject: "VPN drops every hour", Description: "Remote staff lose the tunnel after ~60 minutes", Requester: "Omar Khalil", Assignee: "IT", Category: "Network", Priority: types.TicketPriorityHigh, Status: types.TicketStatusOpen},
		{Subject: "New hire laptop", Description: "Provision a laptop for the new accountant", Requester: "HR", Category: "Hardware", Priority: types.TicketPriorityMedium, Status: types.TicketStatusInProgress},
		{Subject: "Printer toner", Description: "Second floor printer out of toner", Requester: "Sara Ahmed", Category: "Hardware", Priority: types.TicketPriorityLow, Status: types.TicketStatusResolved},
	}
	for _, req := range reqs {
		if _, err := s.Tickets.CreateTicket(ctx, req); err != nil {
			return 0, err
		}
	}
	return len(reqs), nil
}

func (s *Seeder) seedEvents(ctx context.Context, day func(int) time.Time) (int, error) {
	reqs := []dto.CreateCompanyEventRequest{
		{Title: "Quarterly all-hands", Type: types.CompanyEventTypeMeeting, StartDate: day(7), Location: "Main hall", Organizer: "CEO Office", Attendees: []string{"All staff"}},
		{Title: "Excel for finance", Type: types.CompanyEventTypeTraining, StartDate: day(12), EndDate: lo.ToPtr(day(13)), Location: "Room 2", Organizer: "Finance"},
		{Title: "Team iftar", Type: types.CompanyEventTypeSocial, StartDate: day(-10), Status: types.CompanyEventStatusCompleted},
	}
	for _, req := range reqs {
		if _, err := s.Events.CreateCompanyEvent(ctx, req); err != nil {
			return 0, err
		}
	}
	return len(reqs), nil
}

func (s *Seeder) seedProjects(ctx context.Context, day func(int) time.Time) (int, error) {
	p, err := s.Projects.CreateProject(ctx, dto.CreateProjectRequest{
		Name:        "Fleet tracking",
		Description: "GPS tracking for the Gulf Logistics fleet",
		Client:      "Gulf Logistics",
		Manager:     "Sara Ahmed",
		Status:      types.ProjectStatusActive,
		StartDate:   day(-60),
		EndDate:     day(60),
		Budget:      amount(80000),
		Spent:       amount(36000),
		Progress:    45,
		Team:        []string{"Sara Ahmed", "Omar Khalil", "IT"},
	})
	if err != nil {
		return 0, err
	}

	if _, err := s.Projects.CreateProject(ctx, dto.CreateProjectRequest{
		Name:      "ERP migration",
		Client:    "Internal",
		Manager:   "Omar Khalil",
		Status:    types.ProjectStatusPlanning,
		StartDate: day(10),
		EndDate:   day(190),
		Budget:    amount(150000),
	}); err != nil {
		return 0, err
	}

	tasks := []dto.CreateTaskRequest{
		{Title: "Hardware procurement", Assignee: "IT", Status: types.TaskStatusDone, Priority: types.TicketPriorityHigh, EstimatedHours: amount(16)},
		{Title: "Driver app beta", Assignee: "Omar Khalil", Status: types.TaskStatusInProgress, Priority: types.TicketPriorityHigh, DueDate: lo.ToPtr(day(20)), EstimatedHours: amount(80)},
		{Title: "Dispatcher training", Assignee: "Sara Ahmed", Status: types.TaskStatusTodo, Priority: types.TicketPriorityMedium, DueDate: lo.ToPtr(day(45)), EstimatedHours: amount(12)},
	}
	for _, req := range tasks {
		req.ProjectID = p.ID
		if _, err := s.Tasks.CreateTask(ctx, req); err != nil {
			return 0, err
		}
	}

	if _, err := s.Projects.RecalculateHealth(ctx, p.ID); err != nil {
		return 0, err
	}
	return 2, nil
}
