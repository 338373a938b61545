package seed

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vidinfra/erpdesk/internal/service"
	"github.com/vidinfra/erpdesk/internal/suggestion"
	"github.com/vidinfra/erpdesk/internal/testutil"
	"github.com/vidinfra/erpdesk/internal/types"
)

type SeedSuite struct {
	testutil.BaseServiceTestSuite
}

func TestSeed(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}

func (s *SeedSuite) TestRunPopulatesEverythingButInvoices() {
	stores := s.GetStores()
	params := service.NewServiceParams(
		s.GetLogger(), s.GetConfig(),
		stores.InvoiceRepo, stores.ExpenseRepo, stores.DealRepo, stores.QuoteRepo, stores.ClientRepo,
		stores.AssetRepo, stores.TicketRepo, stores.EventRepo, stores.ProjectRepo, stores.TaskRepo,
		s.GetAllocator(), s.GetSuggestions(), s.GetBlob(), s.GetActivityLog(), s.GetPublisher(),
	)

	seeder := &Seeder{
		Clients:  service.NewClientService(params),
		Deals:    service.NewDealService(params),
		Quotes:   service.NewQuoteService(params),
		Expenses: service.NewExpenseService(params),
		Assets:   service.NewAssetService(params),
		Tickets:  service.NewTicketService(params),
		Events:   service.NewCompanyEventService(params),
		Projects: service.NewProjectService(params),
		Tasks:    service.NewTaskService(params),
		Logger:   s.GetLogger(),
	}
	ctx := s.GetContext()
	s.Require().NoError(seeder.Run(ctx))

	invoices, err := stores.InvoiceRepo.Count(ctx, nil)
	s.NoError(err)
	s.Zero(invoices)

	peek, seq, err := s.GetAllocator().PeekNext(ctx, s.GetNow().Year())
	s.NoError(err)
	s.Equal(1, seq, peek)

	clients, _ := stores.ClientRepo.Count(ctx, nil)
	s.Equal(4, clients)
	deals, _ := stores.DealRepo.Count(ctx, nil)
	s.Equal(4, deals)
	quotes, _ := stores.QuoteRepo.Count(ctx, nil)
	s.Equal(1, quotes)
	tasks, _ := stores.TaskRepo.Count(ctx, nil)
	s.Equal(3, tasks)

	s.Equal([]string{"Sara Ahmed", "Omar Khalil"}, s.GetSuggestions().List(suggestion.DealOwners))

	projects, err := stores.ProjectRepo.List(ctx, types.NewNoLimitProjectFilter())
	s.Require().NoError(err)
	s.Require().Len(projects, 2)
	s.Equal("33.33", projects[0].KPIs.TaskCompletionRate.StringFixed(2))
}
