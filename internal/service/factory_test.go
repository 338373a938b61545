package service

import (
	"github.com/vidinfra/erpdesk/internal/testutil"
)

// testServiceParams wires every service dependency from the base suite
func testServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		stores.InvoiceRepo,
		stores.ExpenseRepo,
		stores.DealRepo,
		stores.QuoteRepo,
		stores.ClientRepo,
		stores.AssetRepo,
		stores.TicketRepo,
		stores.EventRepo,
		stores.ProjectRepo,
		stores.TaskRepo,
		s.GetAllocator(),
		s.GetSuggestions(),
		s.GetBlob(),
		s.GetActivityLog(),
		s.GetPublisher(),
	)
}
