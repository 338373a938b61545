package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/suite"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/suggestion"
	"github.com/vidinfra/erpdesk/internal/testutil"
	"github.com/vidinfra/erpdesk/internal/types"
)

// RecordServicesSuite covers the plain record keeping modules
type RecordServicesSuite struct {
	testutil.BaseServiceTestSuite
	deals   DealService
	quotes  QuoteService
	tickets TicketService
	assets  AssetService
	clients ClientService
	events  CompanyEventService
	tasks   TaskService
}

func TestRecordServices(t *testing.T) {
	suite.Run(t, new(RecordServicesSuite))
}

func (s *RecordServicesSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := testServiceParams(&s.BaseServiceTestSuite)
	s.deals = NewDealService(params)
	s.quotes = NewQuoteService(params)
	s.tickets = NewTicketService(params)
	s.assets = NewAssetService(params)
	s.clients = NewClientService(params)
	s.events = NewCompanyEventService(params)
	s.tasks = NewTaskService(params)
}

func (s *RecordServicesSuite) createDeal(title, company, owner string, value int64, probability int) *dto.DealResponse {
	d, err := s.deals.CreateDeal(s.GetContext(), dto.CreateDealRequest{
		Title:       title,
		Company:     company,
		Owner:       owner,
		Value:       decimal.NewFromInt(value),
		Probability: probability,
	})
	s.Require().NoError(err)
	return d
}

func (s *RecordServicesSuite) TestCreateDeal() {
	d := s.createDeal("ERP rollout", "Globex", "Sara", 40000, 25)

	s.Equal(types.DealStageLead, d.Stage)
	s.True(decimal.NewFromInt(10000).Equal(d.WeightedValue))
	s.Equal([]string{"Sara"}, s.GetSuggestions().List(suggestion.DealOwners))
	s.Equal([]string{"Globex"}, s.GetSuggestions().List(suggestion.DealCompanies))
}

func (s *RecordServicesSuite) TestGetDeals_ProbabilityThreshold() {
	s.createDeal("a", "Globex", "Sara", 1000, 20)
	s.createDeal("b", "Initech", "Omar", 2000, 60)
	s.createDeal("c", "Umbrella", "Sara", 3000, 90)

	threshold := 60.0
	filter := types.NewDealFilter()
	filter.MinProbability = &threshold
	filter.Owner = "Sara"

	resp, err := s.deals.GetDeals(s.GetContext(), filter)
	s.Require().NoError(err)
	s.Require().Len(resp.Items, 1)
	s.Equal("c", resp.Items[0].Title)
}

func (s *RecordServicesSuite) TestDeleteDeal_KeepsQuotes() {
	d := s.createDeal("Renewal", "Globex", "Sara", 5000, 50)

	q, err := s.quotes.CreateQuote(s.GetContext(), dto.CreateQuoteRequest{
		DealID:     d.ID,
		ClientName: "Globex",
		Amount:     decimal.NewFromInt(5000),
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(q.Number, types.SHORT_ID_PREFIX_QUOTE))
	s.Equal(types.QuoteStatusDraft, q.Status)

	s.Require().NoError(s.deals.DeleteDeal(s.GetContext(), d.ID))

	kept, err := s.quotes.GetQuote(s.GetContext(), q.ID)
	s.Require().NoError(err)
	s.Equal(d.ID, kept.DealID)

	err = s.deals.DeleteDeal(s.GetContext(), d.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *RecordServicesSuite) TestTicketComments() {
	t, err := s.tickets.CreateTicket(s.GetContext(), dto.CreateTicketRequest{
		Subject:     "VPN drops",
		Description: "Connection resets every hour",
		Requester:   "omar",
	})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(t.Number, types.SHORT_ID_PREFIX_TICKET))
	s.Equal(types.TicketPriorityMedium, t.Priority)
	s.Equal(types.TicketStatusOpen, t.Status)
	s.Empty(t.Comments)

	updated, err := s.tickets.AddComment(s.GetContext(), t.ID, dto.AddCommentRequest{Body: "Looking into it"})
	s.Require().NoError(err)
	s.Require().Len(updated.Comments, 1)
	s.Equal(types.DefaultUserID, updated.Comments[0].Author)

	updated, err = s.tickets.AddComment(s.GetContext(), t.ID, dto.AddCommentRequest{Author: "omar", Body: "Thanks"})
	s.Require().NoError(err)
	s.Len(updated.Comments, 2)
	s.Equal("Thanks", updated.Comments[1].Body)

	_, err = s.tickets.AddComment(s.GetContext(), t.ID, dto.AddCommentRequest{})
	s.True(ierr.IsValidation(err))

	_, err = s.tickets.AddComment(s.GetContext(), "missing", dto.AddCommentRequest{Body: "x"})
	s.True(ierr.IsNotFound(err))

	s.Contains(s.GetPublisher().EventNames(), types.EventTicketCommented)
}

func (s *RecordServicesSuite) TestTicketComments_Concurrent() {
	t, err := s.tickets.CreateTicket(s.GetContext(), dto.CreateTicketRequest{
		Subject:     "Printer offline",
		Description: "Second floor printer does not respond",
		Requester:   "sara",
	})
	s.Require().NoError(err)

	const comments = 40
	wp := pool.New().WithErrors().WithMaxGoroutines(8)
	for i := 0; i < comments; i++ {
		wp.Go(func() error {
			_, err := s.tickets.AddComment(s.GetContext(), t.ID, dto.AddCommentRequest{Body: "ping"})
			return err
		})
	}
	s.Require().NoError(wp.Wait())

	stored, err := s.tickets.GetTicket(s.GetContext(), t.ID)
	s.Require().NoError(err)
	s.Len(stored.Comments, comments)
}

func (s *RecordServicesSuite) TestCreateAsset_CurrentValueIsPurchaseCost() {
	a, err := s.assets.CreateAsset(s.GetContext(), dto.CreateAssetRequest{
		Name:         "Forklift",
		Category:     "Machinery",
		PurchaseDate: s.GetNow(),
		PurchaseCost: decimal.NewFromInt(18500),
	})
	s.Require().NoError(err)
	s.True(a.PurchaseCost.Equal(a.CurrentValue))
	s.True(strings.HasPrefix(a.AssetTag, types.SHORT_ID_PREFIX_ASSET_TAG))
	s.Equal(types.AssetStatusActive, a.Status)
}

func (s *RecordServicesSuite) TestClientLifecycle() {
	c, err := s.clients.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:  "Layla Hassan",
		Email: "layla@globex.example",
	})
	s.Require().NoError(err)
	s.Equal(types.ClientStatusActive, c.Status)

	status := types.ClientStatusInactive
	updated, err := s.clients.UpdateClient(s.GetContext(), c.ID, dto.UpdateClientRequest{Status: &status})
	s.Require().NoError(err)
	s.Equal(types.ClientStatusInactive, updated.Status)
	s.Equal("Layla Hassan", updated.Name)

	_, err = s.clients.UpdateClient(s.GetContext(), "missing", dto.UpdateClientRequest{Status: &status})
	s.True(ierr.IsNotFound(err))

	s.Equal([]string{"client.created", "client.updated"}, s.GetPublisher().EventNames())
}

func (s *RecordServicesSuite) TestCreateCompanyEvent_Defaults() {
	e, err := s.events.CreateCompanyEvent(s.GetContext(), dto.CreateCompanyEventRequest{
		Title:     "Quarterly review",
		StartDate: s.GetNow().AddDate(0, 0, 7),
	})
	s.Require().NoError(err)
	s.Equal(types.CompanyEventTypeOther, e.Type)
	s.Equal(types.CompanyEventStatusScheduled, e.Status)
	s.True(e.IsUpcoming(s.GetNow()))
}

func (s *RecordServicesSuite) TestTasksByProject() {
	for _, pid := range []string{"proj_a", "proj_a", "proj_b"} {
		_, err := s.tasks.CreateTask(s.GetContext(), dto.CreateTaskRequest{ProjectID: pid, Title: "task"})
		s.Require().NoError(err)
	}

	filter := types.NewTaskFilter()
	filter.ProjectID = "proj_a"
	resp, err := s.tasks.GetTasks(s.GetContext(), filter)
	s.Require().NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(types.TaskStatusTodo, resp.Items[0].Status)

	_, err = s.tasks.CreateTask(s.GetContext(), dto.CreateTaskRequest{Title: "orphan"})
	s.True(ierr.IsValidation(err))
}
