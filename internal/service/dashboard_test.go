package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/testutil"
	"github.com/vidinfra/erpdesk/internal/types"
)

type DashboardServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  DashboardService
	invoices InvoiceService
	expenses ExpenseService
	deals    DealService
	tickets  TicketService
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := testServiceParams(&s.BaseServiceTestSuite)
	s.service = NewDashboardService(params)
	s.invoices = NewInvoiceService(params)
	s.expenses = NewExpenseService(params)
	s.deals = NewDealService(params)
	s.tickets = NewTicketService(params)
}

func (s *DashboardServiceSuite) invoice(issued time.Time, amount int64, status types.InvoiceStatus) {
	_, err := s.invoices.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		ClientName: "Globex",
		IssueDate:  issued,
		DueDate:    issued.AddDate(0, 0, 30),
		Items: []dto.LineItemRequest{
			{Description: "Services", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(amount)},
		},
		Status: status,
	})
	s.Require().NoError(err)
}

func pointValue(points []projector.Point, name string) decimal.Decimal {
	for _, p := range points {
		if p.Name == name {
			return p.Value
		}
	}
	return decimal.Zero
}

func (s *DashboardServiceSuite) TestGetDashboard() {
	s.invoice(time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC), 1000, types.InvoiceStatusPaid)
	s.invoice(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 2000, types.InvoiceStatusPaid)
	s.invoice(time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), 500, types.InvoiceStatusPaid)
	s.invoice(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 400, types.InvoiceStatusSent)

	for _, amount := range []int64{100, 300} {
		_, err := s.expenses.CreateExpense(s.GetContext(), dto.CreateExpenseRequest{
			Date:     s.GetNow(),
			Vendor:   "Staples",
			Category: "Supplies",
			Amount:   decimal.NewFromInt(amount),
		})
		s.Require().NoError(err)
	}

	_, err := s.deals.CreateDeal(s.GetContext(), dto.CreateDealRequest{
		Title: "open", Company: "Initech", Owner: "sara", Value: decimal.NewFromInt(10000), Probability: 50,
	})
	s.Require().NoError(err)
	_, err = s.deals.CreateDeal(s.GetContext(), dto.CreateDealRequest{
		Title: "won", Company: "Initech", Owner: "sara", Value: decimal.NewFromInt(8000), Probability: 100, Stage: types.DealStageWon,
	})
	s.Require().NoError(err)

	_, err = s.tickets.CreateTicket(s.GetContext(), dto.CreateTicketRequest{Subject: "s", Description: "d", Requester: "r"})
	s.Require().NoError(err)

	resp, err := s.service.GetDashboard(s.GetContext(), 0)
	s.Require().NoError(err)
	s.Equal(2024, resp.Year)

	// paid totals include 5% VAT
	s.True(decimal.NewFromInt(3675).Equal(resp.Summary.Revenue), "got %s", resp.Summary.Revenue)
	s.True(decimal.NewFromInt(420).Equal(resp.Summary.Outstanding))
	// the sent invoice was due in May
	s.Equal(1, resp.Summary.OverdueInvoices)
	s.True(decimal.NewFromInt(400).Equal(resp.Summary.Expenses))
	s.True(decimal.NewFromInt(20).Equal(resp.Summary.VATPaid))
	s.True(decimal.NewFromInt(5000).Equal(resp.Summary.PipelineValue))
	s.Equal(1, resp.Summary.OpenTickets)

	s.Len(resp.Charts.MonthlyRevenue, 12)
	s.Equal("Jan", resp.Charts.MonthlyRevenue[0].Name)
	s.True(decimal.NewFromInt(1050).Equal(pointValue(resp.Charts.MonthlyRevenue, "Feb")))
	s.True(decimal.NewFromInt(2100).Equal(pointValue(resp.Charts.MonthlyRevenue, "Jun")))
	s.True(pointValue(resp.Charts.MonthlyRevenue, "Apr").IsZero())

	s.Len(resp.Charts.InvoicesByStatus, len(types.InvoiceStatuses))
	s.Equal("draft", resp.Charts.InvoicesByStatus[0].Name)
	s.True(decimal.NewFromInt(400).Equal(pointValue(resp.Charts.ExpensesByCategory, "Supplies")))
	s.True(decimal.NewFromInt(8000).Equal(pointValue(resp.Charts.DealsByStage, "won")))
	s.True(decimal.NewFromInt(1).Equal(pointValue(resp.Charts.TicketsByStatus, "open")))
}

func (s *DashboardServiceSuite) TestGetDashboard_PastYear() {
	s.invoice(time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), 500, types.InvoiceStatusPaid)

	resp, err := s.service.GetDashboard(s.GetContext(), 2023)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(525).Equal(pointValue(resp.Charts.MonthlyRevenue, "Jun")))

	_, err = s.service.GetDashboard(s.GetContext(), -4)
	s.True(ierr.IsValidation(err))
}

func (s *DashboardServiceSuite) TestGetDashboard_Empty() {
	resp, err := s.service.GetDashboard(s.GetContext(), 0)
	s.Require().NoError(err)
	s.True(resp.Summary.Revenue.IsZero())
	s.Len(resp.Charts.MonthlyRevenue, 12)
	s.Empty(resp.Charts.ExpensesByCategory)
}
