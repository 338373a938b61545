package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/suggestion"
	"github.com/vidinfra/erpdesk/internal/testutil"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ExpenseServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ExpenseService
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

func (s *ExpenseServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewExpenseService(testServiceParams(&s.BaseServiceTestSuite))
}

func (s *ExpenseServiceSuite) newRequest(vendor, category string, amount decimal.Decimal) dto.CreateExpenseRequest {
	return dto.CreateExpenseRequest{
		Date:     s.GetNow(),
		Vendor:   vendor,
		Category: category,
		Amount:   amount,
	}
}

func (s *ExpenseServiceSuite) TestCreateExpense() {
	e, err := s.service.CreateExpense(s.GetContext(), s.newRequest("Office Depot", "Supplies", decimal.NewFromFloat(123.45)))
	s.Require().NoError(err)

	s.True(strings.HasPrefix(e.ID, "EXP-"))
	s.True(decimal.NewFromFloat(6.17).Equal(e.VATAmount), "got %s", e.VATAmount)
	s.Equal(types.ExpenseStatusPending, e.Status)
	s.Equal(types.DefaultUserID, e.SubmittedBy)
}

func (s *ExpenseServiceSuite) TestCreateExpense_MissingFields() {
	_, err := s.service.CreateExpense(s.GetContext(), s.newRequest("", "Supplies", decimal.NewFromInt(10)))
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateExpense(s.GetContext(), s.newRequest("Vendor", "Supplies", decimal.Zero))
	s.True(ierr.IsValidation(err))
}

func (s *ExpenseServiceSuite) TestUpdateExpense_KeepsVAT() {
	e, err := s.service.CreateExpense(s.GetContext(), s.newRequest("Office Depot", "Supplies", decimal.NewFromInt(100)))
	s.Require().NoError(err)

	amount := decimal.NewFromInt(400)
	updated, err := s.service.UpdateExpense(s.GetContext(), e.ID, dto.UpdateExpenseRequest{Amount: &amount})
	s.Require().NoError(err)
	s.True(amount.Equal(updated.Amount))
	s.True(decimal.NewFromInt(5).Equal(updated.VATAmount))
}

func (s *ExpenseServiceSuite) TestSuggestions() {
	for _, vendor := range []string{"Office Depot", "Office Depot", "office depot", "Staples"} {
		_, err := s.service.CreateExpense(s.GetContext(), s.newRequest(vendor, "Supplies", decimal.NewFromInt(10)))
		s.Require().NoError(err)
	}

	s.Equal([]string{"Office Depot", "office depot", "Staples"}, s.GetSuggestions().List(suggestion.ExpenseVendors))
	s.Equal([]string{"Supplies"}, s.GetSuggestions().List(suggestion.ExpenseCategories))
}

func (s *ExpenseServiceSuite) TestGetExpenses_RangeFilter() {
	for _, amount := range []int64{50, 150, 250} {
		_, err := s.service.CreateExpense(s.GetContext(), s.newRequest("Vendor", "Travel", decimal.NewFromInt(amount)))
		s.Require().NoError(err)
	}

	minAmount, maxAmount := 100.0, 200.0
	filter := types.NewExpenseFilter()
	filter.MinAmount = &minAmount
	filter.MaxAmount = &maxAmount

	resp, err := s.service.GetExpenses(s.GetContext(), filter)
	s.Require().NoError(err)
	s.Require().Len(resp.Items, 1)
	s.True(decimal.NewFromInt(150).Equal(resp.Items[0].Amount))
	s.Equal(1, resp.Pagination.Total)
}
