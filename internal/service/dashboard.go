package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/asset"
	"github.com/vidinfra/erpdesk/internal/domain/client"
	"github.com/vidinfra/erpdesk/internal/domain/deal"
	"github.com/vidinfra/erpdesk/internal/domain/event"
	"github.com/vidinfra/erpdesk/internal/domain/expense"
	"github.com/vidinfra/erpdesk/internal/domain/invoice"
	"github.com/vidinfra/erpdesk/internal/domain/project"
	"github.com/vidinfra/erpdesk/internal/domain/ticket"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/types"
)

type DashboardService interface {
	// GetDashboard computes the summary cards and charts. Monthly revenue
	// covers year, or the current year when year is 0.
	GetDashboard(ctx context.Context, year int) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{
		ServiceParams: params,
	}
}

// snapshot is every collection the dashboard reads, loaded once per request
type snapshot struct {
	invoices []*invoice.Invoice
	expenses []*expense.Expense
	deals    []*deal.Deal
	clients  []*client.Client
	assets   []*asset.FixedAsset
	tickets  []*ticket.Ticket
	events   []*event.CompanyEvent
	projects []*project.Project
}

func (s *dashboardService) GetDashboard(ctx context.Context, year int) (*dto.DashboardResponse, error) {
	now := types.Now(ctx)
	if year == 0 {
		year = now.Year()
	}
	if year < 1 || year > 9999 {
		return nil, ierr.NewErrorf("invalid year %d", year).
			WithHint("Please provide a valid calendar year").
			Mark(ierr.ErrValidation)
	}

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Year:    year,
		Summary: summarize(snap, now),
		Charts:  chart(snap, year),
	}, nil
}

func (s *dashboardService) load(ctx context.Context) (*snapshot, error) {
	snap := &snapshot{}
	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) (err error) {
		snap.invoices, err = s.InvoiceRepo.List(ctx, types.NewNoLimitInvoiceFilter())
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		snap.expenses, err = s.ExpenseRepo.List(ctx, types.NewNoLimitExpenseFilter())
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		snap.deals, err = s.DealRepo.List(ctx, types.NewNoLimitDealFilter())
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		snap.clients, err = s.ClientRepo.List(ctx, types.NewNoLimitClientFilter())
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		snap.assets, err = s.AssetRepo.List(ctx, types.NewNoLimitAssetFilter())
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		snap.tickets, err = s.TicketRepo.List(ctx, types.NewNoLimitTicketFilter())
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		snap.events, err = s.EventRepo.List(ctx, types.NewNoLimitCompanyEventFilter())
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		snap.projects, err = s.ProjectRepo.List(ctx, types.NewNoLimitProjectFilter())
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load dashboard data").
			Mark(ierr.ErrSystem)
	}
	return snap, nil
}

func summarize(snap *snapshot, now time.Time) dto.SummaryCards {
	paid := lo.Filter(snap.invoices, func(i *invoice.Invoice, _ int) bool {
		return i.Status == types.InvoiceStatusPaid
	})
	outstanding := lo.Filter(snap.invoices, func(i *invoice.Invoice, _ int) bool {
		return i.Status.IsOutstanding()
	})
	openDeals := lo.Filter(snap.deals, func(d *deal.Deal, _ int) bool {
		return d.Stage.IsOpen()
	})
	heldAssets := lo.Filter(snap.assets, func(a *asset.FixedAsset, _ int) bool {
		return a.Status != types.AssetStatusDisposed
	})

	return dto.SummaryCards{
		Revenue:     projector.Sum(paid, invoiceTotal),
		Outstanding: projector.Sum(outstanding, invoiceTotal),
		OverdueInvoices: lo.CountBy(snap.invoices, func(i *invoice.Invoice) bool {
			return i.Status == types.InvoiceStatusOverdue || i.IsOverdue(now)
		}),
		Expenses: projector.Sum(snap.expenses, func(e *expense.Expense) decimal.Decimal { return e.Amount }),
		VATPaid:  projector.Sum(snap.expenses, func(e *expense.Expense) decimal.Decimal { return e.VATAmount }),
		OpenTickets: lo.CountBy(snap.tickets, func(t *ticket.Ticket) bool {
			return t.Status.IsOpen()
		}),
		ActiveProjects: lo.CountBy(snap.projects, func(p *project.Project) bool {
			return p.Status == types.ProjectStatusActive
		}),
		PipelineValue: projector.Sum(openDeals, (*deal.Deal).WeightedValue),
		AssetValue:    projector.Sum(heldAssets, func(a *asset.FixedAsset) decimal.Decimal { return a.CurrentValue }),
		ActiveClients: lo.CountBy(snap.clients, func(c *client.Client) bool {
			return c.Status == types.ClientStatusActive
		}),
		UpcomingEvents: lo.CountBy(snap.events, func(e *event.CompanyEvent) bool {
			return e.IsUpcoming(now)
		}),
	}
}

func chart(snap *snapshot, year int) dto.DashboardCharts {
	return dto.DashboardCharts{
		InvoicesByStatus: projector.GroupSum(snap.invoices,
			func(i *invoice.Invoice) string { return string(i.Status) },
			invoiceTotal,
			enumNames(types.InvoiceStatuses)...),
		ExpensesByCategory: projector.GroupSum(snap.expenses,
			func(e *expense.Expense) string { return e.Category },
			func(e *expense.Expense) decimal.Decimal { return e.Amount }),
		DealsByStage: projector.GroupSum(snap.deals,
			func(d *deal.Deal) string { return string(d.Stage) },
			func(d *deal.Deal) decimal.Decimal { return d.Value },
			enumNames(types.DealStages)...),
		TicketsByStatus: projector.GroupCount(snap.tickets,
			func(t *ticket.Ticket) string { return string(t.Status) },
			enumNames(types.TicketStatuses)...),
		ProjectsByStatus: projector.GroupCount(snap.projects,
			func(p *project.Project) string { return string(p.Status) },
			enumNames(types.ProjectStatuses)...),
		AssetsByCategory: projector.GroupSum(snap.assets,
			func(a *asset.FixedAsset) string { return a.Category },
			func(a *asset.FixedAsset) decimal.Decimal { return a.CurrentValue }),
		MonthlyRevenue: monthlyRevenue(snap.invoices, year),
	}
}

// monthlyRevenue sums paid invoices by issue month, always twelve points
func monthlyRevenue(invoices []*invoice.Invoice, year int) []projector.Point {
	paid := lo.Filter(invoices, func(i *invoice.Invoice, _ int) bool {
		return i.Status == types.InvoiceStatusPaid && i.IssueDate.Year() == year
	})
	months := lo.Map(lo.Range(12), func(m int, _ int) string {
		return time.Month(m + 1).String()[:3]
	})
	return projector.GroupSum(paid,
		func(i *invoice.Invoice) string { return i.IssueDate.Month().String()[:3] },
		invoiceTotal,
		months...)
}

func invoiceTotal(i *invoice.Invoice) decimal.Decimal { return i.Total }

func enumNames[S ~string](values []S) []string {
	return lo.Map(values, func(v S, _ int) string { return string(v) })
}
