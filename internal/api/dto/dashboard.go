package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/projector"
)

// SummaryCards are the headline figures of the dashboard
type SummaryCards struct {
	Revenue         decimal.Decimal `json:"revenue"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	OverdueInvoices int             `json:"overdue_invoices"`
	Expenses        decimal.Decimal `json:"expenses"`
	VATPaid         decimal.Decimal `json:"vat_paid"`
	OpenTickets     int             `json:"open_tickets"`
	ActiveProjects  int             `json:"active_projects"`
	PipelineValue   decimal.Decimal `json:"pipeline_value"`
	AssetValue      decimal.Decimal `json:"asset_value"`
	ActiveClients   int             `json:"active_clients"`
	UpcomingEvents  int             `json:"upcoming_events"`
}

type DashboardCharts struct {
	InvoicesByStatus   []projector.Point `json:"invoices_by_status"`
	ExpensesByCategory []projector.Point `json:"expenses_by_category"`
	DealsByStage       []projector.Point `json:"deals_by_stage"`
	TicketsByStatus    []projector.Point `json:"tickets_by_status"`
	ProjectsByStatus   []projector.Point `json:"projects_by_status"`
	AssetsByCategory   []projector.Point `json:"assets_by_category"`
	MonthlyRevenue     []projector.Point `json:"monthly_revenue"`
}

type DashboardResponse struct {
	Year    int             `json:"year"`
	Summary SummaryCards    `json:"summary"`
	Charts  DashboardCharts `json:"charts"`
}
