package stats

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/logging"
)

// BucketStats is the API response model for one bucket's totals.
type BucketStats struct {
	TotalRevenue  string `json:"totalRevenue" doc:"Sum of revenue amounts in this bucket"`
	TotalExpenses string `json:"totalExpenses" doc:"Sum of expense amounts in this bucket"`
	NetIncome     string `json:"netIncome" doc:"Revenue minus expenses for this bucket"`
}

// ProjectionStats is the API response model for the weighted forecast figures.
// Weighted figures are rounded to whole units for display parity with the
// dashboard.
type ProjectionStats struct {
	ConfirmedRevenue         string         `json:"confirmedRevenue" doc:"Unweighted revenue marked confirmed"`
	WeightedProjectedRevenue string         `json:"weightedProjectedRevenue" doc:"Likelihood-weighted revenue, rounded"`
	WeightedMonthlyRecurring string         `json:"weightedMonthlyRecurring" doc:"Likelihood-weighted recurring per-cycle net, rounded"`
	TransactionsByLikelihood map[string]int `json:"transactionsByLikelihood" doc:"Transaction counts keyed by likelihood"`
}

// GetStatsInput is the Huma input for the dashboard stats.
type GetStatsInput struct {
	Goal string `query:"goal" doc:"Optional savings goal; when set, monthsToGoal is computed from current cash and monthly recurring net"`
}

// GetStatsResponseBody is the response body for the dashboard stats.
type GetStatsResponseBody struct {
	CurrentCash        string          `json:"currentCash" doc:"Net of all transactions plus the balances snapshot"`
	CurrentCashDisplay string          `json:"currentCashDisplay" doc:"Current cash formatted for display"`
	CompactCash        string          `json:"compactCash" doc:"Current cash in compact form, e.g. 12.5K"`
	MonthlyBurn        string          `json:"monthlyBurn" doc:"Total of all expense transactions"`
	ProjectedRevenue   string          `json:"projectedRevenue" doc:"Total of all revenue transactions"`
	Personal           BucketStats     `json:"personal" doc:"Personal bucket totals"`
	Business           BucketStats     `json:"business" doc:"Business bucket totals"`
	MonthlyRecurring   string          `json:"monthlyRecurring" doc:"Signed per-cycle net of recurring transactions"`
	BusinessRecurring  string          `json:"businessRecurring" doc:"Recurring per-cycle net restricted to the business bucket"`
	Projection         ProjectionStats `json:"projection" doc:"Likelihood-weighted forecast figures"`
	MonthsToGoal       *int            `json:"monthsToGoal,omitempty" doc:"Whole months until the goal is reached; -1 when unreachable; present only when goal is set"`
}

// GetStatsOutput is the Huma output for the dashboard stats.
type GetStatsOutput struct {
	Body GetStatsResponseBody
}

// statsProvider is the interface for computing the dashboard aggregate.
type statsProvider interface {
	Stats(ctx context.Context) finance.Stats
}

// GetStatsHandler handles GET /v1/stats.
type GetStatsHandler struct {
	DashboardService statsProvider
}

// NewGetStatsHandler creates a new GetStatsHandler.
func NewGetStatsHandler(svc statsProvider) *GetStatsHandler {
	return &GetStatsHandler{DashboardService: svc}
}

// Register registers the stats endpoint with the Huma API.
func (h *GetStatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-stats",
		Method:      http.MethodGet,
		Path:        "/v1/stats",
		Summary:     "Dashboard stats",
		Description: "Returns the aggregate figures shown on the dashboard.",
		Tags:        []string{"Stats"},
	}, h.handle)
}

func (h *GetStatsHandler) handle(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	logData := logging.GetLogData(ctx)

	var goal *decimal.Decimal
	if input.Goal != "" {
		parsed, err := decimal.NewFromString(input.Goal)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid goal", err)
		}
		goal = &parsed
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("computeStatsMs")
	}
	stats := h.DashboardService.Stats(ctx)
	if stopTimer != nil {
		stopTimer()
	}

	body := GetStatsResponseBody{
		CurrentCash:        stats.CurrentCash.String(),
		CurrentCashDisplay: finance.FormatCurrency(stats.CurrentCash),
		CompactCash:        finance.FormatCompactCurrency(stats.CurrentCash),
		MonthlyBurn:        stats.MonthlyBurn.String(),
		ProjectedRevenue:   stats.ProjectedRevenue.String(),
		Personal:           fromBucketStats(stats.Personal),
		Business:           fromBucketStats(stats.Business),
		MonthlyRecurring:   stats.MonthlyRecurring.String(),
		BusinessRecurring:  stats.BusinessRecurring.String(),
		Projection: ProjectionStats{
			ConfirmedRevenue:         stats.Projection.ConfirmedRevenue.String(),
			WeightedProjectedRevenue: stats.Projection.WeightedProjectedRevenue.Round(0).String(),
			WeightedMonthlyRecurring: stats.Projection.WeightedMonthlyRecurring.Round(0).String(),
			TransactionsByLikelihood: likelihoodCounts(stats.Projection.TransactionsByLikelihood),
		},
	}

	if goal != nil {
		months := finance.MonthsToGoal(stats.CurrentCash, *goal, stats.MonthlyRecurring)
		body.MonthsToGoal = &months
	}

	return &GetStatsOutput{Body: body}, nil
}

func fromBucketStats(b finance.BucketStats) BucketStats {
	return BucketStats{
		TotalRevenue:  b.TotalRevenue.String(),
		TotalExpenses: b.TotalExpenses.String(),
		NetIncome:     b.NetIncome.String(),
	}
}

func likelihoodCounts(counts map[finance.Likelihood]int) map[string]int {
	out := make(map[string]int, len(counts))
	for likelihood, n := range counts {
		out[string(likelihood)] = n
	}
	return out
}
