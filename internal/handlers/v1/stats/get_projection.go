package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/logging"
)

// GetProjectionInput is the Huma input for a date-range projection.
type GetProjectionInput struct {
	Start string `query:"start" required:"true" doc:"Range start date (2006-01-02)"`
	End   string `query:"end" required:"true" doc:"Range end date (2006-01-02)"`
}

// GetProjectionResponseBody is the response body for a date-range projection.
type GetProjectionResponseBody struct {
	Start            string         `json:"start" doc:"Range start (2006-01-02)"`
	End              string         `json:"end" doc:"Range end (2006-01-02)"`
	TotalRevenue     string         `json:"totalRevenue" doc:"Unweighted revenue scheduled in range"`
	TotalExpenses    string         `json:"totalExpenses" doc:"Expenses scheduled in range"`
	NetChange        string         `json:"netChange" doc:"Revenue minus expenses in range"`
	ConfirmedRevenue string         `json:"confirmedRevenue" doc:"Revenue marked confirmed in range"`
	PotentialRevenue string         `json:"potentialRevenue" doc:"Revenue not marked confirmed in range"`
	WeightedNet      string         `json:"weightedNet" doc:"Likelihood-weighted signed net across the range"`
	OccurrenceCounts map[string]int `json:"occurrenceCounts" doc:"Occurrence counts keyed by likelihood"`
}

// GetProjectionOutput is the Huma output for a date-range projection.
type GetProjectionOutput struct {
	Body GetProjectionResponseBody
}

// projectionProvider is the interface for range projections.
type projectionProvider interface {
	Projection(ctx context.Context, from, to time.Time) (finance.RangeProjection, decimal.Decimal)
}

// GetProjectionHandler handles GET /v1/stats/projection.
type GetProjectionHandler struct {
	DashboardService projectionProvider
}

// NewGetProjectionHandler creates a new GetProjectionHandler.
func NewGetProjectionHandler(svc projectionProvider) *GetProjectionHandler {
	return &GetProjectionHandler{DashboardService: svc}
}

// Register registers the projection endpoint with the Huma API.
func (h *GetProjectionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-projection",
		Method:      http.MethodGet,
		Path:        "/v1/stats/projection",
		Summary:     "Range projection",
		Description: "Summarizes scheduled occurrences in a date range with likelihood weighting.",
		Tags:        []string{"Stats"},
	}, h.handle)
}

// parseGetProjectionInput parses and validates the range bounds.
func parseGetProjectionInput(input *GetProjectionInput) (from, to time.Time, err error) {
	from, err = time.Parse("2006-01-02", input.Start)
	if err != nil {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid start", err)
	}
	to, err = time.Parse("2006-01-02", input.End)
	if err != nil {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid end", err)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "end must not precede start")
	}
	return from, to, nil
}

func (h *GetProjectionHandler) handle(ctx context.Context, input *GetProjectionInput) (*GetProjectionOutput, error) {
	logData := logging.GetLogData(ctx)
	from, to, err := parseGetProjectionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("projectionMs")
	}
	projection, weighted := h.DashboardService.Projection(ctx, from, to)
	if stopTimer != nil {
		stopTimer()
	}

	counts := make(map[string]int, len(projection.ByLikelihood))
	for likelihood, n := range projection.ByLikelihood {
		counts[string(likelihood)] = n
	}

	return &GetProjectionOutput{
		Body: GetProjectionResponseBody{
			Start:            input.Start,
			End:              input.End,
			TotalRevenue:     projection.TotalRevenue.String(),
			TotalExpenses:    projection.TotalExpenses.String(),
			NetChange:        projection.NetChange.String(),
			ConfirmedRevenue: projection.ConfirmedRevenue.String(),
			PotentialRevenue: projection.PotentialRevenue.String(),
			WeightedNet:      weighted.Round(0).String(),
			OccurrenceCounts: counts,
		},
	}, nil
}
