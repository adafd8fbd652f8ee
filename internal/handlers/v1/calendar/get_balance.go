package calendar

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
)

// GetBalanceInput is the Huma input for the projected balance lookup.
type GetBalanceInput struct {
	Date   string `query:"date" required:"true" doc:"Target date (2006-01-02)"`
	Bucket string `query:"bucket" enum:"personal,business" doc:"Balance bucket to replay; defaults to personal"`
}

// GetBalanceResponseBody is the response body for the projected balance lookup.
type GetBalanceResponseBody struct {
	Date    string `json:"date" doc:"Target date (2006-01-02)"`
	Bucket  string `json:"bucket" doc:"personal or business"`
	Balance string `json:"balance" doc:"Projected balance as of the target date"`
	Display string `json:"display" doc:"Balance formatted for display"`
}

// GetBalanceOutput is the Huma output for the projected balance lookup.
type GetBalanceOutput struct {
	Body GetBalanceResponseBody
}

// balanceReplayer is the interface for replaying balances to a date.
type balanceReplayer interface {
	BalanceAsOf(ctx context.Context, target time.Time, bucket finance.Bucket) decimal.Decimal
}

// GetBalanceHandler handles GET /v1/calendar/balance.
type GetBalanceHandler struct {
	DashboardService balanceReplayer
}

// NewGetBalanceHandler creates a new GetBalanceHandler.
func NewGetBalanceHandler(svc balanceReplayer) *GetBalanceHandler {
	return &GetBalanceHandler{DashboardService: svc}
}

// Register registers the balance lookup endpoint with the Huma API.
func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-calendar-balance",
		Method:      http.MethodGet,
		Path:        "/v1/calendar/balance",
		Summary:     "Projected balance as of a date",
		Description: "Replays scheduled movements for one bucket from today up to the target date.",
		Tags:        []string{"Calendar"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	target, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	bucket := finance.BucketPersonal
	if input.Bucket == string(finance.BucketBusiness) {
		bucket = finance.BucketBusiness
	}

	balance := h.DashboardService.BalanceAsOf(ctx, target, bucket)

	return &GetBalanceOutput{
		Body: GetBalanceResponseBody{
			Date:    input.Date,
			Bucket:  string(bucket),
			Balance: balance.String(),
			Display: finance.FormatCurrency(balance),
		},
	}, nil
}
