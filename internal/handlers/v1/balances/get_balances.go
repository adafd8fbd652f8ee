package balances

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ironforge/finance-server/internal/finance"
)

// GetBalancesInput is the Huma input for fetching balances.
type GetBalancesInput struct{}

// GetBalancesResponseBody is the response body for fetching balances.
type GetBalancesResponseBody struct {
	Balances AccountBalances `json:"balances" doc:"Current account balances snapshot"`
}

// GetBalancesOutput is the Huma output for fetching balances.
type GetBalancesOutput struct {
	Body GetBalancesResponseBody
}

// balanceGetter is the interface for reading the balances snapshot.
type balanceGetter interface {
	Get(ctx context.Context) finance.AccountBalances
}

// GetBalancesHandler handles GET /v1/balances.
type GetBalancesHandler struct {
	BalanceService balanceGetter
}

// NewGetBalancesHandler creates a new GetBalancesHandler.
func NewGetBalancesHandler(svc balanceGetter) *GetBalancesHandler {
	return &GetBalancesHandler{BalanceService: svc}
}

// Register registers the get balances endpoint with the Huma API.
func (h *GetBalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balances",
		Method:      http.MethodGet,
		Path:        "/v1/balances",
		Summary:     "Get account balances",
		Description: "Returns the current account balances snapshot.",
		Tags:        []string{"Balances"},
	}, h.handle)
}

func (h *GetBalancesHandler) handle(ctx context.Context, _ *GetBalancesInput) (*GetBalancesOutput, error) {
	current := h.BalanceService.Get(ctx)
	return &GetBalancesOutput{
		Body: GetBalancesResponseBody{Balances: fromDomain(current)},
	}, nil
}
