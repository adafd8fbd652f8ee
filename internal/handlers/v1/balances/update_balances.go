package balances

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/logging"
	"github.com/ironforge/finance-server/internal/store"
)

// UpdateBalancesBody is the request body for updating one balance field.
type UpdateBalancesBody struct {
	Field string `json:"field" required:"true" enum:"personalBankBalance,businessBankBalance,personalCashOnHand" doc:"Balance field to update"`
	Value string `json:"value" required:"true" doc:"New decimal value for the field"`
}

// UpdateBalancesInput is the Huma input for updating balances.
type UpdateBalancesInput struct {
	Body UpdateBalancesBody
}

// UpdateBalancesResponseBody is the response body for updating balances.
type UpdateBalancesResponseBody struct {
	Balances AccountBalances `json:"balances" doc:"Updated account balances snapshot"`
}

// UpdateBalancesOutput is the Huma output for updating balances.
type UpdateBalancesOutput struct {
	Body UpdateBalancesResponseBody
}

// balanceUpdater is the interface for updating one balance field.
type balanceUpdater interface {
	UpdateField(ctx context.Context, field string, value decimal.Decimal) (finance.AccountBalances, error)
}

// UpdateBalancesHandler handles PATCH /v1/balances.
type UpdateBalancesHandler struct {
	BalanceService balanceUpdater
}

// NewUpdateBalancesHandler creates a new UpdateBalancesHandler.
func NewUpdateBalancesHandler(svc balanceUpdater) *UpdateBalancesHandler {
	return &UpdateBalancesHandler{BalanceService: svc}
}

// Register registers the update balances endpoint with the Huma API.
func (h *UpdateBalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-balances",
		Method:      http.MethodPatch,
		Path:        "/v1/balances",
		Summary:     "Update a balance field",
		Description: "Sets one balance field and queues the change for the automation flow.",
		Tags:        []string{"Balances"},
	}, h.handle)
}

// parseUpdateBalancesInput parses and validates the API input.
func parseUpdateBalancesInput(input *UpdateBalancesInput) (field string, value decimal.Decimal, err error) {
	value, parseErr := decimal.NewFromString(input.Body.Value)
	if parseErr != nil {
		return "", decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid value", parseErr)
	}
	return input.Body.Field, value, nil
}

func (h *UpdateBalancesHandler) handle(ctx context.Context, input *UpdateBalancesInput) (*UpdateBalancesOutput, error) {
	logData := logging.GetLogData(ctx)
	field, value, err := parseUpdateBalancesInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := h.BalanceService.UpdateField(ctx, field, value)
	if err != nil {
		if errors.Is(err, store.ErrUnknownField) {
			return nil, huma.NewError(http.StatusBadRequest, "unknown balance field")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update balances", err)
	}

	if logData != nil {
		logData.AddData("updatedBalanceField", field)
	}

	return &UpdateBalancesOutput{
		Body: UpdateBalancesResponseBody{Balances: fromDomain(updated)},
	}, nil
}
