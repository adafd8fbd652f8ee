package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type          string `json:"type" required:"true" doc:"revenue or expense"`
	Amount        string `json:"amount" required:"true" doc:"Non-negative decimal magnitude"`
	Description   string `json:"description" required:"true" doc:"Free-text description"`
	Category      string `json:"category" required:"true" doc:"Category name"`
	Likelihood    string `json:"likelihood,omitempty" doc:"confirmed, high, medium, or low; defaults to confirmed"`
	IsRecurring   bool   `json:"isRecurring,omitempty" doc:"Whether the transaction repeats"`
	Frequency     string `json:"frequency,omitempty" doc:"weekly, bi-weekly, monthly, quarterly, or yearly"`
	ScheduledDate string `json:"scheduledDate" required:"true" doc:"Transaction date (2006-01-02), or first occurrence date if recurring"`
	EndDate       string `json:"endDate,omitempty" doc:"Optional last occurrence date, recurring only"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody returns the created transaction.
type CreateTransactionResponseBody struct {
	Transaction Transaction `json:"transaction" doc:"The created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, input service.CreateTransaction) (finance.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction and queues the change for webhook delivery.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input into the
// service-layer create request.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.CreateTransaction, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.CreateTransaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	scheduled, err := time.Parse("2006-01-02", input.Body.ScheduledDate)
	if err != nil {
		return service.CreateTransaction{}, huma.NewError(http.StatusBadRequest, "invalid scheduledDate", err)
	}

	create := service.CreateTransaction{
		Type:          finance.Type(input.Body.Type),
		Amount:        amount,
		Description:   input.Body.Description,
		Category:      finance.Category(input.Body.Category),
		Likelihood:    finance.Likelihood(input.Body.Likelihood),
		IsRecurring:   input.Body.IsRecurring,
		Frequency:     finance.Frequency(input.Body.Frequency),
		ScheduledDate: scheduled,
	}

	if input.Body.EndDate != "" {
		end, err := time.Parse("2006-01-02", input.Body.EndDate)
		if err != nil {
			return service.CreateTransaction{}, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		create.EndDate = &end
	}

	return create, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.TransactionService.Create(ctx, create)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponseBody{Transaction: fromDomain(created)},
	}, nil
}
