package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/service"
)

// mockTransactionService is a mock for transactionCreator.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Create(ctx context.Context, input service.CreateTransaction) (finance.Transaction, error) {
	args := m.Called(ctx, input)
	tx, _ := args.Get(0).(finance.Transaction)
	return tx, args.Error(1)
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Type:          "revenue",
			Amount:        "1250.75",
			Description:   "Client retainer",
			Category:      "business",
			Likelihood:    "high",
			ScheduledDate: "2026-03-15",
		},
	}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, finance.TypeRevenue, create.Type)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("1250.75")))
	assert.Equal(t, "Client retainer", create.Description)
	assert.Equal(t, finance.CategoryBusiness, create.Category)
	assert.Equal(t, finance.LikelihoodHigh, create.Likelihood)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), create.ScheduledDate)
	assert.Nil(t, create.EndDate)
}

func TestParseCreateTransactionInput_RecurringWithEndDate(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Type:          "expense",
			Amount:        "49.99",
			Description:   "SaaS subscription",
			Category:      "utilities",
			IsRecurring:   true,
			Frequency:     "monthly",
			ScheduledDate: "2026-01-31",
			EndDate:       "2026-12-31",
		},
	}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, create.IsRecurring)
	assert.Equal(t, finance.FrequencyMonthly, create.Frequency)
	assert.NotNil(t, create.EndDate)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), *create.EndDate)
}

func TestParseCreateTransactionInput_InvalidAmount(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Type:          "expense",
			Amount:        "not-a-decimal",
			Description:   "Test",
			Category:      "food",
			ScheduledDate: "2026-03-15",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

func TestParseCreateTransactionInput_InvalidEndDate(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			Type:          "expense",
			Amount:        "10.00",
			Description:   "Test",
			Category:      "food",
			IsRecurring:   true,
			Frequency:     "weekly",
			ScheduledDate: "2026-03-15",
			EndDate:       "soon",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	created := finance.Transaction{
		ID:            "b6a1c2f0-0000-4000-8000-000000000001",
		Type:          finance.TypeRevenue,
		Amount:        decimal.RequireFromString("1250.75"),
		Description:   "Client retainer",
		Category:      finance.CategoryBusiness,
		Likelihood:    finance.LikelihoodHigh,
		ScheduledDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateTransaction) bool {
		return in.Type == finance.TypeRevenue &&
			in.Amount.Equal(decimal.RequireFromString("1250.75")) &&
			in.Description == "Client retainer" &&
			in.Category == finance.CategoryBusiness
	})).Return(created, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:          "revenue",
		Amount:        "1250.75",
		Description:   "Client retainer",
		Category:      "business",
		Likelihood:    "high",
		ScheduledDate: "2026-03-15",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID, body.Transaction.ID)
	assert.Equal(t, "2026-03-15", body.Transaction.ScheduledDate)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type: "revenue",
		// Amount, Description, Category, ScheduledDate omitted
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Amount is a plain string with no Huma format tag, so parseCreateTransactionInput
	// handles validation and returns 400.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:          "expense",
		Amount:        "not-a-decimal",
		Description:   "Test",
		Category:      "food",
		ScheduledDate: "2026-03-15",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_InvalidScheduledDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:          "expense",
		Amount:        "10.00",
		Description:   "Test",
		Category:      "food",
		ScheduledDate: "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_ValidationError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Create", mock.Anything, mock.Anything).
		Return(finance.Transaction{}, service.ErrUnknownCategory)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		Type:          "expense",
		Amount:        "10.00",
		Description:   "Test",
		Category:      "snacks",
		ScheduledDate: "2026-03-15",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}
