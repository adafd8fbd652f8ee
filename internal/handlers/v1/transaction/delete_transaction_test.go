package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/store"
)

type mockTransactionDeleter struct {
	mock.Mock
}

func (m *mockTransactionDeleter) Delete(ctx context.Context, id string) (finance.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(finance.Transaction)
	return tx, args.Error(1)
}

func newDeleteTestAPI(t *testing.T, svc transactionDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	deleted := finance.Transaction{
		ID:            "tx-42",
		Type:          finance.TypeExpense,
		Amount:        decimal.RequireFromString("75.00"),
		Description:   "Office chair",
		Category:      finance.CategoryEquipment,
		Likelihood:    finance.LikelihoodConfirmed,
		ScheduledDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}

	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, "tx-42").Return(deleted, nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/transaction/tx-42")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tx-42", body.Transaction.ID)
	assert.Equal(t, "Office chair", body.Transaction.Description)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, "missing").
		Return(finance.Transaction{}, store.ErrNotFound)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/transaction/missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, "tx-7").
		Return(finance.Transaction{}, errors.New("snapshot unavailable"))

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/transaction/tx-7")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
