package payments

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

type fakeClient struct {
	tx      *models.Transaction
	history []models.Transaction
	err     error

	calls     int
	lastOrder models.TransferOrder
	lastQuery url.Values
}

func (f *fakeClient) Deposit(_ context.Context, accountID int64, amount float64, description string) (*models.Transaction, error) {
	f.calls++
	return f.tx, f.err
}

func (f *fakeClient) Withdraw(_ context.Context, accountID int64, amount float64, description string) (*models.Transaction, error) {
	f.calls++
	return f.tx, f.err
}

func (f *fakeClient) Transfer(_ context.Context, order models.TransferOrder) (*models.Transaction, error) {
	f.calls++
	f.lastOrder = order
	return f.tx, f.err
}

func (f *fakeClient) Transaction(_ context.Context, id int64) (*models.Transaction, error) {
	f.calls++
	return f.tx, f.err
}

func (f *fakeClient) TransactionHistory(_ context.Context, q url.Values) ([]models.Transaction, *models.PageInfo, error) {
	f.calls++
	f.lastQuery = q
	return f.history, &models.PageInfo{CurrentPage: 1, TotalPages: 1}, f.err
}

func TestDeposit_Validation(t *testing.T) {
	fc := &fakeClient{}
	s := NewService(fc, logging.Nop())
	ctx := context.Background()

	_, err := s.Deposit(ctx, 0, 100, "")
	require.True(t, api.IsValidation(err))

	_, err = s.Deposit(ctx, 1, 0, "")
	require.True(t, api.IsValidation(err))

	_, err = s.Deposit(ctx, 1, -5, "")
	require.True(t, api.IsValidation(err))

	require.Equal(t, 0, fc.calls)
}

func TestDeposit(t *testing.T) {
	fc := &fakeClient{tx: &models.Transaction{ID: 9, Type: models.TypeDeposit, Amount: 100}}
	s := NewService(fc, logging.Nop())

	tx, err := s.Deposit(context.Background(), 1, 100, "salary")
	require.NoError(t, err)
	require.Equal(t, int64(9), tx.ID)
}

func TestWithdraw_Validation(t *testing.T) {
	fc := &fakeClient{}
	s := NewService(fc, logging.Nop())

	_, err := s.Withdraw(context.Background(), 1, -1, "")
	require.True(t, api.IsValidation(err))
	require.Equal(t, 0, fc.calls)
}

func TestTransfer(t *testing.T) {
	fc := &fakeClient{tx: &models.Transaction{ID: 3, Type: models.TypeTransfer}}
	s := NewService(fc, logging.Nop())

	tx, err := s.Transfer(context.Background(), models.TransferOrder{
		FromAccountID:   1,
		ToAccountNumber: "6212340002",
		Amount:          50,
		TransferType:    models.TransferExternal,
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), tx.ID)
	require.Equal(t, models.TransferExternal, fc.lastOrder.TransferType)
}

func TestTransfer_DefaultsToInternal(t *testing.T) {
	fc := &fakeClient{tx: &models.Transaction{ID: 3}}
	s := NewService(fc, logging.Nop())

	_, err := s.Transfer(context.Background(), models.TransferOrder{
		FromAccountID:   1,
		ToAccountNumber: "6212340002",
		Amount:          50,
	})
	require.NoError(t, err)
	require.Equal(t, models.TransferInternal, fc.lastOrder.TransferType)
}

func TestTransfer_Validation(t *testing.T) {
	fc := &fakeClient{}
	s := NewService(fc, logging.Nop())
	ctx := context.Background()

	cases := []models.TransferOrder{
		{FromAccountID: 0, ToAccountNumber: "6212340002", Amount: 50},
		{FromAccountID: 1, ToAccountNumber: " ", Amount: 50},
		{FromAccountID: 1, ToAccountNumber: "6212340002", Amount: 0},
		{FromAccountID: 1, ToAccountNumber: "6212340002", Amount: 50, TransferType: "WIRE"},
	}
	for _, order := range cases {
		_, err := s.Transfer(ctx, order)
		require.True(t, api.IsValidation(err), "order %+v", order)
	}
	require.Equal(t, 0, fc.calls)
}

func TestRecentTransfers(t *testing.T) {
	fc := &fakeClient{history: []models.Transaction{
		{ID: 1, Type: models.TypeTransfer},
		{ID: 2, Type: models.TypeTransfer},
	}}
	s := NewService(fc, logging.Nop())

	items, err := s.RecentTransfers(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, "TRANSFER", fc.lastQuery.Get("type"))
	require.Equal(t, "5", fc.lastQuery.Get("limit"))
	require.Equal(t, "1", fc.lastQuery.Get("page"))
}

func TestRecentTransfers_CapsAtLimit(t *testing.T) {
	history := make([]models.Transaction, 8)
	for i := range history {
		history[i] = models.Transaction{ID: int64(i + 1), Type: models.TypeTransfer}
	}
	fc := &fakeClient{history: history}
	s := NewService(fc, logging.Nop())

	items, err := s.RecentTransfers(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 5)
}
