package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

type fakeClient struct {
	accounts []models.Account
	account  *models.Account
	created  *models.Account
	err      error

	calls       int
	createdName string
	createdType string
	closedID    int64
}

func (f *fakeClient) Accounts(context.Context) ([]models.Account, error) {
	f.calls++
	return f.accounts, f.err
}

func (f *fakeClient) Account(_ context.Context, id int64) (*models.Account, error) {
	f.calls++
	return f.account, f.err
}

func (f *fakeClient) CreateAccount(_ context.Context, name, accountType string) (*models.Account, error) {
	f.calls++
	f.createdName, f.createdType = name, accountType
	return f.created, f.err
}

func (f *fakeClient) CloseAccount(_ context.Context, id int64) error {
	f.calls++
	f.closedID = id
	return f.err
}

func TestList(t *testing.T) {
	fc := &fakeClient{accounts: []models.Account{{ID: 1}, {ID: 2}}}
	s := NewService(fc, logging.Nop())

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestGet_RejectsBadID(t *testing.T) {
	fc := &fakeClient{}
	s := NewService(fc, logging.Nop())

	for _, id := range []int64{0, -3} {
		_, err := s.Get(context.Background(), id)
		require.True(t, api.IsValidation(err))
	}
	require.Equal(t, 0, fc.calls)
}

func TestOpen(t *testing.T) {
	created := &models.Account{ID: 7, AccountNumber: "6212340001", Type: models.AccountSavings}
	fc := &fakeClient{created: created}
	s := NewService(fc, logging.Nop())

	got, err := s.Open(context.Background(), "Holiday fund", models.AccountSavings)
	require.NoError(t, err)
	require.Equal(t, created, got)
	require.Equal(t, "Holiday fund", fc.createdName)
	require.Equal(t, models.AccountSavings, fc.createdType)
}

func TestOpen_Validation(t *testing.T) {
	fc := &fakeClient{}
	s := NewService(fc, logging.Nop())
	ctx := context.Background()

	_, err := s.Open(ctx, "  ", models.AccountSavings)
	require.True(t, api.IsValidation(err))

	_, err = s.Open(ctx, "Fund", "GOLD")
	require.True(t, api.IsValidation(err))

	require.Equal(t, 0, fc.calls)
}

func TestClose(t *testing.T) {
	fc := &fakeClient{}
	s := NewService(fc, logging.Nop())

	require.NoError(t, s.Close(context.Background(), 7))
	require.Equal(t, int64(7), fc.closedID)
}

func TestClose_ServerErrorPassedThrough(t *testing.T) {
	fc := &fakeClient{err: errors.New("account has a balance")}
	s := NewService(fc, logging.Nop())

	err := s.Close(context.Background(), 7)
	require.EqualError(t, err, "account has a balance")
}
