package alerts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

type fakeClient struct {
	unread []models.Notification
	err    error

	calls  int
	readID int64
}

func (f *fakeClient) UnreadNotifications(context.Context) ([]models.Notification, error) {
	f.calls++
	return f.unread, f.err
}

func (f *fakeClient) MarkNotificationRead(_ context.Context, id int64) error {
	f.calls++
	f.readID = id
	return f.err
}

func TestUnread(t *testing.T) {
	fc := &fakeClient{unread: []models.Notification{{ID: 1, Title: "Transfer received"}}}
	s := NewService(fc, logging.Nop())

	got, err := s.Unread(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestMarkRead(t *testing.T) {
	fc := &fakeClient{}
	s := NewService(fc, logging.Nop())

	require.NoError(t, s.MarkRead(context.Background(), 4))
	require.Equal(t, int64(4), fc.readID)
}

func TestMarkRead_RejectsBadID(t *testing.T) {
	fc := &fakeClient{}
	s := NewService(fc, logging.Nop())

	require.True(t, api.IsValidation(s.MarkRead(context.Background(), 0)))
	require.Equal(t, 0, fc.calls)
}
