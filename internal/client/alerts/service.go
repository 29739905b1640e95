// Package alerts surfaces server-side notifications to the user.
package alerts

import (
	"context"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// Client is the slice of the API client the service needs.
type Client interface {
	UnreadNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

type Service struct {
	api Client
	log logging.Logger
}

func NewService(api Client, log logging.Logger) *Service {
	return &Service{api: api, log: log}
}

// Unread returns the notifications the user has not seen yet.
func (s *Service) Unread(ctx context.Context) ([]models.Notification, error) {
	return s.api.UnreadNotifications(ctx)
}

// MarkRead acknowledges a single notification.
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return &api.ValidationError{Field: "notification", Reason: "invalid id"}
	}
	return s.api.MarkNotificationRead(ctx, id)
}
