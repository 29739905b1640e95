// Package cards implements credit card operations: applications, listing
// and repayments.
package cards

import (
	"context"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// Client is the slice of the API client the service needs.
type Client interface {
	ApplyCreditCard(ctx context.Context, app models.CardApplication) (*models.CreditCard, error)
	CreditCards(ctx context.Context) ([]models.CreditCard, error)
	RepayCreditCard(ctx context.Context, cardID int64, amount float64) error
}

type Service struct {
	api Client
	log logging.Logger
}

func NewService(api Client, log logging.Logger) *Service {
	return &Service{api: api, log: log}
}

// Apply submits a credit card application. Approval is the server's decision.
func (s *Service) Apply(ctx context.Context, app models.CardApplication) (*models.CreditCard, error) {
	if app.RequestedLimit <= 0 {
		return nil, &api.ValidationError{Field: "requestedLimit", Reason: "must be greater than zero"}
	}
	if app.MonthlyIncome <= 0 {
		return nil, &api.ValidationError{Field: "monthlyIncome", Reason: "must be greater than zero"}
	}
	card, err := s.api.ApplyCreditCard(ctx, app)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "card application submitted", "cardNumber", card.CardNumber, "status", card.Status)
	return card, nil
}

// List returns all cards of the current user.
func (s *Service) List(ctx context.Context) ([]models.CreditCard, error) {
	return s.api.CreditCards(ctx)
}

// Repay pays down the card's used credit.
func (s *Service) Repay(ctx context.Context, cardID int64, amount float64) error {
	if cardID <= 0 {
		return &api.ValidationError{Field: "card", Reason: "invalid id"}
	}
	if amount <= 0 {
		return &api.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if err := s.api.RepayCreditCard(ctx, cardID, amount); err != nil {
		return err
	}
	s.log.Info(ctx, "card repayment completed", "cardId", cardID, "amount", amount)
	return nil
}
