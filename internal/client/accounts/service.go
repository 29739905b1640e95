// Package accounts implements account management on top of the banking API:
// listing, inspecting, opening and closing accounts.
package accounts

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// Client is the slice of the API client the service needs.
type Client interface {
	Accounts(ctx context.Context) ([]models.Account, error)
	Account(ctx context.Context, id int64) (*models.Account, error)
	CreateAccount(ctx context.Context, name, accountType string) (*models.Account, error)
	CloseAccount(ctx context.Context, id int64) error
}

type Service struct {
	api Client
	log logging.Logger
}

func NewService(api Client, log logging.Logger) *Service {
	return &Service{api: api, log: log}
}

// List returns all accounts of the current user.
func (s *Service) List(ctx context.Context) ([]models.Account, error) {
	return s.api.Accounts(ctx)
}

// Get returns one account by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Account, error) {
	if id <= 0 {
		return nil, &api.ValidationError{Field: "account", Reason: "invalid id"}
	}
	return s.api.Account(ctx, id)
}

// Open creates a new account. The name must be non-empty and the type one of
// the kinds the API accepts.
func (s *Service) Open(ctx context.Context, name, accountType string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &api.ValidationError{Field: "accountName", Reason: "must not be empty"}
	}
	if accountType != models.AccountSavings && accountType != models.AccountChecking {
		return nil, &api.ValidationError{Field: "type", Reason: "must be SAVINGS or CHECKING"}
	}

	acc, err := s.api.CreateAccount(ctx, name, accountType)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "account opened", "accountNumber", acc.AccountNumber, "type", acc.Type)
	return acc, nil
}

// Close closes the account. The server refuses accounts with a non-zero
// balance; that decision is not replicated here.
func (s *Service) Close(ctx context.Context, id int64) error {
	if id <= 0 {
		return &api.ValidationError{Field: "account", Reason: "invalid id"}
	}
	if err := s.api.CloseAccount(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "account closed", "id", id)
	return nil
}
