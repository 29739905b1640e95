// Package payments implements money movement: deposits, withdrawals and
// transfers, plus transaction lookups. Amounts are validated locally so an
// obviously bad order never reaches the network.
package payments

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// Client is the slice of the API client the service needs.
type Client interface {
	Deposit(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error)
	Withdraw(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error)
	Transfer(ctx context.Context, order models.TransferOrder) (*models.Transaction, error)
	Transaction(ctx context.Context, id int64) (*models.Transaction, error)
	TransactionHistory(ctx context.Context, query url.Values) ([]models.Transaction, *models.PageInfo, error)
}

// recentTransfersLimit matches the size of the "recent transfers" widget.
const recentTransfersLimit = 5

type Service struct {
	api Client
	log logging.Logger
}

func NewService(api Client, log logging.Logger) *Service {
	return &Service{api: api, log: log}
}

func validAmount(amount float64) error {
	if amount <= 0 {
		return &api.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}

func validAccount(id int64) error {
	if id <= 0 {
		return &api.ValidationError{Field: "account", Reason: "invalid id"}
	}
	return nil
}

// Deposit credits the account.
func (s *Service) Deposit(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error) {
	if err := validAccount(accountID); err != nil {
		return nil, err
	}
	if err := validAmount(amount); err != nil {
		return nil, err
	}
	tx, err := s.api.Deposit(ctx, accountID, amount, description)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "deposit completed", "accountId", accountID, "amount", amount)
	return tx, nil
}

// Withdraw debits the account. Insufficient funds are the server's call.
func (s *Service) Withdraw(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error) {
	if err := validAccount(accountID); err != nil {
		return nil, err
	}
	if err := validAmount(amount); err != nil {
		return nil, err
	}
	tx, err := s.api.Withdraw(ctx, accountID, amount, description)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "withdrawal completed", "accountId", accountID, "amount", amount)
	return tx, nil
}

// Transfer sends money to another account. An empty transfer type defaults
// to internal routing.
func (s *Service) Transfer(ctx context.Context, order models.TransferOrder) (*models.Transaction, error) {
	if err := validAccount(order.FromAccountID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(order.ToAccountNumber) == "" {
		return nil, &api.ValidationError{Field: "toAccountNumber", Reason: "must not be empty"}
	}
	if err := validAmount(order.Amount); err != nil {
		return nil, err
	}
	switch order.TransferType {
	case "":
		order.TransferType = models.TransferInternal
	case models.TransferInternal, models.TransferExternal:
	default:
		return nil, &api.ValidationError{Field: "transferType", Reason: "must be INTERNAL or EXTERNAL"}
	}

	tx, err := s.api.Transfer(ctx, order)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "transfer completed",
		"fromAccountId", order.FromAccountID, "to", order.ToAccountNumber, "amount", order.Amount)
	return tx, nil
}

// Detail returns one transaction by id.
func (s *Service) Detail(ctx context.Context, id int64) (*models.Transaction, error) {
	if id <= 0 {
		return nil, &api.ValidationError{Field: "transaction", Reason: "invalid id"}
	}
	return s.api.Transaction(ctx, id)
}

// RecentTransfers returns the latest transfers for the dashboard widget.
func (s *Service) RecentTransfers(ctx context.Context) ([]models.Transaction, error) {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("type", string(models.TypeTransfer))
	q.Set("limit", strconv.Itoa(recentTransfersLimit))
	items, _, err := s.api.TransactionHistory(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(items) > recentTransfersLimit {
		items = items[:recentTransfersLimit]
	}
	return items, nil
}
