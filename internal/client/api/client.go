// Package api wraps outbound calls to the remote banking API: it builds
// requests, attaches the bearer credential, interprets the success/error
// envelope, and converts failures into a uniform error representation.
package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/digibank/internal/client/models"
)

// Client defines the typed operations the application services use to talk
// to the banking API. The concrete implementation is HTTPClient; tests
// provide hand-written fakes.
type Client interface {
	// Credential handling. The session manager owns the token and pushes it
	// here; the client only attaches it to authenticated requests.
	SetToken(token string)
	ClearToken()

	// Auth.
	Login(ctx context.Context, username, password string) (*models.LoginData, error)
	Register(ctx context.Context, form models.RegisterForm) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error

	// Current user.
	CurrentUser(ctx context.Context) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// Accounts.
	Accounts(ctx context.Context) ([]models.Account, error)
	Account(ctx context.Context, id int64) (*models.Account, error)
	CreateAccount(ctx context.Context, name, accountType string) (*models.Account, error)
	CloseAccount(ctx context.Context, id int64) error

	// Money movement.
	Deposit(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error)
	Withdraw(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error)
	Transfer(ctx context.Context, order models.TransferOrder) (*models.Transaction, error)
	TransactionHistory(ctx context.Context, query url.Values) ([]models.Transaction, *models.PageInfo, error)
	Transaction(ctx context.Context, id int64) (*models.Transaction, error)

	// Statements.
	MonthlyStatement(ctx context.Context, year, month int) (*models.MonthlyStatement, error)
	GenerateStatementPDF(ctx context.Context, year, month int) (*models.StatementFile, error)

	// Credit cards.
	ApplyCreditCard(ctx context.Context, app models.CardApplication) (*models.CreditCard, error)
	CreditCards(ctx context.Context) ([]models.CreditCard, error)
	RepayCreditCard(ctx context.Context, cardID int64, amount float64) error

	// Notifications.
	UnreadNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}
