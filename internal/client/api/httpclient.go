package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// HTTPClient is the concrete Client speaking HTTP + JSON envelopes against
// the banking API. One instance is shared by all services; the token is the
// only mutable field and is guarded by a mutex.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	notifier Notifier
	log      logging.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient constructs a client for the given base URL. A nil notifier
// is replaced with NopNotifier. The timeout bounds every single request;
// there is no retry and no mid-flight cancellation beyond ctx.
func NewHTTPClient(baseURL string, timeout time.Duration, notifier Notifier, log logging.Logger) *HTTPClient {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		notifier: notifier,
		log:      log,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the JSON shape error responses may carry. The API is not
// consistent about the field name, so both are accepted.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Request performs a single call against the API and normalizes the answer
// into an Envelope. Failures are pushed to the notifier exactly once and
// then returned:
//
//   - transport failure or undecodable body -> wrapped ErrUnavailable
//   - HTTP 401/403                          -> wrapped ErrUnauthorized
//   - other non-2xx                         -> *RequestError
//
// A 2xx response is returned as-is even when its envelope says
// success:false; interpreting the business outcome is the caller's job.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, body any, requiresAuth bool) (*Envelope, error) {
	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	var reader io.Reader
	if body != nil && (method == http.MethodPost || method == http.MethodPut) {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if requiresAuth {
		if token := c.currentToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(ctx, method, endpoint, fmt.Errorf("%s %s: %w", method, endpoint, ErrUnavailable))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(ctx, method, endpoint, fmt.Errorf("reading response: %w", ErrUnavailable))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(ctx, method, endpoint, c.statusError(resp, raw))
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, c.fail(ctx, method, endpoint, fmt.Errorf("malformed response body: %w", ErrUnavailable))
	}
	if env.Pagination != nil {
		env.Pagination.Normalize()
	}
	return &env, nil
}

// statusError turns a non-2xx response into the appropriate error value.
// The body is parsed for a human-readable message; if that fails, one is
// synthesized from the HTTP status line.
func (c *HTTPClient) statusError(resp *http.Response, raw []byte) error {
	msg := ""
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.Message != "" {
			msg = eb.Message
		} else if eb.Error != "" {
			msg = eb.Error
		}
	}
	if msg == "" {
		msg = "HTTP " + resp.Status
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%s: %w", msg, ErrUnauthorized)
	}
	return &RequestError{StatusCode: resp.StatusCode, Message: msg}
}

// fail emits the single user-facing notification for a failed request and
// hands the error back to the caller unchanged.
func (c *HTTPClient) fail(ctx context.Context, method, endpoint string, err error) error {
	if c.log != nil {
		c.log.Error(ctx, "api request failed", "method", method, "endpoint", endpoint, "error", err)
	}
	c.notifier.Notify(LevelError, err.Error())
	return err
}

// ---- typed operations ----

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginData, error) {
	body := map[string]string{"username": username, "password": password}
	env, err := c.Request(ctx, http.MethodPost, "auth/login", body, false)
	if err != nil {
		return nil, err
	}
	data, err := decode[models.LoginData](env)
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *HTTPClient) Register(ctx context.Context, form models.RegisterForm) error {
	env, err := c.Request(ctx, http.MethodPost, "auth/register", form, false)
	if err != nil {
		return err
	}
	return env.Err()
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	env, err := c.Request(ctx, http.MethodPost, "auth/logout", nil, true)
	if err != nil {
		return err
	}
	return env.Err()
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	env, err := c.Request(ctx, http.MethodPost, "auth/forgot-password", map[string]string{"email": email}, false)
	if err != nil {
		return err
	}
	return env.Err()
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	env, err := c.Request(ctx, http.MethodPost, "auth/reset-password", body, false)
	if err != nil {
		return err
	}
	return env.Err()
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	env, err := c.Request(ctx, http.MethodGet, "users/me", nil, true)
	if err != nil {
		return nil, err
	}
	user, err := decode[models.User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	env, err := c.Request(ctx, http.MethodPost, "users/change-password", body, true)
	if err != nil {
		return err
	}
	return env.Err()
}

func (c *HTTPClient) Accounts(ctx context.Context) ([]models.Account, error) {
	env, err := c.Request(ctx, http.MethodGet, "accounts", nil, true)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Account](env)
}

func (c *HTTPClient) Account(ctx context.Context, id int64) (*models.Account, error) {
	env, err := c.Request(ctx, http.MethodGet, fmt.Sprintf("accounts/%d", id), nil, true)
	if err != nil {
		return nil, err
	}
	acc, err := decode[models.Account](env)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *HTTPClient) CreateAccount(ctx context.Context, name, accountType string) (*models.Account, error) {
	body := map[string]string{"accountName": name, "type": accountType}
	env, err := c.Request(ctx, http.MethodPost, "accounts", body, true)
	if err != nil {
		return nil, err
	}
	acc, err := decode[models.Account](env)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *HTTPClient) CloseAccount(ctx context.Context, id int64) error {
	env, err := c.Request(ctx, http.MethodPost, fmt.Sprintf("accounts/%d/close", id), nil, true)
	if err != nil {
		return err
	}
	return env.Err()
}

type movementBody struct {
	AccountID   int64   `json:"accountId"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

func (c *HTTPClient) Deposit(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error) {
	return c.movement(ctx, "transactions/deposit", accountID, amount, description)
}

func (c *HTTPClient) Withdraw(ctx context.Context, accountID int64, amount float64, description string) (*models.Transaction, error) {
	return c.movement(ctx, "transactions/withdraw", accountID, amount, description)
}

func (c *HTTPClient) movement(ctx context.Context, endpoint string, accountID int64, amount float64, description string) (*models.Transaction, error) {
	body := movementBody{AccountID: accountID, Amount: amount, Description: description}
	env, err := c.Request(ctx, http.MethodPost, endpoint, body, true)
	if err != nil {
		return nil, err
	}
	tx, err := decode[models.Transaction](env)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *HTTPClient) Transfer(ctx context.Context, order models.TransferOrder) (*models.Transaction, error) {
	env, err := c.Request(ctx, http.MethodPost, "transactions/transfer", order, true)
	if err != nil {
		return nil, err
	}
	tx, err := decode[models.Transaction](env)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *HTTPClient) TransactionHistory(ctx context.Context, query url.Values) ([]models.Transaction, *models.PageInfo, error) {
	endpoint := "transactions/history"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	env, err := c.Request(ctx, http.MethodGet, endpoint, nil, true)
	if err != nil {
		return nil, nil, err
	}
	records, err := decode[[]models.Transaction](env)
	if err != nil {
		return nil, nil, err
	}
	return records, env.Pagination, nil
}

func (c *HTTPClient) Transaction(ctx context.Context, id int64) (*models.Transaction, error) {
	env, err := c.Request(ctx, http.MethodGet, fmt.Sprintf("transactions/%d", id), nil, true)
	if err != nil {
		return nil, err
	}
	tx, err := decode[models.Transaction](env)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *HTTPClient) MonthlyStatement(ctx context.Context, year, month int) (*models.MonthlyStatement, error) {
	endpoint := fmt.Sprintf("statements/monthly?year=%d&month=%d", year, month)
	env, err := c.Request(ctx, http.MethodGet, endpoint, nil, true)
	if err != nil {
		return nil, err
	}
	st, err := decode[models.MonthlyStatement](env)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) GenerateStatementPDF(ctx context.Context, year, month int) (*models.StatementFile, error) {
	body := map[string]int{"year": year, "month": month}
	env, err := c.Request(ctx, http.MethodPost, "statements/generate-pdf", body, true)
	if err != nil {
		return nil, err
	}
	f, err := decode[models.StatementFile](env)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) ApplyCreditCard(ctx context.Context, app models.CardApplication) (*models.CreditCard, error) {
	env, err := c.Request(ctx, http.MethodPost, "credit-cards/apply", app, true)
	if err != nil {
		return nil, err
	}
	card, err := decode[models.CreditCard](env)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *HTTPClient) CreditCards(ctx context.Context) ([]models.CreditCard, error) {
	env, err := c.Request(ctx, http.MethodGet, "credit-cards/my", nil, true)
	if err != nil {
		return nil, err
	}
	return decode[[]models.CreditCard](env)
}

func (c *HTTPClient) RepayCreditCard(ctx context.Context, cardID int64, amount float64) error {
	body := map[string]float64{"amount": amount}
	env, err := c.Request(ctx, http.MethodPost, fmt.Sprintf("credit-cards/%d/repay", cardID), body, true)
	if err != nil {
		return err
	}
	return env.Err()
}

func (c *HTTPClient) UnreadNotifications(ctx context.Context) ([]models.Notification, error) {
	env, err := c.Request(ctx, http.MethodGet, "notifications/unread", nil, true)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Notification](env)
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id int64) error {
	env, err := c.Request(ctx, http.MethodPost, fmt.Sprintf("notifications/%d/read", id), nil, true)
	if err != nil {
		return err
	}
	return env.Err()
}
