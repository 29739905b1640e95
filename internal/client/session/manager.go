// Package session owns the client's trust state: the bearer credential, the
// current user identity, and where the credential is persisted. All other
// components obtain identity and authentication through the Manager; nothing
// else reads or writes the credential stores.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/digibank/internal/client/api"
	"github.com/dmitrijs2005/digibank/internal/client/models"
	"github.com/dmitrijs2005/digibank/internal/client/storage"
	"github.com/dmitrijs2005/digibank/internal/logging"
)

// State is the authentication lifecycle state.
type State string

const (
	StateLoggedOut      State = "logged_out"
	StateAuthenticating State = "authenticating"
	StateLoggedIn       State = "logged_in"
)

// Persistence keys. The durable store carries the token and the cached
// identity; the ephemeral store carries the token only. Nothing else is
// ever persisted.
const (
	KeyAuthToken = "auth_token"
	KeyUserData  = "user_data"
)

// ErrSuperseded is returned when an operation finished after a newer
// operation had already taken over; its result was discarded instead of
// overwriting newer state.
var ErrSuperseded = errors.New("superseded by a newer operation")

// Manager is the session/authentication lifecycle manager.
//
// Operations snapshot a generation counter before their network call and
// apply their completion only while that generation is still current, so a
// stale response can never clobber state installed by a later operation.
type Manager struct {
	api       api.Client
	durable   storage.Store
	ephemeral storage.Store
	log       logging.Logger

	mu    sync.Mutex
	state State
	user  *models.User
	gen   uint64
}

// NewManager wires the manager to its collaborators. The durable store
// survives restarts; the ephemeral store lives as long as the process.
func NewManager(client api.Client, durable, ephemeral storage.Store, log logging.Logger) *Manager {
	return &Manager{
		api:       client,
		durable:   durable,
		ephemeral: ephemeral,
		log:       log,
		state:     StateLoggedOut,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the authenticated identity, or nil when logged out.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// begin starts a new authentication attempt: it invalidates every older
// in-flight operation and moves the machine to Authenticating. It returns
// the generation the caller must present when applying its completion, plus
// the state to fall back to on failure.
func (m *Manager) begin() (uint64, State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	prev := m.state
	m.state = StateAuthenticating
	return m.gen, prev
}

// Login authenticates with the remote API. Empty username or password is
// rejected locally without any network traffic. On success the credential is
// persisted durably when remember is true, ephemerally otherwise; the other
// location is emptied so at most one store holds live data.
func (m *Manager) Login(ctx context.Context, username, password string, remember bool) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &api.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, &api.ValidationError{Field: "password", Reason: "must not be empty"}
	}

	gen, prev := m.begin()

	data, err := m.api.Login(ctx, username, password)
	if err != nil {
		m.mu.Lock()
		if gen == m.gen {
			// failed login leaves the previous session untouched
			m.state = prev
		}
		m.mu.Unlock()
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return nil, ErrSuperseded
	}

	if err := m.persistCredential(ctx, data, remember); err != nil {
		m.state = prev
		return nil, err
	}

	user := data.User
	m.api.SetToken(data.Token)
	m.user = &user
	m.state = StateLoggedIn
	m.log.Info(ctx, "logged in", "username", user.Username, "remember", remember)
	return &user, nil
}

// persistCredential writes the new credential to exactly one store and
// removes whatever the other one held. Called with m.mu held.
func (m *Manager) persistCredential(ctx context.Context, data *models.LoginData, remember bool) error {
	if remember {
		raw, err := json.Marshal(data.User)
		if err != nil {
			return fmt.Errorf("encoding user data: %w", err)
		}
		if err := m.durable.SetMany(ctx, map[string]string{
			KeyAuthToken: data.Token,
			KeyUserData:  string(raw),
		}); err != nil {
			return fmt.Errorf("saving credential: %w", err)
		}
		return m.ephemeral.Delete(ctx, KeyAuthToken)
	}

	if err := m.ephemeral.Set(ctx, KeyAuthToken, data.Token); err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	if err := m.durable.Delete(ctx, KeyAuthToken); err != nil {
		return err
	}
	return m.durable.Delete(ctx, KeyUserData)
}

// Register validates the form locally and creates the account remotely.
// A successful registration does not authenticate; the caller still logs in.
func (m *Manager) Register(ctx context.Context, form models.RegisterForm) error {
	if err := validateRegistration(form); err != nil {
		return err
	}
	return m.api.Register(ctx, form)
}

func validateRegistration(form models.RegisterForm) error {
	required := []struct {
		field, value string
	}{
		{"fullname", form.FullName},
		{"username", form.Username},
		{"email", form.Email},
		{"phone", form.Phone},
		{"password", form.Password},
		{"password confirmation", form.ConfirmPassword},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &api.ValidationError{Field: r.field, Reason: "must not be empty"}
		}
	}
	if form.Password != form.ConfirmPassword {
		return &api.ValidationError{Field: "password confirmation", Reason: "passwords do not match"}
	}
	if !form.Terms {
		return &api.ValidationError{Field: "terms", Reason: "must be accepted"}
	}
	return nil
}

// ForgotPassword asks the API to start a password reset for the given email.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return &api.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return m.api.ForgotPassword(ctx, email)
}

// ResetPassword completes a reset started by ForgotPassword using the token
// from the reset email. Does not authenticate; the caller logs in with the
// new password.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return &api.ValidationError{Field: "token", Reason: "must not be empty"}
	}
	if newPassword == "" {
		return &api.ValidationError{Field: "password", Reason: "must not be empty"}
	}
	return m.api.ResetPassword(ctx, token, newPassword)
}

// ChangePassword replaces the logged-in user's password. The session and the
// issued token stay valid.
func (m *Manager) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return &api.ValidationError{Field: "password", Reason: "must not be empty"}
	}
	if newPassword == oldPassword {
		return &api.ValidationError{Field: "password", Reason: "must differ from the current password"}
	}
	return m.api.ChangePassword(ctx, oldPassword, newPassword)
}

// Logout notifies the remote API best-effort and then drops all local trust
// state unconditionally: both stores, the cached identity, and the client
// credential. Local state never outlives a logout request.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.api.Logout(ctx); err != nil {
		m.log.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}
	m.clearAll(ctx)
	return nil
}

// clearAll wipes the credential everywhere and lands in LoggedOut. It also
// bumps the generation so any in-flight operation gets discarded on return.
func (m *Manager) clearAll(ctx context.Context) {
	m.mu.Lock()
	m.gen++
	m.user = nil
	m.state = StateLoggedOut
	m.mu.Unlock()

	m.wipeCredential(ctx)
}

// clearIfCurrent applies clearAll only while gen is still the latest, so a
// failed operation that lost the race cannot tear down the session installed
// by the one that won it. Reports whether the clear happened.
func (m *Manager) clearIfCurrent(ctx context.Context, gen uint64) bool {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return false
	}
	m.gen++
	m.user = nil
	m.state = StateLoggedOut
	m.mu.Unlock()

	m.wipeCredential(ctx)
	return true
}

func (m *Manager) wipeCredential(ctx context.Context) {
	m.api.ClearToken()
	for _, key := range []string{KeyAuthToken, KeyUserData} {
		if err := m.durable.Delete(ctx, key); err != nil {
			m.log.Error(ctx, "failed to clear durable store", "key", key, "error", err)
		}
	}
	if err := m.ephemeral.Delete(ctx, KeyAuthToken); err != nil {
		m.log.Error(ctx, "failed to clear ephemeral store", "error", err)
	}
}

// Restore rehydrates the session from the durable store at process start.
// Without a saved token it does nothing, issuing no network call. A saved
// token is verified against the current-identity endpoint; any failure means
// the credential is invalid, so everything is cleared and the machine lands
// in LoggedOut. Returns the restored identity, or nil when no session was
// restored.
func (m *Manager) Restore(ctx context.Context) (*models.User, error) {
	token, err := m.durable.Get(ctx, KeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("reading saved credential: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	// A token that is already past its exp claim cannot possibly be
	// accepted; skip the round trip and discard it right away.
	if tokenExpired(token) {
		m.log.Info(ctx, "saved credential expired, discarding")
		m.clearAll(ctx)
		return nil, nil
	}

	gen, _ := m.begin()
	m.api.SetToken(token)

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		// never assume a stale credential is still valid; but if a newer
		// operation already took over, this failure has nothing to clear
		if !m.clearIfCurrent(ctx, gen) {
			return nil, ErrSuperseded
		}
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return nil, ErrSuperseded
	}
	m.user = user
	m.state = StateLoggedIn
	m.log.Info(ctx, "session restored", "username", user.Username)
	return user, nil
}

// tokenExpired reports whether the token carries an exp claim that already
// passed. The signature is not checked here; that is the server's job. A
// token that cannot be parsed is left for the server to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
