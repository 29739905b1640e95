// Package models defines the plain data types exchanged between the banking
// API, the client services, and the presentation layer. All types mirror the
// JSON shapes the remote API produces; none of them carry behavior beyond
// small normalization helpers.
package models

// User is the identity of the currently authenticated user. It is owned by
// the session manager, replaced wholesale on login or refresh, and never
// mutated field by field.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// DisplayName returns the name to show in prompts and headers.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// LoginData is the payload of a successful auth/login call.
type LoginData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterForm holds the fields collected for auth/register. ConfirmPassword
// and Terms are validated locally and never sent over the wire.
type RegisterForm struct {
	FullName        string `json:"fullname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Terms           bool   `json:"-"`
}
