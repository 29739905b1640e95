package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/digibank/internal/client/models"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}
	remember, err := GetYesNo(a.reader, "Stay logged in on this machine?", a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, username, password, remember)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Welcome,", user.DisplayName())
	return nil
}

func (a *App) Register(ctx context.Context) error {
	form := models.RegisterForm{}
	var err error

	if form.FullName, err = GetSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if form.Username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Phone, err = GetSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if form.Password, err = GetPassword(a.out, "Password"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = GetPassword(a.out, "Confirm password"); err != nil {
		return err
	}
	if form.Terms, err = GetYesNo(a.reader, "Accept the terms of service?", a.out); err != nil {
		return err
	}

	if err := a.session.Register(ctx, form); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Account created. You can log in now.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.history.Reset()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Account email", a.out)
	if err != nil {
		return err
	}
	if err := a.session.ForgotPassword(ctx, email); err != nil {
		fmt.Fprintln(a.out, "Could not start reset:", err)
		return err
	}
	fmt.Fprintln(a.out, "If the address is known, a reset email is on its way.")
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Reset token (from the email)", a.out)
	if err != nil {
		return err
	}
	newPassword, err := GetPassword(a.out, "New password")
	if err != nil {
		return err
	}
	if err := a.session.ResetPassword(ctx, token, newPassword); err != nil {
		fmt.Fprintln(a.out, "Reset failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Password reset. You can log in now.")
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := GetPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	newPassword, err := GetPassword(a.out, "New password")
	if err != nil {
		return err
	}
	if err := a.session.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		fmt.Fprintln(a.out, "Password change failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %d)\n", user.DisplayName(), user.Email, user.ID)
	return nil
}
