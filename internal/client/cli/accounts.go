package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/digibank/internal/client/models"
)

func (a *App) Accounts(ctx context.Context) error {
	list, err := a.accounts.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No accounts yet. Use 'open' to create one.")
		return nil
	}
	for _, acc := range list {
		fmt.Fprintf(a.out, "%4d  %-16s %-10s %12.2f  %s\n",
			acc.ID, acc.AccountNumber, acc.Type, acc.Balance, acc.AccountName)
	}
	return nil
}

func (a *App) OpenAccount(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Account name", a.out)
	if err != nil {
		return err
	}
	accountType, err := GetSimpleText(a.reader, "Type (SAVINGS/CHECKING)", a.out)
	if err != nil {
		return err
	}

	acc, err := a.accounts.Open(ctx, name, strings.ToUpper(strings.TrimSpace(accountType)))
	if err != nil {
		fmt.Fprintln(a.out, "Could not open account:", err)
		return err
	}
	fmt.Fprintf(a.out, "Opened %s account %s\n", acc.Type, acc.AccountNumber)
	return nil
}

func (a *App) CloseAccount(ctx context.Context) error {
	id, err := GetID(a.reader, "Account id to close", a.out)
	if err != nil {
		return err
	}
	confirmed, err := GetYesNo(a.reader, fmt.Sprintf("Really close account %d?", id), a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.accounts.Close(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Could not close account:", err)
		return err
	}
	fmt.Fprintln(a.out, "Account closed.")
	return nil
}

func renderTransaction(tx *models.Transaction) string {
	sign := "-"
	if tx.Inbound() {
		sign = "+"
	}
	return fmt.Sprintf("%6d  %s  %-8s %s%10.2f  %-9s %s",
		tx.ID, tx.TransactionTime.Format("2006-01-02 15:04"),
		tx.Type, sign, tx.Amount, tx.Status, tx.Description)
}
