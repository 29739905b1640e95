package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/digibank/internal/client/models"
)

func (a *App) Deposit(ctx context.Context) error {
	accountID, err := GetID(a.reader, "Account id", a.out)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	tx, err := a.payments.Deposit(ctx, accountID, amount, description)
	if err != nil {
		fmt.Fprintln(a.out, "Deposit failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "Deposited %.2f, new balance %.2f\n", tx.Amount, tx.AfterBalance)
	return nil
}

func (a *App) Withdraw(ctx context.Context) error {
	accountID, err := GetID(a.reader, "Account id", a.out)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	tx, err := a.payments.Withdraw(ctx, accountID, amount, description)
	if err != nil {
		fmt.Fprintln(a.out, "Withdrawal failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "Withdrew %.2f, new balance %.2f\n", tx.Amount, tx.AfterBalance)
	return nil
}

func (a *App) Transfer(ctx context.Context) error {
	order := models.TransferOrder{}
	var err error

	if order.FromAccountID, err = GetID(a.reader, "From account id", a.out); err != nil {
		return err
	}
	if order.ToAccountNumber, err = GetSimpleText(a.reader, "To account number", a.out); err != nil {
		return err
	}
	if order.ToAccountName, err = GetSimpleText(a.reader, "Recipient name", a.out); err != nil {
		return err
	}
	if order.Amount, err = GetAmount(a.reader, "Amount", a.out); err != nil {
		return err
	}
	if order.Description, err = GetSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}

	external, err := GetYesNo(a.reader, "External transfer (another bank)?", a.out)
	if err != nil {
		return err
	}
	if external {
		order.TransferType = models.TransferExternal
	} else {
		order.TransferType = models.TransferInternal
	}

	tx, err := a.payments.Transfer(ctx, order)
	if err != nil {
		fmt.Fprintln(a.out, "Transfer failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "Transfer %d is %s\n", tx.ID, strings.ToLower(string(tx.Status)))

	if recent, err := a.payments.RecentTransfers(ctx); err == nil && len(recent) > 0 {
		fmt.Fprintln(a.out, "Recent transfers:")
		for i := range recent {
			fmt.Fprintln(a.out, renderTransaction(&recent[i]))
		}
	}
	return nil
}
