package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/digibank/internal/client/models"
)

func (a *App) Cards(ctx context.Context) error {
	list, err := a.cards.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No cards. Use 'applycard' to request one.")
		return nil
	}
	for _, card := range list {
		fmt.Fprintf(a.out, "%4d  %-19s limit %10.2f  used %10.2f  available %10.2f  %s\n",
			card.ID, card.CardNumber, card.CreditLimit, card.UsedCredit, card.Available(), card.Status)
	}
	return nil
}

func (a *App) ApplyCard(ctx context.Context) error {
	app := models.CardApplication{}
	var err error

	if app.RequestedLimit, err = GetAmount(a.reader, "Requested limit", a.out); err != nil {
		return err
	}
	if app.MonthlyIncome, err = GetAmount(a.reader, "Monthly income", a.out); err != nil {
		return err
	}
	if app.Employer, err = GetSimpleText(a.reader, "Employer (optional)", a.out); err != nil {
		return err
	}

	card, err := a.cards.Apply(ctx, app)
	if err != nil {
		fmt.Fprintln(a.out, "Application failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "Application submitted, card %s is %s\n", card.CardNumber, card.Status)
	return nil
}

func (a *App) RepayCard(ctx context.Context) error {
	cardID, err := GetID(a.reader, "Card id", a.out)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}

	if err := a.cards.Repay(ctx, cardID, amount); err != nil {
		fmt.Fprintln(a.out, "Repayment failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Repayment accepted.")
	return nil
}
