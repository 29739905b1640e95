package cli

import (
	"context"
	"fmt"
)

func (a *App) readPeriod() (year, month int, err error) {
	y, err := GetID(a.reader, "Year", a.out)
	if err != nil {
		return 0, 0, err
	}
	m, err := GetID(a.reader, "Month (1-12)", a.out)
	if err != nil {
		return 0, 0, err
	}
	return int(y), int(m), nil
}

func (a *App) Statement(ctx context.Context) error {
	year, month, err := a.readPeriod()
	if err != nil {
		return err
	}

	st, err := a.statements.Monthly(ctx, year, month)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load statement:", err)
		return err
	}

	fmt.Fprintf(a.out, "Statement %d-%02d\n", st.Year, st.Month)
	fmt.Fprintf(a.out, "  opening balance %12.2f\n", st.OpeningBal)
	fmt.Fprintf(a.out, "  income          %12.2f\n", st.TotalIncome)
	fmt.Fprintf(a.out, "  expense         %12.2f\n", st.TotalExpense)
	fmt.Fprintf(a.out, "  closing balance %12.2f\n", st.ClosingBal)
	fmt.Fprintf(a.out, "  transactions    %12d\n", st.Transactions)
	return nil
}

func (a *App) StatementPDF(ctx context.Context) error {
	year, month, err := a.readPeriod()
	if err != nil {
		return err
	}

	file, err := a.statements.GeneratePDF(ctx, year, month)
	if err != nil {
		fmt.Fprintln(a.out, "Could not generate PDF:", err)
		return err
	}
	fmt.Fprintln(a.out, "Download:", file.URL)
	return nil
}
