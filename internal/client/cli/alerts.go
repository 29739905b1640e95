package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) Alerts(ctx context.Context) error {
	list, err := a.alerts.Unread(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No unread notifications.")
		return nil
	}
	for _, n := range list {
		fmt.Fprintf(a.out, "%4d  %s  %s: %s\n",
			n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Title, n.Message)
	}
	return nil
}

func (a *App) MarkAlertRead(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: read <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Bad notification id %q\n", args[0])
		return err
	}

	if err := a.alerts.MarkRead(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Could not mark as read:", err)
		return err
	}
	fmt.Fprintln(a.out, "Marked as read.")
	return nil
}
