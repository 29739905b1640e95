package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/digibank/internal/client/history"
	"github.com/dmitrijs2005/digibank/internal/client/models"
)

// parseHistoryArgs turns "key=value" tokens into engine filters.
// Recognized keys: type, account, range, limit.
func parseHistoryArgs(args []string) (history.Filters, error) {
	var f history.Filters
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return f, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch key {
		case "type":
			f.Type = models.TransactionType(strings.ToUpper(value))
		case "account":
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return f, fmt.Errorf("bad account id %q", value)
			}
			f.AccountID = id
		case "range":
			f.DateRange = value
		case "limit":
			limit, err := strconv.Atoi(value)
			if err != nil {
				return f, fmt.Errorf("bad limit %q", value)
			}
			f.Limit = limit
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
	}
	return f, nil
}

func (a *App) History(ctx context.Context, args []string) error {
	filters, err := parseHistoryArgs(args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	items, page, err := a.history.Query(ctx, filters)
	if err != nil {
		return err
	}
	a.renderHistoryPage(items, page)
	return nil
}

func (a *App) HistoryNext(ctx context.Context) error {
	items, page, err := a.history.NextPage(ctx)
	if errors.Is(err, history.ErrNoPage) {
		fmt.Fprintln(a.out, "Already on the last page.")
		return nil
	}
	if err != nil {
		return err
	}
	a.renderHistoryPage(items, page)
	return nil
}

func (a *App) HistoryPrev(ctx context.Context) error {
	items, page, err := a.history.PreviousPage(ctx)
	if errors.Is(err, history.ErrNoPage) {
		fmt.Fprintln(a.out, "Already on the first page.")
		return nil
	}
	if err != nil {
		return err
	}
	a.renderHistoryPage(items, page)
	return nil
}

func (a *App) HistoryPage(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Bad page number %q\n", args[0])
		return err
	}

	items, page, err := a.history.GoToPage(ctx, n)
	if errors.Is(err, history.ErrNoPage) {
		fmt.Fprintln(a.out, "No such page.")
		return nil
	}
	if err != nil {
		return err
	}
	a.renderHistoryPage(items, page)
	return nil
}

func (a *App) renderHistoryPage(items []models.Transaction, page models.PageInfo) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No transactions match.")
		return
	}
	for i := range items {
		fmt.Fprintln(a.out, renderTransaction(&items[i]))
	}
	nav := ""
	if page.HasPrevious {
		nav += " 'prev'"
	}
	if page.HasNext {
		nav += " 'next'"
	}
	if nav != "" {
		nav = ", use" + nav + " to navigate"
	}
	fmt.Fprintf(a.out, "Page %d of %d%s\n", page.CurrentPage, page.TotalPages, nav)
}
