package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/digibank/internal/client/api"
)

// toastNotifier renders API notifications as one-line toasts on the terminal.
type toastNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func (n *toastNotifier) Notify(level api.Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "[%s] %s\n", level, message)
}
