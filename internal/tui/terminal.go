package tui

import (
	"fmt"
	"io"

	"github.com/orderpad/orderpad/internal/models"
	"github.com/orderpad/orderpad/internal/view"
)

// Terminal applies rendered output to a writer. It is the thin adapter between
// the pure view snapshots and the terminal, and implements the controller's
// Presenter and Notifier.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a terminal adapter writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// ShowSelector replaces the product selector listing.
func (t *Terminal) ShowSelector(catalog []models.Product) {
	fmt.Fprint(t.out, Selector(catalog))
}

// ShowOrder replaces the order table and total.
func (t *Terminal) ShowOrder(snap view.Snapshot) {
	fmt.Fprint(t.out, Table(snap))
}

// Notify surfaces an informational notice.
func (t *Terminal) Notify(msg string) {
	fmt.Fprintln(t.out, Notice(msg))
}

// NotifyError surfaces a blocking error notice.
func (t *Terminal) NotifyError(msg string) {
	fmt.Fprintln(t.out, ErrorNotice(msg))
}
