package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/orderpad/orderpad/internal/models"
	"github.com/orderpad/orderpad/internal/view"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	noticeStyle = lipgloss.NewStyle().Foreground(success)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(danger)
)

// FormatPrice renders a price without trailing zeros, the way the host page
// printed raw numbers.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// OptionLabel formats a selector entry: "<title> - <price> руб.".
func OptionLabel(p models.Product) string {
	return fmt.Sprintf("%s - %s руб.", p.Title, FormatPrice(p.Price))
}

// Selector renders the product selector listing.
func Selector(catalog []models.Product) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Products"))
	b.WriteString("\n")

	if len(catalog) == 0 {
		b.WriteString(dimStyle.Render("  (no products available)"))
		b.WriteString("\n")
		return b.String()
	}

	for _, p := range catalog {
		b.WriteString(fmt.Sprintf("  [%d] %s\n", p.ID, OptionLabel(p)))
	}
	return b.String()
}

// Table renders the order table and running total.
func Table(snap view.Snapshot) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Order"))
	b.WriteString("\n")

	if len(snap.Rows) == 0 {
		b.WriteString(dimStyle.Render("  (empty)"))
		b.WriteString("\n")
	}
	for _, row := range snap.Rows {
		b.WriteString(fmt.Sprintf("  %-24s %4d %10s\n", row.Title, row.Quantity, FormatPrice(row.LineTotal)))
	}

	b.WriteString(fmt.Sprintf("  Total: %s\n", FormatPrice(snap.Total)))
	return b.String()
}

// Notice styles an informational user notice.
func Notice(msg string) string {
	return noticeStyle.Render(msg)
}

// ErrorNotice styles a blocking error notice.
func ErrorNotice(msg string) string {
	return errorStyle.Render(msg)
}
