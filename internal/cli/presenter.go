package cli

import (
	"fmt"
	"io"

	"github.com/cardkeeper/cardkeeper/internal/dashboard"
	"github.com/cardkeeper/cardkeeper/internal/dateutil"
	"github.com/cardkeeper/cardkeeper/internal/workflow"
)

// ConsolePresenter draws workflow views and notifications to a writer.
type ConsolePresenter struct {
	out io.Writer
}

// NewConsolePresenter creates a presenter writing to out.
func NewConsolePresenter(out io.Writer) *ConsolePresenter {
	return &ConsolePresenter{out: out}
}

// RenderView draws a named dashboard view. Unknown view names are
// ignored so new views degrade gracefully.
func (p *ConsolePresenter) RenderView(name string, data any) {
	switch name {
	case dashboard.ViewUpcoming:
		if items, ok := data.([]dashboard.UpcomingItem); ok {
			p.renderUpcoming(items)
		}
	case dashboard.ViewActionRequired:
		if items, ok := data.([]dashboard.ActionItem); ok {
			p.renderActionRequired(items)
		}
	case dashboard.ViewPendingPayments:
		if items, ok := data.([]dashboard.PendingItem); ok {
			p.renderPendingPayments(items)
		}
	case dashboard.ViewCardDetail:
		if detail, ok := data.(dashboard.DetailView); ok {
			p.renderDetail(detail)
		}
	}
}

// ShowNotification prints a styled toast line.
func (p *ConsolePresenter) ShowNotification(message string, severity workflow.Severity) {
	switch severity {
	case workflow.SeveritySuccess:
		fmt.Fprintln(p.out, FormatSuccess(message))
	case workflow.SeverityError:
		fmt.Fprintln(p.out, FormatError(message))
	default:
		fmt.Fprintln(p.out, FormatInfo(message))
	}
}

// ShowFieldError prints a validation message attributed to its field.
func (p *ConsolePresenter) ShowFieldError(field, message string) {
	fmt.Fprintln(p.out, ErrorStyle.Render(fmt.Sprintf("  %s: %s", field, message)))
}

// ClearFieldErrors is a no-op on the console; errors scroll away.
func (p *ConsolePresenter) ClearFieldErrors() {}

// RenderDashboard draws the full aggregated dashboard.
func (p *ConsolePresenter) RenderDashboard(view *dashboard.View) {
	fmt.Fprintln(p.out, FormatTitle("Dashboard"))
	p.renderUpcoming(view.Upcoming)
	p.renderActionRequired(view.ActionRequired)
	p.renderPendingPayments(view.PendingPayments)
	p.renderDetail(view.Detail)
}

func (p *ConsolePresenter) renderUpcoming(items []dashboard.UpcomingItem) {
	fmt.Fprintln(p.out, BoldStyle.Render("Upcoming statements"))
	if len(items) == 0 {
		fmt.Fprintln(p.out, SubtleStyle.Render("  none"))
		return
	}
	for _, item := range items {
		fmt.Fprintf(p.out, "  %s %s\n",
			TableCellStyle.Render(dateutil.FormatShortDate(item.NextStatementDate)),
			item.CardName)
	}
}

func (p *ConsolePresenter) renderActionRequired(items []dashboard.ActionItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(p.out, WarningStyle.Render(WarningIcon+" Action required"))
	for _, item := range items {
		fmt.Fprintf(p.out, "  %s %s needs statement data\n",
			item.CardName, dateutil.FormatLastFour(item.LastFour))
	}
}

func (p *ConsolePresenter) renderPendingPayments(items []dashboard.PendingItem) {
	fmt.Fprintln(p.out, BoldStyle.Render("Pending payments"))
	if len(items) == 0 {
		fmt.Fprintln(p.out, SubtleStyle.Render("  none"))
		return
	}
	for _, item := range items {
		line := fmt.Sprintf("  %s %s due %s (pay by %s)",
			item.CardName,
			dateutil.FormatCurrency(item.Amount),
			dateutil.FormatShortDate(item.DueDate),
			dateutil.FormatShortDate(item.RecommendedDate))
		if item.Scheduled {
			line += SuccessStyle.Render(" " + SuccessIcon + " scheduled")
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p *ConsolePresenter) renderDetail(detail dashboard.DetailView) {
	if !detail.HasCard {
		fmt.Fprintln(p.out, SubtleStyle.Render("No cards on file"))
		return
	}
	content := fmt.Sprintf("Due: %s\nAmount: %s\nPay by: %s",
		detail.DueDate, detail.Amount, detail.RecommendedDate)
	fmt.Fprintln(p.out, RenderBox(detail.CardName, content))
}
