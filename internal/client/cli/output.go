package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/iudanet/medkeeper/internal/client/sync"
	"github.com/iudanet/medkeeper/internal/models"
)

type styles struct {
	title   lipgloss.Style
	subtle  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	header  lipgloss.Style
	color   bool
}

// newStyles без цвета возвращает пустые стили, Render тогда отдает текст как есть
func newStyles(color bool) styles {
	if !color {
		return styles{}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		color:   true,
	}
}

func (c *Cli) title(format string, a ...any) {
	c.io.Println(c.styles.title.Render(fmt.Sprintf(format, a...)))
}

func (c *Cli) success(format string, a ...any) {
	c.io.Println(c.styles.success.Render("✓ " + fmt.Sprintf(format, a...)))
}

func (c *Cli) warning(format string, a ...any) {
	c.io.Println(c.styles.warning.Render("Warning: " + fmt.Sprintf(format, a...)))
}

func (c *Cli) hint(format string, a ...any) {
	c.io.Println(c.styles.subtle.Render(fmt.Sprintf(format, a...)))
}

// pushState описывает, дошло ли изменение до сервера
func pushState(pushed bool) string {
	if pushed {
		return "synced"
	}
	return "pending upload"
}

func syncState(rec *models.Record) string {
	if rec.IsPending() {
		return "pending"
	}
	return fmt.Sprintf("#%d", *rec.RemoteID)
}

// recordsTable рендерит записи таблицей
func (c *Cli) recordsTable(recs []*models.Record) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "DOSE", "FORM", "EXPIRY", "REMOTE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.styles.header
			}
			return lipgloss.NewStyle()
		})

	for _, rec := range recs {
		t.Row(
			fmt.Sprintf("%d", rec.LocalID),
			rec.Name,
			rec.Dose,
			rec.Form,
			rec.Expiry,
			syncState(rec),
		)
	}
	return t.String()
}

func (c *Cli) renderOutcome(o sync.Outcome) {
	switch {
	case o.Success:
		c.success("%s", o.Message)
	case o.Offline():
		c.warning("server unreachable, changes stay local until the next sync")
	default:
		c.io.Println(c.styles.failure.Render(o.Message))
	}
}
