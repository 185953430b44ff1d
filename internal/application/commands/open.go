package commands

import (
	"context"
	"strings"

	"roamstats/internal/application"
	"roamstats/internal/domain"
	"roamstats/internal/ports"
)

// OpenPageCommand opens a graph page by title
type OpenPageCommand struct {
	nav   ports.PageNavigator
	Title string
}

// NewOpenPageCommand creates a new OpenPageCommand
func NewOpenPageCommand(nav ports.PageNavigator, title string) *OpenPageCommand {
	return &OpenPageCommand{
		nav:   nav,
		Title: title,
	}
}

// Validate checks the title
func (c *OpenPageCommand) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return &application.ValidationError{
			Field:   "title",
			Message: application.ErrEmptyTitle.Error(),
		}
	}
	return nil
}

// Execute opens the page
func (c *OpenPageCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.nav.OpenPage(ctx, c.Title)
}

// BlockquotePage is the page that collects [[>]] references
const BlockquotePage = ">"

// PageForKey returns the page a drawer row links to, if any. Tags link to
// their own page and the blockquote row links to the ">" page.
func PageForKey(k domain.Key) (string, bool) {
	if k.Kind == domain.KeyTag {
		return string(k.Tag), true
	}
	if k.Metric == domain.MetricBlockquotes {
		return BlockquotePage, true
	}
	return "", false
}
