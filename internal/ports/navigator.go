package ports

import "context"

// PageNavigator opens a graph page for the user
type PageNavigator interface {
	// OpenPage opens the page with the given title
	OpenPage(ctx context.Context, title string) error
}
