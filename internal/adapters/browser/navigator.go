package browser

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"roamstats/internal/ports"
)

// DefaultAppURL is the Roam web app origin
const DefaultAppURL = "https://roamresearch.com"

// PageResolver finds the uid of a page by title
type PageResolver interface {
	ResolvePageUID(ctx context.Context, title string) (uid string, ok bool, err error)
}

// Navigator implements ports.PageNavigator by opening the page in the
// default browser
type Navigator struct {
	appURL   string
	graph    string
	resolver PageResolver
	open     func(uri string) error
}

var _ ports.PageNavigator = (*Navigator)(nil)

// NewNavigator creates a navigator for graph
func NewNavigator(graph string, resolver PageResolver) *Navigator {
	return &Navigator{
		appURL:   DefaultAppURL,
		graph:    graph,
		resolver: resolver,
		open:     openURI,
	}
}

// OpenPage resolves title to a page uid and opens it
func (n *Navigator) OpenPage(ctx context.Context, title string) error {
	uid, ok, err := n.resolver.ResolvePageUID(ctx, title)
	if err != nil {
		return fmt.Errorf("resolve page %q: %w", title, err)
	}
	if !ok {
		return fmt.Errorf("page %q not found in graph %s", title, n.graph)
	}
	uri, err := n.BuildURL(uid)
	if err != nil {
		return err
	}
	return n.open(uri)
}

// BuildURL constructs the web app URL of a page uid
func (n *Navigator) BuildURL(uid string) (string, error) {
	if uid == "" || strings.ContainsAny(uid, "/#?") {
		return "", fmt.Errorf("invalid page uid: %q", uid)
	}
	return fmt.Sprintf("%s/#/app/%s/page/%s",
		strings.TrimRight(n.appURL, "/"),
		url.PathEscape(n.graph),
		url.PathEscape(uid),
	), nil
}

func openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
