// Package aur queries the AUR RPC interface.
package aur

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/aurx/internal/log"
)

// DefaultTimeout bounds a search request when Client.HTTP is nil.
const DefaultTimeout = 30 * time.Second

// indent is the description indent of a search entry.
const indent = "    "

// Package is one search result. Nullable RPC fields decode as empty.
type Package struct {
	Name           string  `json:"Name"`
	Version        string  `json:"Version"`
	Description    string  `json:"Description"`
	URL            string  `json:"URL"`
	NumVotes       int     `json:"NumVotes"`
	Popularity     float64 `json:"Popularity"`
	OutOfDate      *int64  `json:"OutOfDate"`
	Maintainer     string  `json:"Maintainer"`
	FirstSubmitted int64   `json:"FirstSubmitted"`
	LastModified   int64   `json:"LastModified"`
}

type response struct {
	Type    string    `json:"type"`
	Error   string    `json:"error"`
	Results []Package `json:"results"`
}

// Client searches an AUR instance.
type Client struct {
	BaseURL string // with trailing slash, e.g. "https://aur.archlinux.org/"
	HTTP    *http.Client
}

// Search returns the packages matching keywords, most popular first.
func (c *Client) Search(ctx context.Context, keywords []string) ([]Package, error) {
	endpoint := c.searchURL(keywords)
	log.FromContext(ctx).Debug("aur search", "url", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed: %s", resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("could not parse response: %w", err)
	}
	if body.Type == "error" {
		return nil, fmt.Errorf("search rejected: %s", body.Error)
	}

	slices.SortStableFunc(body.Results, func(a, b Package) int {
		return cmp.Compare(b.Popularity, a.Popularity)
	})
	return body.Results, nil
}

func (c *Client) searchURL(keywords []string) string {
	base := c.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + "rpc/?v=5&type=search&arg=" + url.QueryEscape(strings.Join(keywords, " "))
}

// FormatEntry renders a result as "maintainer/name version [popularity]"
// followed by the indented description. With cols > 0 the description is
// word-wrapped to fit.
func FormatEntry(p Package, cols int) string {
	var b strings.Builder
	if p.Maintainer != "" {
		b.WriteString(p.Maintainer)
		b.WriteByte('/')
	}
	b.WriteString(p.Name)
	if p.Version != "" {
		b.WriteByte(' ')
		b.WriteString(p.Version)
	}
	fmt.Fprintf(&b, " [%s]", strconv.FormatFloat(p.Popularity, 'f', -1, 64))

	if p.Description == "" {
		return b.String()
	}

	desc := p.Description
	if width := cols - len(indent); cols > 0 && width > 0 {
		desc = ansi.Wordwrap(desc, width, "")
	}
	for line := range strings.SplitSeq(desc, "\n") {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}
