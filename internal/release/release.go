// Package release talks to the GitHub releases API and selects installable
// assets from a release's attachments.
package release

import (
	"net/http"
	"time"
)

const githubAPIBase = "https://api.github.com"

// Release is the subset of a GitHub release this tool consumes.
type Release struct {
	TagName   string    `json:"tag_name"`
	Assets    []Asset   `json:"assets"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Asset represents a downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Client fetches release metadata for a single GitHub repository.
type Client struct {
	repo       string
	apiBase    string
	httpClient *http.Client
	mirror     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API base URL (useful for testing).
func WithAPIBase(base string) Option {
	return func(cl *Client) {
		cl.apiBase = base
	}
}

// WithMirror sets a mirror URL that asset downloads are rewritten to.
func WithMirror(mirror string) Option {
	return func(cl *Client) {
		cl.mirror = mirror
	}
}

// NewClient creates a Client for the given "owner/repo" repository.
func NewClient(repo string, opts ...Option) *Client {
	c := &Client{
		repo:    repo,
		apiBase: githubAPIBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repo returns the "owner/repo" string this client queries.
func (c *Client) Repo() string {
	return c.repo
}
