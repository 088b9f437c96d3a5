package posts

import (
	"context"
	"strconv"
	"time"

	"github.com/kbukum/postclient/httpclient"
)

// DefaultBaseURL is the canonical posts resource root.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com/posts"

// Config configures the posts client.
type Config struct {
	// BaseURL is the posts resource root. Defaults to DefaultBaseURL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout is the per-request timeout. Zero leaves the transport
	// default in place.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

// PostClient fetches post records from the upstream API.
type PostClient struct {
	http *httpclient.Client
}

// New creates a posts client from the given config.
func New(cfg Config) (*PostClient, error) {
	cfg.ApplyDefaults()

	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return &PostClient{http: hc}, nil
}

// FetchAll retrieves the whole post collection with a single GET against the
// resource root. The order returned by the server is preserved.
func (c *PostClient) FetchAll(ctx context.Context) ([]Post, error) {
	resp, err := httpclient.Get[[]Post](ctx, c.http, "")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Fetch retrieves the post with the given id via GET <base-url>/<id>.
// The id is forwarded as-is; no range check is applied. A response body that
// does not decode as a Post (including upstream error bodies) surfaces as a
// decode error.
func (c *PostClient) Fetch(ctx context.Context, id int) (Post, error) {
	resp, err := httpclient.Get[Post](ctx, c.http, strconv.Itoa(id))
	if err != nil {
		return Post{}, err
	}
	return resp.Data, nil
}
