// Package external is the location for the Open5e API client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/fiender/internal/clients/external Client,Doer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/fiender/internal/entities/open5e"
	"github.com/KirkDiggler/fiender/internal/errors"
)

const (
	// DefaultBaseURL is the public Open5e v1 API
	DefaultBaseURL = "https://api.open5e.com/"
	// DefaultHTTPTimeout bounds every request when no HTTP client is given
	DefaultHTTPTimeout = 30 * time.Second
)

var (
	// slugPattern matches characters that should be replaced in slugs
	slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)
	// hyphenRuns matches repeated hyphens
	hyphenRuns = regexp.MustCompile(`-+`)
	// apostrophes are dropped rather than replaced, "Tasha's" -> "tashas"
	apostrophes = strings.NewReplacer("'", "", "’", "")
)

// foldAccents strips combining marks after decomposition, "Élan" -> "Elan".
// Letters with no ASCII decomposition are left for slugPattern.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Slug creates the URL-safe path segment for a record name:
// "Ancient Red Dragon" -> "ancient-red-dragon". Slug is idempotent.
func Slug(name string) string {
	slug := strings.ToLower(foldAccents(strings.TrimSpace(name)))

	slug = apostrophes.Replace(slug)

	// Replace spaces with hyphens
	slug = strings.ReplaceAll(slug, " ", "-")

	// Replace any non-alphanumeric characters (except hyphens) with hyphens
	slug = slugPattern.ReplaceAllString(slug, "-")

	slug = hyphenRuns.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// Doer is the HTTP transport. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client defines the interface for Open5e API interactions
type Client interface {
	// GetCreature fetches one creature by name or slug
	GetCreature(ctx context.Context, name string) (*open5e.Creature, error)

	// GetSpell fetches one spell by name or slug
	GetSpell(ctx context.Context, name string) (*open5e.Spell, error)

	// WalkCreatures visits every page of the creature listing in order
	WalkCreatures(ctx context.Context, fn PageFunc[open5e.Creature]) error

	// WalkSpells visits every page of the spell listing in order
	WalkSpells(ctx context.Context, fn PageFunc[open5e.Spell]) error
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the Open5e API (optional, defaults to https://api.open5e.com/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds).
	// Ignored when HTTPClient is set.
	HTTPTimeout time.Duration
	// HTTPClient performs the requests (optional, defaults to an
	// *http.Client with HTTPTimeout)
	HTTPClient Doer
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	// Set defaults if not provided
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(cfg.BaseURL); err != nil {
		vb.InvalidField("BaseURL", err.Error())
	} else if u.Scheme != "http" && u.Scheme != "https" {
		vb.InvalidField("BaseURL", "scheme must be http or https")
	} else if u.Host == "" {
		vb.InvalidField("BaseURL", "host is required")
	}
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must not be negative")
	}

	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient Doer
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

func (c *client) GetCreature(ctx context.Context, name string) (*open5e.Creature, error) {
	recordURL, err := c.recordURL(CollectionMonsters, name)
	if err != nil {
		return nil, err
	}

	var creature open5e.Creature
	if err := c.get(ctx, recordURL, &creature); err != nil {
		return nil, errors.Wrapf(err, "failed to get creature %q", name)
	}
	return &creature, nil
}

func (c *client) GetSpell(ctx context.Context, name string) (*open5e.Spell, error) {
	recordURL, err := c.recordURL(CollectionSpells, name)
	if err != nil {
		return nil, err
	}

	var spell open5e.Spell
	if err := c.get(ctx, recordURL, &spell); err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %q", name)
	}
	return &spell, nil
}

func (c *client) WalkCreatures(ctx context.Context, fn PageFunc[open5e.Creature]) error {
	return walk(ctx, c, CollectionMonsters, fn)
}

func (c *client) WalkSpells(ctx context.Context, fn PageFunc[open5e.Spell]) error {
	return walk(ctx, c, CollectionSpells, fn)
}

// walk follows the "next" links of a listing until upstream reports none.
// Any error aborts the walk; nothing is retried.
func walk[T any](ctx context.Context, c *client, collection string, fn PageFunc[T]) error {
	if fn == nil {
		return errors.InvalidArgument("page func is required")
	}

	next, err := c.collectionURL(collection)
	if err != nil {
		return err
	}

	for pageNum := 1; next != ""; pageNum++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "%s walk stopped before page %d", collection, pageNum)
		}

		var page open5e.Page[T]
		if err := c.get(ctx, next, &page); err != nil {
			return errors.Wrapf(err, "failed to get %s page %d", collection, pageNum).
				WithMeta("page", pageNum)
		}
		slog.Debug("Fetched page", "collection", collection, "page", pageNum, "results", len(page.Results))

		if err := fn(pageNum, &page); err != nil {
			return err
		}

		next = page.NextURL()
	}

	return nil
}

// get performs one GET and decodes the JSON body into v
func (c *client) get(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid request url %s", rawURL)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Calling Open5e API", "url", rawURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Transport(err, rawURL)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body fully consumed or discarded
	}()
	slog.Debug("Open5e API responded", "url", rawURL, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return errors.Remote(resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Transport(err, rawURL)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errors.WrapWithCodef(err, errors.CodeSchemaMismatch, "failed to decode response from %s", rawURL).
			WithMeta(errors.MetaURL, rawURL)
	}

	return nil
}

// recordURL builds <base>/<collection>/<slug>/
func (c *client) recordURL(collection, name string) (string, error) {
	slug := Slug(name)
	if slug == "" {
		return "", errors.InvalidArgumentf("name %q has no usable characters", name)
	}

	u, err := url.JoinPath(c.baseURL, collection, slug)
	if err != nil {
		return "", errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid base url %s", c.baseURL)
	}
	return u + "/", nil
}

// collectionURL builds <base>/<collection>/
func (c *client) collectionURL(collection string) (string, error) {
	u, err := url.JoinPath(c.baseURL, collection)
	if err != nil {
		return "", errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid base url %s", c.baseURL)
	}
	return u + "/", nil
}
