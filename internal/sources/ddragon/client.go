// Package ddragon fetches the official champion catalog from Riot's Data
// Dragon static data service.
//
// A fetch is two sequential GETs: the version list, then champion.json for
// the newest version (or a pinned one). Failures are returned, never
// swallowed. Deciding to carry on with an empty catalog is the caller's job.
package ddragon

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/agentstation/champdiff/internal/transport"
	"github.com/agentstation/champdiff/pkg/catalogs"
	"github.com/agentstation/champdiff/pkg/constants"
	"github.com/agentstation/champdiff/pkg/errors"
	"github.com/agentstation/champdiff/pkg/logging"
)

// Client talks to Data Dragon.
type Client struct {
	transport   *transport.Client
	versionsURL string
	cdnURL      string
	locale      string
	patch       string
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the HTTP transport.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithVersionsURL overrides the versions endpoint.
func WithVersionsURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.versionsURL = url
		}
	}
}

// WithCDNURL overrides the CDN base the champion file is read from.
func WithCDNURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.cdnURL = strings.TrimRight(url, "/")
		}
	}
}

// WithLocale sets the locale names and titles are fetched in.
func WithLocale(locale string) Option {
	return func(c *Client) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithPatch pins the version and skips the versions lookup.
func WithPatch(version string) Option {
	return func(c *Client) {
		c.patch = version
	}
}

// New creates a Data Dragon client with the public endpoints and en_US.
func New(opts ...Option) *Client {
	c := &Client{
		transport:   transport.New(),
		versionsURL: constants.DefaultVersionsURL,
		cdnURL:      constants.DefaultCDNURL,
		locale:      constants.DefaultLocale,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Locale returns the configured locale.
func (c *Client) Locale() string {
	return c.locale
}

// Versions returns every published version, newest first.
func (c *Client) Versions(ctx context.Context) ([]string, error) {
	logging.FromContext(ctx).Debug().Str("url", c.versionsURL).Msg("Fetching version list")

	resp, err := c.transport.Get(ctx, c.versionsURL)
	if err != nil {
		return nil, err
	}

	var versions []string
	if err := transport.DecodeResponse(resp, constants.DataSourceName, &versions); err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, &errors.EmptyVersionListError{Endpoint: c.versionsURL}
	}
	return versions, nil
}

// LatestVersion returns the pinned version if one is set, otherwise the
// first entry of the version list. A blank first entry is a ParseError.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	if c.patch != "" {
		return c.patch, nil
	}

	versions, err := c.Versions(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(versions[0]) == "" {
		return "", errors.NewParseError("json", c.versionsURL, "empty version label", nil)
	}
	return versions[0], nil
}

// ChampionsURL returns the champion.json URL for version in the configured locale.
func (c *Client) ChampionsURL(version string) string {
	return c.cdnURL + "/" + fmt.Sprintf(constants.ChampionPathFormat, version, c.locale)
}

// Champions fetches the champion catalog published under version.
func (c *Client) Champions(ctx context.Context, version string) (*catalogs.Remote, error) {
	url := c.ChampionsURL(version)
	logging.FromContext(ctx).Debug().Str("url", url).Msg("Fetching champion data")

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var file championFile
	if err := transport.DecodeResponse(resp, constants.DataSourceName, &file); err != nil {
		return nil, err
	}

	champions, err := convert(file, url)
	if err != nil {
		return nil, err
	}
	return catalogs.NewRemote(version, c.locale, champions), nil
}

// Fetch resolves the version and returns its champion catalog.
func (c *Client) Fetch(ctx context.Context) (*catalogs.Remote, error) {
	ctx = logging.WithSource(ctx, constants.DataSourceName)
	ctx = logging.WithLocale(ctx, c.locale)

	version, err := c.LatestVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve version: %w", err)
	}
	logging.FromContext(ctx).Info().Str("version", version).Msg("Latest version resolved")

	remote, err := c.Champions(logging.WithVersion(ctx, version), version)
	if err != nil {
		return nil, fmt.Errorf("fetch champions for %s: %w", version, err)
	}
	logging.FromContext(ctx).Debug().Int("champions", remote.Len()).Msg("Champion data decoded")

	return remote, nil
}

// convert validates the decoded file and maps it to catalog champions.
// Keys are visited in order so the reported field error is stable.
func convert(file championFile, url string) (map[string]catalogs.Champion, error) {
	if file.Data == nil {
		return nil, errors.NewParseError("json", url, "missing field data", nil)
	}

	keys := make([]string, 0, len(file.Data))
	for key := range file.Data {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	champions := make(map[string]catalogs.Champion, len(file.Data))
	for _, key := range keys {
		entry := file.Data[key]
		if field := entry.missingField(); field != "" {
			return nil, errors.NewParseError("json", url, fmt.Sprintf("champion %s: missing field %s", key, field), nil)
		}
		champions[key] = catalogs.Champion{
			Key:   key,
			ID:    *entry.Key,
			Name:  *entry.Name,
			Title: *entry.Title,
		}
	}
	return champions, nil
}
