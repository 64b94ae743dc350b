package rhyme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Provider names a supported rhyme lookup service.
type Provider string

const (
	Datamuse   Provider = "datamuse"
	RhymeBrain Provider = "rhymebrain"
)

const (
	datamuseBaseURL   = "https://api.datamuse.com"
	rhymeBrainBaseURL = "https://rhymebrain.com"

	// Rhyme lists are a few kilobytes; anything near this is not a rhyme list.
	maxBodySize = 1 << 20

	userAgent = "punderer-cli"
)

// ParseProvider validates a provider name. The empty string means Datamuse.
func ParseProvider(s string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case "", Datamuse:
		return Datamuse, nil
	case RhymeBrain:
		return RhymeBrain, nil
	}
	return "", fmt.Errorf("unknown rhyme provider %q (want %q or %q)", s, Datamuse, RhymeBrain)
}

// Endpoint describes where rhymes are fetched from.
type Endpoint struct {
	Provider Provider
	// BaseURL overrides the provider's public host. Empty means the default.
	BaseURL string
}

// URL builds the lookup URL for word.
func (e Endpoint) URL(word string) string {
	base := strings.TrimRight(e.BaseURL, "/")
	switch e.Provider {
	case RhymeBrain:
		if base == "" {
			base = rhymeBrainBaseURL
		}
		q := url.Values{}
		q.Set("function", "getRhymes")
		q.Set("maxResults", "50")
		q.Set("word", word)
		return base + "/talk?" + q.Encode()
	default:
		if base == "" {
			base = datamuseBaseURL
		}
		q := url.Values{}
		q.Set("rel_rhy", word)
		return base + "/words?" + q.Encode()
	}
}

// Client fetches rhyme candidates over HTTP.
type Client struct {
	Endpoint Endpoint
	HTTP     *http.Client
	Logger   *zap.Logger
}

// NewClient creates a client for the endpoint with the given request timeout.
func NewClient(endpoint Endpoint, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
		Logger:   logger,
	}
}

// Rhymes performs a single GET for word and decodes the JSON array of
// {word, score} records. There is no retry.
func (c *Client) Rhymes(ctx context.Context, word string) ([]Rhyme, error) {
	target := c.Endpoint.URL(word)
	log := c.Logger.With(zap.String("url", target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: target, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	// Read one byte past the limit so an oversized body is detected rather than truncated.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	if len(body) > maxBodySize {
		return nil, &ParseError{URL: target, Err: fmt.Errorf("response exceeds %d bytes", maxBodySize)}
	}

	var rhymes []Rhyme
	if err := json.Unmarshal(body, &rhymes); err != nil {
		return nil, &ParseError{URL: target, Err: err}
	}

	log.Debug("fetched rhymes",
		zap.Int("count", len(rhymes)),
		zap.Duration("elapsed", time.Since(start)))
	return rhymes, nil
}
