package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pokedex/internal/logger"
)

// maxSpriteBytes caps sprite downloads; real sprites are a few KB.
const maxSpriteBytes = 4 << 20

type Client struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// NewClient returns a client for the API rooted at cfg.BaseURL.
func NewClient(cfg Config, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	base := cfg.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Client{
		baseURL: base,
		client:  newHTTPClient(cfg),
		logger:  log,
	}
}

// PokemonURL returns the creature resource URL for a lookup name.
func (c *Client) PokemonURL(name string) string {
	return c.baseURL + "pokemon/" + url.PathEscape(name)
}

// GetPokemon fetches the creature resource for name. A 404 yields
// ErrNotFound; other non-200 statuses yield a *StatusError.
func (c *Client) GetPokemon(ctx context.Context, name string) (*Pokemon, error) {
	var pokemon Pokemon
	if err := c.getAndDecode(ctx, c.PokemonURL(name), &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// GetSpecies fetches the species document linked from a creature.
func (c *Client) GetSpecies(ctx context.Context, speciesURL string) (*Species, error) {
	if speciesURL == "" {
		return nil, fmt.Errorf("pokeapi: empty species url")
	}
	var species Species
	if err := c.getAndDecode(ctx, speciesURL, &species); err != nil {
		return nil, err
	}
	return &species, nil
}

// GetSprite downloads the raw sprite bytes.
func (c *Client) GetSprite(ctx context.Context, spriteURL string) ([]byte, error) {
	if spriteURL == "" {
		return nil, ErrNoSprite
	}
	resp, err := c.get(ctx, spriteURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSpriteBytes))
	if err != nil {
		return nil, fmt.Errorf("pokeapi: read sprite %s: %w", spriteURL, err)
	}
	return data, nil
}

func (c *Client) getAndDecode(ctx context.Context, rawURL string, target any) error {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("pokeapi: decode %s: %w", rawURL, err)
	}
	return nil
}

// get issues the request and maps non-200 statuses to errors. On success
// the caller owns the response body.
func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: build request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: GET %s: %w", rawURL, err)
	}

	c.logger.Debug("PokeAPI", "request completed", map[string]interface{}{
		"url":         rawURL,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	switch resp.StatusCode {
	case http.StatusOK:
		return resp, nil
	case http.StatusNotFound:
		drain(resp)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, rawURL)
	default:
		drain(resp)
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
