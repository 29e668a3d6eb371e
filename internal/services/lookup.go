package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"pokedex/internal/logger"
	"pokedex/internal/models"
	"pokedex/internal/pokeapi"

	"github.com/google/uuid"
)

// ErrEmptyQuery is returned for blank input; no request is made.
var ErrEmptyQuery = errors.New("empty search query")

// NotFoundError reports that the creature resource could not be served. Any
// non-200 status on the creature request is reported this way; StatusCode
// holds the status the API answered with.
type NotFoundError struct {
	Query      string
	StatusCode int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pokemon %q not found", e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return pokeapi.ErrNotFound
}

// PokemonSource is the slice of the PokeAPI client a lookup needs.
type PokemonSource interface {
	GetPokemon(ctx context.Context, name string) (*pokeapi.Pokemon, error)
	GetSpecies(ctx context.Context, speciesURL string) (*pokeapi.Species, error)
	GetSprite(ctx context.Context, spriteURL string) ([]byte, error)
}

// SpriteScaler turns downloaded sprite bytes into a display-ready image.
type SpriteScaler interface {
	Scale(data []byte) (image.Image, error)
}

// LookupService runs the fetch-by-name sequence and remembers the last hit.
type LookupService struct {
	source PokemonSource
	scaler SpriteScaler
	repo   *models.EntryRepository
	logger logger.Logger
}

// NewLookupService creates a lookup service. A nil logger discards output.
func NewLookupService(source PokemonSource, scaler SpriteScaler, repo *models.EntryRepository, log logger.Logger) *LookupService {
	if log == nil {
		log = logger.Nop()
	}
	return &LookupService{
		source: source,
		scaler: scaler,
		repo:   repo,
		logger: log,
	}
}

// NormalizeQuery trims and lower-cases user input into an API name.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Lookup fetches the creature, then its species and sprite. Only a failure of
// the creature request is returned as an error; a failed species request
// leaves the catch rate at N/A and a failed sprite leaves Sprite nil.
func (s *LookupService) Lookup(ctx context.Context, query string) (*models.Entry, error) {
	name := NormalizeQuery(query)
	if name == "" {
		return nil, ErrEmptyQuery
	}

	fields := map[string]interface{}{
		"lookup_id": uuid.NewString(),
		"query":     name,
	}
	if _, previous := s.repo.Latest(); previous != "" {
		fields["previous"] = previous
	}
	start := time.Now()
	s.logger.Info("LookupService", "lookup started", fields)

	pokemon, err := s.source.GetPokemon(ctx, name)
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) {
			s.logger.Info("LookupService", "pokemon not found", fields)
			return nil, &NotFoundError{Query: name, StatusCode: http.StatusNotFound}
		}
		var statusErr *pokeapi.StatusError
		if errors.As(err, &statusErr) {
			s.logger.Warning("LookupService", "pokemon request rejected", withField(fields, "status", statusErr.StatusCode))
			return nil, &NotFoundError{Query: name, StatusCode: statusErr.StatusCode}
		}
		s.logger.Error("LookupService", err, fields)
		return nil, fmt.Errorf("lookup %s: %w", name, err)
	}

	entry := models.NewEntry(pokemon)

	species, err := s.source.GetSpecies(ctx, pokemon.Species.Url)
	if err != nil {
		s.logger.Warning("LookupService", "species lookup failed, catch rate unavailable", withError(fields, err))
		entry.ClearCatchRate()
	} else {
		entry.SetCatchRate(species.CaptureRate)
	}

	entry.Sprite = s.fetchSprite(ctx, pokemon.SpriteURL(), fields)

	s.repo.Set(name, entry)

	done := withField(fields, "duration_ms", time.Since(start).Milliseconds())
	done["has_sprite"] = entry.Sprite != nil
	s.logger.Info("LookupService", "lookup completed", done)

	return entry, nil
}

func (s *LookupService) fetchSprite(ctx context.Context, spriteURL string, fields map[string]interface{}) image.Image {
	data, err := s.source.GetSprite(ctx, spriteURL)
	if err != nil {
		s.logger.Warning("LookupService", "sprite download failed", withError(fields, err))
		return nil
	}
	img, err := s.scaler.Scale(data)
	if err != nil {
		s.logger.Warning("LookupService", "sprite decode failed", withError(fields, err))
		return nil
	}
	return img
}

func withError(fields map[string]interface{}, err error) map[string]interface{} {
	return withField(fields, "error", err.Error())
}

func withField(fields map[string]interface{}, key string, value interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[key] = value
	return out
}
