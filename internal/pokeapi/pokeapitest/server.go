// Package pokeapitest serves a small in-memory PokeAPI for tests.
package pokeapitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

type Creature struct {
	Name        string
	Types       []string
	Abilities   []string
	Height      int32
	Weight      int32
	CaptureRate int32
}

// Server is a fake PokeAPI. Creature and species documents are generated
// from the registered Creatures; the sprite endpoint returns a 96x96 PNG.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	creatures map[string]Creature
	failing   map[string]int

	requests atomic.Int64
}

func NewServer(creatures ...Creature) *Server {
	s := &Server{
		creatures: make(map[string]Creature),
		failing:   make(map[string]int),
	}
	for _, c := range creatures {
		s.creatures[c.Name] = c
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/pokemon/{name}", s.handlePokemon)
	mux.HandleFunc("/api/v2/pokemon-species/{name}/", s.handleSpecies)
	mux.HandleFunc("/sprites/{name}", s.handleSprite)

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		mux.ServeHTTP(w, r)
	}))
	return s
}

// BaseURL is the API root to hand to a client.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v2/"
}

// Requests returns how many requests have been served.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// FailPath makes every request whose path starts with prefix answer status.
func (s *Server) FailPath(prefix string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[prefix] = status
}

func (s *Server) failure(path string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for prefix, status := range s.failing {
		if strings.HasPrefix(path, prefix) {
			return status, true
		}
	}
	return 0, false
}

func (s *Server) lookup(name string) (Creature, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.creatures[name]
	return c, ok
}

func (s *Server) handlePokemon(w http.ResponseWriter, r *http.Request) {
	if status, ok := s.failure(r.URL.Path); ok {
		http.Error(w, http.StatusText(status), status)
		return
	}
	c, ok := s.lookup(r.PathValue("name"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	types := make([]map[string]interface{}, 0, len(c.Types))
	for i, t := range c.Types {
		types = append(types, map[string]interface{}{
			"slot": i + 1,
			"type": map[string]string{"name": t, "url": s.URL + "/api/v2/type/" + t + "/"},
		})
	}
	abilities := make([]map[string]interface{}, 0, len(c.Abilities))
	for i, a := range c.Abilities {
		abilities = append(abilities, map[string]interface{}{
			"slot":      i + 1,
			"is_hidden": false,
			"ability":   map[string]string{"name": a, "url": s.URL + "/api/v2/ability/" + a + "/"},
		})
	}

	writeJSON(w, map[string]interface{}{
		"id":        1,
		"name":      c.Name,
		"height":    c.Height,
		"weight":    c.Weight,
		"types":     types,
		"abilities": abilities,
		"species": map[string]string{
			"name": c.Name,
			"url":  fmt.Sprintf("%s/api/v2/pokemon-species/%s/", s.URL, c.Name),
		},
		"sprites": map[string]string{
			"front_default": fmt.Sprintf("%s/sprites/%s.png", s.URL, c.Name),
		},
	})
}

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	if status, ok := s.failure(r.URL.Path); ok {
		http.Error(w, http.StatusText(status), status)
		return
	}
	c, ok := s.lookup(r.PathValue("name"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]interface{}{
		"id":           1,
		"name":         c.Name,
		"capture_rate": c.CaptureRate,
	})
}

func (s *Server) handleSprite(w http.ResponseWriter, r *http.Request) {
	if status, ok := s.failure(r.URL.Path); ok {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(SpritePNG(96, 96))
}

// SpritePNG encodes a solid-colour PNG of the given size.
func SpritePNG(width, height int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 120, G: 200, B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Bulbasaur and Ditto are the fixtures most tests need: one dual-typed and
// one single-typed creature.
var (
	Bulbasaur = Creature{
		Name:        "bulbasaur",
		Types:       []string{"grass", "poison"},
		Abilities:   []string{"overgrow", "chlorophyll"},
		Height:      7,
		Weight:      69,
		CaptureRate: 45,
	}
	Ditto = Creature{
		Name:        "ditto",
		Types:       []string{"normal"},
		Abilities:   []string{"limber", "imposter"},
		Height:      3,
		Weight:      40,
		CaptureRate: 35,
	}
)
