package pokeapi

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("pokeapi: resource not found")
	ErrNoSprite = errors.New("pokeapi: no sprite url")
)

// StatusError reports a non-200 response other than 404.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pokeapi: GET %s returned status %d", e.URL, e.StatusCode)
}
