package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryRepository(t *testing.T) {
	repo := NewEntryRepository()

	entry, query := repo.Latest()
	assert.Nil(t, entry)
	assert.Empty(t, query)

	first := &Entry{Name: "Bulbasaur"}
	repo.Set("bulbasaur", first)
	entry, query = repo.Latest()
	assert.Same(t, first, entry)
	assert.Equal(t, "bulbasaur", query)

	second := &Entry{Name: "Ditto"}
	repo.Set("ditto", second)
	entry, query = repo.Latest()
	assert.Same(t, second, entry)
	assert.Equal(t, "ditto", query)
}
