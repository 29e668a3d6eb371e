package models

import "sync"

// EntryRepository keeps the entry currently on screen. Only a successful
// lookup replaces it.
type EntryRepository struct {
	mu     sync.RWMutex
	latest *Entry
	query  string
}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{}
}

// Set replaces the stored entry with the result of query.
func (r *EntryRepository) Set(query string, entry *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = entry
	r.query = query
}

// Latest returns the last successful entry and the query that produced it.
func (r *EntryRepository) Latest() (*Entry, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest, r.query
}
