// Package memory keeps addresses, comments and profiles in process memory.
// It backs local development and tests, and can be told to reject compound
// filters the way a document store without the matching index does.
package memory

import (
	"sync"
	"time"

	"mapbook/internal/domain/entity"
)

// Store is the shared state of the in-memory repositories. Addresses keep insertion order.
type Store struct {
	mu        sync.RWMutex
	addresses []*entity.Address
	comments  map[string][]*entity.Comment
	profiles  map[string]*entity.Profile

	advertiseCompound bool
	acceptCompound    bool
	now               func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithCompoundFilters sets whether compound filters are both advertised and accepted.
func WithCompoundFilters(enabled bool) Option {
	return func(s *Store) {
		s.advertiseCompound = enabled
		s.acceptCompound = enabled
	}
}

// WithRejectedCompoundFilters advertises compound filter support but rejects such
// queries with ErrUnsupportedQuery, like a store missing a composite index.
func WithRejectedCompoundFilters() Option {
	return func(s *Store) {
		s.advertiseCompound = true
		s.acceptCompound = false
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store that accepts compound filters.
func NewStore(opts ...Option) *Store {
	s := &Store{
		comments:          make(map[string][]*entity.Comment),
		profiles:          make(map[string]*entity.Profile),
		advertiseCompound: true,
		acceptCompound:    true,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Seed inserts records exactly as given, without normalization or validation,
// to reproduce data written by older clients.
func (s *Store) Seed(addresses ...*entity.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, address := range addresses {
		copied := *address
		s.addresses = append(s.addresses, &copied)
	}
}

func (s *Store) indexOf(id string) int {
	for i, address := range s.addresses {
		if address.ID == id {
			return i
		}
	}

	return -1
}
