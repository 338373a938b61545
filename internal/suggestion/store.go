// Package suggestion holds the autocomplete values collected from earlier
// creates (vendors, categories, owners). Lists only grow; matching is exact
// and case sensitive.
package suggestion

import (
	"sync"

	"github.com/samber/lo"
)

// Well known lists
const (
	ExpenseVendors    = "expense.vendors"
	ExpenseCategories = "expense.categories"
	DealOwners        = "deal.owners"
	DealCompanies     = "deal.companies"
)

var KnownLists = []string{ExpenseVendors, ExpenseCategories, DealOwners, DealCompanies}

// Store is owned by the process and injected into the services that write
// to it. Handlers only read.
type Store struct {
	mu    sync.RWMutex
	lists map[string][]string
	seen  map[string]map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		lists: make(map[string][]string),
		seen:  make(map[string]map[string]struct{}),
	}
}

// Add appends value to list unless it is empty or already present.
// It reports whether the value was new.
func (s *Store) Add(list, value string) bool {
	if value == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen, ok := s.seen[list]
	if !ok {
		seen = make(map[string]struct{})
		s.seen[list] = seen
	}
	if _, dup := seen[value]; dup {
		return false
	}
	seen[value] = struct{}{}
	s.lists[list] = append(s.lists[list], value)
	return true
}

// List returns a copy of the values in insertion order
func (s *Store) List(list string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.lists[list]...)
}

func IsKnownList(list string) bool {
	return lo.Contains(KnownLists, list)
}
