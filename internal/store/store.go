// Package store holds the process-lifetime claim records. It replaces
// the implicit global map the system grew out of: the store is created
// by the caller and passed into the extractor and verifier explicitly.
package store

import (
	"sync"

	"github.com/truthlens/truthlens/internal/model"
)

// ClaimStore maps claim ids to claims. Ids are scoped to the
// extraction call that produced them ("claim_1", "claim_2", ...), so a
// later extraction overwrites earlier entries under the same ids.
// Safe for concurrent use; no eviction.
type ClaimStore struct {
	mu     sync.RWMutex
	claims map[string]*model.Claim
}

// New creates an empty claim store.
func New() *ClaimStore {
	return &ClaimStore{claims: make(map[string]*model.Claim)}
}

// Put records a claim under its id.
func (s *ClaimStore) Put(c *model.Claim) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims[c.ID] = c
}

// Get returns the claim for an id, if present.
func (s *ClaimStore) Get(id string) (*model.Claim, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.claims[id]
	return c, ok
}

// Attach sets the verification for the claim with the given id,
// overwriting any prior attachment. Reports whether the id resolved.
func (s *ClaimStore) Attach(id string, v *model.Verification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.claims[id]
	if !ok {
		return false
	}
	c.Verification = v
	return true
}

// Len returns the number of stored claims.
func (s *ClaimStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.claims)
}
