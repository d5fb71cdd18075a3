// Package mem provides an in-memory payload store.
package mem

import (
	"sync"

	"github.com/ipfs/go-cid"

	"xdao.co/arc/storage"
	"xdao.co/arc/uidutil"
)

// Store is an in-memory, CID-keyed payload store. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	objects map[cid.Cid][]byte
}

func New() *Store {
	return &Store{objects: make(map[cid.Cid][]byte)}
}

func (s *Store) Put(payload []byte) (cid.Cid, error) {
	id, err := uidutil.UID(payload)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, storage.ErrInvalidCID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[id]; !ok {
		cp := make([]byte, len(payload))
		copy(cp, payload)
		s.objects[id] = cp
	}
	return id, nil
}

func (s *Store) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}
	s.mu.RLock()
	b, ok := s.objects[id]
	s.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (s *Store) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	s.mu.RLock()
	_, ok := s.objects[id]
	s.mu.RUnlock()
	return ok
}
