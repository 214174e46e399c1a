// Package store holds the session-scoped, in-memory entity collections:
// course memberships (enrollment, wishlist, managed) and the post feed.
//
// Collections are duplicate-free and insertion-ordered. Every mutation
// replaces the backing slice with a fresh copy, so a snapshot handed to a
// reader never changes underneath it and observers relying on reference
// equality see a new value exactly when content changed.
package store

import (
	"errors"
	"sync"

	"educonnect/models"
)

// Named collections. Course memberships are per-user; use Scoped to build
// the concrete collection name.
const (
	Enrolled = "enrolled"
	Wishlist = "wishlist"
	Managed  = "managed"
	Posts    = "posts"
)

// ErrNoAuthor is returned by CreatePost when the post carries no author.
// A post is never created without a valid author stamp.
var ErrNoAuthor = errors.New("post has no author")

// Entity is anything a collection can hold.
type Entity interface {
	EntityID() string
}

// Scoped returns the per-user collection name, e.g. Scoped(Wishlist, uid).
func Scoped(name, userID string) string {
	return name + ":" + userID
}

// Store is safe for concurrent use. All membership operations are total:
// missing collections and missing ids are silent no-ops.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Entity
	resumes     map[string]models.Resume
}

func New() *Store {
	return &Store{
		collections: make(map[string][]Entity),
		resumes:     make(map[string]models.Resume),
	}
}

// Add appends e to the named collection unless an element with the same id
// is already present. It reports whether the collection changed.
func (s *Store) Add(collection string, e Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(collection, e)
}

// Remove deletes the element with the given id if present. It reports
// whether the collection changed.
func (s *Store) Remove(collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(collection, id)
}

// Toggle removes e if present and adds it otherwise, deciding membership
// once inside a single critical section. It reports whether e is a member
// after the call.
func (s *Store) Toggle(collection string, e Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(collection, e.EntityID()) >= 0 {
		s.remove(collection, e.EntityID())
		return false
	}
	s.add(collection, e)
	return true
}

// Contains reports whether the named collection holds an element with id.
func (s *Store) Contains(collection, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index(collection, id) >= 0
}

// Collection returns the current snapshot of the named collection. The
// returned slice is never mutated by later store operations.
func (s *Store) Collection(collection string) []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collections[collection]
}

// Len returns the element count of the named collection.
func (s *Store) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

// index returns the position of id in the collection, or -1. Callers hold
// at least the read lock.
func (s *Store) index(collection, id string) int {
	for i, e := range s.collections[collection] {
		if e.EntityID() == id {
			return i
		}
	}
	return -1
}

func (s *Store) add(collection string, e Entity) bool {
	if s.index(collection, e.EntityID()) >= 0 {
		return false
	}
	cur := s.collections[collection]
	next := make([]Entity, 0, len(cur)+1)
	next = append(next, cur...)
	next = append(next, e)
	s.collections[collection] = next
	return true
}

func (s *Store) remove(collection, id string) bool {
	i := s.index(collection, id)
	if i < 0 {
		return false
	}
	cur := s.collections[collection]
	next := make([]Entity, 0, len(cur)-1)
	next = append(next, cur[:i]...)
	next = append(next, cur[i+1:]...)
	s.collections[collection] = next
	return true
}
