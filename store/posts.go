package store

import "educonnect/models"

// CreatePost prepends p to the posts collection, keeping the raw order
// newest-first. A duplicate id is a silent no-op. A missing author is the
// one precondition the store enforces.
func (s *Store) CreatePost(p models.Post) error {
	if p.Author.ID == "" {
		return ErrNoAuthor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(Posts, p.ID) >= 0 {
		return nil
	}
	cur := s.collections[Posts]
	next := make([]Entity, 0, len(cur)+1)
	next = append(next, p)
	next = append(next, cur...)
	s.collections[Posts] = next
	return nil
}

// IncrementLikes adds exactly 1 to the post's like counter. There is no
// decrement operation. Returns the updated count and whether the post was
// found, so callers see the count their increment produced.
func (s *Store) IncrementLikes(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(Posts, id)
	if i < 0 {
		return 0, false
	}
	cur := s.collections[Posts]
	p := cur[i].(models.Post)
	p.Likes++

	next := make([]Entity, len(cur))
	copy(next, cur)
	next[i] = p
	s.collections[Posts] = next
	return p.Likes, true
}

// AddComment appends c to the post's comment list, preserving chronological
// order. Reports whether the post was found.
func (s *Store) AddComment(postID string, c models.Comment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(Posts, postID)
	if i < 0 {
		return false
	}
	cur := s.collections[Posts]
	p := cur[i].(models.Post)

	comments := make([]models.Comment, 0, len(p.Comments)+1)
	comments = append(comments, p.Comments...)
	comments = append(comments, c)
	p.Comments = comments

	next := make([]Entity, len(cur))
	copy(next, cur)
	next[i] = p
	s.collections[Posts] = next
	return true
}

// Post returns the post with the given id.
func (s *Store) Post(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(Posts, id)
	if i < 0 {
		return models.Post{}, false
	}
	return s.collections[Posts][i].(models.Post), true
}

// AllPosts returns the posts collection as a typed snapshot, raw order
// (newest-first, before any display sort).
func (s *Store) AllPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur := s.collections[Posts]
	out := make([]models.Post, 0, len(cur))
	for _, e := range cur {
		if p, ok := e.(models.Post); ok {
			out = append(out, p)
		}
	}
	return out
}

// SeedPosts replaces the posts collection with the given seed, which must
// already be ordered newest-first.
func (s *Store) SeedPosts(posts []models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Entity, 0, len(posts))
	for _, p := range posts {
		next = append(next, p)
	}
	s.collections[Posts] = next
}

// Courses returns the named collection as a typed course snapshot.
func (s *Store) Courses(collection string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cur := s.collections[collection]
	out := make([]models.Course, 0, len(cur))
	for _, e := range cur {
		if c, ok := e.(models.Course); ok {
			out = append(out, c)
		}
	}
	return out
}
