package store

import "educonnect/models"

// Resume returns the user's resume document, if one was ever saved.
func (s *Store) Resume(userID string) (models.Resume, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.resumes[userID]
	return r, ok
}

// SetResume replaces the user's resume document.
func (s *Store) SetResume(userID string, r models.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resumes[userID] = r
}
