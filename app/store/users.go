package store

import "github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"

// GetUser returns the user with the given id, or nil.
func (s *MemStore) GetUser(id int) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id]
}

// GetUserByUsername scans users in id order and returns the first one
// with a matching username, or nil. Uniqueness of usernames is the
// caller's concern; the store does not enforce it.
func (s *MemStore) GetUserByUsername(username string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id := 1; id < s.nextUserID; id++ {
		if u, ok := s.users[id]; ok && u.Username == username {
			return u
		}
	}
	return nil
}

// CreateUser assigns the next user id and stores the user.
func (s *MemStore) CreateUser(user models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = &user
	return &user
}
