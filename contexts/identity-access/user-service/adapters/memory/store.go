package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "webshop/contexts/identity-access/user-service/domain/errors"
	"webshop/contexts/identity-access/user-service/ports"
)

// Store is the in-memory user repository used by tests and the developer
// bootstrap path. It also provides Clock and IDGenerator for in-memory
// module wiring.
type Store struct {
	mu            sync.RWMutex
	usersByID     map[string]ports.User
	userIDByEmail map[string]string
}

func NewStore(seed []ports.User) *Store {
	s := &Store{
		usersByID:     make(map[string]ports.User),
		userIDByEmail: make(map[string]string),
	}
	for _, user := range seed {
		s.usersByID[user.UserID] = user
		s.userIDByEmail[strings.ToLower(user.Email)] = user.UserID
	}
	return s
}

func (s *Store) CreateUser(_ context.Context, user ports.User) (ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := s.userIDByEmail[email]; exists {
		return ports.User{}, domainerrors.ErrEmailInUse
	}
	s.usersByID[user.UserID] = user
	s.userIDByEmail[email] = user.UserID
	return user, nil
}

func (s *Store) ListUsers(_ context.Context) ([]ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.User, 0, len(s.usersByID))
	for _, user := range s.usersByID {
		items = append(items, user)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UserID < items[j].UserID })
	return items, nil
}

func (s *Store) GetUser(_ context.Context, userID string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.userIDByEmail[strings.ToLower(email)]
	if !ok {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	return s.usersByID[userID], nil
}

func (s *Store) UpdateUserRole(_ context.Context, userID string, role ports.Role, now time.Time) (ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	user.Role = role
	user.UpdatedAt = now.UTC()
	s.usersByID[userID] = user
	return user, nil
}

func (s *Store) DeleteUser(_ context.Context, userID string) (ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	delete(s.usersByID, userID)
	delete(s.userIDByEmail, strings.ToLower(user.Email))
	return user, nil
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

// NewID returns a 24-character lowercase hex id, the shape the ID-path
// matcher recognizes.
func (s *Store) NewID(_ context.Context) (string, error) {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24], nil
}
