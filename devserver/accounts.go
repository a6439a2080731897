package devserver

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
	"golang.org/x/crypto/bcrypt"
)

// Account is a registered user held by the stub. Passwords are stored
// only as bcrypt hashes, same as a real signup service would.
type Account struct {
	GUID         string    `json:"guid"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never exposed in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// bcryptCost of 12 matches what a production service would use; for a
// dev stub it mostly just makes the timing realistic.
const bcryptCost = 12

// AccountStore is the stub's in-memory account registry. Everything is
// lost on restart, which is exactly right for a dev aid.
type AccountStore struct {
	mu         sync.Mutex
	byUsername map[string]*Account
	byEmail    map[string]*Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		byUsername: make(map[string]*Account),
		byEmail:    make(map[string]*Account),
	}
}

// Create registers a new account: hashes the password, generates a
// GUID, and enforces username/email uniqueness.
func (s *AccountStore) Create(email, username, password string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, serr.Wrap(err, "failed to hash password")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[username]; exists {
		return nil, serr.New("username already exists")
	}
	if _, exists := s.byEmail[email]; exists {
		return nil, serr.New("email already exists")
	}

	account := &Account{
		GUID:         uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.byUsername[username] = account
	s.byEmail[email] = account

	return account, nil
}

// Usernames returns all registered usernames, sorted for stable
// rendering on the index page.
func (s *AccountStore) Usernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.byUsername))
	for name := range s.byUsername {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns how many accounts are registered.
func (s *AccountStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byUsername)
}
