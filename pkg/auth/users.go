package auth

import (
	"errors"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"floraform.ca/storefront/pkg/models"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository supplies storefront accounts. Injected so the checkout
// core can be exercised with fakes instead of ambient user state.
type UserRepository interface {
	FindByEmail(email string) (*models.User, bool)
	FindByID(id int) (*models.User, bool)
	Create(name, email, passwordHash string) (*models.User, error)
}

// InMemoryUsers is the mock credential store: a process-local user list
// seeded with the demo account. Not a real authentication system.
type InMemoryUsers struct {
	mu     sync.Mutex
	users  []*models.User
	nextID int
}

func NewInMemoryUsers() *InMemoryUsers {
	repo := &InMemoryUsers{nextID: 1}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	if _, err := repo.Create("Demo User", "user@example.com", string(hash)); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	return repo
}

func (r *InMemoryUsers) FindByEmail(email string) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, true
		}
	}
	return nil, false
}

func (r *InMemoryUsers) FindByID(id int) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, true
		}
	}
	return nil, false
}

func (r *InMemoryUsers) Create(name, email, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return nil, ErrEmailExists
		}
	}

	user := &models.User{
		ID:       r.nextID,
		Name:     name,
		Email:    email,
		Password: passwordHash,
	}
	r.nextID++
	r.users = append(r.users, user)

	copied := *user
	return &copied, nil
}
