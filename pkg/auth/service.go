package auth

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"floraform.ca/storefront/pkg/models"
)

// Service wraps the user repository with credential handling.
type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) Users() UserRepository {
	return s.users
}

func (s *Service) Login(email, password string) (*models.User, error) {
	user, ok := s.users.FindByEmail(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) SignUp(name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.users.Create(name, email, string(hash))
}

// RequestPasswordReset acknowledges the request without revealing whether
// the account exists. The mock store has no reset flow; the request is
// logged only.
func (s *Service) RequestPasswordReset(email string) {
	log.Printf("Password reset requested for: %s", email)
}
