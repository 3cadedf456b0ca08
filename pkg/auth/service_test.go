package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoUserCanLogIn(t *testing.T) {
	svc := NewService(NewInMemoryUsers())

	user, err := svc.Login("user@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "Demo User", user.Name)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewService(NewInMemoryUsers())

	_, err := svc.Login("user@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpHashesPasswordAndAllowsLogin(t *testing.T) {
	svc := NewService(NewInMemoryUsers())

	created, err := svc.SignUp("Sam Green", "sam@example.com", "fernfriend")
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	assert.NotEqual(t, "fernfriend", created.Password)

	user, err := svc.Login("sam@example.com", "fernfriend")
	require.NoError(t, err)
	assert.Equal(t, "Sam Green", user.Name)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryUsers())

	_, err := svc.SignUp("Imposter", "user@example.com", "whatever")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRepositoryReturnsCopies(t *testing.T) {
	repo := NewInMemoryUsers()

	first, ok := repo.FindByEmail("user@example.com")
	require.True(t, ok)
	first.Name = "Mutated"

	again, ok := repo.FindByEmail("user@example.com")
	require.True(t, ok)
	assert.Equal(t, "Demo User", again.Name)
}

func TestFindByID(t *testing.T) {
	repo := NewInMemoryUsers()

	user, ok := repo.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", user.Email)

	_, ok = repo.FindByID(99)
	assert.False(t, ok)
}
