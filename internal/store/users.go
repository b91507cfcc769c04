package store

import (
	"errors"

	"github.com/autotrackdev/autotrack-rental/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already registered")
)

// UserDirectory defines the interface for account lookups. Accounts are
// inserted by the seed initializer only; there is no runtime registration.
type UserDirectory interface {
	Add(user models.User) error
	FindByCredentials(username, password string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	All() []models.User
}

// MemoryUserDirectory implements UserDirectory on an in-memory slice.
type MemoryUserDirectory struct {
	users []models.User
}

// NewUserDirectory creates an empty in-memory user directory.
func NewUserDirectory() *MemoryUserDirectory {
	return &MemoryUserDirectory{}
}

// Add inserts a new account. Usernames must be unique.
func (d *MemoryUserDirectory) Add(user models.User) error {
	for _, u := range d.users {
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
	}
	d.users = append(d.users, user)
	return nil
}

// FindByCredentials scans for an exact, case-sensitive match on both
// username and password. This is the entire authentication mechanism.
func (d *MemoryUserDirectory) FindByCredentials(username, password string) (*models.User, error) {
	for _, u := range d.users {
		if u.Username == username && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByID returns a copy of the account with the given ID.
func (d *MemoryUserDirectory) FindByID(id string) (*models.User, error) {
	for _, u := range d.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// All returns every account in insertion order.
func (d *MemoryUserDirectory) All() []models.User {
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}
