package repositories

import (
	"context"
	"errors"

	"github.com/nishantsaini5786/saini-game-hub-backend/models"
)

var (
	// ErrUserNotFound is returned when no record matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when an insert collides with the unique
	// username or email index.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository is the data access surface for the users collection, so the
// store can be swapped or faked in tests.
type UserRepository interface {
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfileImage(ctx context.Context, id, filename string) error
}
