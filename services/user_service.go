package services

import (
	"context"

	"github.com/nishantsaini5786/saini-game-hub-backend/models"
	"github.com/nishantsaini5786/saini-game-hub-backend/repositories"
)

type UserService struct {
	UserRepository repositories.UserRepository
}

// NewUserService initializes UserService with the given user repository.
func NewUserService(userRepository repositories.UserRepository) *UserService {
	return &UserService{
		UserRepository: userRepository,
	}
}

// GetUserByID loads the record behind a session identity. Repository
// sentinels propagate unchanged; the upload route answers them as a
// generic 500.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.UserRepository.FindByID(ctx, id)
}

// UpdateProfileImage records the stored filename on the user. This is the
// only mutation the system ever performs on a user record.
func (s *UserService) UpdateProfileImage(ctx context.Context, id, filename string) error {
	return s.UserRepository.UpdateProfileImage(ctx, id, filename)
}
