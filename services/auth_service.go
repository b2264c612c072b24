package services

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nishantsaini5786/saini-game-hub-backend/models"
	"github.com/nishantsaini5786/saini-game-hub-backend/repositories"
	"github.com/nishantsaini5786/saini-game-hub-backend/utils"
)

// Accounts register with a Gmail address only; the anchored pattern covers
// syntactic validity and the domain rule in one check.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

type AuthService struct {
	UserRepository repositories.UserRepository
}

// NewAuthService initializes AuthService with the given user repository.
func NewAuthService(userRepository repositories.UserRepository) *AuthService {
	return &AuthService{
		UserRepository: userRepository,
	}
}

// Register validates the email, rejects identities that already exist,
// hashes the password and creates the record. The unique indexes on the
// collection reject a concurrent duplicate even when the existence check
// passes for both requests, so the duplicate-key error maps to the same
// conflict answer.
func (s *AuthService) Register(ctx context.Context, name, username, contact, email, password string) (*models.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Invalid email address")
	}

	existing, err := s.UserRepository.FindByEmailOrUsername(ctx, email, username)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      name,
		Username:  username,
		Contact:   contact,
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}

	created, err := s.UserRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return nil, utils.NewCustomError(http.StatusBadRequest, "User already exists")
		}
		return nil, err
	}

	return created, nil
}

// Login verifies the password for the account registered under email.
// It never mutates the record.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, utils.NewCustomError(http.StatusBadRequest, "User not found")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Incorrect password")
	}

	return user, nil
}
