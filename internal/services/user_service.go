package services

import (
	"context"

	"github.com/anik404/go-blog/backend/internal/auth"
	"github.com/anik404/go-blog/backend/internal/models"
	"github.com/anik404/go-blog/backend/internal/repositories"
)

// UserService owns user validation, registration and login.
type UserService struct {
	users  repositories.UserRepository
	tokens *auth.TokenService
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, tokens *auth.TokenService) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates a new user. The email must not already be registered and
// the password is stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	existing, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by email and password and issues a token bound
// to the user's identity and role.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrEmailNotFound
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		return nil, ErrBadPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, UserID: user.ID.Hex()}, nil
}

// GetAll returns all users.
func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.GetAllUsers(ctx)
}

// GetByID returns a user by ID, or nil when absent.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetUserByID(ctx, id)
}
