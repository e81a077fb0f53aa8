package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/employeecollab/backend/internal/auth"
	"github.com/employeecollab/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user.
	//
	// If the email is already taken, models.ErrDuplicateEmail will be returned.
	// If some other error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email.
	//
	// "email" parameter is used to retrieve a user by email.
	//
	// If user with such email does not exist, models.ErrEmailNotFound will be returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// "email" parameter is used to check if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// authService implements registration and login business logic
type authService struct {
	userRepo       UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// minPasswordLength is the minimum accepted password length
const minPasswordLength = 6

// Register creates a new user account and returns its ID
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (int, error) {
	normalizedEmail, err := s.checkRegisterCredentials(ctx, req)
	if err != nil {
		return 0, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleEmployee // Default role
	}

	// Hash password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	// The unique index is authoritative under concurrent registrations,
	// the repository maps its violation to ErrDuplicateEmail as well.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, err
	}

	return user.ID, nil
}

// Login authenticates a user and issues a signed token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, models.NewValidationError("email is required")
	}
	if req.Password == "" {
		return nil, models.NewValidationError("password is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrEmailNotFound) {
			return nil, models.ErrEmailNotFound
		}
		return nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidPassword
	}

	token, err := s.tokenGenerator.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("failed to generate token", zap.Int("userId", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResult{
		ID:    user.ID,
		Role:  user.Role,
		Token: token,
	}, nil
}

// checkRegisterCredentials validates the registration request and returns the normalized email
func (s *authService) checkRegisterCredentials(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", models.NewValidationError("name is required")
	}

	normalizedEmail := strings.TrimSpace(strings.ToLower(req.Email))
	if !emailRegex.MatchString(normalizedEmail) {
		return "", models.NewValidationError("invalid email format")
	}

	if len(req.Password) < minPasswordLength {
		return "", models.NewValidationError(fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}

	if req.Role != "" && !req.Role.Valid() {
		return "", models.NewValidationError("role must be employee or admin")
	}

	emailExists, err := s.userRepo.ExistsByEmail(ctx, normalizedEmail)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return "", models.ErrDuplicateEmail
	}

	return normalizedEmail, nil
}
