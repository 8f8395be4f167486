package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	appauth "github.com/campushub/campushub/internal/app/auth"
	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/auth"
	"github.com/campushub/campushub/internal/pkg/dberrors"
	"github.com/campushub/campushub/internal/pkg/email"
	"github.com/campushub/campushub/internal/pkg/validation"
)

// Errors specific to registration and login
var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPassword = errors.New("invalid password format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrAuthValidation  = errors.New("auth validation failed")
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	userRepo       *repositories.UserRepository
	studentRepo    *repositories.StudentRepository
	instructorRepo *repositories.InstructorRepository
	taRepo         *repositories.TeachingAssistantRepository
	settingsRepo   *repositories.UserSettingsRepository
	roleResolver   *appauth.RoleResolver
	jwtService     *auth.JWTService
	emailService   email.EmailService
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService. emailService may be nil, in
// which case no welcome email is sent.
func NewAuthService(
	repos *repositories.Repositories,
	roleResolver *appauth.RoleResolver,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:       repos.UserRepository,
		studentRepo:    repos.StudentRepository,
		instructorRepo: repos.InstructorRepository,
		taRepo:         repos.TeachingAssistantRepository,
		settingsRepo:   repos.UserSettingsRepository,
		roleResolver:   roleResolver,
		jwtService:     jwtService,
		emailService:   emailService,
		logger:         logger,
	}
}

func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", ErrAuthValidation)
	}
	if !validation.CompiledPatterns.Email.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func (s *AuthService) validateUsername(username string) error {
	ok := validation.NewStringValidation(username).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		WithPattern(validation.CompiledPatterns.Username).
		Validate()
	if !ok {
		return fmt.Errorf("%w: invalid username", ErrAuthValidation)
	}
	return nil
}

func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrAuthValidation)
	}
	if len(password) < validation.PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidPassword, validation.PasswordMinLength)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", ErrInvalidPassword)
	}

	return nil
}

// Register creates a user account plus its role row and default settings
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	role := models.Role(req.Role)
	switch role {
	case models.RoleStudent:
		student := &models.Student{
			UserID:     *user.UserID,
			Department: req.Department,
			YearLevel:  req.YearLevel,
		}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			return nil, fmt.Errorf("student creation error: %w", err)
		}
	case models.RoleInstructor:
		instructor := &models.Instructor{
			UserID:     *user.UserID,
			Department: req.Department,
			Office:     req.Office,
			Email:      &req.Email,
		}
		if err := s.instructorRepo.Create(ctx, instructor); err != nil {
			return nil, fmt.Errorf("instructor creation error: %w", err)
		}
	case models.RoleTA:
		if req.AssignedCourseID == nil {
			return nil, fmt.Errorf("%w: TA registration requires assignedCourseId", ErrAuthValidation)
		}
		ta := &models.TeachingAssistant{
			UserID:           *user.UserID,
			AssignedCourseID: *req.AssignedCourseID,
			Role:             "TA",
		}
		if err := s.taRepo.Create(ctx, ta); err != nil {
			return nil, fmt.Errorf("TA creation error: %w", err)
		}
	default:
		return nil, ErrInvalidRole
	}

	if _, err := s.settingsRepo.GetOrCreate(ctx, *user.UserID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", *user.UserID).Msg("Failed to create default settings")
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
			s.logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
		}
	}

	return s.buildAuthResponse(user, role)
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	role, err := s.roleResolver.ResolveRole(ctx, *user.UserID)
	if err != nil {
		return nil, fmt.Errorf("error resolving role: %w", err)
	}

	return s.buildAuthResponse(user, role)
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtService.ValidateAndExtractClaims(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	role, err := s.roleResolver.ResolveRole(ctx, *user.UserID)
	if err != nil {
		return nil, fmt.Errorf("error resolving role: %w", err)
	}

	return s.buildAuthResponse(user, role)
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if err := s.validatePassword(req.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user.PasswordHash = hashedPassword
	return s.userRepo.Update(ctx, user)
}

func (s *AuthService) buildAuthResponse(user *models.User, role models.Role) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(
		*user.UserID, user.Username, user.Email, string(role))
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	userMap := user.ToMap()
	delete(userMap, "Password_Hash")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:  accessToken,
			TokenType:    "Bearer",
			ExpiresIn:    int64(expiresIn),
			RefreshToken: refreshToken,
		},
		User: userMap,
		Role: string(role),
	}, nil
}
