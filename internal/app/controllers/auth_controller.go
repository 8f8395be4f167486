package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/app/repositories"
	"github.com/campushub/campushub/internal/app/services"
	"github.com/campushub/campushub/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, userRepo *repositories.UserRepository, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Register creates a new user account with its role profile
func (c *AuthController) Register(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.RegisterRequest](ctx)
	if !ok {
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Str("role", req.Role).
		Msg("User registration request received")

	authResponse, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to register user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, authResponse, "User registered successfully")
}

// Login authenticates a user by email and password
func (c *AuthController) Login(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.LoginRequest](ctx)
	if !ok {
		return
	}

	authResponse, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, authResponse, "Login successful")
}

// RefreshToken exchanges a refresh token for a new token pair
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.RefreshTokenRequest](ctx)
	if !ok {
		return
	}

	authResponse, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, authResponse, "Token refreshed")
}

// ChangePassword updates the authenticated user's password
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.ChangePasswordRequest](ctx)
	if !ok {
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), userID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, nil, "Password changed successfully")
}

// Me returns the authenticated user's profile projection
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := c.userRepo.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user == nil {
		notFound(ctx, "User")
		return
	}

	userMap := user.ToMap()
	delete(userMap, "Password_Hash")
	respond(ctx, http.StatusOK, userMap, "User profile retrieved")
}
