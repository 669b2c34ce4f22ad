package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/cache"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context, page, pageSize int) (*models.PaginatedResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req *models.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, id uuid.UUID) (*models.DeleteUserResult, error)
}

type userService struct {
	repo        repository.UserRepository
	rateLimiter repository.RateLimitRepository
	ratings     RatingService
	cache       cache.Cache
	jwtKey      []byte
	tokenTTL    time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, ratings RatingService, cache cache.Cache, jwtKey []byte, tokenTTL time.Duration) UserService {
	return &userService{
		repo:        repo,
		rateLimiter: rateLimiter,
		ratings:     ratings,
		cache:       cache,
		jwtKey:      jwtKey,
		tokenTTL:    tokenTTL,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashedPassword),
		FirstName: utils.SanitizeText(req.FirstName),
		LastName:  utils.SanitizeText(req.LastName),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if appErrors.IsUniqueViolation(err) {
			return nil, appErrors.ConflictError("Email already registered").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to create user")
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, appErrors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.FromStore(err, "Failed to load user")
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to fetch user")
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int) (*models.PaginatedResponse, error) {

	users, total, err := s.repo.ListUsers(ctx, page, pageSize)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to list users")
	}

	return &models.PaginatedResponse{Data: users, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error) {

	if req.Empty() {
		return nil, appErrors.BadRequestError("At least one of firstName, lastName or email is required")
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// a password in the body is only checked, never applied
	if req.Password != nil && bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*req.Password)) != nil {
		return nil, appErrors.BadRequestError("Password does not match; use the password endpoint to change it")
	}

	if req.FirstName != nil {
		user.FirstName = utils.SanitizeText(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = utils.SanitizeText(*req.LastName)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		switch {
		case appErrors.IsUniqueViolation(err):
			return nil, appErrors.ConflictError("Email already in use").WithError(err)
		case errors.Is(err, sql.ErrNoRows):
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to update user")
	}

	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req *models.ChangePasswordRequest) error {

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return appErrors.ForbiddenError("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.InternalError("Failed to secure password").WithError(err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("User not found").WithError(err)
		}
		return appErrors.FromStore(err, "Failed to update password")
	}

	return nil
}

// DeleteUser removes the user and everything they own. Once the cascade has
// committed, storefront items are evicted from the cache and ratings of items
// the user reviewed are refreshed.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) (*models.DeleteUserResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	cascade, err := s.repo.DeleteUserCascade(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to delete user")
	}

	result := &models.DeleteUserResult{}

	if keys := itemCacheKeys(cascade.RemovedItems...); len(keys) > 0 {
		if err := s.cache.Delete(ctx, keys...); err != nil {
			logger.Warn("Failed to invalidate cache for storefront items", "userId", id.String(), "error", err.Error())
		}
	}

	for _, itemID := range cascade.ReviewedItemIDs {
		_, err := s.ratings.Recompute(ctx, itemID)
		if err == nil {
			continue
		}

		// the item went with the user's own storefront
		if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodeNotFound {
			continue
		}

		logger.Warn("Rating refresh after user delete failed", "itemId", itemID.String(), "error", err.Error())
		result.Warnings = append(result.Warnings, fmt.Sprintf("rating for item %s could not be refreshed", itemID))
	}

	return result, nil
}
