package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: utils.NewValidator()}
}

// Register godoc
//	@Summary		Register a new user
//	@Description	Creates a user account. Emails are unique.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	models.User				"User created"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Email already registered"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/user [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("User registration failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userID", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//	@Summary		Log in
//	@Description	Exchanges email and password for a bearer token. Attempts are rate limited per email.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Login credentials"
//	@Success		200			{object}	models.LoginResponse	"Token issued"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	models.LoginResponse	"Invalid email or password"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/user/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.Int("status", status))
			response.WriteJson(w, status, resp)
			return
		}

		logger.Info("User logged in")
		response.WriteJson(w, http.StatusOK, resp)
	}
}

// ListUsers godoc
//	@Summary		List users
//	@Tags			Users
//	@Produce		json
//	@Param			page		query		int							false	"Page number"	default(1)
//	@Param			pageSize	query		int							false	"Page size"		default(10)
//	@Success		200			{object}	models.PaginatedResponse	"Users"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Router			/user [get]
func (h *UserHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		users, err := h.userService.ListUsers(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list users", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, users)
	}
}

// GetUser godoc
//	@Summary		Get a user by ID
//	@Tags			Users
//	@Produce		json
//	@Param			userId	path		string					true	"User ID"	Format(uuid)
//	@Success		200		{object}	models.User				"User"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid user ID"
//	@Failure		404		{object}	response.ErrorResponse	"User not found"
//	@Router			/user/{userId} [get]
func (h *UserHandler) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := utils.ParseID(w, r, "userId")
		if !ok {
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get user", slog.String("userID", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// Profile godoc
//	@Summary		Current user's profile
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	models.User				"Profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/user/me [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Profile lookup failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// UpdateUser godoc
//	@Summary		Update the current user
//	@Description	At least one of firstName, lastName or email is required. Passwords change through /user/password.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	models.User					"Updated user"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		409		{object}	response.ErrorResponse		"Email already in use"
//	@Security		BearerAuth
//	@Router			/user [put]
func (h *UserHandler) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.UpdateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid user update input")
			return
		}

		user, err := h.userService.UpdateUser(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update user", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User updated")
		response.Success(w, http.StatusOK, user)
	}
}

// ChangePassword godoc
//	@Summary		Change the current user's password
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			passwords	body		models.ChangePasswordRequest	true	"Current and new password"
//	@Success		200			{object}	response.APIResponse			"Password changed"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse			"Current password is incorrect"
//	@Security		BearerAuth
//	@Router			/user/password [put]
func (h *UserHandler) ChangePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		var req models.ChangePasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid password change input")
			return
		}

		if err := h.userService.ChangePassword(r.Context(), claims.UserID, &req); err != nil {
			logger.Warn("Password change failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Password changed")
		response.SuccessWithMessage(w, http.StatusOK, "Password updated", nil)
	}
}

// DeleteUser godoc
//	@Summary		Delete the current user
//	@Description	Removes the user with their orders, vendor, items, reviews, addresses, payment methods and cart.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	response.APIResponse	"User deleted, possibly with warnings"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/user [delete]
func (h *UserHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, logger, ok := authenticated(w, r)
		if !ok {
			return
		}

		result, err := h.userService.DeleteUser(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to delete user", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if len(result.Warnings) > 0 {
			logger.Warn("User deleted with warnings", slog.Any("warnings", result.Warnings))
		} else {
			logger.Info("User deleted")
		}

		response.SuccessWithWarnings(w, http.StatusOK, map[string]string{"id": claims.UserID.String()}, result.Warnings)
	}
}
