package handlers

import (
	"log/slog"
	"net/http"

	"github.com/factura-dev/invoicing-api/internal/api/middleware"
	appErrors "github.com/factura-dev/invoicing-api/internal/errors"
	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/factura-dev/invoicing-api/internal/services"
	"github.com/factura-dev/invoicing-api/internal/utils"
	"github.com/factura-dev/invoicing-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	service  services.AuthService
	validate *validator.Validate
}

func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{
		service:  service,
		validate: utils.NewValidator(),
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Creates a user account and returns it with an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.RegisterRequest	true	"Registration details"
//	@Success		200		{object}	response.APIResponse{data=models.AuthResponse}
//	@Failure		422		{object}	response.APIResponse
//	@Router			/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	var req models.RegisterRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Error("Registration failed", slog.String("email", req.Email), slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("User registered", slog.String("userId", result.User.ID.String()))
	response.Success(w, http.StatusOK, "User registered successfully", result)
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns the user with an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.LoginRequest	true	"Credentials"
//	@Success		200		{object}	response.APIResponse{data=models.AuthResponse}
//	@Failure		401		{object}	response.APIResponse
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	var req models.LoginRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		logger.Warn("Login failed", slog.String("email", req.Email), slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("User logged in", slog.String("userId", result.User.ID.String()))
	response.Success(w, http.StatusOK, "User logged successfully", result)
}

// Profile godoc
//
//	@Summary		Get the authenticated user
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.APIResponse{data=models.User}
//	@Failure		401	{object}	response.APIResponse
//	@Router			/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r)
	if !ok {
		response.Error(w, appErrors.UnauthorizedError("Unauthenticated."))

		return
	}

	user, err := h.service.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Success(w, http.StatusOK, "", user)
}

// ChangePassword godoc
//
//	@Summary		Change the authenticated user's password
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		models.ChangePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	response.APIResponse
//	@Failure		422		{object}	response.APIResponse
//	@Router			/change-password [post]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := claimsFromContext(r)
	if !ok {
		response.Error(w, appErrors.UnauthorizedError("Unauthenticated."))

		return
	}

	var req models.ChangePasswordRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), claims.UserID, &req); err != nil {
		logger.Warn("Password change failed", slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Password changed")
	response.Success(w, http.StatusOK, "Password change successfully", nil)
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Revokes the presented access token
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.APIResponse
//	@Failure		401	{object}	response.APIResponse
//	@Router			/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := claimsFromContext(r)
	if !ok {
		response.Error(w, appErrors.UnauthorizedError("Unauthenticated."))

		return
	}

	if err := h.service.Logout(r.Context(), claims); err != nil {
		logger.Error("Logout failed", slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("User logged out")
	response.Success(w, http.StatusOK, "Successfully logged out", nil)
}
