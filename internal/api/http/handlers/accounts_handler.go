package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AccountsHandler exposes the account lifecycle endpoints.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// Register handles POST /auth/register.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.PhoneNumber == 0 {
		return apperrors.NewValidationError("name, email, password, phone_number required", nil)
	}

	token, err := h.accounts.Register(c.Context(), req.Name, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"activation_token": token},
	})
}

// Activate handles POST /auth/activate.
func (h *AccountsHandler) Activate(c *fiber.Ctx) error {
	var req dto.ActivateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ActivationToken == "" || req.ActivationCode == "" {
		return apperrors.NewValidationError("activation_token and activation_code required", nil)
	}

	account, err := h.accounts.Activate(c.Context(), req.ActivationToken, req.ActivationCode)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"account": dto.NewAccountResponse(account)},
	})
}

// Login handles POST /auth/login.
func (h *AccountsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	account, pair, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": dto.NewAccountResponse(account),
			"session": dto.SessionResponse{
				AccessToken:  pair.AccessToken,
				RefreshToken: pair.RefreshToken,
				ExpiresIn:    pair.ExpiresIn,
			},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AccountsHandler) Logout(c *fiber.Ctx) error {
	auth.ClearPrincipal(c)
	if err := h.accounts.Logout(c.Context()); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out successfully"}})
}

// Me handles GET /auth/me.
func (h *AccountsHandler) Me(c *fiber.Ctx) error {
	account, ok := auth.AccountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"account": dto.NewAccountResponse(account)}})
}

// ForgotPassword handles POST /auth/password/forgot.
func (h *AccountsHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	if err := h.accounts.ForgotPassword(c.Context(), req.Email); err != nil {
		return mapServiceError(err)
	}

	// Acknowledged as soon as the reset link is on its way; delivery outcome
	// is deliberately not reported.
	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": fiber.Map{"message": "your forgot password request was successful"},
	})
}

// ResetPassword handles POST /auth/password/reset.
func (h *AccountsHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ResetToken == "" || req.Password == "" {
		return apperrors.NewValidationError("reset_token and password required", nil)
	}

	account, err := h.accounts.ResetPassword(c.Context(), req.ResetToken, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"account": dto.NewAccountResponse(account)}})
}

// List handles GET /accounts.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	accounts, err := h.accounts.ListAccounts(c.Context())
	if err != nil {
		return mapServiceError(err)
	}
	resp := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, dto.NewAccountResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrPhoneTaken):
		return apperrors.NewConflict(err.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrActivationCode),
		errors.Is(err, service.ErrResetToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenSignature),
		errors.Is(err, auth.ErrTokenMalformed):
		return apperrors.NewUnauthorized(err.Error())
	case errors.Is(err, service.ErrAccountNotFound):
		return apperrors.NewNotFound("account", nil)
	default:
		return apperrors.MapError(err)
	}
}
