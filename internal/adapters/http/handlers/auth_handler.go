package handlers

import (
	"errors"
	"strings"
	"time"

	"swiftpay/internal/config"
	"swiftpay/internal/core/domain"
	"swiftpay/internal/core/services"
	"swiftpay/internal/pkg/response"
	"swiftpay/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterEmployeeRequest represents employee registration request body
type RegisterEmployeeRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCustomerRequest represents customer registration request body
type RegisterCustomerRequest struct {
	FullName      string `json:"full_name"`
	IDNumber      string `json:"id_number"`
	AccountNumber string `json:"account_number"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// LoginEmployeeRequest represents employee login request body
type LoginEmployeeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginCustomerRequest represents customer login request body
type LoginCustomerRequest struct {
	Email         string `json:"email"`
	AccountNumber string `json:"account_number"`
	Password      string `json:"password"`
}

// RegisterEmployee handles employee registration
// @Summary Register employee
// @Description Register a new employee account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterEmployeeRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register/employee [post]
func (h *AuthHandler) RegisterEmployee(c *fiber.Ctx) error {
	var req RegisterEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.RegisterEmployeeInput{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	account, err := h.authService.RegisterEmployee(c.Context(), input)
	if err != nil {
		return h.registerError(c, err, "Failed to create employee profile")
	}

	return response.Created(c, "Employee profile created successfully", fiber.Map{
		"account": account,
	})
}

// RegisterCustomer handles customer registration
// @Summary Register customer
// @Description Register a new customer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterCustomerRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register/customer [post]
func (h *AuthHandler) RegisterCustomer(c *fiber.Ctx) error {
	var req RegisterCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.RegisterCustomerInput{
		FullName:      strings.TrimSpace(req.FullName),
		IDNumber:      strings.TrimSpace(req.IDNumber),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		Email:         strings.TrimSpace(req.Email),
		Password:      req.Password,
	}

	account, err := h.authService.RegisterCustomer(c.Context(), input)
	if err != nil {
		return h.registerError(c, err, "Failed to register customer profile")
	}

	return response.Created(c, "Customer registered successfully", fiber.Map{
		"account": account,
	})
}

// LoginEmployee handles employee login
// @Summary Login employee
// @Description Authenticate an employee and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginEmployeeRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login/employee [post]
func (h *AuthHandler) LoginEmployee(c *fiber.Ctx) error {
	var req LoginEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.authService.LoginEmployee(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return h.loginError(c, err)
	}

	h.setAuthCookie(c, result.AccessToken)

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": result.AccessToken,
		"role":         result.Role,
		"account":      result.Account,
	})
}

// LoginCustomer handles customer login
// @Summary Login customer
// @Description Authenticate a customer and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginCustomerRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login/customer [post]
func (h *AuthHandler) LoginCustomer(c *fiber.Ctx) error {
	var req LoginCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.AccountNumber == "" || req.Password == "" {
		return response.BadRequest(c, "Email, account number and password are required")
	}

	result, err := h.authService.LoginCustomer(
		c.Context(),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.AccountNumber),
		req.Password,
	)
	if err != nil {
		return h.loginError(c, err)
	}

	h.setAuthCookie(c, result.AccessToken)

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": result.AccessToken,
		"role":         result.Role,
		"account":      result.Account,
	})
}

// Logout clears the auth cookie. There is no server-side session to revoke.
// @Summary Logout
// @Description Clear the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookie(c)
	return response.Success(c, "Logged out successfully", nil)
}

// Me returns the current account info
// @Summary Get current account
// @Description Get the currently authenticated account's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	role, _ := c.Locals("role").(string)

	account, err := h.authService.GetAccount(c.Context(), userID, role)
	if err != nil {
		return response.NotFound(c, "Account not found")
	}

	return response.Success(c, "Account retrieved successfully", fiber.Map{
		"account": account,
	})
}

// registerError maps registration failures to responses
func (h *AuthHandler) registerError(c *fiber.Ctx, err error, fallback string) error {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.BadRequest(c, verr.Error())
	case errors.Is(err, domain.ErrDuplicateEntry):
		return response.Conflict(c, "An account with these details already exists")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// loginError maps login failures to responses. Credential failures carry
// one uniform message regardless of cause.
func (h *AuthHandler) loginError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return response.Unauthorized(c, "Invalid credentials")
	}
	return response.InternalServerError(c, "Failed to login")
}

// setAuthCookie stores the access token in an HttpOnly cookie
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, accessToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   h.cfg.JWT.AccessTokenMins * 60,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearAuthCookie clears the access token cookie
func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
