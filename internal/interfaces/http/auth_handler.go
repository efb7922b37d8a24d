package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dayflow-hr/dayflow-api/internal/application/auth"
	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
)

// AuthHandler handles login, signup, logout and session introspection.
type AuthHandler struct {
	uc *auth.AuthUseCase
	// loginDelay simulates the upstream identity provider's latency so the
	// client's loading states stay exercised. Zero in tests.
	loginDelay time.Duration
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.AuthUseCase, loginDelay time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, loginDelay: loginDelay}
}

// Login godoc
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and password are required"})
	}
	if h.loginDelay > 0 {
		time.Sleep(h.loginDelay)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Signup godoc
// @Summary      Create an account and sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "account fields"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Signup(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout godoc
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return c.JSON(dto.MessageResponse{Message: "signed out"})
}

// Me godoc
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	me, err := h.uc.Me()
	if err != nil {
		return domainError(c, err)
	}
	if me == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "nobody is signed in"})
	}
	return c.JSON(me)
}

// Capabilities godoc
// @Summary      Capability set for the caller's role
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.CapabilitiesResponse
// @Router       /api/auth/capabilities [get]
func (h *AuthHandler) Capabilities(c *fiber.Ctx) error {
	return c.JSON(h.uc.Capabilities(GetRole(c)))
}
