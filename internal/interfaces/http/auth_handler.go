package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/application/session"
	"github.com/smartunion/workforce-api/pkg/config"
	"github.com/smartunion/workforce-api/pkg/jwt"
)

// AuthHandler maneja login, logout y consulta de la sesión actual.
type AuthHandler struct {
	sessions *session.Manager
	jwtCfg   config.JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sessions *session.Manager, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{sessions: sessions, jwtCfg: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	// Una sesión de otro usuario bloquea el login: primero logout.
	if cur := h.sessions.Current(); cur != nil && cur.Email != in.Email {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACTIVE_SESSION", Message: "ya hay una sesión activa de otro usuario"})
	}
	if !h.sessions.Login(in.Email, in.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	u := h.sessions.Current()
	token, err := jwt.Generate(h.jwtCfg.Secret, u.ID, u.Role, u.BadgeNumber, h.jwtCfg.Issuer, h.jwtCfg.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Role:        u.Role,
			BadgeNumber: u.BadgeNumber,
			Department:  u.Department,
		},
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204  "sin contenido"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario de la sesión activa
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u := h.sessions.Current()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
	}
	return c.JSON(dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		BadgeNumber: u.BadgeNumber,
		Department:  u.Department,
	})
}
