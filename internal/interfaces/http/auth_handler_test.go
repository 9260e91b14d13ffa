package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/application/session"
	apphttp "github.com/smartunion/workforce-api/internal/interfaces/http"
	"github.com/smartunion/workforce-api/pkg/config"
	"github.com/smartunion/workforce-api/pkg/logger"
)

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	sessions := session.NewManager(session.DefaultDirectory(), session.NewFileStore(t.TempDir()), logger.Nop())
	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer}
	h := apphttp.NewAuthHandler(sessions, jwtCfg)

	app := fiber.New()
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/logout", apphttp.AuthMiddleware(testJWTSecret), h.Logout)
	app.Get("/api/auth/me", apphttp.AuthMiddleware(testJWTSecret), h.Me)
	return app
}

func postLogin(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	body := `{"email":"` + email + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El login con credenciales del directorio devuelve token y usuario con rol.
func TestLogin_CredencialesValidasDevuelvenToken(t *testing.T) {
	app := buildAuthApp(t)
	resp := postLogin(t, app, "hr@company.com", "password")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "hr", out.User.Role)
	assert.Equal(t, "HR001", out.User.BadgeNumber)
	assert.Equal(t, "Sarah HR", out.User.Name)
}

// Email fuera del directorio o contraseña incorrecta → 401, sin token.
func TestLogin_CredencialesInvalidasRetornan401(t *testing.T) {
	app := buildAuthApp(t)

	for _, tc := range []struct{ email, password string }{
		{"nadie@company.com", "password"},
		{"admin@company.com", "incorrecta"},
	} {
		resp := postLogin(t, app, tc.email, tc.password)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, tc.email)
		resp.Body.Close()
	}
}

// Con la sesión de otro usuario activa el login devuelve 409 y la sesión no cambia.
func TestLogin_SesionActivaDeOtroUsuarioRetorna409(t *testing.T) {
	app := buildAuthApp(t)

	resp := postLogin(t, app, "admin@company.com", "password")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp2 := postLogin(t, app, "hr@company.com", "password")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode,
		"cambiar de usuario sin logout debe rechazarse")

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&out))
	assert.Equal(t, "ACTIVE_SESSION", out.Code)
}

// El token del login autentica /me; tras logout la sesión queda anónima.
func TestLogin_CicloLoginMeLogout(t *testing.T) {
	app := buildAuthApp(t)

	resp := postLogin(t, app, "employee@company.com", "password")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()

	me := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	me.Header.Set("Authorization", "Bearer "+out.Token)
	meResp, err := app.Test(me, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)
	meResp.Body.Close()

	logout := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	logout.Header.Set("Authorization", "Bearer "+out.Token)
	logoutResp, err := app.Test(logout, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, logoutResp.StatusCode)
	logoutResp.Body.Close()

	// El token sigue siendo criptográficamente válido, pero la sesión ya no existe.
	me2 := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	me2.Header.Set("Authorization", "Bearer "+out.Token)
	me2Resp, err := app.Test(me2, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, me2Resp.StatusCode)
	me2Resp.Body.Close()
}
