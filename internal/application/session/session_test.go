package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartunion/workforce-api/internal/application/session"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/pkg/logger"
)

func newManager(t *testing.T) (*session.Manager, string) {
	t.Helper()
	dir := t.TempDir()
	m := session.NewManager(session.DefaultDirectory(), session.NewFileStore(dir), logger.Nop())
	return m, dir
}

// Login exitoso solo con email del directorio + contraseña fija.
func TestLogin_CredencialesValidas(t *testing.T) {
	m, _ := newManager(t)

	require.True(t, m.Login("admin@company.com", "password"))

	u := m.Current()
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.Equal(t, "ADM001", u.BadgeNumber)
}

// Email desconocido o contraseña incorrecta → false, sin tocar la sesión previa.
func TestLogin_CredencialesInvalidasNoTocanSesion(t *testing.T) {
	m, _ := newManager(t)
	require.True(t, m.Login("hr@company.com", "password"))

	assert.False(t, m.Login("nadie@company.com", "password"), "email fuera del directorio")
	assert.False(t, m.Login("admin@company.com", "incorrecta"), "contraseña errónea")
	assert.False(t, m.Login("", ""))

	u := m.Current()
	require.NotNil(t, u, "la sesión previa debe seguir activa")
	assert.Equal(t, "hr@company.com", u.Email)
}

// Con la sesión de otro usuario activa no hay transición directa: el segundo
// login se rechaza y la sesión original queda intacta hasta un logout.
func TestLogin_SesionActivaBloqueaOtroUsuario(t *testing.T) {
	m, _ := newManager(t)
	require.True(t, m.Login("admin@company.com", "password"))

	assert.False(t, m.Login("hr@company.com", "password"),
		"cambiar de usuario requiere logout intermedio")
	u := m.Current()
	require.NotNil(t, u)
	assert.Equal(t, "admin@company.com", u.Email)

	m.Logout()
	require.True(t, m.Login("hr@company.com", "password"))
	assert.Equal(t, "hr@company.com", m.Current().Email)
}

// El mismo usuario puede re-autenticarse sin logout: no cambia de identidad.
func TestLogin_MismoUsuarioPuedeReautenticarse(t *testing.T) {
	m, _ := newManager(t)
	require.True(t, m.Login("manager@company.com", "password"))
	require.True(t, m.Login("manager@company.com", "password"))
	assert.Equal(t, "manager@company.com", m.Current().Email)
}

// Sin sesión activa HasPermission es false para cualquier conjunto, incluido el vacío.
func TestHasPermission_SinSesionSiempreFalse(t *testing.T) {
	m, _ := newManager(t)

	assert.False(t, m.HasPermission())
	assert.False(t, m.HasPermission(entity.RoleAdmin))
	assert.False(t, m.HasPermission(entity.RoleAdmin, entity.RoleHR, entity.RoleManager, entity.RoleEmployee))
}

// Escenario de la demo: admin entra, pertenece a {admin,hr}, no a {employee}.
func TestHasPermission_RolAdmin(t *testing.T) {
	m, _ := newManager(t)
	require.True(t, m.Login("admin@company.com", "password"))

	assert.True(t, m.HasPermission(entity.RoleAdmin, entity.RoleHR))
	assert.False(t, m.HasPermission(entity.RoleEmployee))
	assert.False(t, m.HasPermission(), "conjunto vacío nunca autoriza")
}

// La sesión persiste entre "reinicios" (nuevo Manager sobre el mismo store).
func TestRestore_SesionPersistida(t *testing.T) {
	dir := t.TempDir()
	store := session.NewFileStore(dir)
	m1 := session.NewManager(session.DefaultDirectory(), store, logger.Nop())
	require.True(t, m1.Login("manager@company.com", "password"))

	m2 := session.NewManager(session.DefaultDirectory(), session.NewFileStore(dir), logger.Nop())
	u := m2.Current()
	require.NotNil(t, u, "el reinicio debe restaurar la sesión sin re-autenticar")
	assert.Equal(t, entity.RoleManager, u.Role)
}

// Tras logout, un reinicio restaura a Anonymous: no queda sesión residual.
func TestRestore_DespuesDeLogoutEsAnonimo(t *testing.T) {
	dir := t.TempDir()
	m1 := session.NewManager(session.DefaultDirectory(), session.NewFileStore(dir), logger.Nop())
	require.True(t, m1.Login("employee@company.com", "password"))
	m1.Logout()

	m2 := session.NewManager(session.DefaultDirectory(), session.NewFileStore(dir), logger.Nop())
	assert.Nil(t, m2.Current())
}

// Registro persistido corrupto → se degrada a Anonymous, nunca a un fallo de arranque.
func TestRestore_RegistroCorruptoSeDescarta(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, session.StorageKey+".json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o600))

	m := session.NewManager(session.DefaultDirectory(), session.NewFileStore(dir), logger.Nop())
	assert.Nil(t, m.Current())
	assert.False(t, m.HasPermission(entity.RoleAdmin))
}

// Registro bien formado pero con rol fuera del conjunto cerrado → ausente.
func TestRestore_RolInvalidoSeDescarta(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, session.StorageKey+".json")
	require.NoError(t, os.WriteFile(path, []byte(`{"email":"x@company.com","role":"superuser"}`), 0o600))

	m := session.NewManager(session.DefaultDirectory(), session.NewFileStore(dir), logger.Nop())
	assert.Nil(t, m.Current())
}

// Logout dos veces seguidas produce el mismo estado final que una sola vez.
func TestLogout_Idempotente(t *testing.T) {
	m, dir := newManager(t)
	require.True(t, m.Login("admin@company.com", "password"))

	m.Logout()
	m.Logout()

	assert.Nil(t, m.Current())
	_, err := os.Stat(filepath.Join(dir, session.StorageKey+".json"))
	assert.True(t, os.IsNotExist(err), "el registro persistido debe quedar borrado")
}
