// Package session implementa la identidad del usuario actual: autenticación
// contra un directorio cerrado, consultas de permiso por rol y persistencia de
// la sesión entre reinicios del proceso.
package session

import (
	"sync"

	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/pkg/logger"
)

// masterPassword contraseña única de la demo, comparada en texto plano.
// Debilidad conocida y deliberada del sistema original (sin hash, sin lockout);
// se conserva tal cual en lugar de corregirla en silencio.
const masterPassword = "password"

// Manager máquina de estados {Anonymous, Authenticated(User)}. Una sola sesión
// por instancia; no hay transición Authenticated→Authenticated sin un Logout
// intermedio. Se inyecta en la composición del arranque en vez de vivir como
// global, para que los tests puedan correr sesiones aisladas en paralelo.
type Manager struct {
	mu        sync.RWMutex
	directory map[string]*entity.User // email → usuario
	store     Store
	current   *entity.User
	log       *logger.Logger
}

// NewManager construye el manager y restaura la sesión persistida si existe.
// Un registro persistido corrupto o mal formado se trata como ausente: el
// arranque nunca falla por el estado de la sesión.
func NewManager(directory []*entity.User, store Store, log *logger.Logger) *Manager {
	m := &Manager{
		directory: make(map[string]*entity.User, len(directory)),
		store:     store,
		log:       log,
	}
	for _, u := range directory {
		m.directory[u.Email] = u
	}
	m.restore()
	return m
}

func (m *Manager) restore() {
	u, err := m.store.Read()
	if err != nil {
		m.log.Warn().Err(err).Msg("sesión persistida ilegible, se descarta")
		return
	}
	if u == nil {
		return
	}
	if u.Email == "" || !entity.ValidRole(u.Role) {
		m.log.Warn().Str("email", u.Email).Msg("sesión persistida mal formada, se descarta")
		return
	}
	m.current = u
	m.log.Info().Str("email", u.Email).Str("role", u.Role).Msg("sesión restaurada")
}

// Login autentica email/password contra el directorio. Éxito solo si el email
// existe Y la contraseña coincide con la constante global. En fallo la sesión
// previa queda intacta; las credenciales inválidas se reportan como boolean,
// nunca como error. Con la sesión de otro usuario activa el login se rechaza:
// no hay transición Authenticated→Authenticated sin Logout intermedio.
func (m *Manager) Login(email, password string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.Email != email {
		return false
	}
	u, ok := m.directory[email]
	if !ok || password != masterPassword {
		return false
	}
	m.current = u
	if err := m.store.Write(u); err != nil {
		m.log.Error().Err(err).Msg("no se pudo persistir la sesión")
	}
	return true
}

// Logout destruye la sesión actual y borra el registro persistido.
// Idempotente: siempre termina en Anonymous con el storage limpio.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	if err := m.store.Clear(); err != nil {
		m.log.Error().Err(err).Msg("no se pudo limpiar la sesión persistida")
	}
}

// Current devuelve el usuario de la sesión activa, o nil en Anonymous.
func (m *Manager) Current() *entity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// HasPermission indica si el rol de la sesión activa pertenece al conjunto
// requerido. Sin sesión activa siempre es false, incluido el conjunto vacío.
// Función pura del estado actual, sin efectos.
func (m *Manager) HasPermission(requiredRoles ...string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return false
	}
	for _, r := range requiredRoles {
		if r == m.current.Role {
			return true
		}
	}
	return false
}
