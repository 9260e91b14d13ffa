package entity

// Roles válidos para User. Conjunto cerrado: el router y el middleware RBAC
// solo razonan sobre estos cuatro valores.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User es un principal del directorio de acceso. Se siembra al arranque y es
// inmutable durante la sesión; el logout destruye la sesión, no el usuario.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"` // clave de login, única en el directorio
	Role        string `json:"role"`
	BadgeNumber string `json:"badgeNumber"`
	Department  string `json:"department"`
}
