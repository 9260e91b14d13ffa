package session

import "github.com/smartunion/workforce-api/internal/domain/entity"

// DefaultDirectory directorio demo de usuarios conocidos. Conjunto cerrado,
// sembrado al arranque; la aplicación no expone altas ni bajas de usuarios.
func DefaultDirectory() []*entity.User {
	return []*entity.User{
		{
			ID:          "1",
			Name:        "John Admin",
			Email:       "admin@company.com",
			Role:        entity.RoleAdmin,
			BadgeNumber: "ADM001",
			Department:  "Administration",
		},
		{
			ID:          "2",
			Name:        "Sarah HR",
			Email:       "hr@company.com",
			Role:        entity.RoleHR,
			BadgeNumber: "HR001",
			Department:  "Human Resources",
		},
		{
			ID:          "3",
			Name:        "Mike Manager",
			Email:       "manager@company.com",
			Role:        entity.RoleManager,
			BadgeNumber: "MNG001",
			Department:  "Operations",
		},
		{
			ID:          "4",
			Name:        "Jane Employee",
			Email:       "employee@company.com",
			Role:        entity.RoleEmployee,
			BadgeNumber: "EMP001",
			Department:  "Engineering",
		},
	}
}
