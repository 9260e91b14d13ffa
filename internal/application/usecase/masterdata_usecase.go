package usecase

import (
	"context"
	"strings"

	"github.com/smartunion/workforce-api/internal/application/dto"
	"github.com/smartunion/workforce-api/internal/domain"
	"github.com/smartunion/workforce-api/internal/domain/entity"
	"github.com/smartunion/workforce-api/internal/domain/repository"
)

// LookupUseCase casos de uso CRUD para una colección de datos maestros.
// Se instancia cuatro veces (job titles, work groups, departments, project
// types) sobre el mismo contrato de repositorio.
type LookupUseCase struct {
	repo repository.LookupRepository
}

// NewLookupUseCase construye el caso de uso con el puerto de persistencia.
func NewLookupUseCase(repo repository.LookupRepository) *LookupUseCase {
	return &LookupUseCase{repo: repo}
}

// List lista la colección ordenada por nombre.
func (uc *LookupUseCase) List(ctx context.Context) (*dto.LookupListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LookupResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *lookupToResponse(l))
	}
	return &dto.LookupListResponse{Items: items}, nil
}

// Create crea un registro. Devuelve domain.ErrInvalidInput si el nombre viene vacío.
func (uc *LookupUseCase) Create(ctx context.Context, in dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	l, err := uc.repo.Create(ctx, entity.LookupFields{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	return lookupToResponse(l), nil
}

// Update aplica un parche parcial. domain.ErrNotFound si el id no existe.
func (uc *LookupUseCase) Update(ctx context.Context, id string, in dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	l, err := uc.repo.Update(ctx, id, entity.LookupPatch{
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	return lookupToResponse(l), nil
}

// Delete elimina por id. domain.ErrNotFound si el id no existe.
func (uc *LookupUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func lookupToResponse(l *entity.Lookup) *dto.LookupResponse {
	return &dto.LookupResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// MasterData agrupa los cuatro casos de uso de datos maestros para inyección
// conjunta en el router.
type MasterData struct {
	JobTitles    *LookupUseCase
	WorkGroups   *LookupUseCase
	Departments  *LookupUseCase
	ProjectTypes *LookupUseCase
}
