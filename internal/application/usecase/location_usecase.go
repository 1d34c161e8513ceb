package usecase

import (
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// LocationUseCase casos de uso del catálogo de ubicaciones.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una ubicación. ID opcional: el repositorio asigna un UUID si falta.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*entity.Location, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	location := &entity.Location{ID: in.ID, Name: in.Name}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID obtiene una ubicación por ID; (nil, nil) si no existe.
func (uc *LocationUseCase) GetByID(id string) (*entity.Location, error) {
	return uc.repo.GetByID(id)
}

// List devuelve el catálogo completo.
func (uc *LocationUseCase) List() ([]*entity.Location, error) {
	return uc.repo.List()
}
