package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// LocationRepository define el puerto del catálogo de ubicaciones.
// GetByID devuelve (nil, nil) si la ubicación no existe.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error)
}
