package jsonstore

import (
	"github.com/google/uuid"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo persiste el catálogo de ubicaciones en la colección inventory_locations.
type LocationRepo struct {
	c Collections
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(c Collections) *LocationRepo {
	return &LocationRepo{c: c}
}

// Create agrega la ubicación; asigna un UUID si el caller no trae ID.
func (r *LocationRepo) Create(location *entity.Location) error {
	var locations []*entity.Location
	if err := r.c.Get(KeyLocations, &locations); err != nil {
		return err
	}
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	for _, existing := range locations {
		if existing.ID == location.ID {
			return domain.ErrDuplicate
		}
	}
	locations = append(locations, location)
	return r.c.Put(KeyLocations, locations)
}

// GetByID devuelve (nil, nil) si la ubicación no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	locations, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, l := range locations {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

// List devuelve el catálogo completo.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	var locations []*entity.Location
	if err := r.c.Get(KeyLocations, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}
