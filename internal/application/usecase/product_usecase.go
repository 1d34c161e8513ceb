package usecase

import (
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos. El stock no se toca aquí:
// se deriva del log de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. ID opcional: el repositorio asigna un UUID si falta.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UOM == "" {
		in.UOM = "EA"
	}
	product := &entity.Product{
		ID:                in.ID,
		Name:              in.Name,
		UOM:               in.UOM,
		DefaultLocationID: in.DefaultLocationID,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.repo.GetByID(id)
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() ([]*entity.Product, error) {
	return uc.repo.List()
}
