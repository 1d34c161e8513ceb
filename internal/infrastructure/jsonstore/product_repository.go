package jsonstore

import (
	"github.com/google/uuid"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo persiste el catálogo de productos en la colección inventory_products.
type ProductRepo struct {
	c Collections
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c Collections) *ProductRepo {
	return &ProductRepo{c: c}
}

// Create agrega el producto; asigna un UUID si el caller no trae ID.
func (r *ProductRepo) Create(product *entity.Product) error {
	var products []*entity.Product
	if err := r.c.Get(KeyProducts, &products); err != nil {
		return err
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for _, existing := range products {
		if existing.ID == product.ID {
			return domain.ErrDuplicate
		}
	}
	products = append(products, product)
	return r.c.Put(KeyProducts, products)
}

// GetByID devuelve (nil, nil) si el producto no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	products, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// List devuelve el catálogo completo.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var products []*entity.Product
	if err := r.c.Get(KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}
