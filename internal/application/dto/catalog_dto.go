package dto

// CreateProductRequest body para POST /api/products. ID opcional (UUID si falta).
type CreateProductRequest struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name"`
	UOM               string `json:"uom"`
	DefaultLocationID string `json:"default_location_id,omitempty"`
}

// CreateLocationRequest body para POST /api/locations. ID opcional (UUID si falta).
type CreateLocationRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
