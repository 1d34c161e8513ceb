package entity

// Product representa un producto o SKU del catálogo.
// El stock no vive aquí: se deriva del log de movimientos (ver BalanceRow).
type Product struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	UOM               string `json:"uom"` // unidad de medida (EA, BOX, KG, ...)
	DefaultLocationID string `json:"defaultLocationId,omitempty"`
}
