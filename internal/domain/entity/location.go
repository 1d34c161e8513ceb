package entity

// Location representa una ubicación física de almacenamiento (pasillo/estante/bin).
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
