package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeRECEIPT  = "RECEIPT"  // entrada de mercancía (goods receipt)
	MovementTypePICK     = "PICK"     // salida / despacho
	MovementTypeTRANSFER = "TRANSFER" // traslado entre ubicaciones
)

// Movement representa un evento de stock inmutable en el log append-only.
// El ID lo asigna el repositorio (secuencia M001, M002, ...); ningún caller lo fija.
// ToLocationID aplica a RECEIPT/TRANSFER; FromLocationID a PICK/TRANSFER.
type Movement struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	ProductID      string          `json:"productId"`
	ToLocationID   string          `json:"toLocationId,omitempty"`
	FromLocationID string          `json:"fromLocationId,omitempty"`
	Qty            decimal.Decimal `json:"qty"`
	Ref            string          `json:"ref"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ValidMovementType indica si el tipo es uno de los tres conocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeRECEIPT || t == MovementTypePICK || t == MovementTypeTRANSFER
}
