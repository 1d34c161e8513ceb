package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceRow es una fila del stockLedger: saldo actual de un producto en una ubicación.
// Es una proyección denormalizada del log de movimientos (cache de lectura); el log
// es la fuente de verdad y la tabla puede reconstruirse desde él en cualquier momento.
// Invariante: Qty >= 0 (los deltas negativos se recortan a cero al escribir).
type BalanceRow struct {
	ProductID  string          `json:"productId"`
	LocationID string          `json:"locationId"`
	Qty        decimal.Decimal `json:"qty"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
