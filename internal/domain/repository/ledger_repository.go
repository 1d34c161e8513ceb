package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// LedgerRepository define el puerto del stockLedger: la tabla denormalizada de saldos
// por (producto, ubicación). Es una cache de lectura derivada del log de movimientos;
// para decisiones de negocio (¿alcanza el stock?) se usa el replay autoritativo del log,
// nunca esta tabla.
type LedgerRepository interface {
	// Get devuelve la fila del saldo; si no existe, una fila en cero (nunca nil).
	Get(productID, locationID string) (*entity.BalanceRow, error)
	// ApplyDelta crea la fila con max(0, delta) o actualiza qty = max(0, qty+delta),
	// siempre con el timestamp del movimiento que la origina.
	ApplyDelta(productID, locationID string, delta decimal.Decimal, ts time.Time) error
	List() ([]*entity.BalanceRow, error)
	// ReplaceAll sustituye la tabla completa (reconstrucción desde el log).
	ReplaceAll(rows []*entity.BalanceRow) error
}
