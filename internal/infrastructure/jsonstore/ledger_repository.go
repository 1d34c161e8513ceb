package jsonstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo persiste el stockLedger (saldos por producto+ubicación) en la colección
// inventory_stockLedger. Usable con el Store directamente o con la tx del TxRunner.
type LedgerRepo struct {
	c Collections
}

// NewLedgerRepository construye el adaptador. Pasar Store o tx.
func NewLedgerRepository(c Collections) *LedgerRepo {
	return &LedgerRepo{c: c}
}

// Get devuelve la fila del saldo; si no existe, una fila en cero.
func (r *LedgerRepo) Get(productID, locationID string) (*entity.BalanceRow, error) {
	rows, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.ProductID == productID && row.LocationID == locationID {
			return row, nil
		}
	}
	return &entity.BalanceRow{ProductID: productID, LocationID: locationID, Qty: decimal.Zero}, nil
}

// ApplyDelta crea o actualiza la fila con qty = max(0, qty+delta) y el timestamp
// del movimiento que la origina.
func (r *LedgerRepo) ApplyDelta(productID, locationID string, delta decimal.Decimal, ts time.Time) error {
	var rows []*entity.BalanceRow
	if err := r.c.Get(KeyLedger, &rows); err != nil {
		return err
	}

	var row *entity.BalanceRow
	for _, existing := range rows {
		if existing.ProductID == productID && existing.LocationID == locationID {
			row = existing
			break
		}
	}
	if row == nil {
		row = &entity.BalanceRow{ProductID: productID, LocationID: locationID, Qty: decimal.Zero}
		rows = append(rows, row)
	}

	row.Qty = row.Qty.Add(delta)
	if row.Qty.IsNegative() {
		row.Qty = decimal.Zero
	}
	row.UpdatedAt = ts

	return r.c.Put(KeyLedger, rows)
}

// List devuelve todas las filas de saldo.
func (r *LedgerRepo) List() ([]*entity.BalanceRow, error) {
	var rows []*entity.BalanceRow
	if err := r.c.Get(KeyLedger, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceAll sustituye la tabla completa (reconstrucción desde el log).
func (r *LedgerRepo) ReplaceAll(rows []*entity.BalanceRow) error {
	return r.c.Put(KeyLedger, rows)
}
