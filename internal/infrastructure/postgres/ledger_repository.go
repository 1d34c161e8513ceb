package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del stockLedger sobre PostgreSQL (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Get devuelve la fila del saldo; si no existe, una fila en cero.
func (r *LedgerRepo) Get(productID, locationID string) (*entity.BalanceRow, error) {
	query := `
		SELECT product_id, location_id, qty, updated_at
		FROM stock_ledger WHERE product_id = $1 AND location_id = $2`
	var row entity.BalanceRow
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&row.ProductID, &row.LocationID, &row.Qty, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BalanceRow{ProductID: productID, LocationID: locationID, Qty: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get balance row: %w", err)
	}
	return &row, nil
}

// ApplyDelta inserta la fila con max(0, delta) o actualiza qty = max(0, qty+delta);
// el recorte a cero lo hace GREATEST directamente en el upsert.
func (r *LedgerRepo) ApplyDelta(productID, locationID string, delta decimal.Decimal, ts time.Time) error {
	query := `
		INSERT INTO stock_ledger (product_id, location_id, qty, updated_at)
		VALUES ($1, $2, GREATEST(0, $3::numeric), $4)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET qty = GREATEST(0, stock_ledger.qty + $3::numeric), updated_at = $4`
	_, err := r.q.Exec(context.Background(), query, productID, locationID, delta, ts)
	if err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}
	return nil
}

// List devuelve todas las filas de saldo.
func (r *LedgerRepo) List() ([]*entity.BalanceRow, error) {
	query := `
		SELECT product_id, location_id, qty, updated_at
		FROM stock_ledger ORDER BY product_id, location_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list balance rows: %w", err)
	}
	defer rows.Close()

	var list []*entity.BalanceRow
	for rows.Next() {
		var row entity.BalanceRow
		if err := rows.Scan(&row.ProductID, &row.LocationID, &row.Qty, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// ReplaceAll sustituye la tabla completa (reconstrucción desde el log). Debe
// ejecutarse dentro de la tx del TxRunner.
func (r *LedgerRepo) ReplaceAll(rows []*entity.BalanceRow) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_ledger`); err != nil {
		return fmt.Errorf("vaciar stock_ledger: %w", err)
	}
	query := `
		INSERT INTO stock_ledger (product_id, location_id, qty, updated_at)
		VALUES ($1, $2, $3, $4)`
	for _, row := range rows {
		if _, err := r.q.Exec(ctx, query, row.ProductID, row.LocationID, row.Qty, row.UpdatedAt); err != nil {
			return fmt.Errorf("insertar fila de saldo: %w", err)
		}
	}
	return nil
}
