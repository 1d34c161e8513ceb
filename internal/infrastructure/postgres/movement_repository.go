package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log de movimientos sobre PostgreSQL (usable con
// pool o tx). La tabla movements es append-only: sin UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, type, product_id, to_location_id, from_location_id, qty, ref, timestamp`

// Append asigna el siguiente ID secuencial M### (máximo sufijo numérico + 1; M001
// con el log vacío) y persiste el movimiento. Debe ejecutarse dentro de la tx del
// TxRunner para que la secuencia no tenga huecos ni repetidos.
func (r *MovementRepo) Append(movement *entity.Movement) error {
	ctx := context.Background()

	var next int
	seqQuery := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(id FROM 2) AS INTEGER)), 0) + 1
		FROM movements WHERE id ~ '^M[0-9]+$'`
	if err := r.q.QueryRow(ctx, seqQuery).Scan(&next); err != nil {
		return fmt.Errorf("siguiente secuencia de movimiento: %w", err)
	}
	movement.ID = fmt.Sprintf("M%03d", next)

	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.Type, movement.ProductID,
		movement.ToLocationID, movement.FromLocationID,
		movement.Qty, movement.Ref, movement.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append movement: %w", err)
	}
	return nil
}

// ListAll devuelve todos los movimientos en orden de inserción.
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY id`
	return r.list(query)
}

// ListByType filtra por tipo de movimiento.
func (r *MovementRepo) ListByType(movementType string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE type = $1 ORDER BY id`
	return r.list(query, movementType)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var toLocation, fromLocation *string
		if err := rows.Scan(&m.ID, &m.Type, &m.ProductID, &toLocation, &fromLocation,
			&m.Qty, &m.Ref, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if toLocation != nil {
			m.ToLocationID = *toLocation
		}
		if fromLocation != nil {
			m.FromLocationID = *fromLocation
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
