package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia del log de movimientos (append-only).
// Append asigna el siguiente ID secuencial (M001, M002, ...): sufijo numérico máximo
// existente + 1. Ningún caller externo fija el ID. Los movimientos nunca se actualizan
// ni se borran.
type MovementRepository interface {
	Append(movement *entity.Movement) error
	// ListAll devuelve los movimientos en orden de almacenamiento (no necesariamente
	// orden temporal); el caller ordena por Timestamp si lo necesita.
	ListAll() ([]*entity.Movement, error)
	ListByType(movementType string) ([]*entity.Movement, error)
}
