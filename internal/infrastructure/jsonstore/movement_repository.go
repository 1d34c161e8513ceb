package jsonstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persiste el log de movimientos en la colección inventory_movements.
// Usable con el Store directamente o con la tx del TxRunner (Collections).
type MovementRepo struct {
	c Collections
}

// NewMovementRepository construye el adaptador. Pasar Store o tx.
func NewMovementRepository(c Collections) *MovementRepo {
	return &MovementRepo{c: c}
}

// Append asigna el siguiente ID secuencial (M001 si el log está vacío) y persiste
// la lista completa. El ID que traiga el movimiento se ignora siempre.
func (r *MovementRepo) Append(movement *entity.Movement) error {
	var movements []*entity.Movement
	if err := r.c.Get(KeyMovements, &movements); err != nil {
		return err
	}
	movement.ID = fmt.Sprintf("M%03d", maxSequence(movements)+1)
	movements = append(movements, movement)
	return r.c.Put(KeyMovements, movements)
}

// ListAll devuelve los movimientos en orden de almacenamiento.
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	var movements []*entity.Movement
	if err := r.c.Get(KeyMovements, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// ListByType filtra por tipo de movimiento.
func (r *MovementRepo) ListByType(movementType string) ([]*entity.Movement, error) {
	movements, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if m.Type == movementType {
			out = append(out, m)
		}
	}
	return out, nil
}

// maxSequence devuelve el mayor sufijo numérico de los IDs M###; los IDs que no
// siguen el formato se ignoran.
func maxSequence(movements []*entity.Movement) int {
	max := 0
	for _, m := range movements {
		n, err := strconv.Atoi(strings.TrimPrefix(m.ID, "M"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
