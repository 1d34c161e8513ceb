package ledger

import (
	"sort"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// ListMovements devuelve el historial ordenado por timestamp descendente, con filtro
// opcional por tipo y límite (0 = sin límite). Lectura directa del log.
func (uc *LedgerUseCase) ListMovements(movementType string, limit int) ([]*entity.Movement, error) {
	var (
		movements []*entity.Movement
		err       error
	)
	if movementType != "" {
		movements, err = uc.movementRepo.ListByType(movementType)
	} else {
		movements, err = uc.movementRepo.ListAll()
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Timestamp.After(movements[j].Timestamp)
	})
	if limit > 0 && len(movements) > limit {
		movements = movements[:limit]
	}
	return movements, nil
}

// ListStock devuelve las filas del stockLedger con saldo positivo, con filtros
// opcionales. Lee la cache denormalizada: es la ruta rápida para vistas, no la
// fuente de verdad (para eso está AvailableAt).
func (uc *LedgerUseCase) ListStock(productID, locationID string) ([]*entity.BalanceRow, error) {
	rows, err := uc.ledgerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.BalanceRow, 0, len(rows))
	for _, r := range rows {
		if !r.Qty.IsPositive() {
			continue
		}
		if productID != "" && r.ProductID != productID {
			continue
		}
		if locationID != "" && r.LocationID != locationID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].LocationID < out[j].LocationID
	})
	return out, nil
}
