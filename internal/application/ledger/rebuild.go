package ledger

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// RebuildLedger reconstruye el stockLedger completo desde el log de movimientos y
// reemplaza la tabla en una sola transacción. Aplica los mismos deltas que la
// escritura incremental (RECEIPT +qty destino, PICK −qty origen, TRANSFER ambos),
// recortando a cero paso a paso, en orden de timestamp. Devuelve el número de filas
// resultantes.
func (uc *LedgerUseCase) RebuildLedger(ctx context.Context) (int, error) {
	var count int
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, ledgerRepo repository.LedgerRepository) error {
		movements, err := movRepo.ListAll()
		if err != nil {
			return err
		}
		sort.SliceStable(movements, func(i, j int) bool {
			return movements[i].Timestamp.Before(movements[j].Timestamp)
		})

		type key struct{ productID, locationID string }
		rows := make(map[key]*entity.BalanceRow)
		apply := func(productID, locationID string, delta decimal.Decimal, m *entity.Movement) {
			k := key{productID, locationID}
			row, ok := rows[k]
			if !ok {
				row = &entity.BalanceRow{ProductID: productID, LocationID: locationID, Qty: decimal.Zero}
				rows[k] = row
			}
			row.Qty = row.Qty.Add(delta)
			if row.Qty.IsNegative() {
				row.Qty = decimal.Zero
			}
			row.UpdatedAt = m.Timestamp
		}

		for _, m := range movements {
			switch m.Type {
			case entity.MovementTypeRECEIPT:
				apply(m.ProductID, m.ToLocationID, m.Qty, m)
			case entity.MovementTypePICK:
				apply(m.ProductID, m.FromLocationID, m.Qty.Neg(), m)
			case entity.MovementTypeTRANSFER:
				apply(m.ProductID, m.FromLocationID, m.Qty.Neg(), m)
				apply(m.ProductID, m.ToLocationID, m.Qty, m)
			}
		}

		out := make([]*entity.BalanceRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, row)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].ProductID != out[j].ProductID {
				return out[i].ProductID < out[j].ProductID
			}
			return out[i].LocationID < out[j].LocationID
		})

		count = len(out)
		return ledgerRepo.ReplaceAll(out)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
