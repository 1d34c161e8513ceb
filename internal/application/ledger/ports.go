package ledger

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función como unidad atómica sobre el almacén, pasando
// repositorios atados a esa transacción. Garantiza que el append al log y la
// actualización del stockLedger se vean como un solo efecto (todo o nada).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
