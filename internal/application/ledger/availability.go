package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// AvailableAt calcula la cantidad disponible de un producto en una ubicación por
// replay completo del log de movimientos. Es el cálculo autoritativo: se usa para
// validar picks y traslados, independiente de la cache stockLedger y de su posible
// desfase. Sin recorte a cero: puede ser negativo si el log quedó fuera de orden
// causal (escrituras externas).
//
//	disponible = Σ qty(RECEIPT hacia la ubicación) − Σ qty(PICK desde la ubicación)
//
// Los TRANSFER no participan del cálculo (convención heredada del consumidor del log).
func AvailableAt(movRepo repository.MovementRepository, productID, locationID string) (decimal.Decimal, error) {
	movements, err := movRepo.ListAll()
	if err != nil {
		return decimal.Zero, err
	}
	available := decimal.Zero
	for _, m := range movements {
		if m.ProductID != productID {
			continue
		}
		switch {
		case m.Type == entity.MovementTypeRECEIPT && m.ToLocationID == locationID:
			available = available.Add(m.Qty)
		case m.Type == entity.MovementTypePICK && m.FromLocationID == locationID:
			available = available.Sub(m.Qty)
		}
	}
	return available, nil
}

// AvailableAt expone el cálculo autoritativo como consulta del caso de uso.
func (uc *LedgerUseCase) AvailableAt(productID, locationID string) (decimal.Decimal, error) {
	return AvailableAt(uc.movementRepo, productID, locationID)
}
