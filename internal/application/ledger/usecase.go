package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// LedgerUseCase registra movimientos de stock (RECEIPT, PICK, TRANSFER) de forma
// transaccional: en una misma unidad atómica se agrega el movimiento al log
// append-only y se aplican los deltas al stockLedger con el mismo timestamp.
//
// El disponible para picks/traslados se valida con el replay autoritativo del log
// (AvailableAt), nunca con la cache.
type LedgerUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	ledgerRepo   repository.LedgerRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		ledgerRepo:   ledgerRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// ReceiptInput entrada para registrar una entrada de mercancía.
type ReceiptInput struct {
	ProductID    string
	Qty          decimal.Decimal
	ToLocationID string
	Ref          string // opcional; si falta se genera GR-YYYYMMDD
}

// PickInput entrada para registrar una salida.
type PickInput struct {
	ProductID      string
	Qty            decimal.Decimal
	FromLocationID string
	Ref            string // opcional; si falta se genera PK-YYYYMMDD
}

// TransferInput entrada para registrar un traslado entre ubicaciones.
type TransferInput struct {
	ProductID      string
	Qty            decimal.Decimal
	FromLocationID string
	ToLocationID   string
	Ref            string // opcional; si falta se genera TR-YYYYMMDD
}

// RecordReceipt valida y registra un RECEIPT: append al log + delta +Qty en
// (producto, ubicación destino). Ambos efectos con el mismo timestamp, atómicos.
func (uc *LedgerUseCase) RecordReceipt(ctx context.Context, in ReceiptInput) (*entity.Movement, error) {
	if in.ProductID == "" || in.ToLocationID == "" || !in.Qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkCatalog(in.ProductID, in.ToLocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	movement := &entity.Movement{
		Type:         entity.MovementTypeRECEIPT,
		ProductID:    in.ProductID,
		ToLocationID: in.ToLocationID,
		Qty:          in.Qty,
		Ref:          refOrDefault(in.Ref, entity.MovementTypeRECEIPT, now),
		Timestamp:    now,
	}

	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, ledgerRepo repository.LedgerRepository) error {
		if err := movRepo.Append(movement); err != nil {
			return err
		}
		return ledgerRepo.ApplyDelta(in.ProductID, in.ToLocationID, in.Qty, now)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// RecordPick valida y registra un PICK. Rechaza con InsufficientStockError (incluye
// el disponible) si Qty excede el disponible calculado por replay; en ese caso no se
// agrega movimiento ni cambia ningún saldo.
func (uc *LedgerUseCase) RecordPick(ctx context.Context, in PickInput) (*entity.Movement, error) {
	if in.ProductID == "" || in.FromLocationID == "" || !in.Qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkCatalog(in.ProductID, in.FromLocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	movement := &entity.Movement{
		Type:           entity.MovementTypePICK,
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		Qty:            in.Qty,
		Ref:            refOrDefault(in.Ref, entity.MovementTypePICK, now),
		Timestamp:      now,
	}

	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, ledgerRepo repository.LedgerRepository) error {
		available, err := AvailableAt(movRepo, in.ProductID, in.FromLocationID)
		if err != nil {
			return err
		}
		if in.Qty.GreaterThan(available) {
			return &domain.InsufficientStockError{
				ProductID:  in.ProductID,
				LocationID: in.FromLocationID,
				Requested:  in.Qty,
				Available:  available,
			}
		}
		if err := movRepo.Append(movement); err != nil {
			return err
		}
		return ledgerRepo.ApplyDelta(in.ProductID, in.FromLocationID, in.Qty.Neg(), now)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// RecordTransfer valida y registra un TRANSFER: un solo movimiento con origen y
// destino, y dos deltas en el stockLedger (−Qty origen, +Qty destino). El disponible
// se valida en el origen igual que en un pick.
func (uc *LedgerUseCase) RecordTransfer(ctx context.Context, in TransferInput) (*entity.Movement, error) {
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" || !in.Qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkCatalog(in.ProductID, in.FromLocationID); err != nil {
		return nil, err
	}
	if dest, err := uc.locationRepo.GetByID(in.ToLocationID); err != nil || dest == nil {
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movement := &entity.Movement{
		Type:           entity.MovementTypeTRANSFER,
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Qty:            in.Qty,
		Ref:            refOrDefault(in.Ref, entity.MovementTypeTRANSFER, now),
		Timestamp:      now,
	}

	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, ledgerRepo repository.LedgerRepository) error {
		available, err := AvailableAt(movRepo, in.ProductID, in.FromLocationID)
		if err != nil {
			return err
		}
		if in.Qty.GreaterThan(available) {
			return &domain.InsufficientStockError{
				ProductID:  in.ProductID,
				LocationID: in.FromLocationID,
				Requested:  in.Qty,
				Available:  available,
			}
		}
		if err := movRepo.Append(movement); err != nil {
			return err
		}
		if err := ledgerRepo.ApplyDelta(in.ProductID, in.FromLocationID, in.Qty.Neg(), now); err != nil {
			return err
		}
		return ledgerRepo.ApplyDelta(in.ProductID, in.ToLocationID, in.Qty, now)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// checkCatalog verifica que producto y ubicación existan antes de tocar el log.
func (uc *LedgerUseCase) checkCatalog(productID, locationID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	return nil
}

// refOrDefault devuelve la referencia externa o un valor sintético fechado
// (GR-/PK-/TR- + YYYYMMDD) según el tipo de movimiento.
func refOrDefault(ref, movementType string, ts time.Time) string {
	if ref != "" {
		return ref
	}
	prefix := "MV"
	switch movementType {
	case entity.MovementTypeRECEIPT:
		prefix = "GR"
	case entity.MovementTypePICK:
		prefix = "PK"
	case entity.MovementTypeTRANSFER:
		prefix = "TR"
	}
	return fmt.Sprintf("%s-%s", prefix, ts.Format("20060102"))
}
