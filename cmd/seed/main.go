// seed carga datos de demostración en el store JSON: catálogos, un log de
// movimientos inicial y el stockLedger reconstruido desde ese log (así la cache
// arranca consistente con la fuente de verdad).
//
// Uso: go run ./cmd/seed  (respeta DATA_DIR; sobreescribe las colecciones)
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/ledger"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/jsonstore"
	"github.com/jhoicas/Kardex-api/pkg/config"
	"github.com/jhoicas/Kardex-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := jsonstore.NewStore(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store JSON")
	}

	if err := store.Put(jsonstore.KeyProducts, demoProducts()); err != nil {
		log.Fatal().Err(err).Msg("sembrar productos")
	}
	if err := store.Put(jsonstore.KeyLocations, demoLocations()); err != nil {
		log.Fatal().Err(err).Msg("sembrar ubicaciones")
	}
	// Log vacío y luego Append por movimiento, para que los IDs M001.. los asigne el repo.
	if err := store.Put(jsonstore.KeyMovements, []*entity.Movement{}); err != nil {
		log.Fatal().Err(err).Msg("vaciar movimientos")
	}

	movementRepo := jsonstore.NewMovementRepository(store)
	for _, m := range demoMovements() {
		if err := movementRepo.Append(m); err != nil {
			log.Fatal().Err(err).Msg("sembrar movimiento")
		}
	}

	ledgerUC := ledger.NewLedgerUseCase(
		jsonstore.NewTxRunner(store),
		movementRepo,
		jsonstore.NewLedgerRepository(store),
		jsonstore.NewProductRepository(store),
		jsonstore.NewLocationRepository(store),
	)
	rows, err := ledgerUC.RebuildLedger(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("reconstruir stockLedger")
	}

	log.Info().
		Str("data_dir", cfg.Storage.DataDir).
		Int("ledger_rows", rows).
		Msg("datos de demostración cargados")
}

func demoProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "P1", Name: "Caja de tornillos 4mm", UOM: "BOX", DefaultLocationID: "L1"},
		{ID: "P2", Name: "Guantes de nitrilo", UOM: "PAIR", DefaultLocationID: "L2"},
		{ID: "P3", Name: "Cinta de embalaje", UOM: "EA", DefaultLocationID: "L1"},
		{ID: "P4", Name: "Etiquetas térmicas", UOM: "ROLL", DefaultLocationID: "L3"},
		{ID: "P5", Name: "Film estirable", UOM: "ROLL"},
	}
}

func demoLocations() []*entity.Location {
	return []*entity.Location{
		{ID: "L1", Name: "Pasillo A / Estante 1"},
		{ID: "L2", Name: "Pasillo A / Estante 2"},
		{ID: "L3", Name: "Pasillo B / Estante 1"},
		{ID: "L4", Name: "Zona de despacho"},
	}
}

func demoMovements() []*entity.Movement {
	now := time.Now()
	qty := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	return []*entity.Movement{
		{Type: entity.MovementTypeRECEIPT, ProductID: "P1", ToLocationID: "L1", Qty: qty(40), Ref: "GR-INICIAL", Timestamp: now.Add(-96 * time.Hour)},
		{Type: entity.MovementTypeRECEIPT, ProductID: "P2", ToLocationID: "L2", Qty: qty(25), Ref: "GR-INICIAL", Timestamp: now.Add(-96 * time.Hour)},
		{Type: entity.MovementTypeRECEIPT, ProductID: "P3", ToLocationID: "L1", Qty: qty(12), Ref: "GR-INICIAL", Timestamp: now.Add(-72 * time.Hour)},
		{Type: entity.MovementTypePICK, ProductID: "P1", FromLocationID: "L1", Qty: qty(8), Ref: "PED-1001", Timestamp: now.Add(-48 * time.Hour)},
		{Type: entity.MovementTypeTRANSFER, ProductID: "P2", FromLocationID: "L2", ToLocationID: "L4", Qty: qty(5), Ref: "TR-REPO", Timestamp: now.Add(-24 * time.Hour)},
		{Type: entity.MovementTypeRECEIPT, ProductID: "P4", ToLocationID: "L3", Qty: qty(6), Ref: "GR-2042", Timestamp: now.Add(-24 * time.Hour)},
		{Type: entity.MovementTypePICK, ProductID: "P3", FromLocationID: "L1", Qty: qty(4), Ref: "PED-1002", Timestamp: now.Add(-2 * time.Hour)},
	}
}
