package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/analytics"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/jsonstore"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func newDashboard(t *testing.T, movements []*entity.Movement) *analytics.DashboardUseCase {
	t.Helper()
	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)

	productRepo := jsonstore.NewProductRepository(store)
	locationRepo := jsonstore.NewLocationRepository(store)
	require.NoError(t, productRepo.Create(&entity.Product{ID: "P1", Name: "Tornillos", UOM: "BOX"}))
	require.NoError(t, productRepo.Create(&entity.Product{ID: "P2", Name: "Guantes", UOM: "PAIR"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "L1", Name: "Pasillo A"}))

	movementRepo := jsonstore.NewMovementRepository(store)
	for _, m := range movements {
		require.NoError(t, movementRepo.Append(m))
	}
	return analytics.NewDashboardUseCase(movementRepo, productRepo, locationRepo)
}

func TestGetSummary_KPIsDelDia(t *testing.T) {
	now := time.Now()
	yesterday := now.Add(-26 * time.Hour)
	uc := newDashboard(t, []*entity.Movement{
		// Hoy: 5+3 recibidos, 2 despachados.
		{Type: entity.MovementTypeRECEIPT, ProductID: "P1", ToLocationID: "L1", Qty: qty(5), Ref: "r", Timestamp: now},
		{Type: entity.MovementTypeRECEIPT, ProductID: "P2", ToLocationID: "L1", Qty: qty(3), Ref: "r", Timestamp: now},
		{Type: entity.MovementTypePICK, ProductID: "P1", FromLocationID: "L1", Qty: qty(2), Ref: "r", Timestamp: now},
		// Ayer: no cuenta para los KPIs de hoy.
		{Type: entity.MovementTypeRECEIPT, ProductID: "P1", ToLocationID: "L1", Qty: qty(100), Ref: "r", Timestamp: yesterday},
		// TRANSFER: nunca cuenta.
		{Type: entity.MovementTypeTRANSFER, ProductID: "P1", FromLocationID: "L1", ToLocationID: "L1", Qty: qty(50), Ref: "r", Timestamp: now},
	})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.ReceiptsToday.Equal(qty(8)), "obtuvo %s", summary.ReceiptsToday)
	assert.True(t, summary.PicksToday.Equal(qty(2)), "obtuvo %s", summary.PicksToday)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.TotalLocations)
	assert.NotEmpty(t, summary.DateLabel)
}

func TestGetSummary_ActividadReciente(t *testing.T) {
	now := time.Now()
	var movements []*entity.Movement
	for i := 0; i < 13; i++ {
		movements = append(movements, &entity.Movement{
			Type: entity.MovementTypeRECEIPT, ProductID: "P1", ToLocationID: "L1",
			Qty: qty(1), Ref: "r", Timestamp: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	uc := newDashboard(t, movements)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Recent, 10, "el widget de actividad se limita a 10")
	// Más reciente primero: el primer movimiento sembrado (offset 0h) encabeza.
	assert.Equal(t, "M001", summary.Recent[0].ID)
	assert.True(t, summary.Recent[0].Timestamp.After(summary.Recent[9].Timestamp))
}

func TestGetSummary_StockBajo(t *testing.T) {
	now := time.Now()
	uc := newDashboard(t, []*entity.Movement{
		// P1: neto 15, fuera del umbral.
		{Type: entity.MovementTypeRECEIPT, ProductID: "P1", ToLocationID: "L1", Qty: qty(15), Ref: "r", Timestamp: now},
		// P2: neto 9−6 = 3, bajo el umbral de 10.
		{Type: entity.MovementTypeRECEIPT, ProductID: "P2", ToLocationID: "L1", Qty: qty(9), Ref: "r", Timestamp: now},
		{Type: entity.MovementTypePICK, ProductID: "P2", FromLocationID: "L1", Qty: qty(6), Ref: "r", Timestamp: now},
		// P3: sin catálogo, neto 1; el nombre cae al ID.
		{Type: entity.MovementTypeRECEIPT, ProductID: "P3", ToLocationID: "L1", Qty: qty(1), Ref: "r", Timestamp: now},
	})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.LowStock, 2)
	// Ascendente por saldo: P3 (1) antes que P2 (3).
	assert.Equal(t, "P3", summary.LowStock[0].ProductID)
	assert.Equal(t, "P3", summary.LowStock[0].Name, "sin catálogo el nombre cae al ID")
	assert.Equal(t, "P2", summary.LowStock[1].ProductID)
	assert.Equal(t, "Guantes", summary.LowStock[1].Name)
	assert.True(t, summary.LowStock[1].Qty.Equal(qty(3)))
}

func TestGetSummary_StoreVacio(t *testing.T) {
	uc := newDashboard(t, nil)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.ReceiptsToday.IsZero())
	assert.True(t, summary.PicksToday.IsZero())
	assert.Empty(t, summary.Recent)
	assert.Empty(t, summary.LowStock)
}
