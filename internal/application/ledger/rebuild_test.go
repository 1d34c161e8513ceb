package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/ledger"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// RebuildLedger debe reproducir exactamente lo que la escritura incremental habría
// dejado en la cache, incluida la corrección de una cache desfasada.
func TestRebuildLedger_ReconstruyeDesdeElLog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()

	// Log sembrado directo (sin pasar por el caso de uso): la cache queda vacía.
	seed := []*entity.Movement{
		{Type: entity.MovementTypeRECEIPT, ProductID: "P1", ToLocationID: "L1", Qty: qty(10), Ref: "r", Timestamp: now.Add(-3 * time.Hour)},
		{Type: entity.MovementTypePICK, ProductID: "P1", FromLocationID: "L1", Qty: qty(4), Ref: "r", Timestamp: now.Add(-2 * time.Hour)},
		{Type: entity.MovementTypeTRANSFER, ProductID: "P1", FromLocationID: "L1", ToLocationID: "L2", Qty: qty(2), Ref: "r", Timestamp: now.Add(-time.Hour)},
	}
	for _, m := range seed {
		require.NoError(t, env.movementRepo.Append(m))
	}

	rows, err := env.uc.RebuildLedger(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	origin, err := env.ledgerRepo.Get("P1", "L1")
	require.NoError(t, err)
	assert.True(t, origin.Qty.Equal(qty(4)), "10 - 4 - 2 = 4, obtuvo %s", origin.Qty)

	dest, err := env.ledgerRepo.Get("P1", "L2")
	require.NoError(t, err)
	assert.True(t, dest.Qty.Equal(qty(2)))
}

// La reconstrucción aplica el recorte a cero paso a paso: un pick mayor que el
// saldo acumulado deja la fila en cero, no en negativo.
func TestRebuildLedger_RecortaACeroPasoAPaso(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	seed := []*entity.Movement{
		{Type: entity.MovementTypeRECEIPT, ProductID: "P1", ToLocationID: "L1", Qty: qty(3), Ref: "r", Timestamp: now.Add(-2 * time.Hour)},
		{Type: entity.MovementTypePICK, ProductID: "P1", FromLocationID: "L1", Qty: qty(9), Ref: "r", Timestamp: now.Add(-time.Hour)},
		{Type: entity.MovementTypeRECEIPT, ProductID: "P1", ToLocationID: "L1", Qty: qty(5), Ref: "r", Timestamp: now},
	}
	for _, m := range seed {
		require.NoError(t, env.movementRepo.Append(m))
	}

	_, err := env.uc.RebuildLedger(context.Background())
	require.NoError(t, err)

	row, err := env.ledgerRepo.Get("P1", "L1")
	require.NoError(t, err)
	// max(0, 3-9) = 0, luego +5.
	assert.True(t, row.Qty.Equal(qty(5)), "obtuvo %s", row.Qty)
}

func TestListMovements_OrdenYFiltro(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.uc.RecordReceipt(ctx, ledger.ReceiptInput{ProductID: "P1", Qty: qty(5), ToLocationID: "L1"})
	require.NoError(t, err)
	_, err = env.uc.RecordPick(ctx, ledger.PickInput{ProductID: "P1", Qty: qty(1), FromLocationID: "L1"})
	require.NoError(t, err)
	_, err = env.uc.RecordReceipt(ctx, ledger.ReceiptInput{ProductID: "P2", Qty: qty(2), ToLocationID: "L2"})
	require.NoError(t, err)

	// Sin filtro: más reciente primero.
	all, err := env.uc.ListMovements("", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "M003", all[0].ID)

	// Filtro por tipo.
	receipts, err := env.uc.ListMovements(entity.MovementTypeRECEIPT, 0)
	require.NoError(t, err)
	assert.Len(t, receipts, 2)

	// Límite.
	limited, err := env.uc.ListMovements("", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestListStock_SoloSaldosPositivos(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.uc.RecordReceipt(ctx, ledger.ReceiptInput{ProductID: "P1", Qty: qty(5), ToLocationID: "L1"})
	require.NoError(t, err)
	_, err = env.uc.RecordPick(ctx, ledger.PickInput{ProductID: "P1", Qty: qty(5), FromLocationID: "L1"})
	require.NoError(t, err)
	_, err = env.uc.RecordReceipt(ctx, ledger.ReceiptInput{ProductID: "P2", Qty: qty(7), ToLocationID: "L2"})
	require.NoError(t, err)

	rows, err := env.uc.ListStock("", "")
	require.NoError(t, err)
	require.Len(t, rows, 1, "la fila en cero no aparece en la vista")
	assert.Equal(t, "P2", rows[0].ProductID)

	filtered, err := env.uc.ListStock("P2", "L2")
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	none, err := env.uc.ListStock("P2", "L1")
	require.NoError(t, err)
	assert.Empty(t, none)
}
