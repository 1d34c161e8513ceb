package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Kardex-api/internal/application/ledger"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como unidad atómica sobre el Store: toma el lock del
// store completo, acumula las escrituras en staging y solo las vuelca a disco si el
// callback termina sin error. Si falla, el staging se descarta y nada cambia.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repositorios atados a la transacción y hace commit (flush de
// todas las colecciones tocadas) o rollback (descarte del staging).
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := &storeTx{store: r.store, staged: make(map[string][]byte)}
	movRepo := NewMovementRepository(tx)
	ledgerRepo := NewLedgerRepository(tx)

	if err := fn(movRepo, ledgerRepo); err != nil {
		return err
	}
	return tx.commit()
}

// storeTx implementa Collections sobre un staging en memoria. Las lecturas ven las
// escrituras previas de la misma transacción; el disco solo cambia en commit.
type storeTx struct {
	store  *Store
	staged map[string][]byte
}

func (t *storeTx) Get(collection string, out any) error {
	if data, ok := t.staged[collection]; ok {
		return json.Unmarshal(data, out)
	}
	return t.store.getLocked(collection, out)
}

func (t *storeTx) Put(collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", collection, err)
	}
	t.staged[collection] = data
	return nil
}

func (t *storeTx) commit() error {
	for collection, data := range t.staged {
		if err := t.store.writeLocked(collection, data); err != nil {
			return err
		}
	}
	return nil
}
