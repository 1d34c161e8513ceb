// Package jsonstore persiste las colecciones del sistema como archivos JSON
// independientes (un archivo por colección, bajo claves con namespace), el mismo
// layout de cuatro colecciones que usan los consumidores: products, locations,
// movements y stockLedger.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// Claves de colección (con namespace, una por archivo).
const (
	KeyProducts  = "inventory_products"
	KeyLocations = "inventory_locations"
	KeyMovements = "inventory_movements"
	KeyLedger    = "inventory_stockLedger"
)

// Collections es el puerto de acceso a colecciones: get/put de la lista completa
// de registros de una colección. Lo implementan Store (con lock por llamada) y la
// transacción del TxRunner (escrituras en staging hasta el commit).
type Collections interface {
	Get(collection string, out any) error
	Put(collection string, records any) error
}

// Store guarda cada colección como <dir>/<clave>.json. Las lecturas de archivos
// ausentes o con JSON corrupto devuelven la colección vacía (se registra un warn,
// nunca se propaga como error: política tolerante a pérdida heredada del sistema).
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore crea el directorio de datos si no existe.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get carga la colección completa en out (un puntero a slice).
func (s *Store) Get(collection string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(collection, out)
}

// Put reemplaza la colección completa.
func (s *Store) Put(collection string, records any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", collection, err)
	}
	return s.writeLocked(collection, data)
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) getLocked(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("collection", collection).
				Msg("colección ilegible; se trata como vacía")
		}
		return json.Unmarshal([]byte("[]"), out)
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("collection", collection).
			Msg("JSON corrupto en colección; se trata como vacía")
		return json.Unmarshal([]byte("[]"), out)
	}
	return nil
}

// writeLocked escribe con tmp+rename para no dejar archivos a medias.
func (s *Store) writeLocked(collection string, data []byte) error {
	target := s.path(collection)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir colección %s: %w", collection, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("renombrar colección %s: %w", collection, err)
	}
	return nil
}
