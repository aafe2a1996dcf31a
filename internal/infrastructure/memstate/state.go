// Package memstate mantiene todo el estado de la aplicación en memoria y lo
// refleja en el gateway de persistencia después de cada mutación, igual que
// la app original reflejaba su estado en el almacenamiento del navegador.
//
// Implementa los tres puertos de repositorio del dominio. El RWMutex existe
// porque el shell HTTP atiende en paralelo, aunque el modelo de uso sea de
// un solo operador.
package memstate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tu-usuario/todo-barras/internal/domain"
	"github.com/tu-usuario/todo-barras/internal/domain/entity"
	"github.com/tu-usuario/todo-barras/internal/domain/repository"
	"github.com/tu-usuario/todo-barras/internal/infrastructure/storage"
	"github.com/tu-usuario/todo-barras/pkg/logger"
)

// Asegura que los adaptadores implementan los puertos del dominio.
var (
	_ repository.VenueRepository   = (*venueRepo)(nil)
	_ repository.CatalogRepository = (*catalogRepo)(nil)
	_ repository.SheetRepository   = (*sheetRepo)(nil)
)

// Store estado en memoria con write-through al gateway. Los tres puertos de
// repositorio se obtienen con Venue, Catalog y Sheets.
type Store struct {
	mu      sync.RWMutex
	gw      storage.Gateway
	log     *logger.Logger
	venue   *entity.VenueProfile
	catalog []entity.ProductDefinition
	sheets  []*entity.StockSheet // orden de inserción, la más reciente primero
}

// New construye el store vacío; llamar Load antes de usarlo.
func New(gw storage.Gateway, log *logger.Logger) *Store {
	return &Store{gw: gw, log: log}
}

// Venue devuelve el puerto del perfil del boliche.
func (s *Store) Venue() repository.VenueRepository { return &venueRepo{s} }

// Catalog devuelve el puerto del catálogo maestro.
func (s *Store) Catalog() repository.CatalogRepository { return &catalogRepo{s} }

// Sheets devuelve el puerto de las planillas.
func (s *Store) Sheets() repository.SheetRepository { return &sheetRepo{s} }

// DefaultCatalog catálogo semilla de la primera ejecución, el mismo que la
// plantilla inicial de la app original.
func DefaultCatalog() []entity.ProductDefinition {
	return []entity.ProductDefinition{
		{Name: "CAMPARI", UnitsPerCase: 6},
		{Name: "FERNET BRANCA", UnitsPerCase: 6},
	}
}

// Load lee las tres claves del gateway. Una clave ausente es "sin datos";
// un valor que no parsea se trata igual que ausente, con un warning (la app
// arranca con estado limpio en vez de caerse).
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg configRecord
	if ok, err := s.loadKey(ctx, storage.KeyConfig, &cfg); err != nil {
		return err
	} else if ok {
		s.venue = fromConfigRecord(cfg)
	}

	var template []templateRecord
	if ok, err := s.loadKey(ctx, storage.KeyTemplate, &template); err != nil {
		return err
	} else if ok {
		s.catalog = fromTemplateRecords(template)
	} else {
		s.catalog = DefaultCatalog()
	}

	var events []sheetRecord
	if ok, err := s.loadKey(ctx, storage.KeyEvents, &events); err != nil {
		return err
	} else if ok {
		s.sheets = make([]*entity.StockSheet, 0, len(events))
		for _, r := range events {
			s.sheets = append(s.sheets, fromSheetRecord(r))
		}
	}
	return nil
}

// loadKey lee y parsea una clave. Devuelve ok=false tanto para clave ausente
// como para JSON malformado; solo los errores del gateway se propagan.
func (s *Store) loadKey(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok, err := s.gw.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("cargar %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn().Str("clave", key).Err(err).
			Msg("dato persistido ilegible, se arranca sin él")
		return false, nil
	}
	return true, nil
}

// ── VenueRepository ───────────────────────────────────────────────────────────

type venueRepo struct{ s *Store }

// Get devuelve una copia del perfil, o nil si aún no hubo onboarding.
func (r *venueRepo) Get() (*entity.VenueProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.venue == nil {
		return nil, nil
	}
	v := *r.s.venue
	return &v, nil
}

// Save reemplaza el perfil y lo refleja en el gateway.
func (r *venueRepo) Save(profile *entity.VenueProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v := *profile
	r.s.venue = &v
	r.s.persist(storage.KeyConfig, toConfigRecord(r.s.venue))
	return nil
}

// ── CatalogRepository ─────────────────────────────────────────────────────────

type catalogRepo struct{ s *Store }

// List devuelve una copia del catálogo.
func (r *catalogRepo) List() ([]entity.ProductDefinition, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.ProductDefinition, len(r.s.catalog))
	copy(out, r.s.catalog)
	return out, nil
}

// Replace sustituye el catálogo completo y lo refleja en el gateway.
func (r *catalogRepo) Replace(catalog []entity.ProductDefinition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.catalog = make([]entity.ProductDefinition, len(catalog))
	copy(r.s.catalog, catalog)
	r.s.persist(storage.KeyTemplate, toTemplateRecords(r.s.catalog))
	return nil
}

// ── SheetRepository ───────────────────────────────────────────────────────────

type sheetRepo struct{ s *Store }

// Insert antepone la planilla (la más reciente queda primera).
func (r *sheetRepo) Insert(sheet *entity.StockSheet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sheets = append([]*entity.StockSheet{copySheet(sheet)}, r.s.sheets...)
	r.s.persistSheets()
	return nil
}

// GetByID devuelve una copia de la planilla, o nil si no existe.
func (r *sheetRepo) GetByID(id string) (*entity.StockSheet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sh := range r.s.sheets {
		if sh.ID == id {
			return copySheet(sh), nil
		}
	}
	return nil, nil
}

// Update reemplaza exactamente la planilla con el mismo id.
func (r *sheetRepo) Update(sheet *entity.StockSheet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, sh := range r.s.sheets {
		if sh.ID == sheet.ID {
			r.s.sheets[i] = copySheet(sheet)
			r.s.persistSheets()
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la planilla con ese id; ausente → ErrNotFound.
func (r *sheetRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, sh := range r.s.sheets {
		if sh.ID == id {
			r.s.sheets = append(r.s.sheets[:i], r.s.sheets[i+1:]...)
			r.s.persistSheets()
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve copias de todas las planillas en orden de inserción.
func (r *sheetRepo) List() ([]*entity.StockSheet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.StockSheet, 0, len(r.s.sheets))
	for _, sh := range r.s.sheets {
		out = append(out, copySheet(sh))
	}
	return out, nil
}

// ── write-through ─────────────────────────────────────────────────────────────

// persist serializa y escribe una clave. La escritura es fire-and-forget:
// un fallo del gateway se registra pero no revierte la mutación en memoria.
func (s *Store) persist(key string, record interface{}) {
	raw, err := json.Marshal(record)
	if err != nil {
		s.log.Error().Str("clave", key).Err(err).Msg("serializar estado")
		return
	}
	if err := s.gw.Put(context.Background(), key, raw); err != nil {
		s.log.Error().Str("clave", key).Err(err).Msg("persistir estado")
	}
}

func (s *Store) persistSheets() {
	records := make([]sheetRecord, 0, len(s.sheets))
	for _, sh := range s.sheets {
		records = append(records, toSheetRecord(sh))
	}
	s.persist(storage.KeyEvents, records)
}

func copySheet(s *entity.StockSheet) *entity.StockSheet {
	out := *s
	out.Rows = make([]entity.StockRow, len(s.Rows))
	copy(out.Rows, s.Rows)
	return &out
}
