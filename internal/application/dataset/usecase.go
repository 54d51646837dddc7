// Package dataset mantiene el dataset de demostración en memoria: se genera
// perezosamente en el primer acceso y se descarta por completo en cada
// regeneración. No hay persistencia del dataset; solo el contexto de
// clientes sobrevive (store, análogo al localStorage `erp-customers`).
package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/datco/erp-demo-api/internal/application/dto"
	"github.com/datco/erp-demo-api/internal/domain/entity"
	"github.com/datco/erp-demo-api/internal/fixture"
	"github.com/datco/erp-demo-api/internal/generator"
	"github.com/datco/erp-demo-api/internal/infrastructure/store"
	"github.com/datco/erp-demo-api/pkg/logger"
)

// UseCase caso de uso del dataset en memoria. El generador y las funciones de
// consulta son puros; el lock protege únicamente el snapshot cacheado frente
// a los handlers HTTP concurrentes.
type UseCase struct {
	gen   *generator.Generator
	fx    *fixture.Fixture
	store store.CustomerStore
	log   *logger.Logger

	mu          sync.RWMutex
	current     *generator.Dataset
	snapshotID  string
	generatedAt time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(gen *generator.Generator, fx *fixture.Fixture, st store.CustomerStore, log *logger.Logger) *UseCase {
	return &UseCase{gen: gen, fx: fx, store: st, log: log}
}

// Current devuelve el dataset vigente, generándolo si aún no existe. Si el
// contexto de clientes guardado tiene datos se usa la generación dinámica;
// si no, la masiva desde el fixture.
func (uc *UseCase) Current() *generator.Dataset {
	uc.mu.RLock()
	if uc.current != nil {
		ds := uc.current
		uc.mu.RUnlock()
		return ds
	}
	uc.mu.RUnlock()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		uc.generateLocked(nil)
	}
	return uc.current
}

// Regenerate descarta el dataset vigente y genera uno nuevo. Con clientes
// explícitos usa la generación dinámica y guarda el contexto (fire-and-forget:
// un fallo de escritura se loguea, no invalida la generación); sin clientes
// vuelve al dataset masivo del fixture.
func (uc *UseCase) Regenerate(customers []entity.Customer) dto.DatasetSummaryResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.generateLocked(customers)

	if len(customers) > 0 {
		if err := uc.store.Save(customers); err != nil {
			uc.log.Warn().Err(err).Msg("guardar contexto de clientes")
		}
	}
	return uc.summaryLocked()
}

// Summary devuelve metadatos y conteos del dataset vigente.
func (uc *UseCase) Summary() dto.DatasetSummaryResponse {
	uc.Current()
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.summaryLocked()
}

// generateLocked requiere uc.mu en escritura.
func (uc *UseCase) generateLocked(customers []entity.Customer) {
	if len(customers) == 0 {
		saved, err := uc.store.Load()
		if err != nil {
			uc.log.Warn().Err(err).Msg("leer contexto de clientes; se ignora")
		}
		customers = saved
	}

	if len(customers) > 0 {
		uc.current = uc.gen.GenerateDynamicDataset(customers)
	} else {
		uc.current = uc.gen.GenerateMassiveDataset(uc.fx)
	}
	uc.snapshotID = uuid.New().String()
	uc.generatedAt = time.Now()
	uc.log.Info().
		Str("snapshot_id", uc.snapshotID).
		Int("sales_orders", len(uc.current.SalesOrders)).
		Int("customers", len(uc.current.Customers)).
		Msg("dataset generado")
}

// summaryLocked requiere uc.mu al menos en lectura.
func (uc *UseCase) summaryLocked() dto.DatasetSummaryResponse {
	ds := uc.current
	return dto.DatasetSummaryResponse{
		SnapshotID:       uc.snapshotID,
		GeneratedAt:      uc.generatedAt,
		Customers:        len(ds.Customers),
		SalesOrders:      len(ds.SalesOrders),
		ProductionOrders: len(ds.ProductionOrders),
		Shipments:        len(ds.Shipments),
		MaterialInbounds: len(ds.MaterialInbounds),
		Inventory:        len(ds.Inventory),
		Payroll:          len(ds.Payroll),
		Accounting:       len(ds.Accounting),
	}
}
