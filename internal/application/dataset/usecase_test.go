package dataset_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datco/erp-demo-api/internal/application/dataset"
	"github.com/datco/erp-demo-api/internal/domain/catalog"
	"github.com/datco/erp-demo-api/internal/domain/entity"
	"github.com/datco/erp-demo-api/internal/fixture"
	"github.com/datco/erp-demo-api/internal/generator"
	"github.com/datco/erp-demo-api/internal/infrastructure/store"
	"github.com/datco/erp-demo-api/pkg/logger"
)

var testInstant = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*dataset.UseCase, *store.FileCustomerStore) {
	t.Helper()
	st := store.NewFileCustomerStore(filepath.Join(t.TempDir(), "erp-customers.json"))
	gen := generator.New(generator.FixedClock{Instant: testInstant})
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return dataset.NewUseCase(gen, fixture.Empty(), st, log), st
}

func TestCurrent_GeneracionPerezosa(t *testing.T) {
	uc, _ := newTestUseCase(t)

	ds := uc.Current()
	require.NotNil(t, ds)
	assert.Len(t, ds.Customers, len(catalog.DefaultCustomers()), "sin contexto guardado usa el catálogo por defecto")

	// El mismo snapshot mientras nadie regenere.
	assert.Same(t, ds, uc.Current())
}

func TestRegenerate_DescartaYGuardaContexto(t *testing.T) {
	uc, st := newTestUseCase(t)
	before := uc.Current()

	customers := []entity.Customer{{ID: "CUST-900", CompanyName: "새회사", Industry: "전자", TotalOrders: 2}}
	summary := uc.Regenerate(customers)

	assert.Equal(t, 1, summary.Customers)
	assert.Equal(t, 2, summary.SalesOrders)
	assert.NotSame(t, before, uc.Current(), "el dataset anterior se descarta por completo")

	// El contexto de clientes es lo único que sobrevive (análogo localStorage).
	saved, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, customers, saved)
}

func TestCurrent_UsaContextoGuardado(t *testing.T) {
	st := store.NewFileCustomerStore(filepath.Join(t.TempDir(), "erp-customers.json"))
	customers := []entity.Customer{{ID: "CUST-500", CompanyName: "저장상사", Industry: "제조업", TotalOrders: 3}}
	require.NoError(t, st.Save(customers))

	gen := generator.New(generator.FixedClock{Instant: testInstant})
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := dataset.NewUseCase(gen, fixture.Empty(), st, log)

	ds := uc.Current()
	require.Len(t, ds.Customers, 1)
	assert.Equal(t, "저장상사", ds.Customers[0].CompanyName)
	assert.Len(t, ds.SalesOrders, 3)
}

func TestRegenerate_SinClientesVuelveAlFixture(t *testing.T) {
	uc, _ := newTestUseCase(t)
	uc.Regenerate([]entity.Customer{{ID: "CUST-900", CompanyName: "새회사", Industry: "전자", TotalOrders: 2}})

	summary := uc.Regenerate(nil)
	// El contexto guardado sigue presente, así que se regenera con él.
	assert.Equal(t, 1, summary.Customers)
}

func TestSummary_Conteos(t *testing.T) {
	uc, _ := newTestUseCase(t)
	summary := uc.Summary()

	ds := uc.Current()
	assert.Equal(t, len(ds.SalesOrders), summary.SalesOrders)
	assert.Equal(t, len(ds.Payroll), summary.Payroll)
	assert.NotEmpty(t, summary.SnapshotID)
	assert.False(t, summary.GeneratedAt.IsZero())
}
