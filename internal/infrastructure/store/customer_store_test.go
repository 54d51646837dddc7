package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datco/erp-demo-api/internal/domain/entity"
	"github.com/datco/erp-demo-api/internal/infrastructure/store"
)

func TestLoad_PrimeraSesion(t *testing.T) {
	s := store.NewFileCustomerStore(filepath.Join(t.TempDir(), "erp-customers.json"))

	customers, err := s.Load()
	require.NoError(t, err, "archivo inexistente no es error: primera sesión")
	assert.Nil(t, customers)
}

func TestSaveYLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp-customers.json")
	s := store.NewFileCustomerStore(path)

	in := []entity.Customer{
		{ID: "CUST-001", CompanyName: "대성정밀", Industry: "제조업", TotalOrders: 5},
		{ID: "CUST-002", CompanyName: "한빛전자", Industry: "전자", TotalOrders: 4},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Save reemplaza el contexto completo, no lo mezcla.
	require.NoError(t, s.Save(in[:1]))
	out, err = s.Load()
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestLoad_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp-customers.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupto"), 0o644))

	_, err := store.NewFileCustomerStore(path).Load()
	assert.Error(t, err)
}

func TestSave_CreaDirectorios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anidado", "profundo", "erp-customers.json")
	s := store.NewFileCustomerStore(path)

	require.NoError(t, s.Save([]entity.Customer{{ID: "CUST-001"}}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
