package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datco/erp-demo-api/internal/domain/catalog"
	"github.com/datco/erp-demo-api/internal/fixture"
)

const massiveFixtureJSON = `{
  "sheets": {
    "거래처마스터": [
      { "거래처코드": "CUST-001", "거래처명": "대성정밀", "업종": "제조업", "수주건수": 2 },
      { "거래처코드": "CUST-002", "거래처명": "한빛전자", "업종": "전자", "수주건수": 3 }
    ],
    "인원마스터": [
      { "사번": "EMP-001", "성명": "김철수", "부서": "생산1팀", "직급": "반장" },
      { "사번": "EMP-002", "성명": "이영희", "부서": "생산1팀", "직급": "사원" }
    ]
  }
}`

func TestGenerateMassiveDataset_DesdeFixture(t *testing.T) {
	f, err := fixture.Parse([]byte(massiveFixtureJSON))
	require.NoError(t, err)

	ds := newTestGenerator().GenerateMassiveDataset(f)

	// 2 + 3 pedidos de los dos clientes de la hoja.
	assert.Len(t, ds.SalesOrders, 5)
	assert.Len(t, ds.ProductionOrders, 5)
	assert.Len(t, ds.Customers, 2)

	// Nómina: una fila por empleado de la hoja, del mes del reloj fijado.
	require.Len(t, ds.Payroll, 2)
	for _, p := range ds.Payroll {
		assert.Equal(t, "2024-06", p.Month)
		assert.Equal(t, p.BaseSalary.Add(p.Overtime).Sub(p.Deductions), p.NetPay)
		assert.True(t, p.Deductions.IsPositive())
	}

	// Dos entradas por material del catálogo, inventario por material.
	materials := catalog.Materials()
	assert.Len(t, ds.MaterialInbounds, len(materials)*2)
	assert.Len(t, ds.Inventory, len(materials))

	// Un asiento de venta por pedido, uno de compra por entrada de material.
	assert.Len(t, ds.Accounting, len(ds.SalesOrders)+len(ds.MaterialInbounds))
	for _, ac := range ds.Accounting {
		assert.NotEmpty(t, ac.RelatedID)
	}
}

// TestGenerateMassiveDataset_SinHojas sin hoja 거래처마스터 el generador cae
// al catálogo de clientes por defecto; nunca produce un dataset sin pedidos.
func TestGenerateMassiveDataset_SinHojas(t *testing.T) {
	ds := newTestGenerator().GenerateMassiveDataset(fixture.Empty())

	defaults := catalog.DefaultCustomers()
	assert.Len(t, ds.Customers, len(defaults))
	assert.NotEmpty(t, ds.SalesOrders)

	// Sin hoja 인원마스터 la nómina sale del catálogo de empleados.
	assert.Len(t, ds.Payroll, len(catalog.Employees()))
}

func TestGenerateMassiveDataset_FixtureNil(t *testing.T) {
	ds := newTestGenerator().GenerateMassiveDataset(nil)
	assert.NotEmpty(t, ds.SalesOrders)
}

// TestGenerateMassiveDataset_IdempotenteConRelojFijo con el reloj congelado
// dos corridas completas son profundamente iguales, incluidos los registros
// auxiliares.
func TestGenerateMassiveDataset_IdempotenteConRelojFijo(t *testing.T) {
	f, err := fixture.Parse([]byte(massiveFixtureJSON))
	require.NoError(t, err)

	g := newTestGenerator()
	first := g.GenerateMassiveDataset(f)
	second := g.GenerateMassiveDataset(f)

	assert.Equal(t, first.SalesOrders, second.SalesOrders)
	assert.Equal(t, first.MaterialInbounds, second.MaterialInbounds)
	assert.Equal(t, first.Inventory, second.Inventory)
	assert.Equal(t, first.Payroll, second.Payroll)
	assert.Equal(t, first.Accounting, second.Accounting)
}

func TestGenerateMassiveDataset_PlaceholdersPresentes(t *testing.T) {
	ds := newTestGenerator().GenerateMassiveDataset(fixture.Empty())
	assert.NotNil(t, ds.PurchaseOrders)
	assert.Empty(t, ds.PurchaseOrders)
	assert.NotNil(t, ds.Suppliers)
	assert.Empty(t, ds.Suppliers)
}
