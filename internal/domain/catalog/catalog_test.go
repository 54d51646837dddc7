package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datco/erp-demo-api/internal/domain/catalog"
)

// TestProductsByIndustry_Totalidad verifica que cualquier clave (desconocida,
// vacía, con espacios) devuelve un catálogo no vacío: el fallback es 제조업.
func TestProductsByIndustry_Totalidad(t *testing.T) {
	for _, industry := range []string{"제조업", "전자", "자동차", "화학", "식품", "desconocida", "", "  ", "äöü"} {
		products := catalog.ProductsByIndustry(industry)
		require.NotEmpty(t, products, "industria %q no debe devolver catálogo vacío", industry)
		for _, p := range products {
			assert.NotEmpty(t, p.Code)
			assert.NotEmpty(t, p.Name)
			assert.True(t, p.BasePrice.IsPositive(), "precio base de %s debe ser positivo", p.Code)
		}
	}
}

func TestProductsByIndustry_FallbackEsManufactura(t *testing.T) {
	fallback := catalog.ProductsByIndustry("no-existe")
	manufactura := catalog.ProductsByIndustry(catalog.DefaultIndustry)
	assert.Equal(t, manufactura, fallback)
}

// TestProductsByIndustry_OrdenEstable el generador selecciona por
// index % len(catálogo); el orden debe ser estable entre llamadas.
func TestProductsByIndustry_OrdenEstable(t *testing.T) {
	a := catalog.ProductsByIndustry("전자")
	b := catalog.ProductsByIndustry("전자")
	assert.Equal(t, a, b)
}

func TestEmployeesByDepartment_Totalidad(t *testing.T) {
	todos := catalog.Employees()
	require.NotEmpty(t, todos)

	assert.NotEmpty(t, catalog.EmployeesByDepartment("생산1팀"))
	// Departamento desconocido: catálog completo, nunca vacío.
	assert.Equal(t, todos, catalog.EmployeesByDepartment("없는부서"))
}

func TestDefaultCustomers_IndustriasConocidas(t *testing.T) {
	for _, c := range catalog.DefaultCustomers() {
		assert.NotEmpty(t, c.ID)
		assert.Greater(t, c.TotalOrders, 0)
		assert.NotEmpty(t, catalog.ProductsByIndustry(c.Industry))
	}
}

func TestMaterialsYWorkCenters_NoVacios(t *testing.T) {
	assert.NotEmpty(t, catalog.Materials())
	assert.NotEmpty(t, catalog.WorkCenters())
	assert.NotEmpty(t, catalog.Warehouses())
}
