package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datco/erp-demo-api/internal/domain"
	"github.com/datco/erp-demo-api/internal/fixture"
	"github.com/datco/erp-demo-api/internal/generator"
	"github.com/datco/erp-demo-api/internal/timeline"
)

// TestGetTimelineForPeriod_ComponeSobreElDataset el reporte compone rango +
// timelines + estadísticas sobre un dataset generado con el mismo reloj: todo
// pedido cae dentro de this_month ± 30 días, así que this_quarter nunca queda
// vacío de clientes.
func TestGetTimelineForPeriod_ComponeSobreElDataset(t *testing.T) {
	g := generator.New(generator.FixedClock{Instant: now})
	ds := g.GenerateMassiveDataset(fixture.Empty())

	report, err := timeline.GetTimelineForPeriod(ds, timeline.RangeThisQuarter, now, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "이번 분기", report.Range.Label)
	assert.NotEmpty(t, report.Companies)
	assert.Equal(t, len(report.Companies), report.Statistics.TotalCompanies)

	for _, c := range report.Companies {
		assert.NotEmpty(t, c.Products, "empresa %s sin productos en el reporte", c.CompanyName)
		for _, p := range c.Products {
			for _, node := range p.Timeline {
				assert.True(t, report.Range.Contains(node.Date),
					"nodo %s fuera del rango del reporte", node.ID)
			}
		}
	}
}

func TestGetTimelineForPeriod_PropagaErrorDeRango(t *testing.T) {
	g := generator.New(generator.FixedClock{Instant: now})
	ds := g.GenerateDynamicDataset(nil)

	_, err := timeline.GetTimelineForPeriod(ds, timeline.RangeCustom, now, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingRangeBounds)
}
