// Package report casos de uso de reportes de período sobre el dataset en
// memoria: resolución de rangos con nombre, timelines empresa/producto y
// estadísticas agregadas.
package report

import (
	"time"

	"github.com/datco/erp-demo-api/internal/application/dataset"
	"github.com/datco/erp-demo-api/internal/generator"
	"github.com/datco/erp-demo-api/internal/timeline"
)

const dateLayout = "2006-01-02"

// UseCase caso de uso de reportes.
type UseCase struct {
	datasets *dataset.UseCase
	clock    generator.Clock
}

// NewUseCase construye el caso de uso con el reloj inyectado (mismo reloj que
// el generador para que "este mes" coincida con las fechas generadas).
func NewUseCase(datasets *dataset.UseCase, clock generator.Clock) *UseCase {
	return &UseCase{datasets: datasets, clock: clock}
}

// GetTimeline resuelve el rango pedido y construye el reporte del período.
// startStr/endStr solo aplican (y son obligatorios) para kind "custom", en
// formato YYYY-MM-DD; el error de parseo o de límites faltantes se propaga.
func (uc *UseCase) GetTimeline(kind string, startStr, endStr string) (*timeline.Report, error) {
	customStart, customEnd, err := parseCustomBounds(startStr, endStr)
	if err != nil {
		return nil, err
	}
	return timeline.GetTimelineForPeriod(
		uc.datasets.Current(),
		timeline.RangeKind(kind),
		uc.clock.Now(),
		customStart, customEnd,
	)
}

// ResolveRange expone la resolución de rangos sin construir el reporte.
func (uc *UseCase) ResolveRange(kind string, startStr, endStr string) (timeline.DateRange, error) {
	customStart, customEnd, err := parseCustomBounds(startStr, endStr)
	if err != nil {
		return timeline.DateRange{}, err
	}
	return timeline.Resolve(timeline.RangeKind(kind), uc.clock.Now(), customStart, customEnd)
}

func parseCustomBounds(startStr, endStr string) (*time.Time, *time.Time, error) {
	var customStart, customEnd *time.Time
	if startStr != "" {
		t, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return nil, nil, err
		}
		customStart = &t
	}
	if endStr != "" {
		t, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return nil, nil, err
		}
		// El límite final es inclusivo: fin del día indicado.
		end := t.Add(24*time.Hour - time.Nanosecond)
		customEnd = &end
	}
	return customStart, customEnd, nil
}
