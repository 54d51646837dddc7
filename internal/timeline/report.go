package timeline

import (
	"time"

	"github.com/datco/erp-demo-api/internal/generator"
)

// Report reporte completo de un período: rango resuelto, timelines por
// empresa y estadísticas agregadas.
type Report struct {
	Range      DateRange         `json:"range"`
	Companies  []CompanyTimeline `json:"companies"`
	Statistics PeriodStatistics  `json:"statistics"`
}

// GetTimelineForPeriod compone Resolve + GenerateCompanyProductTimeline +
// GeneratePeriodStatistics sobre un dataset. Las entradas de material hacen
// de compras (purchaseOrders sigue siendo un placeholder vacío).
func GetTimelineForPeriod(ds *generator.Dataset, kind RangeKind, now time.Time, customStart, customEnd *time.Time) (*Report, error) {
	r, err := Resolve(kind, now, customStart, customEnd)
	if err != nil {
		return nil, err
	}
	companies := GenerateCompanyProductTimeline(ds.SalesOrders, ds.MaterialInbounds, ds.ProductionOrders, ds.Shipments, r)
	return &Report{
		Range:      r,
		Companies:  companies,
		Statistics: GeneratePeriodStatistics(companies, r),
	}, nil
}
