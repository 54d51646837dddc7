// Package query consultas con nombre sobre un Dataset. Sustituyen a las
// funciones de depuración que la versión web colgaba del objeto global:
// aquí son exports normales, sin espacio de nombres mutable.
package query

import (
	"time"

	"github.com/datco/erp-demo-api/internal/domain/entity"
	"github.com/datco/erp-demo-api/internal/generator"
	"github.com/datco/erp-demo-api/internal/timeline"
)

// Result subconjunto del dataset que satisface una consulta.
type Result struct {
	SalesOrders      []entity.SalesOrder      `json:"salesOrders"`
	ProductionOrders []entity.ProductionOrder `json:"productionOrders"`
	Shipments        []entity.Shipment        `json:"shipments"`
	MaterialInbounds []entity.MaterialInbound `json:"materialInbounds"`
}

func emptyResult() Result {
	return Result{
		SalesOrders:      []entity.SalesOrder{},
		ProductionOrders: []entity.ProductionOrder{},
		Shipments:        []entity.Shipment{},
		MaterialInbounds: []entity.MaterialInbound{},
	}
}

// ByDate registros cuya fecha relevante cae en el día indicado.
func ByDate(ds *generator.Dataset, day time.Time) Result {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	r := timeline.DateRange{Start: start, End: start.Add(24*time.Hour - time.Nanosecond)}
	return ByDateRange(ds, r)
}

// ByDateRange registros cuya fecha relevante cae dentro del rango (inclusive).
func ByDateRange(ds *generator.Dataset, r timeline.DateRange) Result {
	out := emptyResult()
	for _, so := range ds.SalesOrders {
		if r.Contains(so.OrderDate) {
			out.SalesOrders = append(out.SalesOrders, so)
		}
	}
	for _, po := range ds.ProductionOrders {
		date := po.PlannedStart
		if po.ActualStart != nil {
			date = *po.ActualStart
		}
		if r.Contains(date) {
			out.ProductionOrders = append(out.ProductionOrders, po)
		}
	}
	for _, sh := range ds.Shipments {
		date := sh.PlannedShipDate
		if sh.ActualShipDate != nil {
			date = *sh.ActualShipDate
		}
		if r.Contains(date) {
			out.Shipments = append(out.Shipments, sh)
		}
	}
	for _, mi := range ds.MaterialInbounds {
		if r.Contains(mi.InboundDate) {
			out.MaterialInbounds = append(out.MaterialInbounds, mi)
		}
	}
	return out
}

// ByCompany registros de la empresa indicada (cliente por nombre o proveedor
// de entradas de material). La producción se resuelve vía el índice de
// pedidos del dataset.
func ByCompany(ds *generator.Dataset, companyName string) Result {
	out := emptyResult()
	for _, so := range ds.SalesOrders {
		if so.CompanyName == companyName {
			out.SalesOrders = append(out.SalesOrders, so)
		}
	}
	for _, po := range ds.ProductionOrders {
		if so, ok := ds.SalesOrderByID(po.SalesOrderID); ok && so.CompanyName == companyName {
			out.ProductionOrders = append(out.ProductionOrders, po)
		}
	}
	for _, sh := range ds.Shipments {
		if sh.CompanyName == companyName {
			out.Shipments = append(out.Shipments, sh)
		}
	}
	for _, mi := range ds.MaterialInbounds {
		if mi.SupplierName == companyName {
			out.MaterialInbounds = append(out.MaterialInbounds, mi)
		}
	}
	return out
}

// ByProduct registros que tocan el producto o material indicado.
func ByProduct(ds *generator.Dataset, code string) Result {
	out := emptyResult()
	for _, so := range ds.SalesOrders {
		for _, item := range so.Items {
			if item.ProductCode == code {
				out.SalesOrders = append(out.SalesOrders, so)
				break
			}
		}
	}
	for _, po := range ds.ProductionOrders {
		if po.ProductCode == code {
			out.ProductionOrders = append(out.ProductionOrders, po)
		}
	}
	for _, sh := range ds.Shipments {
		for _, item := range sh.Items {
			if item.ProductCode == code {
				out.Shipments = append(out.Shipments, sh)
				break
			}
		}
	}
	for _, mi := range ds.MaterialInbounds {
		if mi.MaterialCode == code {
			out.MaterialInbounds = append(out.MaterialInbounds, mi)
		}
	}
	return out
}
