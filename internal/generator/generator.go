// Package generator fabrica el dataset de demostración: a partir de unos
// pocos clientes semilla produce la cadena enlazada pedido → orden de
// producción → orden de trabajo → despacho, más registros de
// materiales/inventario/nómina/contabilidad. Toda la aleatoriedad sale de
// semillas string estables derivadas de la identidad cliente/pedido
// (pkg/seed); con el reloj fijado, la generación es totalmente determinista.
package generator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/datco/erp-demo-api/internal/domain/catalog"
	"github.com/datco/erp-demo-api/internal/domain/entity"
	"github.com/datco/erp-demo-api/pkg/seed"
)

// maxOrdersPerCustomer acota el tamaño del dataset por cliente.
const maxOrdersPerCustomer = 5

// Generator genera datasets enlazados. Sin estado mutable: seguro de
// reutilizar y re-entrante.
type Generator struct {
	clock Clock
}

// New construye el generador con el reloj indicado.
func New(clock Clock) *Generator {
	return &Generator{clock: clock}
}

// GenerateDynamicDataset produce el dataset enlazado para la lista de
// clientes dada. Garantías:
//   - exactamente una ProductionOrder por SalesOrder, y su SalesOrderID
//     resuelve en el índice del propio dataset;
//   - cada ProductionOrder duplica producto/cantidad de la primera línea de
//     su pedido;
//   - TotalAmount = Σ líneas + variación sembrada no negativa.
func (g *Generator) GenerateDynamicDataset(customers []entity.Customer) *Dataset {
	ds := &Dataset{
		Customers:        customers,
		SalesOrders:      []entity.SalesOrder{},
		ProductionOrders: []entity.ProductionOrder{},
		Shipments:        []entity.Shipment{},
		MaterialInbounds: []entity.MaterialInbound{},
		Inventory:        []entity.InventoryRecord{},
		Payroll:          []entity.PayrollRecord{},
		Accounting:       []entity.AccountingRecord{},
		PurchaseOrders:   []entity.SalesOrder{},
		Suppliers:        []entity.Customer{},
	}

	today := g.today()
	for _, c := range customers {
		products := catalog.ProductsByIndustry(c.Industry)
		orderCount := c.TotalOrders
		if orderCount > maxOrdersPerCustomer {
			orderCount = maxOrdersPerCustomer
		}
		for i := 0; i < orderCount; i++ {
			product := products[i%len(products)]
			recordSeed := fmt.Sprintf("%s-%d", c.ID, i)

			so := g.buildSalesOrder(c, product, recordSeed, i, today)
			po := g.buildProductionOrder(so, recordSeed, i)
			sh := g.buildShipment(so, recordSeed, i)

			ds.SalesOrders = append(ds.SalesOrders, so)
			ds.ProductionOrders = append(ds.ProductionOrders, po)
			ds.Shipments = append(ds.Shipments, sh)
		}
	}

	ds.buildIndex()
	return ds
}

// buildSalesOrder deriva un pedido: cada atributo usa la semilla del registro
// con un sufijo propio para que no colisionen en el mismo valor.
func (g *Generator) buildSalesOrder(c entity.Customer, product catalog.Product, recordSeed string, index int, today time.Time) entity.SalesOrder {
	quantity := seed.Int(recordSeed+"-qty", 10, 200)
	orderDate := today.AddDate(0, 0, -seed.Int(recordSeed+"-orderdate", 0, 30))
	dueDate := today.AddDate(0, 0, seed.Int(recordSeed+"-duedate", 7, 30))
	status := entity.SalesStatuses[seed.Index(recordSeed+"-status", len(entity.SalesStatuses))]

	lineAmount := product.BasePrice.Mul(decimal.NewFromInt(int64(quantity)))
	variance := decimal.NewFromInt(int64(seed.Int(recordSeed+"-amount", 0, 500000)))

	return entity.SalesOrder{
		ID:          fmt.Sprintf("SO-%s-%03d", c.ID, index+1),
		CustomerID:  c.ID,
		CompanyName: c.CompanyName,
		Items: []entity.OrderItem{{
			ProductCode: product.Code,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.BasePrice,
			Amount:      lineAmount,
		}},
		OrderDate:   orderDate,
		DueDate:     dueDate,
		Status:      status,
		TotalAmount: lineAmount.Add(variance),
	}
}

// buildProductionOrder emite la orden de producción 1:1 del pedido, copiando
// producto y cantidad de su primera línea y derivando estado, prioridad y
// presencia de fechas reales con tiradas sembradas propias.
func (g *Generator) buildProductionOrder(so entity.SalesOrder, recordSeed string, index int) entity.ProductionOrder {
	item := so.Items[0]
	status := entity.ProductionStatuses[seed.Index(recordSeed+"-prod-status", len(entity.ProductionStatuses))]
	priority := entity.Priorities[seed.Index(recordSeed+"-priority", len(entity.Priorities))]

	plannedStart := so.OrderDate.AddDate(0, 0, seed.Int(recordSeed+"-prod-start", 1, 4))
	plannedEnd := so.DueDate.AddDate(0, 0, -seed.Int(recordSeed+"-prod-end", 1, 4))

	po := entity.ProductionOrder{
		ID:           fmt.Sprintf("PO-%s-%03d", so.CustomerID, index+1),
		SalesOrderID: so.ID,
		ProductCode:  item.ProductCode,
		ProductName:  item.ProductName,
		Quantity:     item.Quantity,
		Status:       status,
		Priority:     priority,
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
	}

	// Fechas reales solo cuando el estado lo amerita.
	if status == entity.ProductionStatusInProgress || status == entity.ProductionStatusCompleted {
		actualStart := plannedStart.AddDate(0, 0, seed.Int(recordSeed+"-actual-start", 0, 3))
		po.ActualStart = &actualStart
	}
	if status == entity.ProductionStatusCompleted {
		actualEnd := plannedEnd.AddDate(0, 0, -seed.Int(recordSeed+"-actual-end", 0, 2))
		po.ActualEnd = &actualEnd
	}

	po.WorkOrders = []entity.WorkOrder{g.buildWorkOrder(po, recordSeed, index)}
	return po
}

// buildWorkOrder deriva la orden de trabajo anidada: trabajador y centro de
// trabajo por índice sembrado sobre los catálogos, más consumo de material
// planificado vs. real.
func (g *Generator) buildWorkOrder(po entity.ProductionOrder, recordSeed string, index int) entity.WorkOrder {
	workers := catalog.Employees()
	centers := catalog.WorkCenters()
	materials := catalog.Materials()

	worker := workers[seed.Index(recordSeed+"-worker", len(workers))]
	center := centers[seed.Index(recordSeed+"-workcenter", len(centers))]
	status := entity.WorkStatuses[seed.Index(recordSeed+"-work-status", len(entity.WorkStatuses))]

	material := materials[seed.Index(recordSeed+"-material", len(materials))]
	plannedQty := po.Quantity * seed.Int(recordSeed+"-mat-per-unit", 1, 4)
	actualQty := plannedQty
	if status != entity.WorkStatusWaiting {
		actualQty = plannedQty + seed.Int(recordSeed+"-mat-actual", -5, 6)
	}

	return entity.WorkOrder{
		ID:         fmt.Sprintf("WO-%s-%03d", po.SalesOrderID, index+1),
		WorkCenter: center.Name,
		Worker:     worker.Name,
		Status:     status,
		Materials: []entity.MaterialConsumed{{
			MaterialCode: material.Code,
			MaterialName: material.Name,
			PlannedQty:   plannedQty,
			ActualQty:    actualQty,
		}},
	}
}

// buildShipment deriva el despacho del pedido, con líneas espejo y fechas
// reales presentes según el estado de entrega.
func (g *Generator) buildShipment(so entity.SalesOrder, recordSeed string, index int) entity.Shipment {
	status := entity.DeliveryStatuses[seed.Index(recordSeed+"-ship-status", len(entity.DeliveryStatuses))]

	plannedShip := so.DueDate.AddDate(0, 0, -2)
	sh := entity.Shipment{
		ID:                  fmt.Sprintf("SH-%s-%03d", so.CustomerID, index+1),
		SalesOrderID:        so.ID,
		CompanyName:         so.CompanyName,
		Items:               so.Items,
		Status:              status,
		PlannedShipDate:     plannedShip,
		PlannedDeliveryDate: so.DueDate,
	}

	if status != entity.DeliveryStatusPreparing {
		actualShip := plannedShip.AddDate(0, 0, seed.Int(recordSeed+"-ship-actual", -1, 2))
		sh.ActualShipDate = &actualShip
	}
	if status == entity.DeliveryStatusDelivered {
		actualDelivery := so.DueDate.AddDate(0, 0, seed.Int(recordSeed+"-delivery-actual", -1, 2))
		sh.ActualDeliveryDate = &actualDelivery
	}
	return sh
}

// today devuelve la medianoche del día actual del reloj inyectado; las fechas
// generadas son días completos.
func (g *Generator) today() time.Time {
	now := g.clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
