package generator

import "github.com/datco/erp-demo-api/internal/domain/entity"

// Dataset conjunto enlazado de registros de negocio de una generación.
// Todos los valores pertenecen al Dataset devuelto; nada sobrevive fuera de
// él. El índice de pedidos se construye una sola vez al cerrar la generación
// para que la relación SalesOrder↔ProductionOrder sea una búsqueda O(1)
// documentada y no un find repetido por los consumidores.
type Dataset struct {
	Customers        []entity.Customer         `json:"customers"`
	SalesOrders      []entity.SalesOrder       `json:"salesOrders"`
	ProductionOrders []entity.ProductionOrder  `json:"productionOrders"`
	Shipments        []entity.Shipment         `json:"shipments"`
	MaterialInbounds []entity.MaterialInbound  `json:"materialInbounds"`
	Inventory        []entity.InventoryRecord  `json:"inventory"`
	Payroll          []entity.PayrollRecord    `json:"payroll"`
	Accounting       []entity.AccountingRecord `json:"accounting"`

	// Placeholders del modelo simplificado: siempre presentes, hoy vacíos.
	PurchaseOrders []entity.SalesOrder `json:"purchaseOrders"`
	Suppliers      []entity.Customer   `json:"suppliers"`

	salesOrderIndex map[string]*entity.SalesOrder
}

// buildIndex construye el índice id -> pedido. Debe llamarse después de
// llenar SalesOrders y antes de exponer el Dataset.
func (d *Dataset) buildIndex() {
	d.salesOrderIndex = make(map[string]*entity.SalesOrder, len(d.SalesOrders))
	for i := range d.SalesOrders {
		d.salesOrderIndex[d.SalesOrders[i].ID] = &d.SalesOrders[i]
	}
}

// SalesOrderByID resuelve un pedido por id vía el índice.
func (d *Dataset) SalesOrderByID(id string) (*entity.SalesOrder, bool) {
	so, ok := d.salesOrderIndex[id]
	return so, ok
}
