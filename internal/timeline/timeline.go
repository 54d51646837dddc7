package timeline

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/datco/erp-demo-api/internal/domain/entity"
)

// Tipos de empresa en un timeline.
const (
	CompanyTypeCustomer = "customer"
	CompanyTypeSupplier = "supplier"
)

// ProductTimeline eventos de un producto/material de una empresa dentro del
// rango, ordenados ascendente por fecha, con acumulados de pedidos y monto.
type ProductTimeline struct {
	ProductCode string                `json:"productCode"`
	ProductName string                `json:"productName"`
	TotalOrders int                   `json:"totalOrders"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Timeline    []entity.TimelineNode `json:"timeline"`
}

// CompanyTimeline agrupación por empresa (cliente o proveedor) de los
// registros cuya fecha relevante cae en el rango consultado. Una empresa sin
// registros en rango no aparece.
type CompanyTimeline struct {
	CompanyName string            `json:"companyName"`
	CompanyType string            `json:"companyType"`
	TotalOrders int               `json:"totalOrders"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
	Products    []ProductTimeline `json:"products"`
}

// builder acumula timelines conservando el orden de primera aparición, para
// que la salida sea determinista (los mapas de Go no tienen orden).
type builder struct {
	companies []CompanyTimeline
	byCompany map[string]int
	byProduct map[string]map[string]int // companyName -> productCode -> índice
}

func newBuilder() *builder {
	return &builder{
		byCompany: map[string]int{},
		byProduct: map[string]map[string]int{},
	}
}

func (b *builder) add(company, companyType, productCode, productName string, node entity.TimelineNode, countsAsOrder bool) {
	ci, ok := b.byCompany[company]
	if !ok {
		ci = len(b.companies)
		b.byCompany[company] = ci
		b.byProduct[company] = map[string]int{}
		b.companies = append(b.companies, CompanyTimeline{
			CompanyName: company,
			CompanyType: companyType,
			TotalAmount: decimal.Zero,
		})
	}
	c := &b.companies[ci]

	pi, ok := b.byProduct[company][productCode]
	if !ok {
		pi = len(c.Products)
		b.byProduct[company][productCode] = pi
		c.Products = append(c.Products, ProductTimeline{
			ProductCode: productCode,
			ProductName: productName,
			TotalAmount: decimal.Zero,
		})
	}
	p := &c.Products[pi]

	p.Timeline = append(p.Timeline, node)
	p.TotalAmount = p.TotalAmount.Add(node.Amount)
	c.TotalAmount = c.TotalAmount.Add(node.Amount)
	if countsAsOrder {
		p.TotalOrders++
		c.TotalOrders++
	}
}

// finish ordena cada timeline ascendente por fecha (orden estable: empates
// conservan el orden de entrada).
func (b *builder) finish() []CompanyTimeline {
	for ci := range b.companies {
		for pi := range b.companies[ci].Products {
			nodes := b.companies[ci].Products[pi].Timeline
			sort.SliceStable(nodes, func(i, j int) bool {
				return nodes[i].Date.Before(nodes[j].Date)
			})
		}
	}
	if b.companies == nil {
		return []CompanyTimeline{}
	}
	return b.companies
}

// GenerateCompanyProductTimeline agrupa los registros en rango por empresa y
// producto/material. Fechas relevantes: pedido -> fecha de pedido; entrada de
// material -> fecha de entrada; producción -> inicio real (o planificado);
// despacho -> salida real (o planificada). Las órdenes de producción se
// atribuyen a la empresa de su pedido vía el índice local de salesOrders.
func GenerateCompanyProductTimeline(
	salesOrders []entity.SalesOrder,
	purchases []entity.MaterialInbound,
	productionOrders []entity.ProductionOrder,
	shipments []entity.Shipment,
	r DateRange,
) []CompanyTimeline {
	b := newBuilder()

	orderCompany := make(map[string]string, len(salesOrders))
	for _, so := range salesOrders {
		orderCompany[so.ID] = so.CompanyName
	}

	for _, so := range salesOrders {
		if !r.Contains(so.OrderDate) || len(so.Items) == 0 {
			continue
		}
		item := so.Items[0]
		b.add(so.CompanyName, CompanyTypeCustomer, item.ProductCode, item.ProductName, entity.TimelineNode{
			ID:          so.ID,
			Type:        entity.NodeTypeSalesOrder,
			Date:        so.OrderDate,
			Status:      so.Status,
			Description: fmt.Sprintf("%s %d개 수주", item.ProductName, item.Quantity),
			RelatedIDs:  []string{so.CustomerID},
			Quantity:    item.Quantity,
			Amount:      so.TotalAmount,
		}, true)
	}

	for _, mi := range purchases {
		if !r.Contains(mi.InboundDate) {
			continue
		}
		b.add(mi.SupplierName, CompanyTypeSupplier, mi.MaterialCode, mi.MaterialName, entity.TimelineNode{
			ID:          mi.ID,
			Type:        entity.NodeTypePurchase,
			Date:        mi.InboundDate,
			Status:      mi.Status,
			Description: fmt.Sprintf("%s %d 입고", mi.MaterialName, mi.Quantity),
			Quantity:    mi.Quantity,
			Amount:      mi.Amount,
		}, true)
	}

	for _, po := range productionOrders {
		company, ok := orderCompany[po.SalesOrderID]
		if !ok {
			continue // orden huérfana: sin empresa a la que atribuirla
		}
		date := po.PlannedStart
		if po.ActualStart != nil {
			date = *po.ActualStart
		}
		if !r.Contains(date) {
			continue
		}
		b.add(company, CompanyTypeCustomer, po.ProductCode, po.ProductName, entity.TimelineNode{
			ID:          po.ID,
			Type:        entity.NodeTypeProduction,
			Date:        date,
			Status:      po.Status,
			Description: fmt.Sprintf("%s %d개 생산", po.ProductName, po.Quantity),
			RelatedIDs:  []string{po.SalesOrderID},
			Quantity:    po.Quantity,
			Amount:      decimal.Zero,
		}, false)
	}

	for _, sh := range shipments {
		if len(sh.Items) == 0 {
			continue
		}
		date := sh.PlannedShipDate
		if sh.ActualShipDate != nil {
			date = *sh.ActualShipDate
		}
		if !r.Contains(date) {
			continue
		}
		item := sh.Items[0]
		b.add(sh.CompanyName, CompanyTypeCustomer, item.ProductCode, item.ProductName, entity.TimelineNode{
			ID:          sh.ID,
			Type:        entity.NodeTypeShipment,
			Date:        date,
			Status:      sh.Status,
			Description: fmt.Sprintf("%s %d개 출하", item.ProductName, item.Quantity),
			RelatedIDs:  []string{sh.SalesOrderID},
			Quantity:    item.Quantity,
			Amount:      item.Amount,
		}, false)
	}

	return b.finish()
}
