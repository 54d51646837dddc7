package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/datco/erp-demo-api/internal/domain/catalog"
	"github.com/datco/erp-demo-api/internal/domain/entity"
	"github.com/datco/erp-demo-api/internal/fixture"
	"github.com/datco/erp-demo-api/pkg/seed"
)

// Estados de entrada de material.
const (
	inboundStatusPending  = "검수대기"
	inboundStatusReceived = "입고완료"
)

var inboundStatuses = []string{inboundStatusPending, inboundStatusReceived}

// GenerateMassiveDataset produce el dataset completo de la demo: la cadena de
// pedidos para los clientes de la hoja 거래처마스터 (o el catálogo por defecto
// si la hoja falta) más entradas de material, inventario, nómina y asientos
// contables. Los registros auxiliares se referencian de forma laxa por código
// de material o id de empleado; son muestras ilustrativas, no libros
// consistentes.
func (g *Generator) GenerateMassiveDataset(f *fixture.Fixture) *Dataset {
	if f == nil {
		f = fixture.Empty()
	}

	customers := customersFromFixture(f)
	if len(customers) == 0 {
		customers = catalog.DefaultCustomers()
	}

	ds := g.GenerateDynamicDataset(customers)
	today := g.today()

	// ── Entradas de material (자재입고) ──────────────────────────────────────
	for _, m := range catalog.Materials() {
		for i := 0; i < 2; i++ {
			s := fmt.Sprintf("%s-inbound-%d", m.Code, i)
			qty := seed.Int(s+"-qty", 50, 500)
			ds.MaterialInbounds = append(ds.MaterialInbounds, entity.MaterialInbound{
				ID:           fmt.Sprintf("MI-%s-%03d", m.Code, i+1),
				MaterialCode: m.Code,
				MaterialName: m.Name,
				SupplierName: m.Supplier,
				Quantity:     qty,
				UnitPrice:    m.UnitPrice,
				Amount:       m.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
				InboundDate:  today.AddDate(0, 0, -seed.Int(s+"-date", 0, 30)),
				Status:       inboundStatuses[seed.Index(s+"-status", len(inboundStatuses))],
			})
		}
	}

	// ── Inventario (재고현황) ────────────────────────────────────────────────
	warehouses := catalog.Warehouses()
	for _, m := range catalog.Materials() {
		s := m.Code + "-inventory"
		ds.Inventory = append(ds.Inventory, entity.InventoryRecord{
			MaterialCode: m.Code,
			MaterialName: m.Name,
			Warehouse:    warehouses[seed.Index(s+"-warehouse", len(warehouses))],
			OnHand:       seed.Int(s+"-onhand", 0, 500),
			SafetyStock:  seed.Int(s+"-safety", 50, 150),
			UpdatedAt:    today,
		})
	}

	// ── Nómina (급여) ────────────────────────────────────────────────────────
	month := today.Format("2006-01")
	for _, e := range employeesFromFixture(f) {
		s := e.ID + "-payroll-" + month
		overtime := decimal.NewFromInt(int64(seed.Int(s+"-overtime", 0, 400000)))
		deductions := e.BaseSalary.Mul(decimal.NewFromFloat(seed.Float(s+"-deduction", 0.08, 0.12))).Round(0)
		ds.Payroll = append(ds.Payroll, entity.PayrollRecord{
			EmployeeID: e.ID,
			Name:       e.Name,
			Department: e.Department,
			Position:   e.Position,
			Month:      month,
			BaseSalary: e.BaseSalary,
			Overtime:   overtime,
			Deductions: deductions,
			NetPay:     e.BaseSalary.Add(overtime).Sub(deductions),
		})
	}

	// ── Contabilidad (회계): un asiento de venta por pedido y uno de compra
	// por entrada de material ────────────────────────────────────────────────
	for _, so := range ds.SalesOrders {
		ds.Accounting = append(ds.Accounting, entity.AccountingRecord{
			ID:          "AC-" + so.ID,
			AccountCode: "401",
			Type:        entity.AccountingTypeSales,
			Description: so.CompanyName + " " + so.Items[0].ProductName,
			Amount:      so.TotalAmount,
			Date:        so.OrderDate,
			RelatedID:   so.ID,
		})
	}
	for _, mi := range ds.MaterialInbounds {
		ds.Accounting = append(ds.Accounting, entity.AccountingRecord{
			ID:          "AC-" + mi.ID,
			AccountCode: "501",
			Type:        entity.AccountingTypePurchase,
			Description: mi.SupplierName + " " + mi.MaterialName,
			Amount:      mi.Amount,
			Date:        mi.InboundDate,
			RelatedID:   mi.ID,
		})
	}

	return ds
}

// customersFromFixture mapea la hoja 거래처마스터 a entidades Customer.
func customersFromFixture(f *fixture.Fixture) []entity.Customer {
	rows := f.Customers()
	customers := make([]entity.Customer, 0, len(rows))
	for _, r := range rows {
		orderCount := r.OrderCount
		if orderCount <= 0 {
			orderCount = 3
		}
		customers = append(customers, entity.Customer{
			ID:             r.Code,
			CompanyName:    r.CompanyName,
			Industry:       r.Industry,
			Representative: r.Representative,
			Contact:        r.Contact,
			TotalOrders:    orderCount,
		})
	}
	return customers
}

// employeesFromFixture mapea la hoja 인원마스터; sin hoja usa el catálogo.
// El fixture no trae salario: se deriva sembrado del número de empleado.
func employeesFromFixture(f *fixture.Fixture) []catalog.Employee {
	rows := f.Employees()
	if len(rows) == 0 {
		return catalog.Employees()
	}
	employees := make([]catalog.Employee, 0, len(rows))
	for _, r := range rows {
		salary := decimal.NewFromInt(int64(seed.Int(r.EmployeeNo+"-salary", 28, 46)) * 100000)
		employees = append(employees, catalog.Employee{
			ID:         r.EmployeeNo,
			Name:       r.Name,
			Department: r.Department,
			Position:   r.Position,
			BaseSalary: salary,
		})
	}
	return employees
}
