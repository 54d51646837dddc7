package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de venta (수주).
const (
	SalesStatusReceived     = "접수"     // registrado
	SalesStatusConfirmed    = "수주확정" // confirmado
	SalesStatusInProduction = "생산중"   // en producción
	SalesStatusShipped      = "출하완료" // despachado
	SalesStatusDelivered    = "납품완료" // entregado
)

// SalesStatuses orden fijo para la selección sembrada del generador.
// Cambiar el orden cambia los estados de todos los datasets generados.
var SalesStatuses = []string{
	SalesStatusReceived,
	SalesStatusConfirmed,
	SalesStatusInProduction,
	SalesStatusShipped,
	SalesStatusDelivered,
}

// OrderItem línea de pedido: producto del catálogo con cantidad y precio.
type OrderItem struct {
	ProductCode string          `json:"productCode"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"` // Quantity × UnitPrice
}

// SalesOrder pedido de venta generado para un cliente.
// TotalAmount = Σ(Quantity×UnitPrice) + variación sembrada no negativa; si se
// re-deriva de las líneas, la diferencia es exactamente esa variación.
type SalesOrder struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	CompanyName string          `json:"companyName"`
	Items       []OrderItem     `json:"items"`
	OrderDate   time.Time       `json:"orderDate"`
	DueDate     time.Time       `json:"dueDate"` // fecha de entrega solicitada
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
