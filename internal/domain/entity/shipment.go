package entity

import "time"

// Estados de entrega de un despacho (출하).
const (
	DeliveryStatusPreparing = "준비중"
	DeliveryStatusShipped   = "출하완료"
	DeliveryStatusInTransit = "배송중"
	DeliveryStatusDelivered = "납품완료"
)

// DeliveryStatuses orden fijo para la selección sembrada.
var DeliveryStatuses = []string{
	DeliveryStatusPreparing,
	DeliveryStatusShipped,
	DeliveryStatusInTransit,
	DeliveryStatusDelivered,
}

// Shipment despacho asociado a un pedido de venta; sus líneas reflejan las
// del pedido.
type Shipment struct {
	ID                  string      `json:"id"`
	SalesOrderID        string      `json:"salesOrderId"`
	CompanyName         string      `json:"companyName"`
	Items               []OrderItem `json:"items"`
	Status              string      `json:"status"`
	PlannedShipDate     time.Time   `json:"plannedShipDate"`
	PlannedDeliveryDate time.Time   `json:"plannedDeliveryDate"`
	ActualShipDate      *time.Time  `json:"actualShipDate,omitempty"`
	ActualDeliveryDate  *time.Time  `json:"actualDeliveryDate,omitempty"`
}
