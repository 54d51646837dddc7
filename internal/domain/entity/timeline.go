package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de nodo de timeline.
const (
	NodeTypeSalesOrder = "sales_order"
	NodeTypePurchase   = "purchase"
	NodeTypeProduction = "production"
	NodeTypeShipment   = "shipment"
)

// TimelineNode proyección normalizada y transitoria de un registro de negocio
// para reportes filtrados por fecha. Se recalcula en cada consulta; nunca se
// almacena.
type TimelineNode struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	RelatedIDs  []string        `json:"relatedIds,omitempty"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}
