package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialInbound entrada de material (자재입고). Registro ilustrativo,
// referenciado de forma laxa por código de material; no es un libro contable
// estricto.
type MaterialInbound struct {
	ID           string          `json:"id"`
	MaterialCode string          `json:"materialCode"`
	MaterialName string          `json:"materialName"`
	SupplierName string          `json:"supplierName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Amount       decimal.Decimal `json:"amount"`
	InboundDate  time.Time       `json:"inboundDate"`
	Status       string          `json:"status"` // 검수대기, 입고완료
}

// InventoryRecord existencia por almacén (재고현황). Snapshot ilustrativo.
type InventoryRecord struct {
	MaterialCode string    `json:"materialCode"`
	MaterialName string    `json:"materialName"`
	Warehouse    string    `json:"warehouse"`
	OnHand       int       `json:"onHand"`
	SafetyStock  int       `json:"safetyStock"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
