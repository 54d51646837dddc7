package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento contable.
const (
	AccountingTypeSales    = "매출" // venta
	AccountingTypePurchase = "매입" // compra
	AccountingTypeExpense  = "비용" // gasto
)

// AccountingRecord asiento contable ilustrativo, referenciado de forma laxa
// al pedido o entrada de material que lo originó vía RelatedID.
type AccountingRecord struct {
	ID          string          `json:"id"`
	AccountCode string          `json:"accountCode"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	RelatedID   string          `json:"relatedId,omitempty"`
}
