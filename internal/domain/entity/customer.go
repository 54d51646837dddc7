package entity

import "github.com/shopspring/decimal"

// Customer representa un cliente (거래처) que siembra la generación de pedidos.
// Se crea al inicio de la sesión desde el catálogo o la hoja 거래처마스터 y es
// inmutable durante la misma; no sobrevive al proceso.
type Customer struct {
	ID             string          `json:"id"`
	CompanyName    string          `json:"companyName"`
	Industry       string          `json:"industry"` // 제조업, 전자, 자동차, 화학, 식품
	Representative string          `json:"representative"`
	Contact        string          `json:"contact"`
	TotalOrders    int             `json:"totalOrders"` // pedidos solicitados para la demo
	TotalAmount    decimal.Decimal `json:"totalAmount"` // agregado informativo
}
