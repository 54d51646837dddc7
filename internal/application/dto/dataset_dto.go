package dto

import "time"

// CustomerInput cliente semilla para regenerar el dataset.
type CustomerInput struct {
	ID             string `json:"id"`
	CompanyName    string `json:"companyName"`
	Industry       string `json:"industry"`
	Representative string `json:"representative"`
	Contact        string `json:"contact"`
	TotalOrders    int    `json:"totalOrders"`
}

// RegenerateRequest petición de regeneración con clientes propios.
type RegenerateRequest struct {
	Customers []CustomerInput `json:"customers"`
}

// DatasetSummaryResponse metadatos y conteos del dataset en memoria.
type DatasetSummaryResponse struct {
	SnapshotID       string    `json:"snapshotId"`
	GeneratedAt      time.Time `json:"generatedAt"`
	Customers        int       `json:"customers"`
	SalesOrders      int       `json:"salesOrders"`
	ProductionOrders int       `json:"productionOrders"`
	Shipments        int       `json:"shipments"`
	MaterialInbounds int       `json:"materialInbounds"`
	Inventory        int       `json:"inventory"`
	Payroll          int       `json:"payroll"`
	Accounting       int       `json:"accounting"`
}
