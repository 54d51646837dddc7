package entity

import "time"

// Estados de una orden de producción (생산지시).
const (
	ProductionStatusPlanned    = "계획"
	ProductionStatusInProgress = "진행중"
	ProductionStatusCompleted  = "완료"
	ProductionStatusOnHold     = "보류"
)

// ProductionStatuses orden fijo para la selección sembrada.
var ProductionStatuses = []string{
	ProductionStatusPlanned,
	ProductionStatusInProgress,
	ProductionStatusCompleted,
	ProductionStatusOnHold,
}

// Prioridades de producción.
const (
	PriorityUrgent = "긴급"
	PriorityHigh   = "높음"
	PriorityNormal = "보통"
	PriorityLow    = "낮음"
)

// Priorities orden fijo para la selección sembrada.
var Priorities = []string{PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow}

// Estados de una orden de trabajo (작업지시).
const (
	WorkStatusWaiting    = "대기"
	WorkStatusInProgress = "작업중"
	WorkStatusDone       = "작업완료"
)

// WorkStatuses orden fijo para la selección sembrada.
var WorkStatuses = []string{WorkStatusWaiting, WorkStatusInProgress, WorkStatusDone}

// MaterialConsumed consumo de material de una orden de trabajo
// (planificado vs. real).
type MaterialConsumed struct {
	MaterialCode string `json:"materialCode"`
	MaterialName string `json:"materialName"`
	PlannedQty   int    `json:"plannedQty"`
	ActualQty    int    `json:"actualQty"`
}

// WorkOrder orden de trabajo anidada en una orden de producción.
type WorkOrder struct {
	ID         string             `json:"id"`
	WorkCenter string             `json:"workCenter"`
	Worker     string             `json:"worker"`
	Status     string             `json:"status"`
	Materials  []MaterialConsumed `json:"materials,omitempty"`
}

// ProductionOrder orden de producción. En el modelo simplificado del
// generador referencia exactamente un SalesOrder (1:1) y duplica el
// producto/cantidad de su primera línea.
type ProductionOrder struct {
	ID           string      `json:"id"`
	SalesOrderID string      `json:"salesOrderId"`
	ProductCode  string      `json:"productCode"`
	ProductName  string      `json:"productName"`
	Quantity     int         `json:"quantity"`
	Status       string      `json:"status"`
	Priority     string      `json:"priority"`
	PlannedStart time.Time   `json:"plannedStart"`
	PlannedEnd   time.Time   `json:"plannedEnd"`
	ActualStart  *time.Time  `json:"actualStart,omitempty"` // presente según estado
	ActualEnd    *time.Time  `json:"actualEnd,omitempty"`
	WorkOrders   []WorkOrder `json:"workOrders"`
}
