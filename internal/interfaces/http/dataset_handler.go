package http

import (
	"github.com/gofiber/fiber/v2"

	appdataset "github.com/datco/erp-demo-api/internal/application/dataset"
	"github.com/datco/erp-demo-api/internal/application/dto"
	"github.com/datco/erp-demo-api/internal/domain/entity"
)

// DatasetHandler expone el dataset en memoria y su regeneración.
type DatasetHandler struct {
	uc *appdataset.UseCase
}

// NewDatasetHandler construye el handler.
func NewDatasetHandler(uc *appdataset.UseCase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// Summary godoc
// @Summary      Metadatos y conteos del dataset vigente
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DatasetSummaryResponse
// @Router       /api/dataset/summary [get]
func (h *DatasetHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// Regenerate godoc
// @Summary      Regenerar el dataset (solo admin). Sin clientes vuelve al fixture.
// @Tags         dataset
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegenerateRequest  false  "Clientes semilla"
// @Success      200   {object}  dto.DatasetSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dataset/regenerate [post]
func (h *DatasetHandler) Regenerate(c *fiber.Ctx) error {
	var in dto.RegenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	customers := make([]entity.Customer, 0, len(in.Customers))
	for _, ci := range in.Customers {
		if ci.ID == "" || ci.CompanyName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id y companyName son requeridos en cada cliente"})
		}
		customers = append(customers, entity.Customer{
			ID:             ci.ID,
			CompanyName:    ci.CompanyName,
			Industry:       ci.Industry,
			Representative: ci.Representative,
			Contact:        ci.Contact,
			TotalOrders:    ci.TotalOrders,
		})
	}
	return c.JSON(h.uc.Regenerate(customers))
}

// Customers godoc
// @Summary      Clientes del dataset vigente
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Customer
// @Router       /api/customers [get]
func (h *DatasetHandler) Customers(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().Customers)
}

// SalesOrders godoc
// @Summary      Pedidos de venta generados
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.SalesOrder
// @Router       /api/sales-orders [get]
func (h *DatasetHandler) SalesOrders(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().SalesOrders)
}

// ProductionOrders godoc
// @Summary      Órdenes de producción generadas
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.ProductionOrder
// @Router       /api/production-orders [get]
func (h *DatasetHandler) ProductionOrders(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().ProductionOrders)
}

// Shipments godoc
// @Summary      Despachos generados
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Shipment
// @Router       /api/shipments [get]
func (h *DatasetHandler) Shipments(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().Shipments)
}

// MaterialInbounds godoc
// @Summary      Entradas de material generadas
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.MaterialInbound
// @Router       /api/material-inbounds [get]
func (h *DatasetHandler) MaterialInbounds(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().MaterialInbounds)
}

// Inventory godoc
// @Summary      Inventario generado
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.InventoryRecord
// @Router       /api/inventory [get]
func (h *DatasetHandler) Inventory(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().Inventory)
}

// Suppliers godoc
// @Summary      Proveedores (placeholder del modelo simplificado, hoy vacío)
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Customer
// @Router       /api/suppliers [get]
func (h *DatasetHandler) Suppliers(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().Suppliers)
}

// PurchaseOrders godoc
// @Summary      Órdenes de compra (placeholder del modelo simplificado, hoy vacío)
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.SalesOrder
// @Router       /api/purchase-orders [get]
func (h *DatasetHandler) PurchaseOrders(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().PurchaseOrders)
}

// Payroll godoc
// @Summary      Nómina generada (solo admin y manager)
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.PayrollRecord
// @Router       /api/payroll [get]
func (h *DatasetHandler) Payroll(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().Payroll)
}

// Accounting godoc
// @Summary      Asientos contables generados (solo admin y manager)
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.AccountingRecord
// @Router       /api/accounting [get]
func (h *DatasetHandler) Accounting(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current().Accounting)
}
