package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appdataset "github.com/datco/erp-demo-api/internal/application/dataset"
	"github.com/datco/erp-demo-api/internal/application/dto"
	"github.com/datco/erp-demo-api/internal/query"
)

// QueryHandler consultas puntuales sobre el dataset vigente.
type QueryHandler struct {
	datasets *appdataset.UseCase
}

// NewQueryHandler construye el handler.
func NewQueryHandler(datasets *appdataset.UseCase) *QueryHandler {
	return &QueryHandler{datasets: datasets}
}

// ByCompany godoc
// @Summary      Registros de una empresa (cliente o proveedor)
// @Tags         query
// @Security     Bearer
// @Produce      json
// @Param        name  query  string  true  "Nombre de la empresa"
// @Success      200  {object}  query.Result
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/query/by-company [get]
func (h *QueryHandler) ByCompany(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	return c.JSON(query.ByCompany(h.datasets.Current(), name))
}

// ByDate godoc
// @Summary      Registros cuya fecha relevante cae en el día indicado
// @Tags         query
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "Día YYYY-MM-DD"
// @Success      200  {object}  query.Result
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/query/by-date [get]
func (h *QueryHandler) ByDate(c *fiber.Ctx) error {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	return c.JSON(query.ByDate(h.datasets.Current(), day))
}

// ByProduct godoc
// @Summary      Registros que tocan un producto o material
// @Tags         query
// @Security     Bearer
// @Produce      json
// @Param        code  query  string  true  "Código de producto o material"
// @Success      200  {object}  query.Result
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/query/by-product [get]
func (h *QueryHandler) ByProduct(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	return c.JSON(query.ByProduct(h.datasets.Current(), code))
}
