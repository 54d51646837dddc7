package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/datco/erp-demo-api/internal/application/dto"
	appreport "github.com/datco/erp-demo-api/internal/application/report"
	"github.com/datco/erp-demo-api/internal/domain"
)

// TimelineHandler expone los reportes de período.
type TimelineHandler struct {
	uc *appreport.UseCase
}

// NewTimelineHandler construye el handler.
func NewTimelineHandler(uc *appreport.UseCase) *TimelineHandler {
	return &TimelineHandler{uc: uc}
}

// Timeline godoc
// @Summary      Timeline empresa/producto y estadísticas del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "Rango con nombre (today, this_week, this_month, ... , custom)"  default(this_month)
// @Param        start  query  string  false  "Inicio YYYY-MM-DD (solo custom)"
// @Param        end    query  string  false  "Fin YYYY-MM-DD (solo custom, inclusivo)"
// @Success      200  {object}  timeline.Report
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/timeline [get]
func (h *TimelineHandler) Timeline(c *fiber.Ctx) error {
	kind := c.Query("range", "this_month")
	report, err := h.uc.GetTimeline(kind, c.Query("start"), c.Query("end"))
	if err != nil {
		return timelineError(c, err)
	}
	return c.JSON(report)
}

// Range godoc
// @Summary      Resolver un rango con nombre a fechas concretas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        range  query  string  false  "Rango con nombre"  default(this_month)
// @Param        start  query  string  false  "Inicio YYYY-MM-DD (solo custom)"
// @Param        end    query  string  false  "Fin YYYY-MM-DD (solo custom, inclusivo)"
// @Success      200  {object}  timeline.DateRange
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/range [get]
func (h *TimelineHandler) Range(c *fiber.Ctx) error {
	kind := c.Query("range", "this_month")
	r, err := h.uc.ResolveRange(kind, c.Query("start"), c.Query("end"))
	if err != nil {
		return timelineError(c, err)
	}
	return c.JSON(r)
}

// timelineError mapea los errores de resolución de rango a 400; cualquier otro
// (fecha mal formada incluida) también es culpa de la petición.
func timelineError(c *fiber.Ctx, err error) error {
	code := "INVALID_RANGE"
	switch {
	case errors.Is(err, domain.ErrMissingRangeBounds):
		code = "MISSING_BOUNDS"
	case errors.Is(err, domain.ErrUnknownRangeKind):
		code = "UNKNOWN_RANGE"
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
