package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
)

// ReportHandler expone los reportes tabulares (orden de compra, bitácora).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PurchaseOrder godoc
// @Summary      Orden de compra sugerida con totales
// @Tags         reports
// @Produce      json
// @Param        supplier  query  string  false  "Filtrar por proveedor. Vacío = todos."
// @Success      200  {object}  dto.PurchaseOrderDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/purchase-order [get]
func (h *ReportHandler) PurchaseOrder(c *fiber.Ctx) error {
	order, err := h.uc.PurchaseOrder(c.Context(), c.Query("supplier"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// AuditLog godoc
// @Summary      Listar la bitácora de mutaciones del libro
// @Tags         reports
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.AuditEntryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *ReportHandler) AuditLog(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	entries, err := h.uc.AuditLog(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(entries), "entries": entries})
}
