package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/replenishment"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ReplenishmentHandler expone las sugerencias de reposición (solo lectura).
type ReplenishmentHandler struct {
	uc *replenishment.UseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *replenishment.UseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

// SuggestTransfers godoc
// @Summary      Sugerencia de traslado hacia una sede
// @Description  Una fila por producto: deficit = max(0, mínimo - stock sede),
//
//	proposed = min(deficit, stock central). Incluye filas en cero
//	marcadas como no accionables.
//
// @Tags         replenishment
// @Produce      json
// @Param        destination  query  string  true  "Sede destino"
// @Success      200  {array}   dto.TransferSuggestionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/replenishment/transfers [get]
func (h *ReplenishmentHandler) SuggestTransfers(c *fiber.Ctx) error {
	destination := c.Query("destination")
	rows, err := h.uc.SuggestTransfers(c.Context(), destination)
	if err != nil {
		if err == domain.ErrInvalidLocation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sede destino desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"destination": destination, "total": len(rows), "suggestions": rows})
}

// SuggestPurchases godoc
// @Summary      Sugerencia de compra por proveedor
// @Description  suggested = max(0, suma de mínimos de sedes - existencias
//
//	totales, central incluida).
//
// @Tags         replenishment
// @Produce      json
// @Param        supplier  query  string  false  "Filtrar por proveedor. Vacío = todos."
// @Success      200  {array}   dto.PurchaseSuggestionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/replenishment/purchases [get]
func (h *ReplenishmentHandler) SuggestPurchases(c *fiber.Ctx) error {
	supplier := c.Query("supplier")
	rows, err := h.uc.SuggestPurchases(c.Context(), supplier)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"supplier": supplier, "total": len(rows), "suggestions": rows})
}
