package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// LedgerHandler maneja las operaciones directas sobre el libro de stock.
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajuste manual de entrada/salida en una ubicación
// @Description  IN suma; OUT resta con tope en cero (camino permisivo, a
//
//	diferencia de los traslados).
//
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "product, location, direction, quantity, detail"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/adjustments [post]
func (h *LedgerHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Adjust(c.Context(), in); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ajuste aplicado"})
}

// DeductSales godoc
// @Summary      Baja masiva por reporte de ventas
// @Description  Descuenta con tope en cero por fila; los identificadores sin
//
//	coincidencia se devuelven en el reporte, no abortan el lote.
//
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalesDeductionRequest  true  "location, items"
// @Success      200  {object}  dto.SalesDeductionReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/sales [post]
func (h *LedgerHandler) DeductSales(c *fiber.Ctx) error {
	var in dto.SalesDeductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	report, err := h.uc.DeductSales(c.Context(), in)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(report)
}

// RegisterPurchase godoc
// @Summary      Registrar una compra recibida en la central
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseReceiptRequest  true  "product, quantity, detail"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/purchases [post]
func (h *LedgerHandler) RegisterPurchase(c *fiber.Ctx) error {
	var in dto.PurchaseReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RegisterPurchase(c.Context(), in); err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "compra registrada"})
}

func ledgerError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case domain.ErrInvalidInput, domain.ErrInvalidLocation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
