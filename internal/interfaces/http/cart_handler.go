package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/cart"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// CartHandler maneja el lote reversible de traslados de una sesión.
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir una sesión de carrito
// @Tags         cart
// @Produce      json
// @Success      201  {object}  dto.CartDTO
// @Router       /api/cart [post]
func (h *CartHandler) Open(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.uc.Open(c.Context()))
}

// AddLines godoc
// @Summary      Agregar líneas de traslado (todo-o-nada)
// @Description  Valida cada línea contra el saldo vivo de la central; si
//
//	alguna falla se rechaza el bloque completo y el libro queda
//	intacto. En éxito las líneas se aplican de inmediato.
//
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de sesión"
// @Param        body  body  dto.AddLinesRequest  true  "destination, lines"
// @Success      200  {object}  dto.CartDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  map[string]interface{}
// @Router       /api/cart/{id}/lines [post]
func (h *CartHandler) AddLines(c *fiber.Ctx) error {
	var in dto.AddLinesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddLines(c.Context(), c.Params("id"), in)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// ReverseLine godoc
// @Summary      Revertir una línea ya aplicada
// @Tags         cart
// @Produce      json
// @Param        id     path  string  true  "ID de sesión"
// @Param        index  path  int     true  "Índice de la línea en el lote"
// @Success      200  {object}  dto.CartDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{id}/lines/{index} [delete]
func (h *CartHandler) ReverseLine(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	out, err := h.uc.ReverseLine(c.Context(), c.Params("id"), index)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Finalizar la sesión y obtener el manifiesto producto × destino
// @Tags         cart
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.CartSummaryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{id}/finalize [post]
func (h *CartHandler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.Context(), c.Params("id"))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

func cartError(c *fiber.Ctx, err error) error {
	var insufficient *cart.InsufficientStockError
	if errors.As(err, &insufficient) {
		failures := make([]dto.LineFailureDTO, len(insufficient.Failures))
		for i, f := range insufficient.Failures {
			failures[i] = dto.LineFailureDTO{Product: f.Product, Requested: f.Requested, Available: f.Available}
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":     "INSUFFICIENT_STOCK",
			"message":  insufficient.Error(),
			"failures": failures,
		})
	}
	switch err {
	case domain.ErrSessionNotFound, domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.ErrSessionClosed, domain.ErrInvalidInput, domain.ErrInvalidLocation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
