package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// ImportHandler maneja las importaciones de archivos externos ya tabulados.
// El parsing del archivo físico (xlsx/csv) es del cliente; aquí llegan filas
// de celdas string más un mapping, resuelto por el cliente o por el endpoint
// de resolución heurística.
type ImportHandler struct {
	uc    *importer.ImportUseCase
	stock config.StockConfig
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase, stock config.StockConfig) *ImportHandler {
	return &ImportHandler{uc: uc, stock: stock}
}

// ResolveMapping godoc
// @Summary      Derivar el mapping de columnas desde los encabezados
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResolveMappingRequest  true  "encabezados del archivo"
// @Success      200  {object}  dto.RowMapping
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/imports/resolve-mapping [post]
func (h *ImportHandler) ResolveMapping(c *fiber.Ctx) error {
	var in dto.ResolveMappingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(importer.ResolveMapping(in.Headers, h.stock.Sites))
}

// ImportStockCount godoc
// @Summary      Importar un conteo físico de una ubicación
// @Description  Solo toca las existencias de la ubicación indicada; productos
//
//	no vistos se crean con la categoría del lote.
//
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockImportRequest  true  "location, category, mapping, rows"
// @Success      200  {object}  dto.ImportReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/imports/stock-count [post]
func (h *ImportHandler) ImportStockCount(c *fiber.Ctx) error {
	var in dto.StockImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	report, err := h.uc.ImportStockCount(c.Context(), in)
	if err != nil {
		return importError(c, err)
	}
	return c.JSON(report)
}

// ImportMasterData godoc
// @Summary      Importar datos maestros (sin cantidades)
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MasterImportRequest  true  "category, mapping, rows"
// @Success      200  {object}  dto.ImportReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/imports/master-data [post]
func (h *ImportHandler) ImportMasterData(c *fiber.Ctx) error {
	var in dto.MasterImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	report, err := h.uc.ImportMasterData(c.Context(), in)
	if err != nil {
		return importError(c, err)
	}
	return c.JSON(report)
}

func importError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidLocation {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ubicación desconocida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
