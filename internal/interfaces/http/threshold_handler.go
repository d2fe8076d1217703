package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/application/usecase"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
)

// ThresholdHandler administración de umbrales de stock bajo (protegido, admin).
type ThresholdHandler struct {
	uc *usecase.ThresholdUseCase
}

// NewThresholdHandler construye el handler.
func NewThresholdHandler(uc *usecase.ThresholdUseCase) *ThresholdHandler {
	return &ThresholdHandler{uc: uc}
}

// Set godoc
// @Summary      Crear o actualizar umbral por tipo de producto
// @Tags         thresholds
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_type  path  string  true  "Tipo de producto"
// @Param        body          body  dto.SetThresholdRequest  true  "Umbral"
// @Success      200  {object}  dto.ThresholdResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/thresholds/{product_type} [put]
func (h *ThresholdHandler) Set(c *fiber.Ctx) error {
	productType := c.Params("product_type")
	if productType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TYPE", Message: "product_type es requerido"})
	}
	var in dto.SetThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Set(productType, in.Threshold)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold debe ser >= 0"})
		}
		return internalError(c, "thresholds.set", err, map[string]string{"product_type": productType})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar umbrales configurados
// @Tags         thresholds
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ThresholdResponse
// @Router       /api/thresholds [get]
func (h *ThresholdHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, "thresholds.list", err, nil)
	}
	return c.JSON(out)
}
