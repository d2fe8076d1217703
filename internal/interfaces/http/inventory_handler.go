package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/metrics"
)

// InventoryHandler ajustes de stock, consulta de cantidades y auditoría (protegido).
type InventoryHandler struct {
	ledger *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// Adjust godoc
// @Summary      Aplicar ajuste de stock (delta con signo)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, warehouse_id, delta, reason"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledger.AdjustStock(c.UserContext(), companyID, in.ProductID, in.WarehouseID, in.Delta, in.Reason, GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, warehouse_id, delta != 0 y reason válida son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la bodega no existe o el par producto/bodega no tiene stock registrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "bodega de otra empresa"})
		case domain.ErrInsufficientStock:
			metrics.RecordInsufficientStock()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el ajuste dejaría el stock negativo"})
		default:
			return internalError(c, "inventory.adjust", err, map[string]string{"product_id": in.ProductID, "warehouse_id": in.WarehouseID})
		}
	}
	metrics.RecordStockAdjustment(in.Reason)
	stock, err := h.ledger.CurrentStock(in.ProductID, in.WarehouseID)
	if err != nil {
		return internalError(c, "inventory.adjust", err, map[string]string{"product_id": in.ProductID, "warehouse_id": in.WarehouseID})
	}
	return c.JSON(dto.StockResponse{
		ProductID:   stock.ProductID,
		WarehouseID: stock.WarehouseID,
		Quantity:    stock.Quantity,
		UpdatedAt:   stock.UpdatedAt,
	})
}

// InitializeStock godoc
// @Summary      Dar stock inicial a un producto existente en una bodega nueva
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseStockEntry  true  "warehouse_id, initial_quantity (product_id en path)"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *InventoryHandler) InitializeStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.WarehouseStockEntry
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledger.InitializeStock(c.UserContext(), companyID, productID, in.WarehouseID, in.InitialQuantity, GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id e initial_quantity >= 0 son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o bodega no encontrados"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "bodega de otra empresa"})
		case domain.ErrDuplicateStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_STOCK", Message: "el par producto/bodega ya tiene stock"})
		default:
			return internalError(c, "inventory.initialize_stock", err, map[string]string{"product_id": productID, "warehouse_id": in.WarehouseID})
		}
	}
	stock, err := h.ledger.CurrentStock(productID, in.WarehouseID)
	if err != nil {
		return internalError(c, "inventory.initialize_stock", err, map[string]string{"product_id": productID, "warehouse_id": in.WarehouseID})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockResponse{
		ProductID:   stock.ProductID,
		WarehouseID: stock.WarehouseID,
		Quantity:    stock.Quantity,
		UpdatedAt:   stock.UpdatedAt,
	})
}

// GetStock godoc
// @Summary      Consultar cantidad actual de un par producto/bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true  "ID del producto"
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	stock, err := h.ledger.CurrentStock(productID, warehouseID)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el par producto/bodega no tiene stock registrado"})
		}
		return internalError(c, "inventory.get_stock", err, map[string]string{"product_id": productID, "warehouse_id": warehouseID})
	}
	return c.JSON(dto.StockResponse{
		ProductID:   stock.ProductID,
		WarehouseID: stock.WarehouseID,
		Quantity:    stock.Quantity,
		UpdatedAt:   stock.UpdatedAt,
	})
}

// ListTransactions godoc
// @Summary      Listar el registro de auditoría de un par producto/bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true   "ID del producto"
// @Param        warehouse_id  query  string  true   "ID de la bodega"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.StockTransactionResponse
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	limit, offset := pageParams(c)
	txs, err := h.ledger.ListTransactions(productID, warehouseID, limit, offset)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
		}
		return internalError(c, "inventory.list_transactions", err, map[string]string{"product_id": productID, "warehouse_id": warehouseID})
	}
	out := make([]dto.StockTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.StockTransactionResponse{
			ID:           tx.ID,
			ProductID:    tx.ProductID,
			WarehouseID:  tx.WarehouseID,
			ChangeAmount: tx.ChangeAmount,
			Reason:       tx.Reason,
			CreatedAt:    tx.CreatedAt,
		})
	}
	return c.JSON(out)
}
