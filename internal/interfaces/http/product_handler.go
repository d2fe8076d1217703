package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-sentinel/internal/application/catalog"
	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/internal/application/inventory"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/metrics"
)

// ProductHandler maneja las peticiones HTTP para el catálogo (protegido).
type ProductHandler struct {
	createUC  *inventory.CreateProductUseCase
	catalogUC *catalog.CatalogUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(createUC *inventory.CreateProductUseCase, catalogUC *catalog.CatalogUseCase) *ProductHandler {
	return &ProductHandler{createUC: createUC, catalogUC: catalogUC}
}

// Create godoc
// @Summary      Crear producto con stock inicial multi-bodega (atómico)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Producto + stock inicial por bodega"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	productID, err := h.createUC.CreateProduct(c.UserContext(), companyID, GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "request inválido: revise sku, name, product_type, price y warehouses"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: "el SKU ya existe"})
		case domain.ErrDuplicateStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_STOCK", Message: "el par producto/bodega ya tiene stock"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega o proveedor no existe"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "bodega de otra empresa"})
		default:
			return internalError(c, "products.create", err, map[string]string{"company_id": companyID, "sku": in.SKU})
		}
	}
	metrics.RecordProductCreated()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{
		Message:   "producto creado con stock inicial",
		ProductID: productID,
	})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	product, err := h.catalogUC.GetByID(id)
	if err != nil {
		return internalError(c, "products.get", err, map[string]string{"product_id": id})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(toProductResponse(product))
}

// GetBySKU godoc
// @Summary      Buscar producto por SKU
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/sku/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	sku := c.Params("sku")
	product, err := h.catalogUC.LookupBySKU(sku)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku es requerido"})
		}
		return internalError(c, "products.get_by_sku", err, map[string]string{"sku": sku})
	}
	return c.JSON(toProductResponse(product))
}

// List godoc
// @Summary      Listar catálogo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	products, err := h.catalogUC.List(limit, offset)
	if err != nil {
		return internalError(c, "products.list", err, nil)
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return c.JSON(dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// DefineBundle godoc
// @Summary      Definir composición de un bundle
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del bundle"
// @Param        body  body  dto.DefineBundleRequest  true  "Componentes"
// @Success      200   {object}  dto.DefineBundleRequest
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bundle [put]
func (h *ProductHandler) DefineBundle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.DefineBundleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	components := make([]entity.BundleComponent, 0, len(in.Components))
	for _, comp := range in.Components {
		components = append(components, entity.BundleComponent{
			BundleID:    id,
			ComponentID: comp.ProductID,
			Quantity:    comp.Quantity,
		})
	}
	if err := h.catalogUC.DefineBundle(c.UserContext(), id, components); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "components es requerido"})
		case domain.ErrInvalidBundle:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BUNDLE", Message: "componente desconocido, cantidad inválida o ciclo de composición"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bundle no encontrado"})
		default:
			return internalError(c, "products.define_bundle", err, map[string]string{"bundle_id": id})
		}
	}
	return c.JSON(in)
}

// GetBundle godoc
// @Summary      Obtener composición de un bundle
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del bundle"
// @Success      200  {array}  dto.BundleComponentDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/bundle [get]
func (h *ProductHandler) GetBundle(c *fiber.Ctx) error {
	id := c.Params("id")
	components, err := h.catalogUC.GetComponents(c.UserContext(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bundle no encontrado"})
		}
		return internalError(c, "products.get_bundle", err, map[string]string{"bundle_id": id})
	}
	out := make([]dto.BundleComponentDTO, 0, len(components))
	for _, comp := range components {
		out = append(out, dto.BundleComponentDTO{ProductID: comp.ComponentID, Quantity: comp.Quantity})
	}
	return c.JSON(out)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		ProductType: p.ProductType,
		Price:       p.Price,
		SupplierID:  p.SupplierID,
		IsBundle:    p.IsBundle,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
