package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-sentinel/internal/domain"
	"github.com/tu-usuario/stock-sentinel/internal/domain/entity"
	"github.com/tu-usuario/stock-sentinel/internal/domain/repository"
)

// CatalogUseCase identidad del catálogo: alta de productos, búsqueda por SKU y
// definición de bundles. La unicidad del SKU la resuelve el constraint del store
// dentro de la transacción del caller (nunca una lectura previa).
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	txRunner    BundleTxRunner
}

// NewCatalogUseCase construye el caso de uso de catálogo.
func NewCatalogUseCase(productRepo repository.ProductRepository, txRunner BundleTxRunner) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, txRunner: txRunner}
}

// RegisterProductInput datos para registrar un producto.
type RegisterProductInput struct {
	SKU         string
	Name        string
	Description string
	ProductType string
	Price       decimal.Decimal
	SupplierID  *string
	IsBundle    bool
}

// RegisterProductInTx valida y persiste un producto usando el repositorio
// proporcionado (atado a la transacción del caller, patrón del pipeline de
// creación). Devuelve domain.ErrDuplicate si el SKU ya existe.
func (uc *CatalogUseCase) RegisterProductInTx(productRepo repository.ProductRepository, in RegisterProductInput) (*entity.Product, error) {
	if strings.TrimSpace(in.SKU) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.ProductType) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         strings.TrimSpace(in.SKU),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ProductType: in.ProductType,
		Price:       in.Price,
		SupplierID:  in.SupplierID,
		IsBundle:    in.IsBundle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// LookupBySKU busca un producto por SKU. Devuelve domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) LookupBySKU(sku string) (*entity.Product, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (uc *CatalogUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(id)
}

// List lista el catálogo con paginación.
func (uc *CatalogUseCase) List(limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// DefineBundle reemplaza la lista de componentes de un bundle. Falla con
// domain.ErrInvalidBundle si algún componente es desconocido, alguna cantidad es
// <= 0 o la arista introduciría un ciclo (verificación de ancestros en
// profundidad dentro de la misma transacción que la escritura).
func (uc *CatalogUseCase) DefineBundle(ctx context.Context, bundleID string, components []entity.BundleComponent) error {
	if bundleID == "" || len(components) == 0 {
		return domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(components))
	for _, c := range components {
		if c.ComponentID == "" || c.Quantity <= 0 {
			return domain.ErrInvalidBundle
		}
		if c.ComponentID == bundleID {
			return domain.ErrInvalidBundle // auto-referencia = ciclo trivial
		}
		if seen[c.ComponentID] {
			return domain.ErrInvalidBundle
		}
		seen[c.ComponentID] = true
	}

	return uc.txRunner.RunBundle(ctx, func(
		bundleRepo repository.BundleRepository,
		productRepo repository.ProductRepository,
	) error {
		bundle, err := productRepo.GetByID(bundleID)
		if err != nil {
			return err
		}
		if bundle == nil {
			return domain.ErrNotFound
		}
		if !bundle.IsBundle {
			return domain.ErrInvalidBundle
		}
		for _, c := range components {
			component, err := productRepo.GetByID(c.ComponentID)
			if err != nil {
				return err
			}
			if component == nil {
				return domain.ErrInvalidBundle
			}
			// La cadena de componentes no puede volver al bundle ancestro.
			cycle, err := reaches(bundleRepo, c.ComponentID, bundleID)
			if err != nil {
				return err
			}
			if cycle {
				return domain.ErrInvalidBundle
			}
		}
		normalized := make([]entity.BundleComponent, 0, len(components))
		for _, c := range components {
			normalized = append(normalized, entity.BundleComponent{
				BundleID:    bundleID,
				ComponentID: c.ComponentID,
				Quantity:    c.Quantity,
			})
		}
		return bundleRepo.Replace(bundleID, normalized)
	})
}

// GetComponents devuelve los componentes directos de un bundle.
func (uc *CatalogUseCase) GetComponents(ctx context.Context, bundleID string) ([]entity.BundleComponent, error) {
	var out []entity.BundleComponent
	err := uc.txRunner.RunBundle(ctx, func(
		bundleRepo repository.BundleRepository,
		productRepo repository.ProductRepository,
	) error {
		bundle, err := productRepo.GetByID(bundleID)
		if err != nil {
			return err
		}
		if bundle == nil {
			return domain.ErrNotFound
		}
		out, err = bundleRepo.GetComponents(bundleID)
		return err
	})
	return out, err
}

// reaches recorre el grafo de componentes en profundidad desde `from` y responde
// si `target` es alcanzable. Se usa para rechazar aristas que cierren un ciclo.
func reaches(bundleRepo repository.BundleRepository, from, target string) (bool, error) {
	visited := map[string]bool{}
	stack := []string{from}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == target {
			return true, nil
		}
		if visited[current] {
			continue
		}
		visited[current] = true
		edges, err := bundleRepo.GetComponents(current)
		if err != nil {
			return false, err
		}
		for _, e := range edges {
			if !visited[e.ComponentID] {
				stack = append(stack, e.ComponentID)
			}
		}
	}
	return false, nil
}
