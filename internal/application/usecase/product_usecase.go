package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/89my5555-boop/cafe-inventory/internal/application/dto"
	"github.com/89my5555-boop/cafe-inventory/internal/domain"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/entity"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/repository"
)

// Acciones válidas para AdjustStock (coinciden con el segmento de ruta).
const (
	ActionPlus  = "plus"
	ActionMinus = "minus"
)

// ProductUseCase casos de uso del catálogo: listado, alta y ajuste unitario de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y crea un nuevo producto. Nombre, unidad y proveedor son obligatorios;
// el stock inicial no puede ser negativo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Unit == "" || in.Supplier == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Unit:      in.Unit,
		Supplier:  in.Supplier,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos en orden de inserción.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// AdjustStock ajusta el stock en una unidad. "plus" siempre suma 1; "minus" resta 1
// solo si hay stock (en cero es no-op silencioso). Producto inexistente -> ErrNotFound.
func (uc *ProductUseCase) AdjustStock(productID, action string) (*dto.ProductResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	var (
		product *entity.Product
		err     error
	)
	switch action {
	case ActionPlus:
		product, err = uc.repo.IncrementStock(productID, 1)
	case ActionMinus:
		product, err = uc.repo.DecrementStockFloor(productID)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Supplier:  p.Supplier,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
