package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/89my5555-boop/cafe-inventory/internal/application/dto"
	"github.com/89my5555-boop/cafe-inventory/internal/domain"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/entity"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/repository"
)

// PurchaseUseCase casos de uso del libro de compras: registro transaccional, listados y
// reporte de gasto por producto.
type PurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	reportRepo   repository.ReportRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	reportRepo repository.ReportRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		reportRepo:   reportRepo,
	}
}

// Record registra una compra en una sola transacción: incrementa el stock del producto
// (UPDATE con bloqueo de fila, sin lost updates entre compras concurrentes) y persiste
// la fila del libro. Producto inexistente -> domain.ErrNotFound sin ningún efecto.
func (uc *PurchaseUseCase) Record(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.PurchaseResponse
	err := uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error {
		// El UPDATE toma el bloqueo de fila; si el producto no existe no hay fila que tocar.
		product, err := productRepo.IncrementStock(in.ProductID, in.Quantity)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		purchase := &entity.Purchase{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     in.Price,
			Timestamp: time.Now(),
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		out = &dto.PurchaseResponse{
			ID:              purchase.ID,
			ProductID:       purchase.ProductID,
			ProductName:     product.Name,
			ProductUnit:     product.Unit,
			ProductSupplier: product.Supplier,
			Quantity:        purchase.Quantity,
			Price:           purchase.Price,
			Timestamp:       purchase.Timestamp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve todas las compras en orden de inserción con el gasto acumulado.
func (uc *PurchaseUseCase) List() (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.ListWithProduct()
	if err != nil {
		return nil, err
	}
	return toPurchaseListResponse(list), nil
}

// ListByProduct devuelve las compras de un producto en orden de inserción.
func (uc *PurchaseUseCase) ListByProduct(productID string) (*dto.PurchaseListResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.purchaseRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toPurchaseListResponse(list), nil
}

// SpendReport devuelve el gasto acumulado por producto (price es total de línea).
func (uc *PurchaseUseCase) SpendReport(ctx context.Context) (*dto.SpendReportResponse, error) {
	results, err := uc.reportRepo.SpendByProduct(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductSpendDTO, 0, len(results))
	total := decimal.Zero
	for _, r := range results {
		items = append(items, dto.ProductSpendDTO{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			Unit:          r.Unit,
			Supplier:      r.Supplier,
			PurchaseCount: r.PurchaseCount,
			TotalQuantity: r.TotalQuantity,
			TotalSpend:    r.TotalSpend,
		})
		total = total.Add(r.TotalSpend)
	}
	return &dto.SpendReportResponse{Items: items, TotalSpend: total}, nil
}

func toPurchaseListResponse(list []*entity.PurchaseWithProduct) *dto.PurchaseListResponse {
	items := make([]dto.PurchaseResponse, 0, len(list))
	total := decimal.Zero
	for _, c := range list {
		items = append(items, dto.PurchaseResponse{
			ID:              c.ID,
			ProductID:       c.ProductID,
			ProductName:     c.ProductName,
			ProductUnit:     c.ProductUnit,
			ProductSupplier: c.ProductSupplier,
			Quantity:        c.Quantity,
			Price:           c.Price,
			Timestamp:       c.Timestamp,
		})
		total = total.Add(c.Price)
	}
	return &dto.PurchaseListResponse{Items: items, TotalSpend: total}
}
