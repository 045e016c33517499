package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/89my5555-boop/cafe-inventory/internal/domain"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/entity"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del libro de compras sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra. Devuelve domain.ErrNotFound si el producto referenciado no existe.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchases (id, product_id, quantity, price, timestamp)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.ProductID, purchase.Quantity, purchase.Price, purchase.Timestamp,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// ListWithProduct devuelve todas las compras en orden de inserción, con los campos del producto.
func (r *PurchaseRepo) ListWithProduct() ([]*entity.PurchaseWithProduct, error) {
	query := `
		SELECT c.id, c.product_id, c.quantity, c.price, c.timestamp,
		       p.name, p.unit, p.supplier
		FROM purchases c
		JOIN products p ON p.id = c.product_id
		ORDER BY c.timestamp ASC`
	return r.queryList(query)
}

// ListByProduct devuelve las compras de un producto en orden de inserción.
func (r *PurchaseRepo) ListByProduct(productID string) ([]*entity.PurchaseWithProduct, error) {
	query := `
		SELECT c.id, c.product_id, c.quantity, c.price, c.timestamp,
		       p.name, p.unit, p.supplier
		FROM purchases c
		JOIN products p ON p.id = c.product_id
		WHERE c.product_id = $1
		ORDER BY c.timestamp ASC`
	return r.queryList(query, productID)
}

func (r *PurchaseRepo) queryList(query string, args ...any) ([]*entity.PurchaseWithProduct, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseWithProduct
	for rows.Next() {
		var c entity.PurchaseWithProduct
		if err := rows.Scan(
			&c.ID, &c.ProductID, &c.Quantity, &c.Price, &c.Timestamp,
			&c.ProductName, &c.ProductUnit, &c.ProductSupplier,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
