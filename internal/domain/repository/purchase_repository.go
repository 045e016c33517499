package repository

import "github.com/89my5555-boop/cafe-inventory/internal/domain/entity"

// PurchaseRepository puerto de persistencia para el libro de compras (append-only).
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	// ListWithProduct devuelve todas las compras en orden de inserción, cada una con
	// los campos descriptivos de su producto.
	ListWithProduct() ([]*entity.PurchaseWithProduct, error)
	// ListByProduct devuelve las compras de un producto en orden de inserción.
	ListByProduct(productID string) ([]*entity.PurchaseWithProduct, error)
}
