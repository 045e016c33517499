package repository

import "github.com/89my5555-boop/cafe-inventory/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// Los métodos de stock son atómicos respecto a otros escritores (UPDATE con bloqueo de fila).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos en orden de inserción.
	List() ([]*entity.Product, error)
	// IncrementStock suma qty al stock y devuelve el producto actualizado (nil si no existe).
	IncrementStock(id string, qty int64) (*entity.Product, error)
	// DecrementStockFloor resta 1 solo si stock > 0 (no-op en cero) y devuelve el producto
	// actualizado (nil si no existe).
	DecrementStockFloor(id string) (*entity.Product, error)
}
