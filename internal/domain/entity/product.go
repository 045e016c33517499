package entity

import "time"

// Product representa un producto del inventario con su existencia actual.
// Stock nunca es negativo: los ajustes con piso en cero se resuelven en la capa de persistencia.
type Product struct {
	ID        string
	Name      string
	Unit      string // kg, unidades, litros, etc.
	Supplier  string
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
