package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra recibida: registro append-only atado a un producto.
// Price es el total de la línea (lo pagado por toda la cantidad recibida), no precio unitario.
type Purchase struct {
	ID        string
	ProductID string
	Quantity  int64
	Price     decimal.Decimal
	Timestamp time.Time
}

// PurchaseWithProduct compra junto con los campos descriptivos del producto (para listados).
type PurchaseWithProduct struct {
	Purchase
	ProductName     string
	ProductUnit     string
	ProductSupplier string
}
