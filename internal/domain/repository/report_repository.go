package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSpendResult gasto acumulado de compras por producto.
// TotalSpend suma Price de cada compra (Price es total de línea).
type ProductSpendResult struct {
	ProductID     string
	ProductName   string
	Unit          string
	Supplier      string
	PurchaseCount int64
	TotalQuantity int64
	TotalSpend    decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre el libro de compras.
type ReportRepository interface {
	SpendByProduct(ctx context.Context) ([]ProductSpendResult, error)
}
