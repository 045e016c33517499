package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPurchaseRequest entrada para registrar una compra.
// Price es el total de la línea (lo pagado por toda la cantidad), no precio unitario.
type RecordPurchaseRequest struct {
	ProductID string          `json:"product_id" form:"product_id" validate:"required,uuid"`
	Quantity  int64           `json:"quantity" form:"quantity" validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price" form:"price" validate:"required"`
}

// PurchaseResponse salida de una compra, con los campos descriptivos del producto.
type PurchaseResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductUnit     string          `json:"product_unit"`
	ProductSupplier string          `json:"product_supplier"`
	Quantity        int64           `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Timestamp       time.Time       `json:"timestamp"`
}

// PurchaseListResponse listado completo de compras (orden de inserción) con el gasto acumulado.
type PurchaseListResponse struct {
	Items      []PurchaseResponse `json:"items"`
	TotalSpend decimal.Decimal    `json:"total_spend"`
}

// ProductSpendDTO gasto acumulado de un producto en el reporte.
type ProductSpendDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Unit          string          `json:"unit"`
	Supplier      string          `json:"supplier"`
	PurchaseCount int64           `json:"purchase_count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalSpend    decimal.Decimal `json:"total_spend"`
}

// SpendReportResponse reporte de gasto por producto.
type SpendReportResponse struct {
	Items      []ProductSpendDTO `json:"items"`
	TotalSpend decimal.Decimal   `json:"total_spend"`
}
