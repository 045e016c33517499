package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/89my5555-boop/cafe-inventory/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre el libro de compras.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SpendByProduct agrupa las compras por producto: cantidad de compras, unidades recibidas
// y gasto total. price es total de línea, por lo que el gasto es SUM(price) directo.
// Se incluyen productos sin compras (LEFT JOIN) con totales en cero.
func (r *ReportRepo) SpendByProduct(ctx context.Context) ([]repository.ProductSpendResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.unit,
	    p.supplier,
	    COUNT(c.id)                   AS purchase_count,
	    COALESCE(SUM(c.quantity), 0)  AS total_quantity,
	    COALESCE(SUM(c.price), 0)     AS total_spend
	FROM products p
	LEFT JOIN purchases c ON c.product_id = p.id
	GROUP BY p.id, p.name, p.unit, p.supplier
	ORDER BY total_spend DESC, p.created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.SpendByProduct: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductSpendResult
	for rows.Next() {
		var row repository.ProductSpendResult
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.Unit,
			&row.Supplier,
			&row.PurchaseCount,
			&row.TotalQuantity,
			&row.TotalSpend,
		); err != nil {
			return nil, fmt.Errorf("reports.SpendByProduct scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
