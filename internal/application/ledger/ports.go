package ledger

import (
	"context"

	"github.com/89my5555-boop/cafe-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el alta de la compra y el incremento de stock se
// confirmen juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error) error
}
