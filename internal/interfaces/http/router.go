package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/89my5555-boop/cafe-inventory/internal/application/auth"
	"github.com/89my5555-boop/cafe-inventory/internal/application/ledger"
	"github.com/89my5555-boop/cafe-inventory/internal/application/usecase"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	PurchaseUC    *ledger.PurchaseUseCase
	Sessions      repository.SessionRepository
	JWTSecret     string
	JWTExpMinutes int
}

// Router registra las rutas de la aplicación. Registro y login son públicos; el resto
// pasa por el middleware de sesión.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExpMinutes)
	productHandler := NewProductHandler(deps.ProductUC)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.ProductUC)

	// Auth (público)
	app.Get("/register", authHandler.RegisterForm)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren sesión activa)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	protected.Get("/", productHandler.List)
	protected.Get("/logout", authHandler.Logout)

	protected.Get("/add_product", productHandler.AddProductForm)
	protected.Post("/add_product", productHandler.Create)
	protected.Get("/update_stock/:product_id/:action", productHandler.UpdateStock)

	protected.Get("/add_purchase", purchaseHandler.AddPurchaseForm)
	protected.Post("/add_purchase", purchaseHandler.Create)
	protected.Get("/purchases", purchaseHandler.List)
	protected.Get("/reports/spend", purchaseHandler.SpendReport)
}
