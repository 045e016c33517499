package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/89my5555-boop/cafe-inventory/internal/application/dto"
	"github.com/89my5555-boop/cafe-inventory/internal/application/ledger"
	"github.com/89my5555-boop/cafe-inventory/internal/application/usecase"
	"github.com/89my5555-boop/cafe-inventory/internal/domain"
)

// PurchaseHandler maneja las peticiones HTTP del libro de compras (protegido).
type PurchaseHandler struct {
	uc        *ledger.PurchaseUseCase
	productUC *usecase.ProductUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *ledger.PurchaseUseCase, productUC *usecase.ProductUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, productUC: productUC}
}

// AddPurchaseForm godoc
// @Summary      Productos disponibles para registrar una compra
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /add_purchase [get]
func (h *PurchaseHandler) AddPurchaseForm(c *fiber.Ctx) error {
	out, err := h.productUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar compra (incrementa stock y agrega la fila al libro, atómico)
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "product_id, quantity, price (total de línea)"
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /add_purchase [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Record(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido, quantity debe ser positivo y price no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// List godoc
// @Summary      Listar compras
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchaseListResponse
// @Router       /purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SpendReport godoc
// @Summary      Gasto acumulado por producto
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SpendReportResponse
// @Router       /reports/spend [get]
func (h *PurchaseHandler) SpendReport(c *fiber.Ctx) error {
	out, err := h.uc.SpendReport(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
