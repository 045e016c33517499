package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/89my5555-boop/cafe-inventory/internal/application/dto"
	"github.com/89my5555-boop/cafe-inventory/internal/application/usecase"
	"github.com/89my5555-boop/cafe-inventory/internal/domain"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/entity"
)

// fakeProductRepo implementación en memoria de ProductRepository (orden de inserción).
type fakeProductRepo struct {
	items []*entity.Product
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	cp := *product
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) IncrementStock(id string, qty int64) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			p.Stock += qty
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) DecrementStockFloor(id string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			if p.Stock > 0 {
				p.Stock--
			}
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func addProduct(t *testing.T, uc *usecase.ProductUseCase, name string, stock int64) string {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{Name: name, Unit: "kg", Supplier: "Proveedor", Stock: stock})
	require.NoError(t, err)
	return out.ID
}

// Campos vacíos o stock negativo deben rechazarse sin persistir nada.
func TestCreate_Validacion(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	cases := []dto.CreateProductRequest{
		{Name: "", Unit: "kg", Supplier: "P", Stock: 1},
		{Name: "Café", Unit: "", Supplier: "P", Stock: 1},
		{Name: "Café", Unit: "kg", Supplier: "", Stock: 1},
		{Name: "Café", Unit: "kg", Supplier: "P", Stock: -1},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, repo.items, "ninguna entrada inválida debe persistirse")
}

// El listado conserva el orden de inserción.
func TestList_OrdenDeInsercion(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	addProduct(t, uc, "Café", 5)
	addProduct(t, uc, "Azúcar", 2)
	addProduct(t, uc, "Leche", 0)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "Café", out.Items[0].Name)
	assert.Equal(t, "Azúcar", out.Items[1].Name)
	assert.Equal(t, "Leche", out.Items[2].Name)
}

// plus siempre suma 1.
func TestAdjustStock_Plus(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	id := addProduct(t, uc, "Café", 5)

	out, err := uc.AdjustStock(id, usecase.ActionPlus)
	require.NoError(t, err)
	assert.Equal(t, int64(6), out.Stock)
}

// minus resta 1 con stock positivo.
func TestAdjustStock_Minus(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	id := addProduct(t, uc, "Café", 5)

	out, err := uc.AdjustStock(id, usecase.ActionMinus)
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Stock)
}

// minus con stock en cero es no-op silencioso: el stock queda en 0 y no hay error.
func TestAdjustStock_MinusEnCero_NoOp(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	id := addProduct(t, uc, "Leche", 0)

	out, err := uc.AdjustStock(id, usecase.ActionMinus)
	require.NoError(t, err, "decrementar en cero no debe ser un error")
	assert.Equal(t, int64(0), out.Stock, "el stock nunca baja de cero")
}

// Producto inexistente: error controlado, no pánico.
func TestAdjustStock_ProductoInexistente(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.AdjustStock("no-existe", usecase.ActionPlus)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Acción desconocida: entrada inválida.
func TestAdjustStock_AccionInvalida(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo)
	id := addProduct(t, uc, "Café", 5)

	_, err := uc.AdjustStock(id, "double")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.Items[0].Stock, "una acción inválida no debe mutar el stock")
}
