package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/89my5555-boop/cafe-inventory/internal/application/auth"
	"github.com/89my5555-boop/cafe-inventory/internal/application/dto"
	"github.com/89my5555-boop/cafe-inventory/internal/application/ledger"
	"github.com/89my5555-boop/cafe-inventory/internal/application/usecase"
	apphttp "github.com/89my5555-boop/cafe-inventory/internal/interfaces/http"
)

// testEnv aplicación completa sobre fakes en memoria, cableada igual que main.
type testEnv struct {
	app       *fiber.App
	products  *fakeProductRepo
	purchases *fakePurchaseRepo
	sessions  *fakeSessionRepo
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	products := &fakeProductRepo{}
	purchases := &fakePurchaseRepo{products: products}
	runner := &fakeTxRunner{purchases: purchases, products: products}
	reports := &fakeReportRepo{}

	authUC := auth.NewAuthUseCase(users, sessions, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	productUC := usecase.NewProductUseCase(products)
	purchaseUC := ledger.NewPurchaseUseCase(runner, purchases, reports)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		PurchaseUC:    purchaseUC,
		Sessions:      sessions,
		JWTSecret:     testJWTSecret,
		JWTExpMinutes: testExpMin,
	})
	return &testEnv{app: app, products: products, purchases: purchases, sessions: sessions}
}

func (e *testEnv) do(t *testing.T, method, path, cookie string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: cookie})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// registerAndLogin registra un usuario y devuelve el valor de la cookie de sesión.
func (e *testEnv) registerAndLogin(t *testing.T, username, password string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/register", "", dto.RegisterRequest{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodPost, "/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			return c.Value
		}
	}
	t.Fatal("el login debe fijar la cookie de sesión")
	return ""
}

func decodeProducts(t *testing.T, resp *http.Response) dto.ProductListResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del flujo completo
// ──────────────────────────────────────────────────────────────────────────────

// Toda operación de catálogo/libro sin sesión redirige al login y no muta nada.
func TestRouter_SinSesion_RedirigeALogin(t *testing.T) {
	env := newTestEnv()

	paths := []struct{ method, path string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/add_product"},
		{http.MethodPost, "/add_product"},
		{http.MethodGet, "/add_purchase"},
		{http.MethodPost, "/add_purchase"},
		{http.MethodGet, "/purchases"},
		{http.MethodGet, "/update_stock/cualquiera/plus"},
		{http.MethodGet, "/reports/spend"},
		{http.MethodGet, "/logout"},
	}
	for _, p := range paths {
		resp := env.do(t, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusFound, resp.StatusCode, "%s %s", p.method, p.path)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		resp.Body.Close()
	}
	assert.Empty(t, env.products.items, "sin sesión no debe mutarse el catálogo")
	assert.Empty(t, env.purchases.rows, "sin sesión no debe mutarse el libro")
}

// Alta de producto, compra y ajuste de stock a través de las rutas reales.
func TestRouter_FlujoCompleto(t *testing.T) {
	env := newTestEnv()
	cookie := env.registerAndLogin(t, "alice", "password1")

	// Alta de producto: redirect al listado
	resp := env.do(t, http.MethodPost, "/add_product", cookie, dto.CreateProductRequest{
		Name: "Café", Unit: "kg", Supplier: "Proveedor", Stock: 5,
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	resp.Body.Close()

	// Listado
	list := decodeProducts(t, env.do(t, http.MethodGet, "/", cookie, nil))
	require.Len(t, list.Items, 1)
	productID := list.Items[0].ID
	assert.Equal(t, int64(5), list.Items[0].Stock)

	// Compra: stock 5 + 3 = 8 y una fila en el libro
	resp = env.do(t, http.MethodPost, "/add_purchase", cookie, map[string]any{
		"product_id": productID, "quantity": 3, "price": 10.0,
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp.Body.Close()

	list = decodeProducts(t, env.do(t, http.MethodGet, "/", cookie, nil))
	assert.Equal(t, int64(8), list.Items[0].Stock)

	resp = env.do(t, http.MethodGet, "/purchases", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var purchases dto.PurchaseListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&purchases))
	resp.Body.Close()
	require.Len(t, purchases.Items, 1)
	assert.Equal(t, productID, purchases.Items[0].ProductID)
	assert.Equal(t, int64(3), purchases.Items[0].Quantity)
	assert.Equal(t, "Café", purchases.Items[0].ProductName)

	// Ajuste unitario
	resp = env.do(t, http.MethodGet, fmt.Sprintf("/update_stock/%s/minus", productID), cookie, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp.Body.Close()

	list = decodeProducts(t, env.do(t, http.MethodGet, "/", cookie, nil))
	assert.Equal(t, int64(7), list.Items[0].Stock)
}

// minus con stock en cero deja el stock en cero (no-op, redirect normal).
func TestRouter_UpdateStock_MinusEnCero(t *testing.T) {
	env := newTestEnv()
	cookie := env.registerAndLogin(t, "alice", "password1")

	resp := env.do(t, http.MethodPost, "/add_product", cookie, dto.CreateProductRequest{
		Name: "Leche", Unit: "litros", Supplier: "Proveedor", Stock: 0,
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	resp.Body.Close()

	list := decodeProducts(t, env.do(t, http.MethodGet, "/", cookie, nil))
	productID := list.Items[0].ID

	resp = env.do(t, http.MethodGet, fmt.Sprintf("/update_stock/%s/minus", productID), cookie, nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "decrementar en cero no es un error")
	resp.Body.Close()

	list = decodeProducts(t, env.do(t, http.MethodGet, "/", cookie, nil))
	assert.Equal(t, int64(0), list.Items[0].Stock, "el stock nunca baja de cero")
}

// Operaciones sobre un producto inexistente responden 404 controlado, nunca pánico.
func TestRouter_ProductoInexistente_404(t *testing.T) {
	env := newTestEnv()
	cookie := env.registerAndLogin(t, "alice", "password1")

	resp := env.do(t, http.MethodGet, "/update_stock/no-existe/plus", cookie, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/add_purchase", cookie, map[string]any{
		"product_id": "no-existe", "quantity": 1, "price": 2.0,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, env.purchases.rows, "una compra fallida no debe dejar fila en el libro")
}

// Registro duplicado: 409 y la credencial original sigue vigente.
func TestRouter_RegistroDuplicado(t *testing.T) {
	env := newTestEnv()
	env.registerAndLogin(t, "alice", "password1")

	resp := env.do(t, http.MethodPost, "/register", "", dto.RegisterRequest{Username: "alice", Password: "password2"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/login", "", dto.LoginRequest{Username: "alice", Password: "password2"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"la contraseña del registro rechazado no debe servir para entrar")
	resp.Body.Close()
}

// Login con credenciales inválidas: mismo 401 genérico para usuario y contraseña incorrectos.
func TestRouter_LoginInvalido(t *testing.T) {
	env := newTestEnv()
	env.registerAndLogin(t, "alice", "password1")

	for _, in := range []dto.LoginRequest{
		{Username: "alice", Password: "incorrecta"},
		{Username: "no-existe", Password: "password1"},
	} {
		resp := env.do(t, http.MethodPost, "/login", "", in)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.Equal(t, "INVALID_CREDENTIALS", body.Code,
			"el error no debe revelar cuál de los dos factores falló")
	}
}

// Logout revoca la sesión: la misma cookie deja de servir.
func TestRouter_Logout(t *testing.T) {
	env := newTestEnv()
	cookie := env.registerAndLogin(t, "alice", "password1")

	resp := env.do(t, http.MethodGet, "/logout", cookie, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/", cookie, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode,
		"después del logout la cookie anterior no debe dar acceso")
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	resp.Body.Close()
}

// Validación del alta de producto: campos vacíos o stock negativo → 400.
func TestRouter_AddProduct_Validacion(t *testing.T) {
	env := newTestEnv()
	cookie := env.registerAndLogin(t, "alice", "password1")

	resp := env.do(t, http.MethodPost, "/add_product", cookie, dto.CreateProductRequest{
		Name: "", Unit: "kg", Supplier: "P", Stock: 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/add_product", cookie, dto.CreateProductRequest{
		Name: "Café", Unit: "kg", Supplier: "P", Stock: -3,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	assert.Empty(t, env.products.items)
}
