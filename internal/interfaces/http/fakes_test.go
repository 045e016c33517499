package http_test

import (
	"context"
	"time"

	"github.com/89my5555-boop/cafe-inventory/internal/domain"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/entity"
	"github.com/89my5555-boop/cafe-inventory/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests HTTP de este paquete.

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.byUsername[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	cp := *user
	r.byUsername[user.Username] = &cp
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	byID map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(session *entity.Session) error {
	cp := *session
	r.byID[session.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByID(id string) (*entity.Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) Revoke(id string) error {
	if s, ok := r.byID[id]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpired() error { return nil }

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

type fakePurchaseRepo struct {
	products *fakeProductRepo
	rows     []*entity.Purchase
}

func (r *fakePurchaseRepo) Create(purchase *entity.Purchase) error {
	p, _ := r.products.GetByID(purchase.ProductID)
	if p == nil {
		return domain.ErrNotFound
	}
	cp := *purchase
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakePurchaseRepo) ListWithProduct() ([]*entity.PurchaseWithProduct, error) {
	out := make([]*entity.PurchaseWithProduct, 0, len(r.rows))
	for _, c := range r.rows {
		p, _ := r.products.GetByID(c.ProductID)
		out = append(out, &entity.PurchaseWithProduct{
			Purchase:        *c,
			ProductName:     p.Name,
			ProductUnit:     p.Unit,
			ProductSupplier: p.Supplier,
		})
	}
	return out, nil
}

func (r *fakePurchaseRepo) ListByProduct(productID string) ([]*entity.PurchaseWithProduct, error) {
	all, _ := r.ListWithProduct()
	out := make([]*entity.PurchaseWithProduct, 0, len(all))
	for _, c := range all {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	purchases *fakePurchaseRepo
	products  *fakeProductRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.purchases, r.products)
}

type fakeReportRepo struct {
	results []repository.ProductSpendResult
}

func (r *fakeReportRepo) SpendByProduct(ctx context.Context) ([]repository.ProductSpendResult, error) {
	return r.results, nil
}
