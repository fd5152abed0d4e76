package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogdomain "github.com/ghuser/stockroom/services/catalog/domain"
	"github.com/ghuser/stockroom/services/catalog/domain/models"
)

func newTestProduct(t *testing.T, name, sku string, quantity int) *models.Product {
	t.Helper()
	s, err := models.NewSKU(sku)
	if err != nil {
		t.Fatalf("NewSKU(%q): %v", sku, err)
	}
	p, err := models.NewProduct(name, s, "pantry", quantity,
		decimal.NewFromFloat(2.50), decimal.NewFromFloat(4.00), "")
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	return p
}

func TestProductRepository_SaveAndGet(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	p := newTestProduct(t, "Basmati Rice", "RICE-001", 10)
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Basmati Rice" || got.Quantity != 10 {
		t.Errorf("got %+v, want saved product", got)
	}

	t.Run("returned product is a copy", func(t *testing.T) {
		got.Quantity = 999
		again, err := repo.GetByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if again.Quantity != 10 {
			t.Errorf("stored quantity = %d, mutation through copy leaked", again.Quantity)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		if !errors.Is(err, catalogdomain.ErrProductNotFound) {
			t.Errorf("err = %v, want ErrProductNotFound", err)
		}
	})
}

func TestProductRepository_DuplicateSKU(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	first := newTestProduct(t, "Rice", "RICE-001", 5)
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Run("save with taken sku", func(t *testing.T) {
		dup := newTestProduct(t, "Other Rice", "RICE-001", 3)
		if err := repo.Save(ctx, dup); !errors.Is(err, catalogdomain.ErrDuplicateSKU) {
			t.Errorf("err = %v, want ErrDuplicateSKU", err)
		}
	})

	t.Run("sku comparison is case-sensitive", func(t *testing.T) {
		other := newTestProduct(t, "Lower Rice", "rice-001", 3)
		if err := repo.Save(ctx, other); err != nil {
			t.Errorf("Save with different-case sku: %v", err)
		}
	})

	t.Run("update onto another product's sku", func(t *testing.T) {
		second := newTestProduct(t, "Beans", "BEAN-001", 8)
		if err := repo.Save(ctx, second); err != nil {
			t.Fatalf("Save: %v", err)
		}
		second.SKU = "RICE-001"
		if err := repo.Update(ctx, second); !errors.Is(err, catalogdomain.ErrDuplicateSKU) {
			t.Errorf("err = %v, want ErrDuplicateSKU", err)
		}
	})

	t.Run("update keeping own sku", func(t *testing.T) {
		first.Name = "Renamed Rice"
		if err := repo.Update(ctx, first); err != nil {
			t.Errorf("Update keeping own sku: %v", err)
		}
	})
}

func TestProductRepository_List(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	a := newTestProduct(t, "Arborio Rice", "RICE-A", 4)
	b := newTestProduct(t, "Black Beans", "BEAN-B", 6)
	c := newTestProduct(t, "Chickpeas", "CHICK-C", 2)
	for _, p := range []*models.Product{a, b, c} {
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := repo.List(ctx, "")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		want := []uuid.UUID{c.ID, b.ID, a.ID}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("got[%d].ID = %s, want %s", i, got[i].ID, id)
			}
		}
	})

	t.Run("substring filter is case-insensitive", func(t *testing.T) {
		got, err := repo.List(ctx, "rice")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 1 || got[0].ID != a.ID {
			t.Errorf("List(rice) = %d items, want the rice product only", len(got))
		}
	})

	t.Run("filter matches sku", func(t *testing.T) {
		got, err := repo.List(ctx, "bean-b")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 1 || got[0].ID != b.ID {
			t.Errorf("List(bean-b) matched %d items, want 1", len(got))
		}
	})
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	p := newTestProduct(t, "Rice", "RICE-001", 5)
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, catalogdomain.ErrProductNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrProductNotFound", err)
	}
	if err := repo.Delete(ctx, p.ID); !errors.Is(err, catalogdomain.ErrProductNotFound) {
		t.Errorf("second Delete: err = %v, want ErrProductNotFound", err)
	}

	got, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List after delete = %d items, want 0", len(got))
	}
}

func TestProductRepository_AdjustQuantity(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	p := newTestProduct(t, "Rice", "RICE-001", 5)
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"decrement", -3, 2},
		{"increment", 10, 12},
		{"over-decrement clamps at zero", -50, 0},
		{"restock from zero", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.AdjustQuantity(ctx, p.ID, tt.delta)
			if err != nil {
				t.Fatalf("AdjustQuantity: %v", err)
			}
			if got != tt.want {
				t.Errorf("quantity = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.AdjustQuantity(ctx, uuid.New(), 1)
		if !errors.Is(err, catalogdomain.ErrProductNotFound) {
			t.Errorf("err = %v, want ErrProductNotFound", err)
		}
	})
}
