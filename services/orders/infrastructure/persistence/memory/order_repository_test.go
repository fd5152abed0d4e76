package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/stockroom/services/catalog/domain/models"
	ordersdomain "github.com/ghuser/stockroom/services/orders/domain"
	"github.com/ghuser/stockroom/services/orders/domain/models"
)

func newTestOrder(t *testing.T, customer string) *models.CustomerOrder {
	t.Helper()
	o, err := models.NewCustomerOrder(customer, "east", []models.OrderItem{{
		ProductID:   uuid.New(),
		ProductName: "Rice",
		State:       catalogmodels.StateRaw,
		Quantity:    2,
		UnitPrice:   decimal.NewFromFloat(2.50),
	}})
	if err != nil {
		t.Fatalf("NewCustomerOrder: %v", err)
	}
	return o
}

func TestOrderRepository_SaveAndGet(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newTestOrder(t, "Alice")
	if err := repo.Save(ctx, o); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CustomerName != "Alice" || len(got.Items) != 1 {
		t.Errorf("got %+v, want saved order", got)
	}

	t.Run("items are cloned", func(t *testing.T) {
		got.Items[0].Quantity = 999
		again, err := repo.GetByID(ctx, o.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if again.Items[0].Quantity != 2 {
			t.Errorf("stored quantity = %d, mutation through copy leaked", again.Items[0].Quantity)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		if !errors.Is(err, ordersdomain.ErrOrderNotFound) {
			t.Errorf("err = %v, want ErrOrderNotFound", err)
		}
	})
}

func TestOrderRepository_List_MostRecentFirst(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	a := newTestOrder(t, "Alice")
	b := newTestOrder(t, "Bob")
	for _, o := range []*models.CustomerOrder{a, b} {
		if err := repo.Save(ctx, o); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != b.ID || got[1].ID != a.ID {
		t.Errorf("List should return most recent first")
	}
}

func TestOrderRepository_Update(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newTestOrder(t, "Alice")
	if err := repo.Save(ctx, o); err != nil {
		t.Fatalf("Save: %v", err)
	}

	o.Status = models.StatusCompleted
	o.Items[0].Quantity = 5
	if err := repo.Update(ctx, o); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.StatusCompleted || got.Items[0].Quantity != 5 {
		t.Errorf("got %+v, want updated order", got)
	}

	t.Run("unknown order", func(t *testing.T) {
		if err := repo.Update(ctx, newTestOrder(t, "Ghost")); !errors.Is(err, ordersdomain.ErrOrderNotFound) {
			t.Errorf("err = %v, want ErrOrderNotFound", err)
		}
	})
}

func TestOrderRepository_Delete(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newTestOrder(t, "Alice")
	if err := repo.Save(ctx, o); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, o.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, o.ID); !errors.Is(err, ordersdomain.ErrOrderNotFound) {
		t.Errorf("GetByID after delete: err = %v, want ErrOrderNotFound", err)
	}
	if err := repo.Delete(ctx, o.ID); !errors.Is(err, ordersdomain.ErrOrderNotFound) {
		t.Errorf("second Delete: err = %v, want ErrOrderNotFound", err)
	}
}
