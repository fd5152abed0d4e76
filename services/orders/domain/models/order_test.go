package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/stockroom/services/catalog/domain/models"
)

func item(productID uuid.UUID, state catalogmodels.ProductState, qty int, price float64) OrderItem {
	return OrderItem{
		ProductID:   productID,
		ProductName: "Rice",
		State:       state,
		Quantity:    qty,
		UnitPrice:   decimal.NewFromFloat(price),
	}
}

func TestNewCustomerOrder(t *testing.T) {
	rice := uuid.New()

	t.Run("valid", func(t *testing.T) {
		o, err := NewCustomerOrder("Alice", "east", []OrderItem{item(rice, catalogmodels.StateRaw, 2, 2.50)})
		if err != nil {
			t.Fatalf("NewCustomerOrder: %v", err)
		}
		if o.Status != StatusPending {
			t.Errorf("Status = %s, want pending", o.Status)
		}
		if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
			t.Error("timestamps not set")
		}
	})

	t.Run("empty customer name", func(t *testing.T) {
		if _, err := NewCustomerOrder("", "", []OrderItem{item(rice, catalogmodels.StateRaw, 1, 1)}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("empty group", func(t *testing.T) {
		if _, err := NewCustomerOrder("Alice", "", []OrderItem{item(rice, catalogmodels.StateRaw, 1, 1)}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("no items", func(t *testing.T) {
		if _, err := NewCustomerOrder("Alice", "east", nil); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		if _, err := NewCustomerOrder("Alice", "east", []OrderItem{item(rice, catalogmodels.StateRaw, 0, 1)}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCustomerOrder_Total(t *testing.T) {
	rice := uuid.New()
	o, err := NewCustomerOrder("Alice", "east", []OrderItem{
		item(rice, catalogmodels.StateRaw, 2, 2.50),
		item(rice, catalogmodels.StateCooked, 3, 4.00),
	})
	if err != nil {
		t.Fatalf("NewCustomerOrder: %v", err)
	}
	if want := decimal.NewFromFloat(17.00); !o.Total().Equal(want) {
		t.Errorf("Total = %s, want %s", o.Total(), want)
	}
}

func TestMergeItems(t *testing.T) {
	rice := uuid.New()
	beans := uuid.New()

	t.Run("same product and state collapse", func(t *testing.T) {
		merged := MergeItems([]OrderItem{
			item(rice, catalogmodels.StateRaw, 2, 2.50),
			item(rice, catalogmodels.StateRaw, 3, 2.50),
		})
		if len(merged) != 1 {
			t.Fatalf("len = %d, want 1", len(merged))
		}
		if merged[0].Quantity != 5 {
			t.Errorf("Quantity = %d, want 5", merged[0].Quantity)
		}
	})

	t.Run("different states stay separate", func(t *testing.T) {
		merged := MergeItems([]OrderItem{
			item(rice, catalogmodels.StateRaw, 2, 2.50),
			item(rice, catalogmodels.StateCooked, 3, 4.00),
		})
		if len(merged) != 2 {
			t.Errorf("len = %d, want 2", len(merged))
		}
	})

	t.Run("first-seen ordering preserved", func(t *testing.T) {
		merged := MergeItems([]OrderItem{
			item(beans, catalogmodels.StateRaw, 1, 1.00),
			item(rice, catalogmodels.StateRaw, 2, 2.50),
			item(beans, catalogmodels.StateRaw, 4, 1.00),
		})
		if len(merged) != 2 {
			t.Fatalf("len = %d, want 2", len(merged))
		}
		if merged[0].ProductID != beans || merged[0].Quantity != 5 {
			t.Errorf("merged[0] = %+v, want beans with quantity 5", merged[0])
		}
	})
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusPending, StatusPending, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "completed"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q): %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Pending", "cancelled"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q): expected error", invalid)
		}
	}
}
