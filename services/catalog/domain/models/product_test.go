package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProduct(t *testing.T) {
	priceRaw := decimal.NewFromFloat(2.50)
	priceCooked := decimal.NewFromFloat(4.00)

	t.Run("valid product", func(t *testing.T) {
		p, err := NewProduct("Basmati Rice", "RICE-001", "grains", 10, priceRaw, priceCooked, "long grain")
		if err != nil {
			t.Fatalf("NewProduct: %v", err)
		}
		if p.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Error("expected a generated ID")
		}
		if p.Quantity != 10 {
			t.Errorf("Quantity = %d, want 10", p.Quantity)
		}
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		if _, err := NewProduct("Rice", "RICE-001", "grains", 0, priceRaw, priceCooked, ""); err != nil {
			t.Errorf("NewProduct with zero quantity: %v", err)
		}
	})

	tests := []struct {
		name     string
		pname    string
		quantity int
		raw      decimal.Decimal
		cooked   decimal.Decimal
	}{
		{"empty name", "", 5, priceRaw, priceCooked},
		{"negative quantity", "Rice", -1, priceRaw, priceCooked},
		{"zero raw price", "Rice", 5, decimal.Zero, priceCooked},
		{"negative cooked price", "Rice", 5, priceRaw, decimal.NewFromInt(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProduct(tt.pname, "RICE-001", "grains", tt.quantity, tt.raw, tt.cooked, ""); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestProduct_PriceFor(t *testing.T) {
	p, err := NewProduct("Rice", "RICE-001", "grains", 10,
		decimal.NewFromFloat(2.50), decimal.NewFromFloat(4.00), "")
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}

	if got := p.PriceFor(StateRaw); !got.Equal(decimal.NewFromFloat(2.50)) {
		t.Errorf("PriceFor(raw) = %s, want 2.5", got)
	}
	if got := p.PriceFor(StateCooked); !got.Equal(decimal.NewFromFloat(4.00)) {
		t.Errorf("PriceFor(cooked) = %s, want 4", got)
	}
}

func TestParseProductState(t *testing.T) {
	for _, valid := range []string{"raw", "cooked"} {
		if _, err := ParseProductState(valid); err != nil {
			t.Errorf("ParseProductState(%q): %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "Raw", "frozen"} {
		if _, err := ParseProductState(invalid); err == nil {
			t.Errorf("ParseProductState(%q): expected error", invalid)
		}
	}
}

func TestNewSKU(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := NewSKU("RICE-001")
		if err != nil {
			t.Fatalf("NewSKU: %v", err)
		}
		if s.String() != "RICE-001" {
			t.Errorf("String() = %q", s.String())
		}
	})

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"contains space", "RICE 001"},
		{"contains tab", "RICE\t001"},
		{"too long", string(make([]byte, 65))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSKU(tt.in); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		quantity  int
		threshold int
		want      StockStatus
	}{
		{0, 10, StatusOutOfStock},
		{1, 10, StatusLowStock},
		{10, 10, StatusLowStock},
		{11, 10, StatusInStock},
		{3, 2, StatusInStock},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.quantity, tt.threshold); got != tt.want {
			t.Errorf("StatusFor(%d, %d) = %s, want %s", tt.quantity, tt.threshold, got, tt.want)
		}
	}
}
