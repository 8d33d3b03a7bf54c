package billing

import (
	"testing"

	"uaizouk_billing/internal/domain/entities"
)

func testConfig() entities.FormConfig {
	return entities.FormConfig{
		ID:      "cfg-1",
		Version: 3,
		Active:  true,
		TicketTypes: []entities.TicketType{
			{Name: "Individual", Price: 100},
			{Name: "Casal", Price: 180},
		},
		Products: []entities.Product{
			{Name: "Camiseta", Price: 35, IsBoolean: false},
			{Name: "Caneca", Price: 20, IsBoolean: true},
		},
	}
}

func TestPriceResolver_TicketPrice(t *testing.T) {
	r := NewPriceResolver(testConfig())

	t.Run("known ticket", func(t *testing.T) {
		price, warnings := r.TicketPrice("Casal")
		if price != 180 || len(warnings) != 0 {
			t.Fatalf("expected 180 with no warnings, got %v %v", price, warnings)
		}
	})

	t.Run("unknown ticket resolves to zero with warning", func(t *testing.T) {
		price, warnings := r.TicketPrice("Lote Antigo")
		if price != 0 {
			t.Fatalf("expected 0, got %v", price)
		}
		if len(warnings) != 1 {
			t.Fatalf("expected 1 warning, got %v", warnings)
		}
	})
}

func TestPriceResolver_ProductPrice(t *testing.T) {
	r := NewPriceResolver(testConfig())

	t.Run("boolean product accepted", func(t *testing.T) {
		price, _ := r.ProductPrice("Caneca", "Sim")
		if price != 20 {
			t.Fatalf("expected 20, got %v", price)
		}
	})

	t.Run("boolean product only counts on the literal Sim", func(t *testing.T) {
		for _, option := range []string{"Não", "sim", "yes", ""} {
			if price, _ := r.ProductPrice("Caneca", option); price != 0 {
				t.Fatalf("option %q: expected 0, got %v", option, price)
			}
		}
	})

	t.Run("non-boolean product counts for any size", func(t *testing.T) {
		price, _ := r.ProductPrice("Camiseta", "M")
		if price != 35 {
			t.Fatalf("expected 35, got %v", price)
		}
	})

	t.Run("non-boolean product declined or empty", func(t *testing.T) {
		for _, option := range []string{"Não", "", "   "} {
			if price, _ := r.ProductPrice("Camiseta", option); price != 0 {
				t.Fatalf("option %q: expected 0, got %v", option, price)
			}
		}
	})

	t.Run("unknown product resolves to zero with warning", func(t *testing.T) {
		price, warnings := r.ProductPrice("Boné", "Sim")
		if price != 0 || len(warnings) != 1 {
			t.Fatalf("expected 0 with warning, got %v %v", price, warnings)
		}
	})
}

func TestPriceResolver_BaseTotal(t *testing.T) {
	r := NewPriceResolver(testConfig())

	reg := entities.Registration{
		TicketType: "Individual",
		SelectedProducts: map[string]string{
			"Camiseta": "G",
			"Caneca":   "Não",
		},
	}
	total, warnings := r.BaseTotal(reg)
	if total != 135 {
		t.Fatalf("expected 135, got %v", total)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	// Config drift never fails, it degrades to zero prices.
	drifted := entities.Registration{
		TicketType:       "Lote Antigo",
		SelectedProducts: map[string]string{"Boné": "Sim"},
	}
	total, warnings = r.BaseTotal(drifted)
	if total != 0 {
		t.Fatalf("expected 0, got %v", total)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
}
