package billing

import (
	"fmt"
	"strings"

	"uaizouk_billing/internal/domain/entities"
)

const (
	optionYes = "Sim"
	optionNo  = "Não"
)

// PriceResolver looks ticket and product prices up in a FormConfig.
//
// Config drift is expected: registrations may reference ticket types or
// products that were renamed or removed from the active config after the
// fact. A miss resolves to price 0 with a warning so batch runs never fail
// on stale data.

type PriceResolver struct {
	cfg entities.FormConfig
}

func NewPriceResolver(cfg entities.FormConfig) *PriceResolver {
	return &PriceResolver{cfg: cfg}
}

// TicketPrice returns the price of the given ticket type, or 0 with a
// warning when the key is absent from the config.
func (r *PriceResolver) TicketPrice(ticketType string) (float64, []string) {
	for _, t := range r.cfg.TicketTypes {
		if t.Name == ticketType {
			return t.Price, nil
		}
	}
	return 0, []string{fmt.Sprintf("ticket type %q not found in form config, using price 0", ticketType)}
}

// ProductPrice returns the price contribution of one selected product.
//
// Boolean products only count when the selected option is the literal "Sim".
// Non-boolean products (sizes etc.) count for any non-empty option other
// than the literal "Não".
func (r *PriceResolver) ProductPrice(name, option string) (float64, []string) {
	for _, p := range r.cfg.Products {
		if p.Name != name {
			continue
		}
		if p.IsBoolean {
			if option == optionYes {
				return p.Price, nil
			}
			return 0, nil
		}
		if strings.TrimSpace(option) == "" || option == optionNo {
			return 0, nil
		}
		return p.Price, nil
	}
	return 0, []string{fmt.Sprintf("product %q not found in form config, using price 0", name)}
}

// BaseTotal sums the ticket price and the prices of every included product.
// Deterministic given (registration, config); warnings accumulate instead of
// failing.
func (r *PriceResolver) BaseTotal(reg entities.Registration) (float64, []string) {
	total, warnings := r.TicketPrice(reg.TicketType)
	for name, option := range reg.SelectedProducts {
		price, w := r.ProductPrice(name, option)
		total += price
		warnings = append(warnings, w...)
	}
	return total, warnings
}
