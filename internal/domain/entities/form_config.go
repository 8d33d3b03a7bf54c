package entities

// FormConfig is the versioned registration-form configuration owned by the
// admin panel. The billing module consumes it read-only: ticket and product
// prices plus the payment adjustment percentages all come from here.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the active config is the single item with active = true

type TicketType struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Product is an optional add-on sold with the ticket.
//
// IsBoolean products are accept/decline only ("Sim"/"Não"); non-boolean
// products carry an option such as a shirt size, and any non-empty option
// other than "Não" means the product was taken.
type Product struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	IsBoolean bool    `json:"isBoolean"`
}

type PaymentSettings struct {
	PixDiscountPercentage   float64 `json:"pixDiscountPercentage"`
	CreditCardFeePercentage float64 `json:"creditCardFeePercentage"`
	DueDateLimit            int     `json:"dueDateLimit"`
}

type FormConfig struct {
	ID              string          `json:"id"`
	Version         int             `json:"version"`
	Active          bool            `json:"active"`
	TicketTypes     []TicketType    `json:"ticketTypes"`
	Products        []Product       `json:"products"`
	PaymentSettings PaymentSettings `json:"paymentSettings"`
}
