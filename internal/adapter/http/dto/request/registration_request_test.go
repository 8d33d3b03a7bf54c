package request

import (
	"errors"
	"testing"

	"uaizouk_billing/internal/domain/entities"
)

func TestRegistrationRequest_ResolvePaymentMethod(t *testing.T) {
	cases := map[string]entities.PaymentMethod{
		"pix":             entities.PaymentMethodPix,
		" PIX ":           entities.PaymentMethodPix,
		"pix_installment": entities.PaymentMethodPixInstallment,
		"credit_card":     entities.PaymentMethodCreditCard,
		"paypal":          entities.PaymentMethodPaypal,
	}
	for in, want := range cases {
		r := RegistrationRequest{PaymentMethod: in}
		got, err := r.ResolvePaymentMethod()
		if err != nil || got != want {
			t.Fatalf("ResolvePaymentMethod(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	r := RegistrationRequest{PaymentMethod: "boleto"}
	if _, err := r.ResolvePaymentMethod(); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestRegistrationRequest_ToInput(t *testing.T) {
	r := RegistrationRequest{
		Name:          "Ana",
		Email:         "ana@example.com",
		TicketType:    "Individual",
		PaymentMethod: "credit_card",
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.PaymentMethod != entities.PaymentMethodCreditCard {
		t.Fatalf("unexpected method: %v", in.PaymentMethod)
	}
	if in.Installments != 1 {
		t.Fatalf("zero installments must default to 1, got %d", in.Installments)
	}

	r.PaymentMethod = "cheque"
	if _, err := r.ToInput(); err == nil {
		t.Fatal("expected error for unknown method")
	}
}
