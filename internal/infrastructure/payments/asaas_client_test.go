package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"uaizouk_billing/internal/domain/entities"
)

func newTestClient(t *testing.T, handler http.Handler) *AsaasClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("ASAAS_BASE_URL", srv.URL)

	c, err := NewAsaasClient("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNewAsaasClient_RequiresAPIKey(t *testing.T) {
	_, err := NewAsaasClient("")
	if !errors.Is(err, ErrMissingAsaasAPIKey) {
		t.Fatalf("expected ErrMissingAsaasAPIKey, got %v", err)
	}
}

func TestAsaasClient_ListChargesByCustomer_Pagination(t *testing.T) {
	pages := []string{
		`{"hasMore":true,"totalCount":3,"limit":100,"offset":0,"data":[
			{"id":"ch_1","customer":"cus_1","value":50,"status":"RECEIVED","description":"Parcela 1 de 3. UAIZOUK 2026","paymentDate":"2026-02-01"},
			{"id":"ch_2","customer":"cus_1","value":50,"status":"PENDING","description":"Parcela 2 de 3. UAIZOUK 2026","paymentDate":null}
		]}`,
		`{"hasMore":false,"totalCount":3,"limit":100,"offset":100,"data":[
			{"id":"ch_3","customer":"cus_1","value":50,"status":"OVERDUE","description":"Parcela 3 de 3. UAIZOUK 2026","paymentDate":null}
		]}`,
	}

	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payments" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("access_token") != "test-key" {
			t.Fatalf("missing access_token header")
		}
		if got := r.URL.Query().Get("customer"); got != "cus_1" {
			t.Fatalf("unexpected customer %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(pages[calls]))
		calls++
	}))

	charges, err := c.ListChargesByCustomer(context.Background(), "cus_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 page fetches, got %d", calls)
	}
	if len(charges) != 3 {
		t.Fatalf("expected 3 charges, got %d", len(charges))
	}
	if charges[0].Status != entities.ChargeStatusReceived || charges[0].PaymentDate == nil {
		t.Fatalf("unexpected first charge: %+v", charges[0])
	}
	if charges[1].PaymentDate != nil {
		t.Fatalf("null paymentDate must map to nil: %+v", charges[1])
	}
}

func TestAsaasClient_RetriesTransientFailures(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"hasMore": false, "data": []any{}})
	}))

	charges, err := c.ListChargesByCustomer(context.Background(), "cus_1")
	if err != nil {
		t.Fatalf("expected recovery after retries, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if len(charges) != 0 {
		t.Fatalf("expected no charges, got %d", len(charges))
	}
}

func TestAsaasClient_DoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.ListChargesByCustomer(context.Background(), "cus_1")
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("4xx must not be retried, got %d attempts", calls)
	}
}

func TestAsaasClient_FindCustomerByCPF(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/customers" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("cpfCnpj"); got != "12345678900" {
				t.Fatalf("unexpected cpfCnpj %q", got)
			}
			w.Write([]byte(`{"hasMore":false,"data":[{"id":"cus_9","name":"Ana","cpfCnpj":"12345678900"}]}`))
		}))

		id, err := c.FindCustomerByCPF(context.Background(), "12345678900")
		if err != nil || id != "cus_9" {
			t.Fatalf("unexpected result: %q %v", id, err)
		}
	})

	t.Run("not found is not an error", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"hasMore":false,"data":[]}`))
		}))

		id, err := c.FindCustomerByCPF(context.Background(), "00000000000")
		if err != nil || id != "" {
			t.Fatalf("unexpected result: %q %v", id, err)
		}
	})
}
