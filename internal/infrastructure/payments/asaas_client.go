package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"uaizouk_billing/internal/domain/entities"
	"uaizouk_billing/internal/usecase/interfaces"

	"golang.org/x/time/rate"
)

var ErrMissingAsaasAPIKey = errors.New("missing ASAAS_API_KEY")

const (
	defaultAsaasBaseURL = "https://api.asaas.com/v3"
	defaultPageSize     = 100

	// ASAAS does not document its rate limit; one request every 150ms kept
	// the original sync scripts out of 429 territory.
	requestInterval = 150 * time.Millisecond

	maxRetries    = 3
	retryInterval = 500 * time.Millisecond
)

// AsaasClient consumes the ASAAS v3 REST API read-only: customer lookup and
// paginated charge listing. There is no official Go SDK, so the client is a
// thin net/http wrapper.
//
// Supported env vars:
//   - ASAAS_API_KEY (required)
//   - ASAAS_BASE_URL (optional; sandbox is https://api-sandbox.asaas.com/v3)
type AsaasClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

var _ interfaces.IChargeGateway = (*AsaasClient)(nil)

func NewAsaasClient(apiKey string) (*AsaasClient, error) {
	if apiKey == "" {
		log.Printf("[asaas][gateway] missing ASAAS_API_KEY")
		return nil, ErrMissingAsaasAPIKey
	}

	baseURL := os.Getenv("ASAAS_BASE_URL")
	if baseURL == "" {
		baseURL = defaultAsaasBaseURL
	}
	log.Printf("[asaas][gateway] client initialized base_url=%s", baseURL)

	return &AsaasClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
	}, nil
}

// asaasPage is the list envelope every ASAAS collection endpoint returns.
type asaasPage struct {
	HasMore    bool              `json:"hasMore"`
	TotalCount int               `json:"totalCount"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
	Data       []json.RawMessage `json:"data"`
}

type asaasCharge struct {
	ID               string  `json:"id"`
	Customer         string  `json:"customer"`
	Value            float64 `json:"value"`
	Status           string  `json:"status"`
	BillingType      string  `json:"billingType"`
	Description      string  `json:"description"`
	DueDate          string  `json:"dueDate"`
	PaymentDate      *string `json:"paymentDate"`
	InstallmentCount int     `json:"installmentCount"`
}

type asaasCustomer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	CpfCnpj string `json:"cpfCnpj"`
}

// ListChargesByCustomer walks the /payments pagination for one customer and
// returns every charge as-is. The caller filters by event tag.
func (c *AsaasClient) ListChargesByCustomer(ctx context.Context, customerID string) ([]entities.ProviderCharge, error) {
	var charges []entities.ProviderCharge

	offset := 0
	for {
		q := url.Values{}
		q.Set("customer", customerID)
		q.Set("limit", strconv.Itoa(defaultPageSize))
		q.Set("offset", strconv.Itoa(offset))

		page, err := c.getPage(ctx, "/payments", q)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Data {
			var ch asaasCharge
			if err := json.Unmarshal(raw, &ch); err != nil {
				return nil, err
			}
			charges = append(charges, entities.ProviderCharge{
				ID:               ch.ID,
				Customer:         ch.Customer,
				Value:            ch.Value,
				Status:           entities.ChargeStatus(ch.Status),
				BillingType:      ch.BillingType,
				Description:      ch.Description,
				DueDate:          ch.DueDate,
				PaymentDate:      ch.PaymentDate,
				InstallmentCount: ch.InstallmentCount,
			})
		}

		if !page.HasMore {
			break
		}
		offset += defaultPageSize
	}

	log.Printf("[asaas][gateway] listed charges customer=%s count=%d", customerID, len(charges))
	return charges, nil
}

// FindCustomerByCPF resolves an ASAAS customer id by CPF/CNPJ. A customer
// that does not exist is not an error; the caller skips the record.
func (c *AsaasClient) FindCustomerByCPF(ctx context.Context, cpf string) (string, error) {
	q := url.Values{}
	q.Set("cpfCnpj", cpf)
	q.Set("limit", "1")

	page, err := c.getPage(ctx, "/customers", q)
	if err != nil {
		return "", err
	}
	if len(page.Data) == 0 {
		return "", nil
	}

	var cust asaasCustomer
	if err := json.Unmarshal(page.Data[0], &cust); err != nil {
		return "", err
	}
	return cust.ID, nil
}

// getPage performs one GET against the API with the courtesy rate limit and
// a fixed-count fixed-interval retry on transport failures and 429/5xx.
// Retries never apply to 4xx responses: those are data problems, not
// transient ones.
func (c *AsaasClient) getPage(ctx context.Context, path string, q url.Values) (*asaasPage, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		page, retryable, err := c.doGet(ctx, path, q)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}

		log.Printf("[asaas][gateway] request failed path=%s attempt=%d/%d err=%v", path, attempt, maxRetries, err)
		if attempt < maxRetries {
			select {
			case <-time.After(retryInterval):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (c *AsaasClient) doGet(ctx context.Context, path string, q url.Values) (page *asaasPage, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("access_token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, true, fmt.Errorf("asaas %s: status %d: %s", path, resp.StatusCode, body)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("asaas %s: status %d: %s", path, resp.StatusCode, body)
	}

	var p asaasPage
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, false, err
	}
	return &p, false, nil
}
