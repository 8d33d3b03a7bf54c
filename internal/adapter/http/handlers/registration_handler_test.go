package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"uaizouk_billing/internal/adapter/http/handlers/mocks"
	"uaizouk_billing/internal/domain/entities"
	"uaizouk_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRegistrationHandler_CreateRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		body := `{"name":"Ana","email":"ana@example.com","ticket_type":"Individual","payment_method":"cheque"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("config unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Registration{}, usecase.ErrFormConfigUnavailable)

		body := `{"name":"Ana","email":"ana@example.com","ticket_type":"Individual","payment_method":"pix"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.POST("/v1/registrations", h.CreateRegistration)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateRegistrationInput) (entities.Registration, error) {
				if in.PaymentMethod != entities.PaymentMethodPix || in.Installments != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Registration{ID: "reg-1", Total: 95, PaymentStatus: entities.PaymentStatusPending}, nil
			},
		)

		body := `{"name":"Ana","email":"ana@example.com","ticket_type":"Individual","payment_method":"pix"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/registrations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["id"] != "reg-1" || res["payment_status"] != "pending" {
			t.Fatalf("unexpected response: %v", res)
		}
	})
}

func TestRegistrationHandler_GetRegistrationByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.GET("/v1/registrations/:id", h.GetRegistrationByID)

		uc.EXPECT().GetByID(gomock.Any(), "reg-404").Return(entities.Registration{}, usecase.ErrRegistrationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/registrations/reg-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.GET("/v1/registrations/:id", h.GetRegistrationByID)

		uc.EXPECT().GetByID(gomock.Any(), "reg-1").Return(entities.Registration{ID: "reg-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/registrations/reg-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRegistrationHandler_ListRegistrations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.GET("/v1/registrations", h.ListRegistrations)

		uc.EXPECT().ListByPaymentStatus(gomock.Any(), entities.PaymentStatus("paid-ish")).Return(nil, usecase.ErrInvalidPaymentStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/registrations?payment_status=paid-ish", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filtered list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistrationUseCase(ctrl)
		h := NewRegistrationHandler(uc)

		r := gin.New()
		r.GET("/v1/registrations", h.ListRegistrations)

		uc.EXPECT().ListByPaymentStatus(gomock.Any(), entities.PaymentStatusPartial).
			Return([]entities.Registration{{ID: "a"}, {ID: "b"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/registrations?payment_status=partial", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 items, got %d", len(res))
		}
	})
}

func TestMapRegistrationError_Internal(t *testing.T) {
	appErr := mapRegistrationError(errors.New("boom"))
	if appErr.HTTPStatus != http.StatusInternalServerError || appErr.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected mapping: %+v", appErr)
	}
}
