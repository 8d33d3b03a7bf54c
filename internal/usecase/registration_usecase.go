package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"uaizouk_billing/internal/domain/billing"
	"uaizouk_billing/internal/domain/entities"
	"uaizouk_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrInvalidRegistrationID = errors.New("invalid registration id")
	ErrInvalidTicketType     = errors.New("invalid ticket type")
	ErrInvalidAttendee       = errors.New("invalid attendee data")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status filter")
	ErrFormConfigUnavailable = errors.New("active form config unavailable")
)

// CreateRegistrationInput is the domain command for creating a registration.
// The breakdown is never taken from the caller; it is always computed from
// the active form config at creation time.
type CreateRegistrationInput struct {
	Name             string
	Email            string
	CPF              string
	Phone            string
	TicketType       string
	SelectedProducts map[string]string
	PaymentMethod    entities.PaymentMethod
	Installments     int
	AsaasCustomerID  string
}

// IRegistrationUseCase exposes registration lifecycle operations.

type IRegistrationUseCase interface {
	Create(ctx context.Context, in CreateRegistrationInput) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	ListByPaymentStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Registration, error)
}

type RegistrationUseCase struct {
	repo       interfaces.IRegistrationRepository
	configRepo interfaces.IFormConfigRepository
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(repo interfaces.IRegistrationRepository, configRepo interfaces.IFormConfigRepository) *RegistrationUseCase {
	return &RegistrationUseCase{repo: repo, configRepo: configRepo}
}

func (u *RegistrationUseCase) Create(ctx context.Context, in CreateRegistrationInput) (entities.Registration, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.TicketType = strings.TrimSpace(in.TicketType)
	if in.Name == "" {
		return entities.Registration{}, ErrInvalidAttendee
	}
	if in.TicketType == "" {
		return entities.Registration{}, ErrInvalidTicketType
	}

	cfg, err := u.configRepo.GetActive(ctx)
	if err != nil {
		log.Printf("[registration][usecase] failed loading active form config err=%v", err)
		return entities.Registration{}, fmt.Errorf("%w: %v", ErrFormConfigUnavailable, err)
	}

	phone, _ := billing.NormalizePhone(in.Phone)

	resolver := billing.NewPriceResolver(cfg)
	reg := entities.Registration{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Email:            strings.TrimSpace(in.Email),
		CPF:              strings.TrimSpace(in.CPF),
		Phone:            phone,
		TicketType:       in.TicketType,
		SelectedProducts: in.SelectedProducts,
		PaymentMethod:    in.PaymentMethod,
		Installments:     in.Installments,
		PaymentStatus:    entities.PaymentStatusPending,
		AsaasCustomerID:  strings.TrimSpace(in.AsaasCustomerID),
	}

	baseTotal, warnings := resolver.BaseTotal(reg)
	for _, w := range warnings {
		log.Printf("[registration][usecase] config lookup miss registration_name=%q warning=%s", in.Name, w)
	}

	b := billing.ComputeBreakdown(baseTotal, in.PaymentMethod, cfg.PaymentSettings).Rounded()
	reg.BaseTotal = b.BaseTotal
	reg.DiscountAmount = b.DiscountAmount
	reg.FeeAmount = b.FeeAmount
	reg.FeePercentage = b.FeePercentage
	reg.Total = b.FinalTotal

	now := time.Now().UTC()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	created, err := u.repo.Create(ctx, reg)
	if err != nil {
		log.Printf("[registration][usecase] repository create failed registration_id=%s err=%v", reg.ID, err)
		return entities.Registration{}, err
	}
	log.Printf("[registration][usecase] created registration_id=%s ticket_type=%s base_total=%.2f total=%.2f", created.ID, created.TicketType, created.BaseTotal, created.Total)
	return created, nil
}

func (u *RegistrationUseCase) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Registration{}, ErrInvalidRegistrationID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Registration{}, err
	}
	if r.ID == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	return r, nil
}

func (u *RegistrationUseCase) ListByPaymentStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Registration, error) {
	switch status {
	case entities.PaymentStatusPending, entities.PaymentStatusPartial, entities.PaymentStatusReceived:
		return u.repo.ListByPaymentStatus(ctx, status)
	case "":
		return u.repo.List(ctx)
	default:
		return nil, ErrInvalidPaymentStatus
	}
}
