package repository

import (
	"context"
	"errors"

	"uaizouk_billing/internal/domain/entities"
	"uaizouk_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFormConfigsTableName = "form_configs"

var ErrNoActiveFormConfig = errors.New("no active form config")

type formConfigItem struct {
	ID          string              `dynamodbav:"id"`
	Version     int                 `dynamodbav:"version"`
	Active      bool                `dynamodbav:"active"`
	TicketTypes []ticketTypeItem    `dynamodbav:"ticket_types"`
	Products    []productItem       `dynamodbav:"products"`
	Payment     paymentSettingsItem `dynamodbav:"payment_settings"`
}

type ticketTypeItem struct {
	Name  string  `dynamodbav:"name"`
	Price float64 `dynamodbav:"price"`
}

type productItem struct {
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
	IsBoolean bool    `dynamodbav:"is_boolean"`
}

type paymentSettingsItem struct {
	PixDiscountPercentage   float64 `dynamodbav:"pix_discount_percentage"`
	CreditCardFeePercentage float64 `dynamodbav:"credit_card_fee_percentage"`
	DueDateLimit            int     `dynamodbav:"due_date_limit"`
}

// FormConfigDynamoRepository reads the admin-owned form configuration.
//
// Table requirements:
//   - PK: id (string)
//   - exactly one item carries active = true; the admin panel flips the flag
//     when publishing a new version.
//
// The billing-service never writes this table.

type FormConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFormConfigRepository = (*FormConfigDynamoRepository)(nil)

func NewFormConfigDynamoRepository(ddb *dynamodb.Client) *FormConfigDynamoRepository {
	return &FormConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORM_CONFIGS_TABLE", defaultFormConfigsTableName),
	}
}

func (r *FormConfigDynamoRepository) GetActive(ctx context.Context) (entities.FormConfig, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.FormConfig{}, err
	}
	if len(out.Items) == 0 {
		return entities.FormConfig{}, ErrNoActiveFormConfig
	}

	// More than one active config would be an admin-panel bug; take the
	// highest version so billing still has a deterministic answer.
	var best *formConfigItem
	for _, raw := range out.Items {
		var it formConfigItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.FormConfig{}, err
		}
		if best == nil || it.Version > best.Version {
			cp := it
			best = &cp
		}
	}
	return fromFormConfigItem(*best), nil
}

func fromFormConfigItem(it formConfigItem) entities.FormConfig {
	cfg := entities.FormConfig{
		ID:      it.ID,
		Version: it.Version,
		Active:  it.Active,
		PaymentSettings: entities.PaymentSettings{
			PixDiscountPercentage:   it.Payment.PixDiscountPercentage,
			CreditCardFeePercentage: it.Payment.CreditCardFeePercentage,
			DueDateLimit:            it.Payment.DueDateLimit,
		},
	}
	for _, t := range it.TicketTypes {
		cfg.TicketTypes = append(cfg.TicketTypes, entities.TicketType{Name: t.Name, Price: t.Price})
	}
	for _, p := range it.Products {
		cfg.Products = append(cfg.Products, entities.Product{Name: p.Name, Price: p.Price, IsBoolean: p.IsBoolean})
	}
	return cfg
}
