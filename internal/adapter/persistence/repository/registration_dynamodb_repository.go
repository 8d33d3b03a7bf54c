package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"uaizouk_billing/internal/domain/entities"
	"uaizouk_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRegistrationsTableName = "registrations"
	registrationsStatusIndex      = "payment_status-index"
)

type registrationItem struct {
	ID               string            `dynamodbav:"id"`
	Name             string            `dynamodbav:"name"`
	Email            string            `dynamodbav:"email"`
	CPF              string            `dynamodbav:"cpf"`
	Phone            string            `dynamodbav:"phone,omitempty"`
	TicketType       string            `dynamodbav:"ticket_type"`
	SelectedProducts map[string]string `dynamodbav:"selected_products,omitempty"`
	PaymentMethod    string            `dynamodbav:"payment_method"`
	Installments     int               `dynamodbav:"installments"`
	BaseTotal        float64           `dynamodbav:"base_total"`
	DiscountAmount   float64           `dynamodbav:"discount_amount"`
	FeeAmount        float64           `dynamodbav:"fee_amount"`
	FeePercentage    float64           `dynamodbav:"fee_percentage"`
	Total            float64           `dynamodbav:"total"`
	PaymentStatus    string            `dynamodbav:"payment_status"`
	PaidValue        float64           `dynamodbav:"paid_value"`
	AsaasCustomerID  string            `dynamodbav:"asaas_customer_id,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

// RegistrationDynamoRepository persists Registration entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_status-index (PK: payment_status)
//
// Every write commits one record; the batch jobs rely on that so a partial
// run never leaves half-written state behind.

type RegistrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRegistrationRepository = (*RegistrationDynamoRepository)(nil)

func NewRegistrationDynamoRepository(ddb *dynamodb.Client) *RegistrationDynamoRepository {
	return &RegistrationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REGISTRATIONS_TABLE", defaultRegistrationsTableName),
	}
}

func (r *RegistrationDynamoRepository) Create(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	it := toRegistrationItem(reg)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Registration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Registration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Registration{}, nil
	}

	var it registrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(it), nil
}

func (r *RegistrationDynamoRepository) List(ctx context.Context) ([]entities.Registration, error) {
	var regs []entities.Registration

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it registrationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			regs = append(regs, fromRegistrationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return regs, nil
}

func (r *RegistrationDynamoRepository) ListByPaymentStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Registration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(registrationsStatusIndex),
		KeyConditionExpression: aws.String("payment_status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	regs := make([]entities.Registration, 0, len(out.Items))
	for _, raw := range out.Items {
		var it registrationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		regs = append(regs, fromRegistrationItem(it))
	}
	return regs, nil
}

func (r *RegistrationDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, paidValue float64) (entities.Registration, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :status, #paid_value = :paid, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":paid":       &types.AttributeValueMemberN{Value: floatToString(paidValue)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status": "payment_status",
			"#paid_value":     "paid_value",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RegistrationDynamoRepository) UpdateBreakdown(ctx context.Context, id string, baseTotal, discount, fee, feePct, total float64) (entities.Registration, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #base_total = :base, #discount_amount = :discount, #fee_amount = :fee, #fee_percentage = :fee_pct, #total = :total, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":base":       &types.AttributeValueMemberN{Value: floatToString(baseTotal)},
			":discount":   &types.AttributeValueMemberN{Value: floatToString(discount)},
			":fee":        &types.AttributeValueMemberN{Value: floatToString(fee)},
			":fee_pct":    &types.AttributeValueMemberN{Value: floatToString(feePct)},
			":total":      &types.AttributeValueMemberN{Value: floatToString(total)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#base_total":      "base_total",
			"#discount_amount": "discount_amount",
			"#fee_amount":      "fee_amount",
			"#fee_percentage":  "fee_percentage",
			"#total":           "total",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RegistrationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Registration, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Registration{}, nil
		}
		return entities.Registration{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Registration{}, nil
	}
	var it registrationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(it), nil
}

func toRegistrationItem(reg entities.Registration) registrationItem {
	return registrationItem{
		ID:               reg.ID,
		Name:             reg.Name,
		Email:            reg.Email,
		CPF:              reg.CPF,
		Phone:            reg.Phone,
		TicketType:       reg.TicketType,
		SelectedProducts: reg.SelectedProducts,
		PaymentMethod:    string(reg.PaymentMethod),
		Installments:     reg.Installments,
		BaseTotal:        reg.BaseTotal,
		DiscountAmount:   reg.DiscountAmount,
		FeeAmount:        reg.FeeAmount,
		FeePercentage:    reg.FeePercentage,
		Total:            reg.Total,
		PaymentStatus:    string(reg.PaymentStatus),
		PaidValue:        reg.PaidValue,
		AsaasCustomerID:  reg.AsaasCustomerID,
		CreatedAt:        reg.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        reg.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRegistrationItem(it registrationItem) entities.Registration {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Registration{
		ID:               it.ID,
		Name:             it.Name,
		Email:            it.Email,
		CPF:              it.CPF,
		Phone:            it.Phone,
		TicketType:       it.TicketType,
		SelectedProducts: it.SelectedProducts,
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		Installments:     it.Installments,
		BaseTotal:        it.BaseTotal,
		DiscountAmount:   it.DiscountAmount,
		FeeAmount:        it.FeeAmount,
		FeePercentage:    it.FeePercentage,
		Total:            it.Total,
		PaymentStatus:    entities.PaymentStatus(it.PaymentStatus),
		PaidValue:        it.PaidValue,
		AsaasCustomerID:  it.AsaasCustomerID,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
