package repository

import (
	"context"
	"errors"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentsTableName   = "settlement_payments"
	PaymentsNegotiationIDIndex = "negotiation_id-index"
)

var ErrPaymentAlreadyExists = errors.New("payment already exists")

type settlementPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	NegotiationID      string                 `dynamodbav:"negotiation_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// SettlementPaymentDynamoRepository persists SettlementPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: negotiation_id-index (PK: negotiation_id)

type SettlementPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISettlementPaymentRepository = (*SettlementPaymentDynamoRepository)(nil)

func NewSettlementPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *SettlementPaymentDynamoRepository {
	return newSettlementPaymentDynamoRepository(ddb, tableName)
}

func newSettlementPaymentDynamoRepository(ddb dynamoAPI, tableName string) *SettlementPaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &SettlementPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SettlementPaymentDynamoRepository) Create(ctx context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error) {
	av, err := attributevalue.MarshalMap(toSettlementPaymentItem(p))
	if err != nil {
		return entities.SettlementPayment{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SettlementPayment{}, ErrPaymentAlreadyExists
		}
		return entities.SettlementPayment{}, err
	}
	return p, nil
}

func (r *SettlementPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.SettlementPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SettlementPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.SettlementPayment{}, nil
	}

	var it settlementPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SettlementPayment{}, err
	}
	return fromSettlementPaymentItem(it), nil
}

func (r *SettlementPaymentDynamoRepository) ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.SettlementPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(PaymentsNegotiationIDIndex),
		KeyConditionExpression: aws.String("negotiation_id = :nid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nid": &types.AttributeValueMemberS{Value: negotiationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SettlementPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it settlementPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSettlementPaymentItem(it))
	}
	return items, nil
}

func toSettlementPaymentItem(p entities.SettlementPayment) settlementPaymentItem {
	return settlementPaymentItem{
		ID:                 p.ID,
		NegotiationID:      p.NegotiationID,
		Amount:             p.Amount.String(),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromSettlementPaymentItem(it settlementPaymentItem) entities.SettlementPayment {
	amount := decimal.Zero
	if d := stringToDecimal(it.Amount); d != nil {
		amount = *d
	}
	p := entities.SettlementPayment{
		ID:              it.ID,
		NegotiationID:   it.NegotiationID,
		Amount:          amount,
		Date:            parseTime(it.Date),
		Status:          entities.PaymentStatus(it.Status),
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
