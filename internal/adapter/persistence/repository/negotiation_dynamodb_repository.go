package repository

import (
	"context"
	"errors"
	"strconv"

	"bell24h_negotiation/internal/domain/entities"
	"bell24h_negotiation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultNegotiationsTableName = "negotiations"
	NegotiationsBuyerIDIndex     = "buyer_id-index"
	NegotiationsSupplierIDIndex  = "supplier_id-index"
)

var ErrNegotiationAlreadyExists = errors.New("negotiation already exists")

type negotiationMessageItem struct {
	ID               string   `dynamodbav:"id"`
	Sender           string   `dynamodbav:"sender"`
	Message          string   `dynamodbav:"message"`
	Offer            string   `dynamodbav:"offer,omitempty"`
	Timestamp        string   `dynamodbav:"timestamp"`
	IsAISuggestion   bool     `dynamodbav:"is_ai_suggestion"`
	RecommendedOffer string   `dynamodbav:"recommended_offer,omitempty"`
	Confidence       *float64 `dynamodbav:"confidence,omitempty"`
}

type negotiationItem struct {
	ID           string                   `dynamodbav:"id"`
	RFQID        string                   `dynamodbav:"rfq_id"`
	BuyerID      string                   `dynamodbav:"buyer_id"`
	SupplierID   string                   `dynamodbav:"supplier_id"`
	Status       string                   `dynamodbav:"status"`
	CurrentOffer string                   `dynamodbav:"current_offer"`
	CounterOffer string                   `dynamodbav:"counter_offer,omitempty"`
	AgreedPrice  string                   `dynamodbav:"agreed_price,omitempty"`
	Messages     []negotiationMessageItem `dynamodbav:"messages"`
	Version      int64                    `dynamodbav:"version"`
	CreatedAt    string                   `dynamodbav:"created_at"`
	UpdatedAt    string                   `dynamodbav:"updated_at"`
}

// NegotiationDynamoRepository persists Negotiation aggregates in DynamoDB, one item
// per negotiation with the message log embedded.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id)
//   - GSI: supplier_id-index (PK: supplier_id)

type NegotiationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.INegotiationRepository = (*NegotiationDynamoRepository)(nil)

func NewNegotiationDynamoRepository(ddb *dynamodb.Client, tableName string) *NegotiationDynamoRepository {
	return newNegotiationDynamoRepository(ddb, tableName)
}

func newNegotiationDynamoRepository(ddb dynamoAPI, tableName string) *NegotiationDynamoRepository {
	if tableName == "" {
		tableName = DefaultNegotiationsTableName
	}
	return &NegotiationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NegotiationDynamoRepository) Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error) {
	av, err := attributevalue.MarshalMap(toNegotiationItem(n))
	if err != nil {
		return entities.Negotiation{}, err
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
			return entities.Negotiation{}, ErrNegotiationAlreadyExists
		}
		return entities.Negotiation{}, err
	}
	return n, nil
}

func (r *NegotiationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Negotiation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Negotiation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Negotiation{}, nil
	}

	var it negotiationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Negotiation{}, err
	}
	return fromNegotiationItem(it), nil
}

// ListByUserID queries both participant indexes and merges the results.
// GSIs are eventually consistent, so a negotiation created a moment ago may be missing.
func (r *NegotiationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Negotiation, error) {
	seen := make(map[string]struct{})
	var out []entities.Negotiation

	for _, idx := range []struct{ name, attr string }{
		{NegotiationsBuyerIDIndex, "buyer_id"},
		{NegotiationsSupplierIDIndex, "supplier_id"},
	} {
		items, err := r.queryIndex(ctx, idx.name, idx.attr, userID)
		if err != nil {
			return nil, err
		}
		for _, n := range items {
			if _, ok := seen[n.ID]; ok {
				continue
			}
			seen[n.ID] = struct{}{}
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NegotiationDynamoRepository) queryIndex(ctx context.Context, index, attr, userID string) ([]entities.Negotiation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: userID},
		},
	})

	var items []entities.Negotiation
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it negotiationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromNegotiationItem(it))
		}
	}
	return items, nil
}

// Update replaces the item only when the stored version still equals expectedVersion
// and the stored message log is not longer than the new one.
func (r *NegotiationDynamoRepository) Update(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error) {
	av, err := attributevalue.MarshalMap(toNegotiationItem(n))
	if err != nil {
		return entities.Negotiation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected AND size(#messages) <= :count"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#version":  "version",
			"#messages": "messages",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":count":    &types.AttributeValueMemberN{Value: strconv.Itoa(len(n.Messages))},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Negotiation{}, interfaces.ErrVersionConflict
		}
		return entities.Negotiation{}, err
	}
	return n, nil
}

func toNegotiationItem(n entities.Negotiation) negotiationItem {
	msgs := make([]negotiationMessageItem, 0, len(n.Messages))
	for _, m := range n.Messages {
		msgs = append(msgs, negotiationMessageItem{
			ID:               m.ID,
			Sender:           string(m.Sender),
			Message:          m.Message,
			Offer:            decimalToString(m.Offer),
			Timestamp:        formatTime(m.Timestamp),
			IsAISuggestion:   m.IsAISuggestion,
			RecommendedOffer: decimalToString(m.RecommendedOffer),
			Confidence:       m.Confidence,
		})
	}
	return negotiationItem{
		ID:           n.ID,
		RFQID:        n.RFQID,
		BuyerID:      n.BuyerID,
		SupplierID:   n.SupplierID,
		Status:       string(n.Status),
		CurrentOffer: n.CurrentOffer.String(),
		CounterOffer: decimalToString(n.CounterOffer),
		AgreedPrice:  decimalToString(n.AgreedPrice),
		Messages:     msgs,
		Version:      n.Version,
		CreatedAt:    formatTime(n.CreatedAt),
		UpdatedAt:    formatTime(n.UpdatedAt),
	}
}

func fromNegotiationItem(it negotiationItem) entities.Negotiation {
	msgs := make([]entities.NegotiationMessage, 0, len(it.Messages))
	for _, m := range it.Messages {
		msgs = append(msgs, entities.NegotiationMessage{
			ID:               m.ID,
			Sender:           entities.MessageSender(m.Sender),
			Message:          m.Message,
			Offer:            stringToDecimal(m.Offer),
			Timestamp:        parseTime(m.Timestamp),
			IsAISuggestion:   m.IsAISuggestion,
			RecommendedOffer: stringToDecimal(m.RecommendedOffer),
			Confidence:       m.Confidence,
		})
	}

	n := entities.Negotiation{
		ID:           it.ID,
		RFQID:        it.RFQID,
		BuyerID:      it.BuyerID,
		SupplierID:   it.SupplierID,
		Status:       entities.NegotiationStatus(it.Status),
		CounterOffer: stringToDecimal(it.CounterOffer),
		AgreedPrice:  stringToDecimal(it.AgreedPrice),
		Messages:     msgs,
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if cur := stringToDecimal(it.CurrentOffer); cur != nil {
		n.CurrentOffer = *cur
	}
	return n
}
