package database

import (
	"context"
	"errors"
	"fmt"

	appconfig "bell24h_negotiation/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client. When DynamoDBEndpoint is set (local
// dynamodb container) requests go there instead of AWS.
func ConnectDynamoDB(ctx context.Context, cfg *appconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// tableSpec describes a table keyed by "id" with string-keyed GSIs.
type tableSpec struct {
	name    string
	indexes map[string]string // index name -> partition key attribute
}

// CreateTables creates the negotiations and payments tables if missing. Meant for
// local development; production tables are provisioned outside the service.
func CreateTables(ctx context.Context, ddb *dynamodb.Client, cfg *appconfig.Config, logger *zap.Logger) error {
	specs := []tableSpec{
		{
			name: cfg.NegotiationsTable,
			indexes: map[string]string{
				"buyer_id-index":    "buyer_id",
				"supplier_id-index": "supplier_id",
			},
		},
		{
			name: cfg.PaymentsTable,
			indexes: map[string]string{
				"negotiation_id-index": "negotiation_id",
			},
		},
	}

	for _, s := range specs {
		_, err := ddb.CreateTable(ctx, createTableInput(s))
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				logger.Info("[database][dynamodb] table already exists", zap.String("table", s.name))
				continue
			}
			return fmt.Errorf("create table %s: %w", s.name, err)
		}
		logger.Info("[database][dynamodb] table created", zap.String("table", s.name))
	}
	return nil
}

func createTableInput(s tableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for name, key := range s.indexes {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(name),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(s.name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
