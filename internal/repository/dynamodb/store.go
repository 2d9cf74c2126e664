package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	awsdynamodb "github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/cloudsid/upload-logger/internal/entity"
)

// DynamoDBAPI is the subset of the SDK client used by Store.
type DynamoDBAPI interface {
	PutItemWithContext(ctx aws.Context, input *awsdynamodb.PutItemInput, opts ...request.Option) (*awsdynamodb.PutItemOutput, error)
}

type Store struct {
	api   DynamoDBAPI
	table string
}

type StoreConfig struct {
	Table string
	// Region may be empty, the session then falls back to AWS_REGION.
	Region string
	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

func New(c StoreConfig) (*Store, error) {
	cfg := aws.NewConfig()
	if c.Region != "" {
		cfg = cfg.WithRegion(c.Region)
	}
	if c.Endpoint != "" {
		cfg = cfg.WithEndpoint(c.Endpoint)
	}

	s, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("dynamodb session: %w", err)
	}

	return &Store{
		api:   awsdynamodb.New(s),
		table: c.Table,
	}, nil
}

func (s *Store) Put(ctx context.Context, meta entity.FileMetadata) error {
	item, err := dynamodbattribute.MarshalMap(meta)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	if _, err := s.api.PutItemWithContext(ctx, &awsdynamodb.PutItemInput{
		TableName: &s.table,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put item %s: %w: %w", meta.FileName, entity.ErrDependencyFailed, err)
	}

	return nil
}
