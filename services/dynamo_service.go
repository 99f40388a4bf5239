package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoService wraps the DynamoDB client with the operations this server
// uses: point reads with projections, conditional updates, and paged queries.
type DynamoService struct {
	Client *dynamodb.Client
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(region string) *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// GetItem retrieves an item, optionally projecting only the named attributes.
// A missing item is reported as ErrHuntNotFound.
func (ds *DynamoService) GetItem(
	ctx context.Context,
	tableName string,
	key map[string]types.AttributeValue,
	projection []string,
) (map[string]types.AttributeValue, error) {
	input := &dynamodb.GetItemInput{
		TableName: &tableName,
		Key:       key,
	}
	if len(projection) > 0 {
		input.ProjectionExpression = aws.String(strings.Join(projection, ","))
	}

	output, err := ds.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get item from table %q: %w", ErrStorage, tableName, err)
	}
	if output.Item == nil {
		return nil, ErrHuntNotFound
	}
	return output.Item, nil
}

// PutItem inserts a marshalled item
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item map[string]types.AttributeValue) error {
	_, err := ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to put item in table %q: %w", ErrStorage, tableName, err)
	}
	return nil
}

// UpdateItem executes an update expression, optionally guarded by a condition
// expression. A failed condition is reported as ErrConditionFailed so callers
// can distinguish a lost race from a storage failure.
func (ds *DynamoService) UpdateItem(
	ctx context.Context,
	tableName string,
	key map[string]types.AttributeValue,
	updateExpression string,
	conditionExpression string,
	expressionAttributeNames map[string]string,
	expressionAttributeValues map[string]types.AttributeValue,
) error {
	input := &dynamodb.UpdateItemInput{
		TableName:                 &tableName,
		Key:                       key,
		UpdateExpression:          &updateExpression,
		ExpressionAttributeValues: expressionAttributeValues,
	}
	if len(expressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = expressionAttributeNames
	}
	if conditionExpression != "" {
		input.ConditionExpression = &conditionExpression
	}

	_, err := ds.Client.UpdateItem(ctx, input)
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return ErrConditionFailed
		}
		return fmt.Errorf("%w: failed to update item in table %q: %w", ErrStorage, tableName, err)
	}
	return nil
}

// QueryItems executes a query and returns the page of items along with the
// store's continuation key, when one was reported
func (ds *DynamoService) QueryItems(
	ctx context.Context,
	input *dynamodb.QueryInput,
) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
	output, err := ds.Client.Query(ctx, input)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to query table %q: %w", ErrStorage, aws.ToString(input.TableName), err)
	}
	return output.Items, output.LastEvaluatedKey, nil
}
