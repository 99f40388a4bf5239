package services

import (
	"context"
	"fmt"
	"strconv"

	"treasurehunt_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// HuntPage is one page of a hunt listing, with the store's native
// continuation key when more results may exist
type HuntPage struct {
	Items            []models.Hunt
	LastEvaluatedKey map[string]types.AttributeValue
}

// HuntRepository is the record store for player hunts. It supports point
// reads with projections, conditional type updates, location appends, and
// range queries against the three secondary indexes (by creation year, by
// type+time, by player+type+time).
type HuntRepository interface {
	PutHunt(ctx context.Context, hunt models.Hunt) error
	GetHunt(ctx context.Context, playerID, huntID string, projection []string) (map[string]types.AttributeValue, error)

	// UpdateHuntType sets the hunt type, its composite type+time sort key,
	// and the per-transition timestamp, conditioned on the stored type still
	// equaling currentType. A failed condition yields ErrConditionFailed.
	UpdateHuntType(ctx context.Context, playerID, huntID string, newType, currentType models.HuntType, timestamp string) error

	// AppendPlayerLocation appends unconditionally; location history is
	// telemetry and is not serialized across concurrent requests.
	AppendPlayerLocation(ctx context.Context, playerID, huntID string, location models.Location) error

	QueryHuntsByYear(ctx context.Context, year int, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error)
	QueryHuntsByType(ctx context.Context, huntType models.HuntType, year int, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error)
	QueryPlayerHuntsByType(ctx context.Context, playerID string, huntType models.HuntType, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error)
}

// DynamoHuntRepository implements HuntRepository on the PlayerHunts table
type DynamoHuntRepository struct {
	Dynamo    *DynamoService
	TableName string
}

// playerHuntTypeProjections lists the attributes returned for each hunt type
// in a player-scoped listing. Completed hunts also carry the treasure fields
// so the player can revisit the find.
var playerHuntTypeProjections = map[models.HuntType][]string{
	models.HuntTypeCreated:   {models.AttrPlayerID, models.AttrHuntID, models.AttrCreatedAt, models.AttrCreatedBy},
	models.HuntTypeAccepted:  {models.AttrPlayerID, models.AttrHuntID, models.AttrAcceptedAt},
	models.HuntTypeDenied:    {models.AttrPlayerID, models.AttrHuntID, models.AttrDeniedAt},
	models.HuntTypeStarted:   {models.AttrPlayerID, models.AttrHuntID, models.AttrStartedAt},
	models.HuntTypeStopped:   {models.AttrPlayerID, models.AttrHuntID, models.AttrStoppedAt},
	models.HuntTypeCompleted: {models.AttrPlayerID, models.AttrHuntID, models.AttrCompletedAt, models.AttrTreasureImage, models.AttrTreasureDescription, models.AttrTreasureLocation},
}

func (r *DynamoHuntRepository) key(playerID, huntID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		models.AttrPlayerID: &types.AttributeValueMemberS{Value: playerID},
		models.AttrHuntID:   &types.AttributeValueMemberS{Value: huntID},
	}
}

func (r *DynamoHuntRepository) PutHunt(ctx context.Context, hunt models.Hunt) error {
	item, err := attributevalue.MarshalMap(hunt)
	if err != nil {
		return fmt.Errorf("failed to marshal hunt: %w", err)
	}
	return r.Dynamo.PutItem(ctx, r.TableName, item)
}

func (r *DynamoHuntRepository) GetHunt(ctx context.Context, playerID, huntID string, projection []string) (map[string]types.AttributeValue, error) {
	return r.Dynamo.GetItem(ctx, r.TableName, r.key(playerID, huntID), projection)
}

func (r *DynamoHuntRepository) UpdateHuntType(ctx context.Context, playerID, huntID string, newType, currentType models.HuntType, timestamp string) error {
	return r.Dynamo.UpdateItem(
		ctx,
		r.TableName,
		r.key(playerID, huntID),
		"SET #huntType = :newType, #huntTypeTime = :newTypeTime, #at = :timestamp",
		"#huntType = :currType",
		map[string]string{
			"#huntType":     models.AttrHuntType,
			"#huntTypeTime": models.AttrHuntTypeTime,
			"#at":           newType.TimestampAttribute(),
		},
		map[string]types.AttributeValue{
			":newType":     &types.AttributeValueMemberS{Value: string(newType)},
			":newTypeTime": &types.AttributeValueMemberS{Value: newType.TypeTime(timestamp)},
			":currType":    &types.AttributeValueMemberS{Value: string(currentType)},
			":timestamp":   &types.AttributeValueMemberS{Value: timestamp},
		},
	)
}

func (r *DynamoHuntRepository) AppendPlayerLocation(ctx context.Context, playerID, huntID string, location models.Location) error {
	locationAttr, err := attributevalue.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}
	return r.Dynamo.UpdateItem(
		ctx,
		r.TableName,
		r.key(playerID, huntID),
		"SET #locs = list_append(#locs, :newLoc)",
		"",
		map[string]string{"#locs": models.AttrPlayerLocations},
		map[string]types.AttributeValue{
			":newLoc": &types.AttributeValueMemberL{Value: []types.AttributeValue{locationAttr}},
		},
	)
}

func (r *DynamoHuntRepository) QueryHuntsByYear(ctx context.Context, year int, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.TableName),
		IndexName:              aws.String(models.CreatedAtIndexName),
		KeyConditionExpression: aws.String("CreatedYear = :year"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":year": &types.AttributeValueMemberN{Value: strconv.Itoa(year)},
		},
		ScanIndexForward: aws.Bool(ascending),
		Limit:            aws.Int32(limit),
	}
	return r.query(ctx, input, startKey)
}

func (r *DynamoHuntRepository) QueryHuntsByType(ctx context.Context, huntType models.HuntType, year int, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error) {
	// The year prefix matches the timestamp of the latest transition into
	// this type, not the hunt's creation year.
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.TableName),
		IndexName:              aws.String(models.HuntTypeIndexName),
		KeyConditionExpression: aws.String("HuntType = :type AND begins_with(HuntTypeTime, :typeTime)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type":     &types.AttributeValueMemberS{Value: string(huntType)},
			":typeTime": &types.AttributeValueMemberS{Value: huntType.TypeTime(strconv.Itoa(year))},
		},
		ScanIndexForward: aws.Bool(ascending),
		Limit:            aws.Int32(limit),
	}
	return r.query(ctx, input, startKey)
}

func (r *DynamoHuntRepository) QueryPlayerHuntsByType(ctx context.Context, playerID string, huntType models.HuntType, ascending bool, limit int32, startKey map[string]types.AttributeValue) (HuntPage, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.TableName),
		IndexName:              aws.String(models.PlayerHuntTypeIndexName),
		KeyConditionExpression: aws.String("PlayerID = :player AND begins_with(HuntTypeTime, :type)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":player": &types.AttributeValueMemberS{Value: playerID},
			":type":   &types.AttributeValueMemberS{Value: string(huntType)},
		},
		ProjectionExpression: aws.String(joinAttributes(playerHuntTypeProjections[huntType])),
		ScanIndexForward:     aws.Bool(ascending),
		Limit:                aws.Int32(limit),
	}
	return r.query(ctx, input, startKey)
}

func (r *DynamoHuntRepository) query(ctx context.Context, input *dynamodb.QueryInput, startKey map[string]types.AttributeValue) (HuntPage, error) {
	if len(startKey) > 0 {
		input.ExclusiveStartKey = startKey
	}

	items, lastKey, err := r.Dynamo.QueryItems(ctx, input)
	if err != nil {
		return HuntPage{}, err
	}

	var hunts []models.Hunt
	if err := attributevalue.UnmarshalListOfMaps(items, &hunts); err != nil {
		return HuntPage{}, fmt.Errorf("failed to unmarshal hunts: %w", err)
	}
	return HuntPage{Items: hunts, LastEvaluatedKey: lastKey}, nil
}

func joinAttributes(attributes []string) string {
	result := ""
	for i, attribute := range attributes {
		if i > 0 {
			result += ","
		}
		result += attribute
	}
	return result
}
