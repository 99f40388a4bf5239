package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"treasurehunt_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// IndexKind identifies which secondary index a cursor belongs to; the kind
// determines which key attributes the cursor must carry to resume a query.
type IndexKind string

const (
	IndexByYear       IndexKind = "CreatedAtIndex"
	IndexByType       IndexKind = "HuntTypeIndex"
	IndexByPlayerType IndexKind = "PlayerHuntTypeIndex"
)

// cursorKeyFields lists the table primary key plus the sort attributes each
// index needs to resume. The hash attribute is included for the type index
// since DynamoDB requires the full index key in an ExclusiveStartKey.
var cursorKeyFields = map[IndexKind][]string{
	IndexByYear:       {models.AttrPlayerID, models.AttrHuntID, models.AttrCreatedYear, models.AttrCreatedAt},
	IndexByType:       {models.AttrPlayerID, models.AttrHuntID, models.AttrHuntType, models.AttrHuntTypeTime},
	IndexByPlayerType: {models.AttrPlayerID, models.AttrHuntID, models.AttrHuntTypeTime},
}

// EncodeCursor serializes a store continuation key into an opaque string for
// the client. An empty key yields an empty cursor.
func EncodeCursor(lastKey map[string]types.AttributeValue, kind IndexKind) (string, error) {
	if len(lastKey) == 0 {
		return "", nil
	}
	fields, ok := cursorKeyFields[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown index kind %q", ErrMalformedCursor, kind)
	}

	flat := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		attr, ok := lastKey[field]
		if !ok {
			return "", fmt.Errorf("%w: last evaluated key missing %s", ErrMalformedCursor, field)
		}
		var value interface{}
		if err := attributevalue.Unmarshal(attr, &value); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedCursor, err)
		}
		flat[field] = value
	}

	buf, err := json.Marshal(flat)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// DecodeCursor is the inverse of EncodeCursor. An empty cursor means "start
// from the beginning" and yields a nil start key. A cursor that cannot be
// decoded, or that lacks the key attributes the index kind requires, fails
// with ErrMalformedCursor.
func DecodeCursor(cursor string, kind IndexKind) (map[string]types.AttributeValue, error) {
	if cursor == "" {
		return nil, nil
	}
	fields, ok := cursorKeyFields[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown index kind %q", ErrMalformedCursor, kind)
	}

	buf, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}
	var flat map[string]interface{}
	if err := json.Unmarshal(buf, &flat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}

	startKey := make(map[string]types.AttributeValue, len(fields))
	for _, field := range fields {
		value, ok := flat[field]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrMalformedCursor, field)
		}
		attr, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
		}
		startKey[field] = attr
	}
	return startKey, nil
}
