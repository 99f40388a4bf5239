package utils

import (
	"strconv"

	"treasurehunt_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ExtractFloat extracts a numeric attribute; the second return value reports
// whether the attribute was present and parseable
func ExtractFloat(item map[string]types.AttributeValue, field string) (float64, bool) {
	attr, ok := item[field]
	if !ok {
		return 0, false
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ExtractLocation extracts a {Latitude, Longitude} map attribute, returning
// nil when the attribute is absent or incomplete
func ExtractLocation(item map[string]types.AttributeValue, field string) *models.Location {
	attr, ok := item[field]
	if !ok {
		return nil
	}
	m, ok := attr.(*types.AttributeValueMemberM)
	if !ok {
		return nil
	}
	lat, latOK := ExtractFloat(m.Value, "Latitude")
	long, longOK := ExtractFloat(m.Value, "Longitude")
	if !latOK || !longOK {
		return nil
	}
	return &models.Location{Latitude: lat, Longitude: long}
}
