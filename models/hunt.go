package models

import "math"

// Location is a latitude/longitude pair in degrees
type Location struct {
	Latitude  float64 `dynamodbav:"Latitude" json:"latitude"`
	Longitude float64 `dynamodbav:"Longitude" json:"longitude"`
}

// IsValid reports whether the latitude and longitude are in range
func (l Location) IsValid() bool {
	return math.Abs(l.Latitude) <= 90 && math.Abs(l.Longitude) <= 180
}

// Hunt represents a treasure hunt assigned to a player in DynamoDB.
// PlayerID is the partition key and HuntID the sort key; HuntTypeTime is the
// "TYPE#timestamp" composite used by the type-scoped secondary indexes.
type Hunt struct {
	PlayerID            string     `dynamodbav:"PlayerID" json:"playerID"`
	HuntID              string     `dynamodbav:"HuntID" json:"huntID"`
	PlayerEmail         string     `dynamodbav:"PlayerEmail,omitempty" json:"playerEmail,omitempty"`
	PlayerLocations     []Location `dynamodbav:"PlayerLocations" json:"playerLocations,omitempty"`
	TreasureImage       string     `dynamodbav:"TreasureImage,omitempty" json:"treasureImage,omitempty"`
	TreasureDescription string     `dynamodbav:"TreasureDescription,omitempty" json:"treasureDescription,omitempty"`
	TreasureLocation    *Location  `dynamodbav:"TreasureLocation,omitempty" json:"treasureLocation,omitempty"`
	TriggerDistance     float64    `dynamodbav:"TriggerDistance,omitempty" json:"triggerDistance,omitempty"`
	CreatedBy           string     `dynamodbav:"CreatedBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt           string     `dynamodbav:"CreatedAt,omitempty" json:"createdAt,omitempty"`
	CreatedYear         int        `dynamodbav:"CreatedYear,omitempty" json:"createdYear,omitempty"`
	HuntType            HuntType   `dynamodbav:"HuntType,omitempty" json:"huntType,omitempty"`
	HuntTypeTime        string     `dynamodbav:"HuntTypeTime,omitempty" json:"huntTypeTime,omitempty"`
	AcceptedAt          string     `dynamodbav:"AcceptedAt,omitempty" json:"acceptedAt,omitempty"`
	DeniedAt            string     `dynamodbav:"DeniedAt,omitempty" json:"deniedAt,omitempty"`
	StartedAt           string     `dynamodbav:"StartedAt,omitempty" json:"startedAt,omitempty"`
	StoppedAt           string     `dynamodbav:"StoppedAt,omitempty" json:"stoppedAt,omitempty"`
	CompletedAt         string     `dynamodbav:"CompletedAt,omitempty" json:"completedAt,omitempty"`
}

// PlayerHuntsTable is the default DynamoDB table name for player hunts
const PlayerHuntsTable = "PlayerHunts"
