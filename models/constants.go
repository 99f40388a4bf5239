package models

import (
	"fmt"
	"strings"
)

// HuntType is the lifecycle state of a hunt. It is stored as a plain string
// in DynamoDB but only the values below are valid.
type HuntType string

const (
	HuntTypeCreated   HuntType = "CREATED"
	HuntTypeAccepted  HuntType = "ACCEPTED"
	HuntTypeDenied    HuntType = "DENIED"
	HuntTypeStarted   HuntType = "STARTED"
	HuntTypeStopped   HuntType = "STOPPED"
	HuntTypeCompleted HuntType = "COMPLETED"
)

// ParseHuntType converts a request string into a HuntType, case-insensitively.
func ParseHuntType(value string) (HuntType, error) {
	t := HuntType(strings.ToUpper(value))
	switch t {
	case HuntTypeCreated, HuntTypeAccepted, HuntTypeDenied,
		HuntTypeStarted, HuntTypeStopped, HuntTypeCompleted:
		return t, nil
	}
	return "", fmt.Errorf("invalid hunt type %q", value)
}

// TypeTime builds the composite sort key value, e.g. "ACCEPTED#2024-05-01T10:00:00Z".
func (t HuntType) TypeTime(timestamp string) string {
	return string(t) + "#" + timestamp
}

// TimestampAttribute returns the per-transition timestamp attribute name,
// e.g. "AcceptedAt" for ACCEPTED.
func (t HuntType) TimestampAttribute() string {
	s := string(t)
	return s[:1] + strings.ToLower(s[1:]) + "At"
}

// DynamoDB attribute names for the PlayerHunts table
const (
	AttrPlayerID            = "PlayerID"
	AttrHuntID              = "HuntID"
	AttrPlayerEmail         = "PlayerEmail"
	AttrPlayerLocations     = "PlayerLocations"
	AttrTreasureImage       = "TreasureImage"
	AttrTreasureDescription = "TreasureDescription"
	AttrTreasureLocation    = "TreasureLocation"
	AttrTriggerDistance     = "TriggerDistance"
	AttrCreatedBy           = "CreatedBy"
	AttrCreatedAt           = "CreatedAt"
	AttrCreatedYear         = "CreatedYear"
	AttrHuntType            = "HuntType"
	AttrHuntTypeTime        = "HuntTypeTime"
	AttrAcceptedAt          = "AcceptedAt"
	AttrDeniedAt            = "DeniedAt"
	AttrStartedAt           = "StartedAt"
	AttrStoppedAt           = "StoppedAt"
	AttrCompletedAt         = "CompletedAt"
)

// Secondary index names on the PlayerHunts table
const (
	CreatedAtIndexName      = "CreatedAtIndex"
	HuntTypeIndexName       = "HuntTypeIndex"
	PlayerHuntTypeIndexName = "PlayerHuntTypeIndex"
)
