package sales

import (
	"time"

	"github.com/google/uuid"
)

type Tier string

const (
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Summary is one member's rolling sales counters. One row per member,
// upserted in place by team admins.
type Summary struct {
	MemberID  uuid.UUID `json:"member_id"`
	Today     int       `json:"today"`
	Weekly    int       `json:"weekly"`
	Monthly   int       `json:"monthly"`
	Tier      Tier      `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Defaults is the zeroed summary served for members with no stored row.
func Defaults(memberID uuid.UUID) Summary {
	return Summary{MemberID: memberID, Tier: TierSilver}
}
