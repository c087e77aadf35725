package member

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleMember     Role = "member"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Elevated reports whether the role may create distributions and manage the
// team roster. Role values arrive from stored documents that historically
// mixed capitalization, so the check is case-insensitive.
func (r Role) Elevated() bool {
	return strings.EqualFold(string(r), string(RoleAdmin)) || r.Super()
}

// Super reports whether the role sees across all teams.
func (r Role) Super() bool {
	return strings.EqualFold(string(r), string(RoleSuperAdmin))
}

type Status string

const (
	StatusOnline  Status = "online"
	StatusAway    Status = "away"
	StatusOffline Status = "offline"
	StatusDnd     Status = "dnd"
)

type Member struct {
	ID           uuid.UUID `json:"id"`
	TeamID       uuid.UUID `json:"team_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Location     string    `json:"location,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func New(teamID uuid.UUID, name, email string, role Role, passwordHash string) Member {
	return Member{
		ID:           uuid.New(),
		TeamID:       teamID,
		Name:         name,
		Email:        email,
		Role:         role,
		Status:       StatusOnline,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// NewFounder creates the first member of a fresh team: the registrant becomes
// the admin of a team identified by their own id.
func NewFounder(name, email, passwordHash string) Member {
	m := New(uuid.Nil, name, email, RoleAdmin, passwordHash)
	m.TeamID = m.ID
	return m
}
