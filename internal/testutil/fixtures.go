package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/teamdesk/teamdesk/internal/adapter/memory"
	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
)

// SeedFounder inserts a fresh team's admin: a member whose team id is their
// own id, mirroring what registration produces.
func SeedFounder(t *testing.T, repo *memory.MemberRepo, name string) domainmember.Member {
	t.Helper()
	m := domainmember.NewFounder(name, name+"@example.com", "x")
	created, err := repo.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("seed founder %s: %v", name, err)
	}
	return created
}

// SeedMember inserts a member with the given role onto an existing team.
func SeedMember(t *testing.T, repo *memory.MemberRepo, teamID uuid.UUID, name string, role domainmember.Role) domainmember.Member {
	t.Helper()
	m := domainmember.New(teamID, name, name+"@example.com", role, "x")
	created, err := repo.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("seed member %s: %v", name, err)
	}
	return created
}
