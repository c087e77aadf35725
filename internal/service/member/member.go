package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
)

var (
	ErrForbidden     = errors.New("admin role required")
	ErrEmailTaken    = errors.New("user already exists")
	ErrMissingFields = errors.New("name, email and password are required")
)

const bcryptCost = 10

// Service manages the team roster. Mutations are admin-gated; reads are open
// to any authenticated member of the team.
type Service struct {
	members portmember.Repository
}

func NewService(members portmember.Repository) *Service {
	return &Service{members: members}
}

// ListTeam returns the requester's teammates newest-first.
func (s *Service) ListTeam(ctx context.Context, requesterID uuid.UUID) ([]domainmember.Member, error) {
	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("load requester: %w", err)
	}
	team, err := s.members.ListByTeam(ctx, requester.TeamID)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return team, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domainmember.Member, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return domainmember.Member{}, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domainmember.Role
	Status   domainmember.Status
	Avatar   string
	Location string
}

// Create adds a member to the requesting admin's own team.
func (s *Service) Create(ctx context.Context, requesterID uuid.UUID, in CreateInput) (domainmember.Member, error) {
	requester, err := s.requireAdmin(ctx, requesterID)
	if err != nil {
		return domainmember.Member{}, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return domainmember.Member{}, ErrMissingFields
	}

	if _, err := s.members.GetByEmail(ctx, in.Email); err == nil {
		return domainmember.Member{}, ErrEmailTaken
	} else if !errors.Is(err, portmember.ErrNotFound) {
		return domainmember.Member{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return domainmember.Member{}, fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = domainmember.RoleMember
	}

	m := domainmember.New(requester.TeamID, in.Name, in.Email, role, string(hash))
	if in.Status != "" {
		m.Status = in.Status
	}
	m.AvatarURL = in.Avatar
	m.Location = in.Location

	created, err := s.members.Create(ctx, m)
	if err != nil {
		return domainmember.Member{}, fmt.Errorf("create member: %w", err)
	}
	return created, nil
}

// Delete removes a member of the requesting admin's team. Removing someone
// from another team is reported as not found rather than forbidden, so ids
// cannot be probed across the tenant boundary.
func (s *Service) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	requester, err := s.requireAdmin(ctx, requesterID)
	if err != nil {
		return err
	}

	target, err := s.members.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get member: %w", err)
	}
	if target.TeamID != requester.TeamID {
		return fmt.Errorf("get member: %w", portmember.ErrNotFound)
	}

	if err := s.members.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

func (s *Service) requireAdmin(ctx context.Context, requesterID uuid.UUID) (domainmember.Member, error) {
	requester, err := s.members.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, portmember.ErrNotFound) {
			return domainmember.Member{}, ErrForbidden
		}
		return domainmember.Member{}, fmt.Errorf("load requester: %w", err)
	}
	if !requester.Role.Elevated() {
		return domainmember.Member{}, ErrForbidden
	}
	return requester, nil
}
