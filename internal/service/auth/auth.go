package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainmember "github.com/teamdesk/teamdesk/internal/domain/member"
	portmember "github.com/teamdesk/teamdesk/internal/port/member"
	porttoken "github.com/teamdesk/teamdesk/internal/port/token"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("name, email and password are required")
)

const bcryptCost = 10

// Service handles registration, login and profile lookup. Every registrant
// founds their own team and becomes its admin; further members are added
// through the team service by that admin.
type Service struct {
	members portmember.Repository
	tokens  porttoken.Issuer
}

func NewService(members portmember.Repository, tokens porttoken.Issuer) *Service {
	return &Service{members: members, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (domainmember.Member, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return domainmember.Member{}, "", ErrMissingFields
	}

	if _, err := s.members.GetByEmail(ctx, email); err == nil {
		return domainmember.Member{}, "", ErrEmailTaken
	} else if !errors.Is(err, portmember.ErrNotFound) {
		return domainmember.Member{}, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return domainmember.Member{}, "", fmt.Errorf("hash password: %w", err)
	}

	m := domainmember.NewFounder(name, email, string(hash))
	created, err := s.members.Create(ctx, m)
	if err != nil {
		return domainmember.Member{}, "", fmt.Errorf("create member: %w", err)
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return domainmember.Member{}, "", fmt.Errorf("issue token: %w", err)
	}
	return created, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (domainmember.Member, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return domainmember.Member{}, "", ErrInvalidCredentials
	}

	m, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, portmember.ErrNotFound) {
			return domainmember.Member{}, "", ErrInvalidCredentials
		}
		return domainmember.Member{}, "", fmt.Errorf("load member: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) != nil {
		return domainmember.Member{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(m.ID)
	if err != nil {
		return domainmember.Member{}, "", fmt.Errorf("issue token: %w", err)
	}
	return m, token, nil
}

func (s *Service) Profile(ctx context.Context, id uuid.UUID) (domainmember.Member, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return domainmember.Member{}, fmt.Errorf("load profile: %w", err)
	}
	return m, nil
}
