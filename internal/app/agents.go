package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourdesk/internal/domain"
)

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Company   string `json:"company"`
	Password  string `json:"password"`
}

// RegisterAgent appends a pending account. Usernames are unique across both
// agent collections, and the id comes from the shared agents ∪ pending space
// so the account keeps it once confirmed.
func (s *Service) RegisterAgent(ctx context.Context, in RegisterInput) (*domain.Document, error) {
	if in.Username == "" || in.Password == "" || in.FirstName == "" {
		return nil, fmt.Errorf("%w: username, password and first name required", domain.ErrValidation)
	}
	return s.mutate(ctx, func(doc *domain.Document) error {
		if usernameTaken(doc, in.Username) {
			return fmt.Errorf("%w: username %q already registered", domain.ErrConflict, in.Username)
		}
		doc.PendingAgents = append(doc.PendingAgents, domain.Agent{
			ID:           doc.NextAgentID(),
			Username:     in.Username,
			Password:     in.Password,
			Name:         strings.TrimSpace(in.FirstName + " " + in.LastName),
			Company:      in.Company,
			Role:         domain.RoleAgent,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
		return nil
	})
}

// ConfirmAgent moves a pending account into the confirmed agents.
func (s *Service) ConfirmAgent(ctx context.Context, id int) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i, a := range doc.PendingAgents {
			if a.ID == id {
				doc.Agents = append(doc.Agents, a)
				doc.PendingAgents = append(doc.PendingAgents[:i], doc.PendingAgents[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: pending agent %d", domain.ErrNotFound, id)
	})
}

// DeleteAgent removes the id from both agent collections. Idempotent: deleting
// an absent id is not an error.
func (s *Service) DeleteAgent(ctx context.Context, id int) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		pending := doc.PendingAgents[:0]
		for _, a := range doc.PendingAgents {
			if a.ID != id {
				pending = append(pending, a)
			}
		}
		doc.PendingAgents = pending

		agents := doc.Agents[:0]
		for _, a := range doc.Agents {
			if a.ID != id {
				agents = append(agents, a)
			}
		}
		doc.Agents = agents
		return nil
	})
}

func usernameTaken(doc *domain.Document, username string) bool {
	for _, a := range doc.Agents {
		if a.Username == username {
			return true
		}
	}
	for _, a := range doc.PendingAgents {
		if a.Username == username {
			return true
		}
	}
	return false
}
