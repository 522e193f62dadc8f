package app

import (
	"context"

	"tourdesk/internal/domain"
)

type LoginResult struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// Login matches the exact stored credentials against confirmed agents only.
// A username that is still pending approval gets a distinct error so the
// caller can tell "wait" from "wrong".
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range doc.Agents {
		if a.Username == username && a.Password == password {
			return &LoginResult{Name: a.Name, Role: a.Role, Username: a.Username}, nil
		}
	}
	for _, a := range doc.PendingAgents {
		if a.Username == username {
			return nil, domain.ErrPendingApproval
		}
	}
	return nil, domain.ErrInvalidCredentials
}
