package app_test

import (
	"context"
	"errors"
	"testing"

	"tourdesk/internal/app"
	"tourdesk/internal/domain"
)

func registerInput(username string) app.RegisterInput {
	return app.RegisterInput{
		FirstName: "Ana",
		LastName:  "Mammadova",
		Username:  username,
		Company:   "Travel Co",
		Password:  "secret",
	}
}

func TestRegisterAgent_AppendsPendingWithSharedID(t *testing.T) {
	doc := emptyDoc()
	doc.Agents = []domain.Agent{{ID: 5, Username: "agent", Password: "password123", Role: domain.RoleAgent}}
	svc, _ := newService(doc)

	got, err := svc.RegisterAgent(context.Background(), registerInput("ana"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(got.Agents) != 1 {
		t.Fatal("register must not touch confirmed agents")
	}
	p := got.PendingAgents[0]
	if p.ID != 6 {
		t.Fatalf("id must come from the shared agent space: got %d, want 6", p.ID)
	}
	if p.Name != "Ana Mammadova" || p.Role != domain.RoleAgent || p.RegisteredAt == "" {
		t.Fatalf("unexpected pending agent: %+v", p)
	}
}

func TestRegisterAgent_RequiredFields(t *testing.T) {
	svc, _ := newService(emptyDoc())

	in := registerInput("ana")
	in.FirstName = ""
	if _, err := svc.RegisterAgent(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRegisterAgent_UsernameConflicts(t *testing.T) {
	doc := emptyDoc()
	doc.Agents = []domain.Agent{{ID: 1, Username: "agent"}}
	doc.PendingAgents = []domain.Agent{{ID: 2, Username: "waiting"}}
	svc, _ := newService(doc)
	ctx := context.Background()

	if _, err := svc.RegisterAgent(ctx, registerInput("agent")); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("confirmed username: expected ErrConflict, got %v", err)
	}
	if _, err := svc.RegisterAgent(ctx, registerInput("waiting")); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("pending username: expected ErrConflict, got %v", err)
	}
}

func TestConfirmAgent_MovesPendingToConfirmed(t *testing.T) {
	doc := emptyDoc()
	doc.PendingAgents = []domain.Agent{{ID: 3, Username: "ana", Role: domain.RoleAgent}}
	svc, _ := newService(doc)
	ctx := context.Background()

	got, err := svc.ConfirmAgent(ctx, 3)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(got.PendingAgents) != 0 || len(got.Agents) != 1 || got.Agents[0].Username != "ana" {
		t.Fatalf("unexpected state: agents %+v pending %+v", got.Agents, got.PendingAgents)
	}

	if _, err := svc.ConfirmAgent(ctx, 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("already confirmed: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAgent_RemovesFromBothAndIsIdempotent(t *testing.T) {
	doc := emptyDoc()
	doc.Agents = []domain.Agent{{ID: 1, Username: "agent"}}
	doc.PendingAgents = []domain.Agent{{ID: 1, Username: "ghost"}, {ID: 2, Username: "ana"}}
	svc, _ := newService(doc)
	ctx := context.Background()

	got, err := svc.DeleteAgent(ctx, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(got.Agents) != 0 || len(got.PendingAgents) != 1 {
		t.Fatalf("unexpected state: agents %+v pending %+v", got.Agents, got.PendingAgents)
	}

	// deleting an absent id is not an error
	if _, err := svc.DeleteAgent(ctx, 1); err != nil {
		t.Fatalf("idempotent delete: %v", err)
	}
}

func TestLogin_Outcomes(t *testing.T) {
	doc := emptyDoc()
	doc.Agents = []domain.Agent{{ID: 1, Username: "agent", Password: "password123", Name: "Primary Agent", Role: domain.RoleAgent}}
	doc.PendingAgents = []domain.Agent{{ID: 2, Username: "ana", Password: "secret"}}
	svc, _ := newService(doc)
	ctx := context.Background()

	res, err := svc.Login(ctx, "agent", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Name != "Primary Agent" || res.Role != domain.RoleAgent || res.Username != "agent" {
		t.Fatalf("unexpected payload: %+v", res)
	}

	if _, err := svc.Login(ctx, "ana", "secret"); !errors.Is(err, domain.ErrPendingApproval) {
		t.Fatalf("pending agent: expected ErrPendingApproval, got %v", err)
	}
	// pending is matched by username only, password is irrelevant until confirmed
	if _, err := svc.Login(ctx, "ana", "wrong"); !errors.Is(err, domain.ErrPendingApproval) {
		t.Fatalf("pending agent, wrong password: expected ErrPendingApproval, got %v", err)
	}
	if _, err := svc.Login(ctx, "agent", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody", "x"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown username: expected ErrInvalidCredentials, got %v", err)
	}
}
