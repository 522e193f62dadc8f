package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"tourdesk/internal/adapters/observability"
	"tourdesk/internal/domain"
)

// Store persists the whole document as one JSON file. Every load parses the
// full file and every persist rewrites it; there is no finer granularity.
type Store struct{ path string }

func New(path string) *Store { return &Store{path: path} }

// Load reads the backing file. A missing file is initialized with the seed
// document. A file that exists but does not parse is left untouched: the seed
// is served instead and the failure only logged, so the operator keeps the
// corrupt content as evidence.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	start := time.Now()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			doc := Seed()
			if perr := s.Persist(ctx, doc); perr != nil {
				return nil, perr
			}
			log.Info().Str("file", s.path).Msg("document store initialized with seed data")
			observability.ObserveStore("load", nil, time.Since(start))
			return doc, nil
		}
		observability.ObserveStore("load", err, time.Since(start))
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageRead, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Error().Err(err).Str("file", s.path).Msg("document parse failed, serving seed defaults")
		observability.ObserveStore("load", err, time.Since(start))
		return Seed(), nil
	}
	heal(&doc)
	observability.ObserveStore("load", nil, time.Since(start))
	return &doc, nil
}

// Persist rewrites the backing file with the full document.
func (s *Store) Persist(ctx context.Context, doc *domain.Document) error {
	start := time.Now()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		observability.ObserveStore("persist", err, time.Since(start))
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		observability.ObserveStore("persist", err, time.Since(start))
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	observability.ObserveStore("persist", nil, time.Since(start))
	return nil
}

// heal replaces missing top-level collections with empty ones, except agents,
// which falls back to the seed agent list so the system never loses its last
// login.
func heal(doc *domain.Document) {
	if doc.Regions == nil {
		doc.Regions = []domain.Region{}
	}
	if doc.Hotels == nil {
		doc.Hotels = []domain.Hotel{}
	}
	if doc.Operations == nil {
		doc.Operations = []domain.Operation{}
	}
	if doc.Reservations == nil {
		doc.Reservations = []domain.Reservation{}
	}
	if doc.Agents == nil {
		doc.Agents = Seed().Agents
	}
	if doc.PendingAgents == nil {
		doc.PendingAgents = []domain.Agent{}
	}
}

// EnsureAdmin is a startup migration: if the confirmed agents hold no account
// named "admin", the well-known administrator record is appended with a
// freshly allocated id (never a hardcoded one that could collide) and the
// document persisted. Run once from main before serving.
func (s *Store) EnsureAdmin(ctx context.Context) error {
	doc, err := s.Load(ctx)
	if err != nil {
		return err
	}
	for _, a := range doc.Agents {
		if a.Username == AdminUsername {
			return nil
		}
	}
	admin := adminAgent()
	admin.ID = doc.NextAgentID()
	doc.Agents = append(doc.Agents, admin)
	if err := s.Persist(ctx, doc); err != nil {
		return err
	}
	log.Warn().Int("id", admin.ID).Msg("administrator account was missing, restored")
	return nil
}
