package app

import (
	"context"
	"fmt"
	"time"

	"tourdesk/internal/domain"
)

type ReservationInput struct {
	Summary                 map[string]any        `json:"summary"`
	Travelers               map[string]any        `json:"travelers"`
	Status                  string                `json:"status"`
	ChangeRequest           *domain.ChangeRequest `json:"changeRequest"`
	SubmittingAgentUsername string                `json:"submittingAgentUsername"`
}

func (s *Service) CreateReservation(ctx context.Context, in ReservationInput) (*domain.Document, error) {
	// both payloads must be present; an empty object is present, only an
	// absent field (nil map after decoding) is not
	if in.Summary == nil || in.Travelers == nil {
		return nil, fmt.Errorf("%w: reservation summary and travelers required", domain.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = domain.StatusPendingAdmin
	}
	// a change request only rides along with its matching status
	cr := in.ChangeRequest
	if status != domain.StatusDateChangeRequested {
		cr = nil
	}
	return s.mutate(ctx, func(doc *domain.Document) error {
		doc.Reservations = append(doc.Reservations, domain.Reservation{
			ID:                      doc.NextReservationID(),
			Date:                    time.Now().UTC().Format(time.RFC3339),
			Summary:                 in.Summary,
			Travelers:               in.Travelers,
			Status:                  status,
			ChangeRequest:           cr,
			SubmittingAgentUsername: in.SubmittingAgentUsername,
		})
		return nil
	})
}

// UpdateReservation replaces every field except id, creation date and the
// submitting agent, which stay with the record for its lifetime.
func (s *Service) UpdateReservation(ctx context.Context, id int, in ReservationInput) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i := range doc.Reservations {
			if doc.Reservations[i].ID == id {
				prev := doc.Reservations[i]
				doc.Reservations[i] = domain.Reservation{
					ID:                      prev.ID,
					Date:                    prev.Date,
					Summary:                 in.Summary,
					Travelers:               in.Travelers,
					Status:                  in.Status,
					ChangeRequest:           in.ChangeRequest,
					SubmittingAgentUsername: prev.SubmittingAgentUsername,
				}
				return nil
			}
		}
		return fmt.Errorf("%w: reservation %d", domain.ErrNotFound, id)
	})
}

func (s *Service) SetReservationStatus(ctx context.Context, id int, status string, cr *domain.ChangeRequest) (*domain.Document, error) {
	switch status {
	case domain.StatusConfirmed, domain.StatusRejected:
		cr = nil
	case domain.StatusDateChangeRequested:
		if cr == nil || cr.NewCheckIn == "" || cr.NewCheckOut == "" {
			return nil, fmt.Errorf("%w: change request needs newCheckIn and newCheckOut", domain.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported status %q", domain.ErrValidation, status)
	}
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i := range doc.Reservations {
			if doc.Reservations[i].ID == id {
				doc.Reservations[i].Status = status
				doc.Reservations[i].ChangeRequest = cr
				return nil
			}
		}
		return fmt.Errorf("%w: reservation %d", domain.ErrNotFound, id)
	})
}

// RespondToChange resolves a pending date-change request. Accepting copies the
// proposed dates into the summary and confirms; rejecting sends the
// reservation back to the admin queue. Either way the request is cleared.
func (s *Service) RespondToChange(ctx context.Context, id int, action string) (*domain.Document, error) {
	if action != "accept" && action != "reject" {
		return nil, fmt.Errorf("%w: unsupported action %q", domain.ErrValidation, action)
	}
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i := range doc.Reservations {
			r := &doc.Reservations[i]
			if r.ID != id {
				continue
			}
			if r.Status != domain.StatusDateChangeRequested || r.ChangeRequest == nil {
				return fmt.Errorf("%w: reservation %d has no pending change request", domain.ErrConflict, id)
			}
			if action == "accept" {
				if r.Summary == nil {
					r.Summary = map[string]any{}
				}
				r.Summary["checkIn"] = r.ChangeRequest.NewCheckIn
				r.Summary["checkOut"] = r.ChangeRequest.NewCheckOut
				r.Status = domain.StatusConfirmed
			} else {
				r.Status = domain.StatusPendingAdmin
			}
			r.ChangeRequest = nil
			return nil
		}
		return fmt.Errorf("%w: reservation %d", domain.ErrNotFound, id)
	})
}

func (s *Service) DeleteReservation(ctx context.Context, id int) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i, r := range doc.Reservations {
			if r.ID == id {
				doc.Reservations = append(doc.Reservations[:i], doc.Reservations[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: reservation %d", domain.ErrNotFound, id)
	})
}
