package app

import (
	"context"
	"fmt"
	"strings"

	"tourdesk/internal/domain"
)

type RegionInput struct {
	Name string `json:"name"`
}

func (s *Service) CreateRegion(ctx context.Context, in RegionInput) (*domain.Document, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: region name required", domain.ErrValidation)
	}
	return s.mutate(ctx, func(doc *domain.Document) error {
		doc.Regions = append(doc.Regions, domain.Region{ID: doc.NextRegionID(), Name: name})
		return nil
	})
}

func (s *Service) UpdateRegion(ctx context.Context, id int, in RegionInput) (*domain.Document, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: region name required", domain.ErrValidation)
	}
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i := range doc.Regions {
			if doc.Regions[i].ID == id {
				doc.Regions[i].Name = name
				return nil
			}
		}
		return fmt.Errorf("%w: region %d", domain.ErrNotFound, id)
	})
}

// DeleteRegion removes the region and cascades to every hotel that references
// it. This is the only cross-collection cascade in the system.
func (s *Service) DeleteRegion(ctx context.Context, id int) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		idx := -1
		for i, r := range doc.Regions {
			if r.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: region %d", domain.ErrNotFound, id)
		}
		doc.Regions = append(doc.Regions[:idx], doc.Regions[idx+1:]...)

		hotels := make([]domain.Hotel, 0, len(doc.Hotels))
		for _, h := range doc.Hotels {
			if h.RegionID != id {
				hotels = append(hotels, h)
			}
		}
		doc.Hotels = hotels
		return nil
	})
}
