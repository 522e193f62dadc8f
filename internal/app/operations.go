package app

import (
	"context"
	"fmt"
	"strings"

	"tourdesk/internal/domain"
)

type OperationInput struct {
	Name  string `json:"name"`
	Price any    `json:"price"`
}

func (s *Service) CreateOperation(ctx context.Context, in OperationInput) (*domain.Document, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: operation name required", domain.ErrValidation)
	}
	price := toNumber(in.Price)
	return s.mutate(ctx, func(doc *domain.Document) error {
		doc.Operations = append(doc.Operations, domain.Operation{ID: doc.NextOperationID(), Name: name, Price: price})
		return nil
	})
}

func (s *Service) UpdateOperation(ctx context.Context, id int, in OperationInput) (*domain.Document, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: operation name required", domain.ErrValidation)
	}
	price := toNumber(in.Price)
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i := range doc.Operations {
			if doc.Operations[i].ID == id {
				doc.Operations[i].Name = name
				doc.Operations[i].Price = price
				return nil
			}
		}
		return fmt.Errorf("%w: operation %d", domain.ErrNotFound, id)
	})
}

func (s *Service) DeleteOperation(ctx context.Context, id int) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i, o := range doc.Operations {
			if o.ID == id {
				doc.Operations = append(doc.Operations[:i], doc.Operations[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: operation %d", domain.ErrNotFound, id)
	})
}
