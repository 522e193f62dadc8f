package app

import (
	"context"
	"fmt"

	"tourdesk/internal/domain"
)

type RoomTypeInput struct {
	ID                any    `json:"id"`
	Name              string `json:"name"`
	PricePerNight     any    `json:"pricePerNight"`
	IsExtraBedAllowed bool   `json:"isExtraBedAllowed"`
}

type MealPlanInput struct {
	ID                     any    `json:"id"`
	Name                   string `json:"name"`
	PricePerPersonPerNight any    `json:"pricePerPersonPerNight"`
}

type HotelInput struct {
	Name                  string          `json:"name"`
	RegionID              any             `json:"regionId"`
	Stars                 any             `json:"stars"`
	ExtraBedPricePerNight any             `json:"extraBedPricePerNight"`
	RoomTypes             []RoomTypeInput `json:"roomTypes"`
	MealPlans             []MealPlanInput `json:"mealPlans"`
}

// buildHotel validates the input and normalizes nested room types and meal
// plans: caller-supplied positive numeric ids are preserved, everything else
// gets its 1-based position, and any resulting duplicate is rejected rather
// than silently persisted.
func buildHotel(id int, in HotelInput) (domain.Hotel, error) {
	regionID := int(toNumber(in.RegionID))
	if in.Name == "" || regionID == 0 {
		return domain.Hotel{}, fmt.Errorf("%w: hotel name and region required", domain.ErrValidation)
	}

	roomTypes := make([]domain.RoomType, 0, len(in.RoomTypes))
	seen := make(map[int]bool, len(in.RoomTypes))
	for i, rt := range in.RoomTypes {
		rtID := nestedID(rt.ID, i)
		if seen[rtID] {
			return domain.Hotel{}, fmt.Errorf("%w: duplicate room type id %d", domain.ErrValidation, rtID)
		}
		seen[rtID] = true
		roomTypes = append(roomTypes, domain.RoomType{
			ID:                rtID,
			Name:              rt.Name,
			PricePerNight:     toNumber(rt.PricePerNight),
			IsExtraBedAllowed: rt.IsExtraBedAllowed,
		})
	}

	mealPlans := make([]domain.MealPlan, 0, len(in.MealPlans))
	seen = make(map[int]bool, len(in.MealPlans))
	for i, mp := range in.MealPlans {
		mpID := nestedID(mp.ID, i)
		if seen[mpID] {
			return domain.Hotel{}, fmt.Errorf("%w: duplicate meal plan id %d", domain.ErrValidation, mpID)
		}
		seen[mpID] = true
		mealPlans = append(mealPlans, domain.MealPlan{
			ID:                     mpID,
			Name:                   mp.Name,
			PricePerPersonPerNight: toNumber(mp.PricePerPersonPerNight),
		})
	}

	return domain.Hotel{
		ID:                    id,
		Name:                  in.Name,
		RegionID:              regionID,
		Stars:                 int(toNumber(in.Stars)),
		ExtraBedPricePerNight: toNumber(in.ExtraBedPricePerNight),
		RoomTypes:             roomTypes,
		MealPlans:             mealPlans,
	}, nil
}

func (s *Service) CreateHotel(ctx context.Context, in HotelInput) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		h, err := buildHotel(doc.NextHotelID(), in)
		if err != nil {
			return err
		}
		doc.Hotels = append(doc.Hotels, h)
		return nil
	})
}

func (s *Service) UpdateHotel(ctx context.Context, id int, in HotelInput) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i := range doc.Hotels {
			if doc.Hotels[i].ID == id {
				h, err := buildHotel(id, in)
				if err != nil {
					return err
				}
				doc.Hotels[i] = h
				return nil
			}
		}
		return fmt.Errorf("%w: hotel %d", domain.ErrNotFound, id)
	})
}

func (s *Service) DeleteHotel(ctx context.Context, id int) (*domain.Document, error) {
	return s.mutate(ctx, func(doc *domain.Document) error {
		for i, h := range doc.Hotels {
			if h.ID == id {
				doc.Hotels = append(doc.Hotels[:i], doc.Hotels[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: hotel %d", domain.ErrNotFound, id)
	})
}
