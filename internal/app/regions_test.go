package app_test

import (
	"context"
	"errors"
	"testing"

	"tourdesk/internal/app"
	"tourdesk/internal/domain"
)

func TestCreateRegion_TrimsName(t *testing.T) {
	svc, st := newService(emptyDoc())

	doc, err := svc.CreateRegion(context.Background(), app.RegionInput{Name: "  Sheki  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(doc.Regions) != 1 || doc.Regions[0].Name != "Sheki" || doc.Regions[0].ID != 1 {
		t.Fatalf("unexpected regions: %+v", doc.Regions)
	}
	if st.persists != 1 {
		t.Fatalf("expected one persist, got %d", st.persists)
	}
}

func TestUpdateRegion_NotFound(t *testing.T) {
	svc, _ := newService(emptyDoc())

	_, err := svc.UpdateRegion(context.Background(), 7, app.RegionInput{Name: "Ganja"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRegion_CascadesToHotels(t *testing.T) {
	doc := emptyDoc()
	doc.Regions = []domain.Region{{ID: 1, Name: "Baku"}, {ID: 2, Name: "Gabala"}}
	doc.Hotels = []domain.Hotel{
		{ID: 1, Name: "A", RegionID: 2},
		{ID: 2, Name: "B", RegionID: 2},
		{ID: 3, Name: "C", RegionID: 1},
	}
	svc, _ := newService(doc)

	got, err := svc.DeleteRegion(context.Background(), 2)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(got.Regions) != 1 || got.Regions[0].ID != 1 {
		t.Fatalf("unexpected regions: %+v", got.Regions)
	}
	if len(got.Hotels) != 1 || got.Hotels[0].ID != 3 {
		t.Fatalf("cascade must remove referencing hotels: %+v", got.Hotels)
	}
}

func TestDeleteRegion_NotFound(t *testing.T) {
	svc, st := newService(emptyDoc())

	_, err := svc.DeleteRegion(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if st.persists != 0 {
		t.Fatal("failed delete must not persist")
	}
}
