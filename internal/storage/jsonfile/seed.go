package jsonfile

import "tourdesk/internal/domain"

const AdminUsername = "admin"

func adminAgent() domain.Agent {
	return domain.Agent{
		Username: AdminUsername,
		Password: "adminpassword",
		Name:     "Administrator",
		Company:  "System Admin",
		Role:     domain.RoleAdmin,
	}
}

// Seed builds the default document used to initialize a fresh store and to
// recover from an unreadable one. It returns a new value on every call;
// sharing one mutable seed across loads is how aliasing bugs happen.
func Seed() *domain.Document {
	admin := adminAgent()
	admin.ID = 2
	return &domain.Document{
		Regions: []domain.Region{
			{ID: 1, Name: "Baku"},
			{ID: 2, Name: "Gabala"},
			{ID: 3, Name: "Ganja"},
		},
		Hotels: []domain.Hotel{
			{
				ID:                    1,
				Name:                  "Alba Hotel",
				RegionID:              1,
				Stars:                 4,
				ExtraBedPricePerNight: 15,
				RoomTypes: []domain.RoomType{
					{ID: 1, Name: "Standard Double", PricePerNight: 50},
					{ID: 2, Name: "Deluxe Double", PricePerNight: 70},
				},
				MealPlans: []domain.MealPlan{
					{ID: 1, Name: "BB", PricePerPersonPerNight: 10},
					{ID: 2, Name: "HB", PricePerPersonPerNight: 20},
					{ID: 3, Name: "AI", PricePerPersonPerNight: 35},
				},
			},
		},
		Operations: []domain.Operation{
			{ID: 1, Name: "Airport → Hotel transfer", Price: 25},
			{ID: 2, Name: "Hotel → Airport transfer", Price: 25},
			{ID: 3, Name: "City Tour", Price: 35},
		},
		Reservations: []domain.Reservation{},
		Agents: []domain.Agent{
			{ID: 1, Username: "agent", Password: "password123", Name: "Primary Agent", Company: "Default Company", Role: domain.RoleAgent},
			admin,
		},
		PendingAgents: []domain.Agent{},
	}
}
