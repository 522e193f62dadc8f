package domain

// Document is the single persisted structure holding every collection.
// The six top-level keys are the wire contract of the backing file.
type Document struct {
	Regions       []Region      `json:"regions"`
	Hotels        []Hotel       `json:"hotels"`
	Operations    []Operation   `json:"operations"`
	Reservations  []Reservation `json:"reservations"`
	Agents        []Agent       `json:"agents"`
	PendingAgents []Agent       `json:"pending_agents"`
}

type Region struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Hotel struct {
	ID                    int        `json:"id"`
	Name                  string     `json:"name"`
	RegionID              int        `json:"regionId"`
	Stars                 int        `json:"stars"`
	ExtraBedPricePerNight float64    `json:"extraBedPricePerNight"`
	RoomTypes             []RoomType `json:"roomTypes"`
	MealPlans             []MealPlan `json:"mealPlans"`
}

// RoomType and MealPlan ids are scoped to their owning hotel.
type RoomType struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	PricePerNight     float64 `json:"pricePerNight"`
	IsExtraBedAllowed bool    `json:"isExtraBedAllowed"`
}

type MealPlan struct {
	ID                     int     `json:"id"`
	Name                   string  `json:"name"`
	PricePerPersonPerNight float64 `json:"pricePerPersonPerNight"`
}

// Operation is a standalone priced add-on (transfer, tour).
type Operation struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

const (
	RoleAgent = "Agent"
	RoleAdmin = "Admin"
)

// Agent is a confirmed account; the same shape sits in pending_agents while
// awaiting administrator approval. Passwords are stored as given (see the
// security notes in DESIGN.md — not a feature, a documented defect).
type Agent struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registeredAt,omitempty"`
}
