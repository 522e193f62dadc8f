package domain

const (
	StatusPendingAdmin        = "Pending Admin"
	StatusConfirmed           = "Confirmed"
	StatusRejected            = "Rejected"
	StatusDateChangeRequested = "Date Change Requested"
)

// ChangeRequest is a proposed check-in/check-out revision. It is non-nil only
// while the reservation status is StatusDateChangeRequested.
type ChangeRequest struct {
	NewCheckIn  string `json:"newCheckIn"`
	NewCheckOut string `json:"newCheckOut"`
}

// Reservation holds a caller-defined summary/travelers payload; both maps are
// opaque to the store except for summary.checkIn/checkOut, which an accepted
// change request overwrites.
type Reservation struct {
	ID                      int            `json:"id"`
	Date                    string         `json:"date"`
	Summary                 map[string]any `json:"summary"`
	Travelers               map[string]any `json:"travelers"`
	Status                  string         `json:"status"`
	ChangeRequest           *ChangeRequest `json:"changeRequest"`
	SubmittingAgentUsername string         `json:"submittingAgentUsername,omitempty"`
}
