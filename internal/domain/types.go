package domain

// Role values stored on profiles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Trip lifecycle status. Controls which actions the client offers.
const (
	TripUpcoming  = "Upcoming"
	TripCompleted = "Completed"
	TripCancelled = "Cancelled"
)

// Booking approval status, distinct from the trip's own lifecycle.
const (
	BookingPending  = "pending"
	BookingApproved = "approved"
	BookingRejected = "rejected"
)

// PendingAction records where an unauthenticated user was headed so the
// client can replay the destination after login.
type PendingAction struct {
	View   string `json:"view"`
	TripID int64  `json:"trip_id,omitempty"`
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (rc RequestContext) Authenticated() bool { return rc.UserID != "" }

func (rc RequestContext) IsAdmin() bool { return rc.Role == RoleAdmin }

func ValidTripStatus(s string) bool {
	return s == TripUpcoming || s == TripCompleted || s == TripCancelled
}

func ValidBookingStatus(s string) bool {
	return s == BookingPending || s == BookingApproved || s == BookingRejected
}
