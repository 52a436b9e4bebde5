package models

// Booking is a member's request to join a trip. One booking per
// (trip, user); the database unique key is the only dedup.
type Booking struct {
	ID          int64  `json:"id"`
	TripID      int64  `json:"trip_id"`
	UserID      string `json:"user_id"`
	SeatCount   int    `json:"seat_count"`
	AdminStatus string `json:"admin_status"`
	CreatedAt   string `json:"created_at"`
}

// Donation records a contribution; UserID is nil for anonymous or
// offline donors.
type Donation struct {
	ID            int64   `json:"id"`
	DonorName     string  `json:"donor_name"`
	UserID        *string `json:"user_id"`
	Amount        int64   `json:"amount"`
	TransactionID string  `json:"transaction_id"`
	CreatedAt     string  `json:"created_at"`
}
