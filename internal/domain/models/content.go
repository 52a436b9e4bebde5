package models

import "encoding/json"

// GalleryImage links media to a completed trip. JSON casing follows the
// legacy client contract.
type GalleryImage struct {
	ID       int64  `json:"id"`
	TripID   int64  `json:"tripId"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
}

// Testimonial is shown in the rotating home-page carousel.
type Testimonial struct {
	ID             int64  `json:"id"`
	AuthorName     string `json:"author_name"`
	AuthorLocation string `json:"author_location"`
	AuthorImageURL string `json:"author_image_url"`
	Message        string `json:"message"`
	CreatedAt      string `json:"created_at"`
}

// TeamMember is listed on the Our Team page, ordered by DisplayOrder.
// The backing table is optional; its absence hides the feature.
type TeamMember struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Responsibility string `json:"responsibility"`
	ImageURL       string `json:"image_url"`
	DisplayOrder   int    `json:"display_order"`
}

// ConfigRow is one key/value pair of site configuration. Value is raw
// JSON; shape validation is the consumer's problem.
type ConfigRow struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}
