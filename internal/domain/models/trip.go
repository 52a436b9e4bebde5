package models

// Trip is a pilgrimage journey offered by the trust.
type Trip struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
	Platform    string `json:"platform"`
	TrainNo     string `json:"train_no"`
	TicketPrice int64  `json:"ticket_price"`
	FoodPrice   int64  `json:"food_price"`
	FoodOption  bool   `json:"food_option"`
	Notes       string `json:"notes"`
	ImageURL    string `json:"image_url"`
	Status      string `json:"status"`
}
