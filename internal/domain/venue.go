package domain

type Venue struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" validate:"required"`
	Address   string  `json:"address"`
	NumCourts int     `json:"num_courts"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Timezone is an IANA identifier, e.g. "Europe/London".
	Timezone string `json:"timezone"`
}
