package models

// Address is a delivery address of the current user. At most one address
// should carry IsDefault at a time; the backend does not strictly enforce
// this, so the client treats it as best effort.
type Address struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Streets   string `json:"streets"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Floor     string `json:"floor,omitempty"`
	Reference string `json:"reference,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// AddressData is the create-or-update payload for a delivery address.
// Latitude and longitude are sent as strings but must parse to coordinates
// within range.
type AddressData struct {
	ID        int    `json:"id,omitempty"`
	Title     string `json:"title" validate:"required"`
	Streets   string `json:"streets,omitempty"`
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
	Floor     string `json:"floor,omitempty"`
	Reference string `json:"reference,omitempty"`
	IsDefault bool   `json:"isDefault"`
}
