package models

// MenuImage is one image attached to a menu entry.
type MenuImage struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Category groups menus and commerces.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	URLImage string `json:"urlImage"`
}

// DietaryRestriction flags a menu entry (vegan, gluten free, ...).
type DietaryRestriction struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Menu is a single sellable menu entry of a commerce.
type Menu struct {
	ID                  int                  `json:"id"`
	CommerceID          int                  `json:"commerceId"`
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	Price               float64              `json:"price"`
	Stock               bool                 `json:"stock"`
	Image               []MenuImage          `json:"image"`
	Category            Category             `json:"category"`
	DietaryRestrictions []DietaryRestriction `json:"dietaryRestrictions"`
}

// MenuPage is the paginated shape the menu endpoints return.
type MenuPage struct {
	Content       []Menu `json:"content"`
	TotalElements int    `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	Number        int    `json:"number"`
	Size          int    `json:"size"`
}
