package models

// CommerceAddress is the physical address of a commerce.
type CommerceAddress struct {
	ID         int    `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode,omitempty"`
	Latitude   string `json:"latitude,omitempty"`
	Longitude  string `json:"longitude,omitempty"`
}

// BusinessHours is the opening range of a commerce for one weekday.
type BusinessHours struct {
	ID          int    `json:"id"`
	DayOfWeek   string `json:"dayOfWeek"`
	OpeningTime []int  `json:"openingTime"`
	ClosingTime []int  `json:"closingTime"`
}

// Commerce is a restaurant or shop users can order from.
type Commerce struct {
	ID                  int             `json:"id"`
	BusinessName        string          `json:"businessName"`
	Description         string          `json:"description"`
	Cost                float64         `json:"cost"`
	CoverImage          string          `json:"coverImage"`
	Address             CommerceAddress `json:"address"`
	Distance            float64         `json:"distance"`
	Active              bool            `json:"active"`
	Email               *string         `json:"email,omitempty"`
	RangeHours          BusinessHours   `json:"rangeHours"`
	IDUser              int             `json:"idUser"`
	KYB                 bool            `json:"kyb"`
	PercentageCompleted float64         `json:"percentageCompleted"`
	PhoneNumber         string          `json:"phoneNumber"`
	ProfileImage        *string         `json:"profileImage,omitempty"`
	TaxID               string          `json:"taxId"`
	Validation          bool            `json:"validation"`
}

// CommercePage is the paginated shape of the commerce listing.
type CommercePage struct {
	Content       []Commerce `json:"content"`
	TotalElements int        `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
}
