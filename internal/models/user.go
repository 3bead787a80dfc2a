package models

// User is the authenticated customer profile.
type User struct {
	ID                  int      `json:"id"`
	IDUser              int      `json:"idUser"`
	Email               string   `json:"email"`
	DNI                 *string  `json:"dni"`
	Role                []string `json:"role"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	NumberPhone         *string  `json:"numberPhone"`
	PositiveBalance     float64  `json:"positiveBalance"`
	ImageProfile        *string  `json:"imageProfile"`
	PercentageCompleted float64  `json:"percentageCompleted"`
	KYC                 bool     `json:"kyc"`
	Address             Address  `json:"address"`
}

// LoginData are the credentials sent to the login endpoint.
type LoginData struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterData is the register-customer payload.
type RegisterData struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// ResetPasswordData carries the emailed reset code together with the new
// password.
type ResetPasswordData struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// UpdateData is the update-profile payload; empty fields are left untouched
// server-side.
type UpdateData struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	NumberPhone string `json:"numberPhone,omitempty"`
	DNI         string `json:"dni,omitempty"`
}

// Avatar is a selectable profile image.
type Avatar struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// TokenPair is the credential pair returned by login, register and
// refresh-token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
