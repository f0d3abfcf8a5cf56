package contact

// Form is the contact-form payload. All four fields are required.
type Form struct {
	Nom     string `json:"nom" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Sujet   string `json:"sujet" validate:"required"`
	Message string `json:"message" validate:"required"`
}
