package student

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate   = validator.New()
	nameRegex  = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]{1,99}$`)
	phoneRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// SaveRequest creates a student when ID is zero, updates otherwise.
type SaveRequest struct {
	ID             uint   `json:"id"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address"`
	Gender         string `json:"gender"`
	Passport       string `json:"passport"`
	PassportExpiry string `json:"passExpiry"`
	ReferringAgent string `json:"agent"`
	MaritalStatus  string `json:"single"`
}

// Validate applies the field tags plus the name/phone formats the
// registration form enforces.
func (req *SaveRequest) Validate() string {
	if err := validate.Struct(req); err != nil {
		return "Invalid Email"
	}
	if !nameRegex.MatchString(req.Name) {
		return "Invalid Name"
	}
	if !phoneRegex.MatchString(req.Phone) {
		return "Invalid Phone Number"
	}
	return ""
}
