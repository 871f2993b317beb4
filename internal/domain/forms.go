package domain

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ContactForm is a contact page submission. Phone is optional.
type ContactForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

func (f *ContactForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Email) == "" ||
		strings.TrimSpace(f.Subject) == "" ||
		strings.TrimSpace(f.Message) == "" {
		return errors.New("Missing required fields")
	}
	if !ValidEmail(f.Email) {
		return errors.New("Invalid email format")
	}
	return nil
}

// DealershipForm is a dealership enquiry. Message is optional.
type DealershipForm struct {
	Name     string `json:"name" form:"name"`
	Phone    string `json:"phone" form:"phone"`
	Email    string `json:"email" form:"email"`
	Location string `json:"location" form:"location"`
	Message  string `json:"message" form:"message"`
}

func (f *DealershipForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Phone) == "" ||
		strings.TrimSpace(f.Email) == "" ||
		strings.TrimSpace(f.Location) == "" {
		return errors.New("Missing required fields")
	}
	if !ValidEmail(f.Email) {
		return errors.New("Invalid email format")
	}
	return nil
}
