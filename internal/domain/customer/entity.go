package customer

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneIntlPattern = regexp.MustCompile(`^\+\d{10,15}$`)
	phoneDashPattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer validates the input and builds a customer record.
// requirePhone makes the phone mandatory instead of optional.
func NewCustomer(id, name, email, phone string, requirePhone bool) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if id == "" || name == "" || email == "" {
		return nil, ErrMissingField
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if phone == "" {
		if requirePhone {
			return nil, ErrMissingField
		}
	} else if !ValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	return &Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ValidPhone accepts "+" followed by 10-15 digits, or DDD-DDD-DDDD.
func ValidPhone(phone string) bool {
	return phoneIntlPattern.MatchString(phone) || phoneDashPattern.MatchString(phone)
}
