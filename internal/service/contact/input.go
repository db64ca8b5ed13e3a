package contact

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

const (
	maxNameLength  = 100
	maxFieldLength = 200
	maxNotesLength = 2000
)

// ListInput narrows a contact listing. Empty fields match everything.
type ListInput struct {
	Name     string
	Category string
	City     string
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	errs = checkLen(errs, "name", &i.Name, maxNameLength)
	errs = checkLen(errs, "category", &i.Category, maxFieldLength)
	errs = checkLen(errs, "city", &i.City, maxFieldLength)
	return asError(errs)
}

// CreateInput holds the parameters for creating a contact.
// Only Name is required.
type CreateInput struct {
	Name     string
	Category string
	Phone    string
	Email    string
	Notes    string
	City     string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = checkFields(errs, &i.Name, &i.Category, &i.Phone, &i.Email, &i.Notes, &i.City)
	return asError(errs)
}

// UpdateInput holds a partial contact update.
type UpdateInput struct {
	ContactID string
	Name      *string
	Category  *string
	Phone     *string
	Email     *string
	Notes     *string
	City      *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = checkFields(errs, i.Name, i.Category, i.Phone, i.Email, i.Notes, i.City)
	if i.Name == nil && i.Category == nil && i.Phone == nil && i.Email == nil && i.Notes == nil && i.City == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	return asError(errs)
}

func checkFields(errs []domain.FieldError, name, category, phone, email, notes, city *string) []domain.FieldError {
	errs = checkLen(errs, "name", name, maxNameLength)
	errs = checkLen(errs, "category", category, maxFieldLength)
	errs = checkLen(errs, "phone", phone, maxFieldLength)
	errs = checkLen(errs, "email", email, maxFieldLength)
	errs = checkLen(errs, "notes", notes, maxNotesLength)
	errs = checkLen(errs, "city", city, maxFieldLength)
	if email != nil {
		if e := strings.TrimSpace(*email); e != "" {
			if _, err := mail.ParseAddress(e); err != nil {
				errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
			}
		}
	}
	return errs
}

func checkLen(errs []domain.FieldError, field string, value *string, maxLen int) []domain.FieldError {
	if value != nil && utf8.RuneCountInString(strings.TrimSpace(*value)) > maxLen {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}

func asError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
