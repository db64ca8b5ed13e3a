package auth

import (
	"net/mail"
	"slices"
	"unicode/utf8"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores bytes past 72.
	maxPasswordBytes = 72
	maxEmailLength   = 254
	maxNameLength    = 100
)

// LoginInput holds parameters for OAuth login operation.
// An empty Provider means Google.
type LoginInput struct {
	Provider string
	Code     string
}

// Validate validates the login input.
func (i LoginInput) Validate(allowedProviders []string) error {
	var errs []domain.FieldError

	if i.Provider == "" {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "required"})
	} else if !slices.Contains(allowedProviders, i.Provider) {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "unsupported provider"})
	}

	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	} else if len(i.Code) > 4096 {
		errs = append(errs, domain.FieldError{Field: "code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterInput holds parameters for password registration.
// Name is optional and defaults to the local part of the email.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	errs := validateEmail(nil, i.Email)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case utf8.RuneCountInString(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	case len(i.Password) > maxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if utf8.RuneCountInString(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for email + password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	errs := validateEmail(nil, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordBytes {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case isBlank(email):
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}
	return errs
}
