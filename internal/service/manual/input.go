package manual

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

const (
	maxTitleLength = 200
	maxLinkLength  = 2000
)

// Input holds the title and link of a manual.
type Input struct {
	Title string
	Link  string
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	link := strings.TrimSpace(i.Link)
	switch {
	case link == "":
		errs = append(errs, domain.FieldError{Field: "link", Message: "required"})
	case len(link) > maxLinkLength:
		errs = append(errs, domain.FieldError{Field: "link", Message: "max 2000 characters"})
	case strings.ContainsAny(link, " \t\n"):
		errs = append(errs, domain.FieldError{Field: "link", Message: "must not contain spaces"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
