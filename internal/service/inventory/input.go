package inventory

import (
	"strings"

	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/category"
)

// AddEntryInput holds the parameters for adding an inventory item.
type AddEntryInput struct {
	CategoryID string
	Name       string
	Number     int
}

// Validate checks all fields and collects all errors.
func (i AddEntryInput) Validate(limits config.ListsConfig) error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.CategoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if fe := category.CheckText("name", i.Name, limits.MaxTextLength); fe != nil {
		errs = append(errs, *fe)
	}
	if i.Number < 0 {
		errs = append(errs, domain.FieldError{Field: "number", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds a partial update of an inventory item.
type UpdateEntryInput struct {
	CategoryID string
	EntryID    string
	Name       *string
	Number     *int
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate(limits config.ListsConfig) error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.CategoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if strings.TrimSpace(i.EntryID) == "" {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.Name != nil {
		if fe := category.CheckText("name", *i.Name, limits.MaxTextLength); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if i.Number != nil && *i.Number < 0 {
		errs = append(errs, domain.FieldError{Field: "number", Message: "must be non-negative"})
	}
	if i.Name == nil && i.Number == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
