package checklist

import (
	"strings"

	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/category"
)

// AddEntryInput holds the parameters for adding a checklist item.
type AddEntryInput struct {
	CategoryID string
	Text       string
}

// Validate checks all fields and collects all errors.
func (i AddEntryInput) Validate(limits config.ListsConfig) error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.CategoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if fe := category.CheckText("text", i.Text, limits.MaxTextLength); fe != nil {
		errs = append(errs, *fe)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds a partial update of a checklist item.
type UpdateEntryInput struct {
	CategoryID string
	EntryID    string
	Text       *string
	Completed  *bool
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
	if i.Text != nil {
		if fe := category.CheckText("text", *i.Text, limits.MaxTextLength); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if i.Text == nil && i.Completed == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
