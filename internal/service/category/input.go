package category

import (
	"strings"

	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate(limits config.ListsConfig) error {
	if fe := CheckText("title", i.Title, limits.MaxTitleLength); fe != nil {
		return domain.NewValidationErrors([]domain.FieldError{*fe})
	}
	return nil
}

// RenameCategoryInput holds the parameters for renaming a category.
type RenameCategoryInput struct {
	CategoryID string
	Title      string
}

// Validate checks all fields and collects all errors.
func (i RenameCategoryInput) Validate(limits config.ListsConfig) error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.CategoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if fe := CheckText("title", i.Title, limits.MaxTitleLength); fe != nil {
		errs = append(errs, *fe)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderInput holds a category's entry ids in their new order.
type ReorderInput struct {
	CategoryID string
	EntryIDs   []string
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.CategoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.EntryIDs == nil {
		errs = append(errs, domain.FieldError{Field: "entry_ids", Message: "required"})
	}
	for _, id := range i.EntryIDs {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, domain.FieldError{Field: "entry_ids", Message: "must not contain empty ids"})
			break
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveInput moves one entry to index To.
type MoveInput struct {
	CategoryID string
	EntryID    string
	To         int
}

// Validate checks all fields and collects all errors.
func (i MoveInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.CategoryID) == "" {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if strings.TrimSpace(i.EntryID) == "" {
		errs = append(errs, domain.FieldError{Field: "entry_id", Message: "required"})
	}
	if i.To < 0 {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
