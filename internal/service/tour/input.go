package tour

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// CreateTourInput holds the parameters for creating a tour.
type CreateTourInput struct {
	Name        string
	StagePlot   string
	ChannelList string
}

// Validate checks all fields and collects all errors.
func (i CreateTourInput) Validate() error {
	var errs []domain.FieldError
	errs = checkName(errs, "name", i.Name)
	errs = checkLink(errs, "stage_plot", i.StagePlot)
	errs = checkLink(errs, "channel_list", i.ChannelList)
	return asError(errs)
}

// UpdateTourInput holds a partial tour update.
type UpdateTourInput struct {
	TourID      string
	Name        *string
	StagePlot   *string
	ChannelList *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTourInput) Validate() error {
	var errs []domain.FieldError
	if i.TourID == "" {
		errs = append(errs, domain.FieldError{Field: "tour_id", Message: "required"})
	}
	if i.Name != nil {
		errs = checkName(errs, "name", *i.Name)
	}
	if i.StagePlot != nil {
		errs = checkLink(errs, "stage_plot", *i.StagePlot)
	}
	if i.ChannelList != nil {
		errs = checkLink(errs, "channel_list", *i.ChannelList)
	}
	if i.Name == nil && i.StagePlot == nil && i.ChannelList == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	return asError(errs)
}

// AddArtistInput holds the parameters for adding an artist to a tour.
type AddArtistInput struct {
	TourID string
	Name   string
	Role   string
}

// Validate checks all fields and collects all errors.
func (i AddArtistInput) Validate() error {
	var errs []domain.FieldError
	if i.TourID == "" {
		errs = append(errs, domain.FieldError{Field: "tour_id", Message: "required"})
	}
	errs = checkName(errs, "name", i.Name)
	errs = checkName(errs, "role", i.Role)
	return asError(errs)
}

// UpdateArtistInput holds a partial artist update.
type UpdateArtistInput struct {
	ArtistID string
	Name     *string
	Role     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateArtistInput) Validate() error {
	var errs []domain.FieldError
	if i.ArtistID == "" {
		errs = append(errs, domain.FieldError{Field: "artist_id", Message: "required"})
	}
	if i.Name != nil {
		errs = checkName(errs, "name", *i.Name)
	}
	if i.Role != nil {
		errs = checkName(errs, "role", *i.Role)
	}
	if i.Name == nil && i.Role == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	return asError(errs)
}

func checkName(errs []domain.FieldError, field, value string) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	return errs
}

// checkLink accepts an empty value or an absolute http(s) URL.
func checkLink(errs []domain.FieldError, field, value string) []domain.FieldError {
	value = trimLink(value)
	if value == "" {
		return errs
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return append(errs, domain.FieldError{Field: field, Message: "must be an http(s) URL"})
	}
	return errs
}

func trimLink(s string) string { return strings.TrimSpace(s) }

func asError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
