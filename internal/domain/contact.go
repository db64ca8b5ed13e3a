package domain

import "time"

// Contact is a useful phone/email contact kept by a user (venues, promoters, techs).
type Contact struct {
	ID        string
	OwnerID   string
	Name      string
	Category  string
	Phone     string
	Email     string
	Notes     string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manual is a titled link to equipment documentation.
type Manual struct {
	ID        string
	OwnerID   string
	Title     string
	Link      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
