package domain

import "time"

// Tour is a production shared by every crew member.
// StagePlot and ChannelList hold document links; empty means not set.
type Tour struct {
	ID          string
	Name        string
	StagePlot   string
	ChannelList string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TourArtist is a performer or crew role attached to a tour.
type TourArtist struct {
	ID        string
	TourID    string
	Name      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
