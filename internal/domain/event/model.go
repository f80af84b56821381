package event

import "time"

// Event is one tournament as listed on the source site. ID is the site's
// numeric event ID and is the natural key everywhere downstream.
type Event struct {
	ID         int64
	Title      string
	Slug       string
	Region     string
	PrizePool  string
	DatesLabel string
	Status     string
	MatchCount int
	UpdatedAt  time.Time
}

// Filter narrows event listings.
type Filter struct {
	Region string
	Status string
	Limit  int
	Offset int
}
