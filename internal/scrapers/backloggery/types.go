package backloggery

import "fmt"

// Game is one entry of a collection listing.
type Game struct {
	Name     string
	Platform string
	Status   Status
}

func (g Game) String() string {
	return fmt.Sprintf("%s (%s): %s", g.Name, g.Platform, g.Status)
}

// Filter narrows down a collection listing, empty fields are not filtered on.
// Every field is sent unchanged with every page request.
type Filter struct {
	// Search is free text matched against game names.
	Search string
	Status Status
	// Console is the platform abbreviation, ex. "3DS".
	Console  string
	Rating   string
	Own      string
	Region   string
	Wish     string
	Alpha    string
	Comments string
}
