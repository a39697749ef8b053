package backloggery

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the completion status of a game in a collection.
//
// The zero value StatusAny is not a real status, it means "do not filter by
// status" when used in a Filter.
type Status int

const (
	StatusAny Status = iota
	StatusUnplayed
	StatusUnfinished
	StatusBeaten
	StatusCompleted
	StatusMastered
	// StatusNull is the status backloggery shows for games explicitly
	// marked as not applicable, ex. compilations or non-games.
	StatusNull
)

var ErrUnknownStatus = errors.New("unknown game status")

type statusInfo struct {
	name     string
	icon     string
	status   string
	unplayed string
}

// the icon is the alt text of the status image of a listing block, the
// status/unplayed pair are the query parameters the site filters by.
var statusTable = map[Status]statusInfo{
	StatusUnplayed:   {name: "unplayed", icon: "(u)", status: "", unplayed: "1"},
	StatusUnfinished: {name: "unfinished", icon: "(U)", status: "1", unplayed: "0"},
	StatusBeaten:     {name: "beaten", icon: "(B)", status: "2", unplayed: ""},
	StatusCompleted:  {name: "completed", icon: "(C)", status: "3", unplayed: ""},
	StatusMastered:   {name: "mastered", icon: "(M)", status: "4", unplayed: ""},
	StatusNull:       {name: "null", icon: "(-)", status: "5", unplayed: ""},
}

// Statuses lists every member of the closed set of statuses.
var Statuses = []Status{
	StatusUnplayed,
	StatusUnfinished,
	StatusBeaten,
	StatusCompleted,
	StatusMastered,
	StatusNull,
}

func (s Status) String() string {
	if s == StatusAny {
		return "any"
	}
	info, ok := statusTable[s]
	if !ok {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return info.name
}

// Icon returns the alt text of the status icon, it is empty for StatusAny.
func (s Status) Icon() string {
	return statusTable[s].icon
}

// QueryPair returns the values of the `status` and `unplayed` query parameters
// used to filter a listing by this status. StatusAny yields two empty values.
func (s Status) QueryPair() (status string, unplayed string) {
	info := statusTable[s]
	return info.status, info.unplayed
}

// StatusFromIcon maps the alt text of a status icon to its Status.
func StatusFromIcon(icon string) (Status, error) {
	for status, info := range statusTable {
		if info.icon == icon {
			return status, nil
		}
	}
	return StatusAny, fmt.Errorf("%w: icon %q", ErrUnknownStatus, icon)
}

// ParseStatus parses the name of a status (as returned by String), names are
// case-insensitive and "any" or an empty string yields StatusAny.
func ParseStatus(name string) (Status, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "any" {
		return StatusAny, nil
	}
	for status, info := range statusTable {
		if info.name == name {
			return status, nil
		}
	}
	return StatusAny, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}
