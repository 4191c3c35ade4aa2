package gameline

import "strings"

// UnknownConference is returned when no conference name matches
const UnknownConference = "Unknown"

// D1Conferences lists the conference names checked by GetConference, in match order
var D1Conferences = []string{
	"ACC", "Big Ten", "Big 12", "Pac-12", "SEC",
	"American Athletic", "Conference USA",
	"Mid-American", "Mountain West", "Sun Belt",
}

// GetConference returns the first conference in D1Conferences whose name appears
// in teamName, ignoring case. This is not a roster lookup: a team is only tagged
// when its display name literally contains a conference name.
func GetConference(teamName string) string {
	name := strings.ToLower(teamName)
	for _, conference := range D1Conferences {
		if strings.Contains(name, strings.ToLower(conference)) {
			return conference
		}
	}
	return UnknownConference
}
