package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/cfb-gamelines/internal/gameline"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortNone         SortOrder = "none"
	SortByTeam       SortOrder = "team"
	SortByConference SortOrder = "conference"
)

// Valid reports whether o is a known sort order
func (o SortOrder) Valid() bool {
	switch o {
	case SortNone, SortByTeam, SortByConference:
		return true
	}
	return false
}

// sortGameLines sorts games in place. SortNone keeps document order and the
// other orders are stable, so ties keep their page position.
func sortGameLines(games []*gameline.GameLine, sortOrder SortOrder) {
	switch sortOrder {
	case SortByTeam:
		sort.SliceStable(games, func(i, j int) bool {
			return strings.ToLower(games[i].Team1) < strings.ToLower(games[j].Team1)
		})
	case SortByConference:
		sort.SliceStable(games, func(i, j int) bool {
			return compareByConference(games[i], games[j])
		})
	}
}

// compareByConference orders games by conference name with Unknown last
func compareByConference(i, j *gameline.GameLine) bool {
	unknownI := i.Conference == gameline.UnknownConference
	unknownJ := j.Conference == gameline.UnknownConference

	if unknownI != unknownJ {
		return unknownJ
	}
	return i.Conference < j.Conference
}
