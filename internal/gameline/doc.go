// Package gameline provides the GameLine record and conference tagging for
// college football betting lines.
//
// A GameLine holds the raw text copied from a sportsbook listing: the two
// participants, the spread, the total and the moneyline. No numeric parsing or
// normalization is applied. The conference label is a best-effort guess made by
// substring matching against a fixed list of D1 conference names, so most real
// team names resolve to "Unknown".
package gameline
