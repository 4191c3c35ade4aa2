// Package scraper provides HTTP fetching and HTML parsing for sportsbook game lines.
//
// The scraper fetches the college football listing page, selects up to a
// caller-supplied number of game blocks in document order and extracts the two
// participants plus the spread, total and moneyline text of each block. The
// selectors are tied to the page's current markup and break when it changes.
//
// Failures never reach the caller. A transport or parse failure yields an
// empty result, and a malformed game block is logged and dropped while the
// remaining blocks are still extracted.
package scraper
