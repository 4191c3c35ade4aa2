package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/cfb-gamelines/internal/gameline"
	"github.com/pfrederiksen/cfb-gamelines/internal/logger"
)

const (
	GameLinesURL = "https://sportsbook.draftkings.com/leagues/football/college-football"
	UserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	Timeout         = 10 * time.Second
	DefaultMaxLines = 50
)

// Selectors for the sportsbook listing markup
const (
	GameSelector        = ".sportsbook-event-holder"
	ParticipantSelector = ".event-cell-participant"
	SpreadSelector      = ".sportsbook-outcome-cell-label"
	TotalSelector       = ".sportsbook-outcome-cell-total"
	MoneylineSelector   = ".sportsbook-outcome-moneyline"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrTeamCount        = errors.New("expected exactly 2 participants")
	ErrMissingField     = errors.New("missing field")
)

// Scraper handles fetching and parsing sportsbook game lines
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: GameLinesURL,
	}
}

// SetURL points the scraper at a different listing page
func (s *Scraper) SetURL(url string) {
	s.url = url
}

// URL returns the listing page the scraper fetches
func (s *Scraper) URL() string {
	return s.url
}

// FetchGameLines fetches the listing page and returns at most maxLines game lines
// in document order. It never fails: transport and parse errors are logged and
// produce an empty slice.
func (s *Scraper) FetchGameLines(maxLines int) []*gameline.GameLine {
	start := time.Now()
	body, err := s.fetch()
	logger.RecordTiming("scraper.fetch", time.Since(start))
	if err != nil {
		logger.IncrCounter("scraper.fetch.errors")
		logger.Error("Error fetching game lines", logger.Fields{"url": s.url}, err)
		return []*gameline.GameLine{}
	}
	defer body.Close()

	games, err := parseGameLines(body, maxLines)
	if err != nil {
		logger.IncrCounter("scraper.fetch.errors")
		logger.Error("Error reading game lines", logger.Fields{"url": s.url}, err)
		return []*gameline.GameLine{}
	}

	logger.Debug("Fetched game lines", logger.Fields{
		"url":   s.url,
		"games": len(games),
		"limit": maxLines,
	})
	return games
}

// fetch performs the GET and returns the body of a 2xx response
func (s *Scraper) fetch() (io.ReadCloser, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return resp.Body, nil
}

// parseGameLines extracts game lines from HTML. The block list is truncated to
// maxLines before validation, so skipped blocks still count against the cap.
func parseGameLines(r io.Reader, maxLines int) ([]*gameline.GameLine, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	if maxLines < 0 {
		maxLines = 0
	}

	blocks := doc.Find(GameSelector)
	if blocks.Length() > maxLines {
		blocks = blocks.Slice(0, maxLines)
	}

	games := make([]*gameline.GameLine, 0, blocks.Length())
	blocks.Each(func(i int, sel *goquery.Selection) {
		game, err := parseGame(sel)
		if err != nil {
			logger.IncrCounter("scraper.games.skipped")
			logger.Warn("Error parsing game", logger.Fields{"index": i}, err)
			return
		}
		logger.IncrCounter("scraper.games.parsed")
		games = append(games, game)
	})

	return games, nil
}

// parseGame extracts one game line from a game block
func parseGame(sel *goquery.Selection) (*gameline.GameLine, error) {
	teams := sel.Find(ParticipantSelector).Map(func(_ int, team *goquery.Selection) string {
		return strings.TrimSpace(team.Text())
	})
	if len(teams) != 2 {
		return nil, fmt.Errorf("%w: found %d", ErrTeamCount, len(teams))
	}

	spread, err := firstText(sel, SpreadSelector, "spread")
	if err != nil {
		return nil, err
	}
	total, err := firstText(sel, TotalSelector, "total")
	if err != nil {
		return nil, err
	}
	moneyline, err := firstText(sel, MoneylineSelector, "moneyline")
	if err != nil {
		return nil, err
	}

	return gameline.New(teams[0], teams[1], spread, total, moneyline), nil
}

// firstText returns the trimmed text of the first element matching selector
func firstText(sel *goquery.Selection, selector, field string) (string, error) {
	match := sel.Find(selector).First()
	if match.Length() == 0 {
		return "", fmt.Errorf("%w: %s (%s)", ErrMissingField, field, selector)
	}
	return strings.TrimSpace(match.Text()), nil
}
