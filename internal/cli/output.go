package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/cfb-gamelines/internal/gameline"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt time.Time            `json:"checked_at"`
	SourceURL string               `json:"source_url"`
	Games     []*gameline.GameLine `json:"games"`
	GameCount int                  `json:"game_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText prints one "<team1> vs <team2> | Spread: <spread>" line per game
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	for _, game := range result.Games {
		if _, err := fmt.Fprintf(w, "%s | Spread: %s\n", game.Matchup(), game.Spread); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(w, "     Total: %s\n", game.Total)
			fmt.Fprintf(w, "     Moneyline: %s\n", game.Moneyline)
			fmt.Fprintf(w, "     Conference: %s\n", game.Conference)
		}
	}
	return nil
}
