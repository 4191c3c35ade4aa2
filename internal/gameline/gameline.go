package gameline

// GameLine represents the posted odds for one matchup
type GameLine struct {
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Spread     string `json:"spread"`
	Total      string `json:"total"`
	Moneyline  string `json:"moneyline"`
	Conference string `json:"conference"`
}

// New creates a GameLine and tags it with the conference of the first team
func New(team1, team2, spread, total, moneyline string) *GameLine {
	return &GameLine{
		Team1:      team1,
		Team2:      team2,
		Spread:     spread,
		Total:      total,
		Moneyline:  moneyline,
		Conference: GetConference(team1),
	}
}

// Matchup returns "<team1> vs <team2>"
func (g *GameLine) Matchup() string {
	return g.Team1 + " vs " + g.Team2
}
