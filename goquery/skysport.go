// Package goquery provides HTML parsers for the supported lineup sources.
package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/formazioni"
)

// skyModelSelector is the custom element carrying the page's data model as a
// JSON attribute. Sky Sport embeds the full predicted-lineup dataset there.
const skyModelSelector = "ld-football-scores-competition-predicted-lineups"

// Ensure SkySportSource implements formazioni.MatchSource at compile time.
var _ formazioni.MatchSource = (*SkySportSource)(nil)

// SkySportSource parses predicted lineups from the Sky Sport
// "probabili formazioni" page.
type SkySportSource struct{}

// NewSkySportSource creates a new SkySportSource.
func NewSkySportSource() *SkySportSource {
	return &SkySportSource{}
}

// Name identifies the source.
func (s *SkySportSource) Name() string {
	return "Sky Sport"
}

// skyModel mirrors the JSON embedded in the page's model attribute.
type skyModel struct {
	MatchList []skyMatch `json:"matchList"`
}

type skyMatch struct {
	Home skyTeam `json:"home"`
	Away skyTeam `json:"away"`
}

type skyTeam struct {
	Name       string        `json:"name"`
	Formation  string        `json:"formation"`
	PlayerList skyPlayerList `json:"playerList"`
}

type skyPlayerList struct {
	StartingLineup []skyPlayer `json:"startingLineup"`
	Substitutes    []skyNamed  `json:"substitutes"`
	Unavailables   []skyNamed  `json:"unavailables"`
}

type skyPlayer struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Role    string `json:"role"`
}

type skyNamed struct {
	Fullname string `json:"fullname"`
}

// Parse extracts predicted lineups from the page HTML.
func (s *SkySportSource) Parse(html string) ([]*formazioni.Match, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, formazioni.Errorf(formazioni.EINVALID, "failed to parse HTML: %v", err)
	}

	raw, ok := doc.Find(skyModelSelector).First().Attr("model")
	if !ok || raw == "" {
		return nil, formazioni.Errorf(formazioni.EINVALID, "predicted lineups container not found")
	}

	var model skyModel
	if err := json.Unmarshal([]byte(raw), &model); err != nil {
		return nil, formazioni.Errorf(formazioni.EINVALID, "failed to decode lineups model: %v", err)
	}

	matches := make([]*formazioni.Match, 0, len(model.MatchList))
	for _, m := range model.MatchList {
		if m.Home.Name == "" || m.Away.Name == "" {
			continue
		}
		matches = append(matches, &formazioni.Match{
			Name:   m.Home.Name + " - " + m.Away.Name,
			Source: s.Name(),
			Home:   s.teamSheet(m.Home),
			Away:   s.teamSheet(m.Away),
		})
	}

	return matches, nil
}

func (s *SkySportSource) teamSheet(team skyTeam) formazioni.TeamSheet {
	sheet := formazioni.TeamSheet{
		Team:      team.Name,
		Formation: team.Formation,
	}

	for _, p := range team.PlayerList.StartingLineup {
		name := strings.TrimSpace(p.Name + " " + p.Surname)
		if name == "" {
			continue
		}
		player := formazioni.Player{Name: name}
		// Unknown role strings leave the role empty rather than dropping
		// the player; the team sheet still lists them.
		if role, err := formazioni.ParseRole(p.Role); err == nil {
			player.Role = role
		}
		sheet.Starters = append(sheet.Starters, player)
	}

	for _, p := range team.PlayerList.Substitutes {
		if name := strings.TrimSpace(p.Fullname); name != "" {
			sheet.Substitutes = append(sheet.Substitutes, name)
		}
	}
	for _, p := range team.PlayerList.Unavailables {
		if name := strings.TrimSpace(p.Fullname); name != "" {
			sheet.Unavailables = append(sheet.Unavailables, name)
		}
	}

	return sheet
}
