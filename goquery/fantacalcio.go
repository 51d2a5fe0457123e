package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/formazioni"
)

// Ensure FantacalcioSource implements formazioni.MatchSource at compile time.
var _ formazioni.MatchSource = (*FantacalcioSource)(nil)

// FantacalcioSource parses predicted lineups from the Fantacalcio
// "probabili formazioni" page, which renders each match as a pitch view.
type FantacalcioSource struct{}

// NewFantacalcioSource creates a new FantacalcioSource.
func NewFantacalcioSource() *FantacalcioSource {
	return &FantacalcioSource{}
}

// Name identifies the source.
func (s *FantacalcioSource) Name() string {
	return "Fantacalcio"
}

// Parse extracts predicted lineups from the page HTML.
// Match blocks missing team names or a pitch view (ad slots, postponed
// fixtures) are skipped; a page with no parseable match at all is EINVALID.
func (s *FantacalcioSource) Parse(html string) ([]*formazioni.Match, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, formazioni.Errorf(formazioni.EINVALID, "failed to parse HTML: %v", err)
	}

	blocks := doc.Find("li.match")
	if blocks.Length() == 0 {
		return nil, formazioni.Errorf(formazioni.EINVALID, "no match blocks found")
	}

	var matches []*formazioni.Match
	blocks.Each(func(_ int, sel *goquery.Selection) {
		home, okHome := sel.Find(".team-home .team-name meta[itemprop=name]").Attr("content")
		away, okAway := sel.Find(".team-away .team-name meta[itemprop=name]").Attr("content")
		if !okHome || !okAway || home == "" || away == "" {
			return
		}

		pitch := sel.Find(".pitch").First()
		if pitch.Length() == 0 {
			return
		}

		matches = append(matches, &formazioni.Match{
			Name:   home + " - " + away,
			Source: s.Name(),
			Home:   s.teamSheet(pitch, "team-home", home),
			Away:   s.teamSheet(pitch, "team-away", away),
		})
	})

	if len(matches) == 0 {
		return nil, formazioni.Errorf(formazioni.EINVALID, "no parseable matches found")
	}

	return matches, nil
}

func (s *FantacalcioSource) teamSheet(pitch *goquery.Selection, sideClass, team string) formazioni.TeamSheet {
	sheet := formazioni.TeamSheet{Team: team}

	side := pitch.Find("." + sideClass).First()
	if side.Length() == 0 {
		return sheet
	}

	if formation, ok := side.Attr("data-team-formation"); ok {
		sheet.Formation = formation
	}

	side.Find(".player").Each(func(_ int, p *goquery.Selection) {
		name := strings.TrimSpace(p.Find(".player-name span").First().Text())
		if name == "" {
			return
		}
		player := formazioni.Player{Name: name}
		// The pitch view tags players with single-letter position codes.
		if pos, ok := p.Attr("data-position"); ok {
			if role, err := formazioni.ParseRole(pos); err == nil {
				player.Role = role
			}
		}
		sheet.Starters = append(sheet.Starters, player)
	})

	return sheet
}
