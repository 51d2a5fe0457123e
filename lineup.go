package formazioni

import (
	"strings"
)

// Role classifies a player's position in a lineup.
type Role string

// Roles in display order: goalkeeper first, forwards last.
const (
	RoleGoalkeeper Role = "Goalkeeper"
	RoleDefender   Role = "Defender"
	RoleMidfielder Role = "Midfielder"
	RoleForward    Role = "Forward"
)

// Roles lists all valid roles in display order.
func Roles() []Role {
	return []Role{RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward}
}

// Valid reports whether the role is one of the four known positions.
func (r Role) Valid() bool {
	switch r {
	case RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward:
		return true
	}
	return false
}

// Italian returns the Italian name of the role as published by the sources.
func (r Role) Italian() string {
	switch r {
	case RoleGoalkeeper:
		return "Portiere"
	case RoleDefender:
		return "Difensore"
	case RoleMidfielder:
		return "Centrocampista"
	case RoleForward:
		return "Attaccante"
	}
	return string(r)
}

// ParseRole maps a role string from a source page to a Role. It accepts
// English and Italian full names as well as the single-letter codes used by
// fantasy sites (P/D/C/A). Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "goalkeeper", "portiere", "p", "por":
		return RoleGoalkeeper, nil
	case "defender", "difensore", "d", "dif":
		return RoleDefender, nil
	case "midfielder", "centrocampista", "c", "cen":
		return RoleMidfielder, nil
	case "forward", "attaccante", "striker", "a", "att":
		return RoleForward, nil
	}
	return "", Errorf(EINVALID, "unknown role %q", s)
}

// Notes attached to entries by the scraper. Note remains free text; these are
// the values the built-in sources produce.
const (
	NoteStarter     = "titolare"
	NoteDoubt       = "ballottaggio"
	NoteSubstitute  = "panchina"
	NoteUnavailable = "indisponibile"
)

// LineupEntry is one scraped lineup prediction: a single player listed for a
// single match. Entries are immutable once scraped and are persisted as a
// JSON array (the knowledge-base file).
type LineupEntry struct {
	Match  string `json:"match"`
	Team   string `json:"team"`
	Player string `json:"player"`
	Role   Role   `json:"role"`
	Note   string `json:"note"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *LineupEntry) Validate() error {
	if e.Match == "" {
		return Errorf(EINVALID, "entry match required")
	}
	if e.Team == "" {
		return Errorf(EINVALID, "entry team required")
	}
	if e.Player == "" {
		return Errorf(EINVALID, "entry player required")
	}
	if !e.Role.Valid() {
		return Errorf(EINVALID, "entry role %q invalid", e.Role)
	}
	return nil
}

// Player is a named player on a team sheet. Role may be empty when the
// source does not publish it (e.g. bench players on some sites).
type Player struct {
	Name string `json:"name"`
	Role Role   `json:"role,omitempty"`
	Note string `json:"note,omitempty"`
}

// TeamSheet is one team's predicted lineup as published by a single source.
type TeamSheet struct {
	Team         string   `json:"team"`
	Formation    string   `json:"formation,omitempty"`
	Starters     []Player `json:"starters"`
	Substitutes  []string `json:"substitutes,omitempty"`
	Unavailables []string `json:"unavailables,omitempty"`
}

// Match is one fixture's predicted lineups as published by a single source.
type Match struct {
	Name   string    `json:"name"`
	Source string    `json:"source"`
	Home   TeamSheet `json:"home"`
	Away   TeamSheet `json:"away"`
}

// Validate returns an error if the match contains invalid fields.
func (m *Match) Validate() error {
	if m.Name == "" {
		return Errorf(EINVALID, "match name required")
	}
	if m.Home.Team == "" || m.Away.Team == "" {
		return Errorf(EINVALID, "match %q team names required", m.Name)
	}
	return nil
}

// MatchReport combines the views of a single fixture across sources.
// The first source is the primary one (it named the fixture).
type MatchReport struct {
	Name    string   `json:"name"`
	Sources []*Match `json:"sources"`
}

// Flatten lowers match reports to flat lineup entries, one per starter with a
// known role. Bench and unavailable players without a published role are kept
// on the team sheets (and in chunk text) but not emitted as entries. When the
// same player appears in several sources, the primary source wins.
func Flatten(reports []*MatchReport) []LineupEntry {
	var entries []LineupEntry
	seen := make(map[string]bool)

	for _, report := range reports {
		for _, match := range report.Sources {
			for _, sheet := range []TeamSheet{match.Home, match.Away} {
				for _, p := range sheet.Starters {
					if !p.Role.Valid() {
						continue
					}
					key := report.Name + "|" + sheet.Team + "|" + p.Name
					if seen[key] {
						continue
					}
					seen[key] = true

					note := p.Note
					if note == "" {
						note = NoteStarter
					}
					entries = append(entries, LineupEntry{
						Match:  report.Name,
						Team:   sheet.Team,
						Player: p.Name,
						Role:   p.Role,
						Note:   note,
					})
				}
			}
		}
	}

	return entries
}

// MatchSource parses predicted lineups out of one source's HTML.
// Implementations live in the goquery package.
type MatchSource interface {
	// Name identifies the source (e.g. "Sky Sport", "Fantacalcio").
	Name() string

	// Parse extracts predicted lineups from the page HTML.
	// Returns EINVALID if the page structure does not match expectations.
	Parse(html string) ([]*Match, error)
}

// LineupStore persists the knowledge-base file of scraped entries.
type LineupStore interface {
	// SaveEntries writes the full entry set, replacing any previous set.
	SaveEntries(entries []LineupEntry) error

	// LoadEntries reads the current entry set.
	// Returns ENOTFOUND if no knowledge base has been saved yet.
	LoadEntries() ([]LineupEntry, error)
}
