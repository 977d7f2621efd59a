package games

import (
	"bytes"
	"encoding/json"

	"germanbridge/internal/roster"
)

// Record is what gets stored for one game. Scores mirrors the player scores
// in roster order; it is written on create for clients that only read names.
type Record struct {
	Players []Player `json:"players"`
	Round   int      `json:"round"`
	Scores  []int    `json:"scores,omitempty"`
}

// Player accepts either a full player object or a bare name, which is how
// freshly created games list their players.
type Player struct {
	roster.Player
	nameOnly bool
}

func (p *Player) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(b), []byte(`"`)) {
		p.nameOnly = true
		return json.Unmarshal(b, &p.Name)
	}
	return json.Unmarshal(b, &p.Player)
}

func NewRecord(r roster.Roster, round int) Record {
	players := r.Players()
	rec := Record{
		Players: make([]Player, len(players)),
		Round:   round,
		Scores:  r.Scores(),
	}
	for i, p := range players {
		rec.Players[i] = Player{Player: p}
	}
	return rec
}

// normalized folds Scores into bare-name players so the stored form no
// longer depends on the name-only marker, which is not written back out.
func (rec Record) normalized() Record {
	out := rec
	out.Players = make([]Player, len(rec.Players))
	for i, p := range rec.Players {
		if p.nameOnly && i < len(rec.Scores) {
			p.Score = rec.Scores[i]
		}
		p.nameOnly = false
		out.Players[i] = p
	}
	return out
}

// Roster rebuilds the roster. Bare-name players take their score from Scores
// when one is present at the same position.
func (rec Record) Roster() roster.Roster {
	players := make([]roster.Player, len(rec.Players))
	for i, p := range rec.Players {
		players[i] = p.Player
		if p.nameOnly && i < len(rec.Scores) {
			players[i].Score = rec.Scores[i]
		}
	}
	return roster.FromPlayers(players)
}
