package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidYEN = errors.New("invalid YEN position")

// YEN is the JSON position notation exchanged with the game service: rows of the
// triangle from the top corner separated by '/', '.' marking an empty cell.
type YEN struct {
	Size    int      `json:"size"`
	Turn    int      `json:"turn"`
	Players []string `json:"players"`
	Layout  string   `json:"layout"`
}

type stone struct {
	index  int
	player PlayerID
}

var defaultSymbols = []string{Blue.String(), Red.String()}

// ParseYEN decodes a JSON YEN document into a position.
func ParseYEN(data []byte) (*GameY, error) {
	var yen YEN
	if err := json.Unmarshal(data, &yen); err != nil {
		return nil, fmt.Errorf("failed to decode YEN: %w", err)
	}
	return FromYEN(yen)
}

// FromYEN rebuilds a position, including its groups and winner, from a YEN value.
func FromYEN(yen YEN) (*GameY, error) {
	if yen.Size < 1 {
		return nil, fmt.Errorf("size %d: %w", yen.Size, ErrInvalidYEN)
	}
	if yen.Turn < 0 || yen.Turn >= NumPlayers {
		return nil, fmt.Errorf("turn %d: %w", yen.Turn, ErrInvalidYEN)
	}
	symbols := yen.Players
	if len(symbols) == 0 {
		symbols = defaultSymbols
	}
	if len(symbols) != NumPlayers || symbols[0] == symbols[1] {
		return nil, fmt.Errorf("players %v: %w", symbols, ErrInvalidYEN)
	}

	rows := strings.Split(yen.Layout, "/")
	if len(rows) != yen.Size {
		return nil, fmt.Errorf("layout has %d rows for size %d: %w", len(rows), yen.Size, ErrInvalidYEN)
	}

	// Validate the whole layout before allocating a board of its claimed size
	stones := []stone{}
	for r, row := range rows {
		cells := []rune(row)
		if len(cells) != r+1 {
			return nil, fmt.Errorf("row %d has %d cells: %w", r, len(cells), ErrInvalidYEN)
		}
		for c, cell := range cells {
			symbol := string(cell)
			if symbol == "." {
				continue
			}
			player, ok := playerOf(symbol, symbols)
			if !ok {
				return nil, fmt.Errorf("unknown symbol %q: %w", symbol, ErrInvalidYEN)
			}
			stones = append(stones, stone{index: r*(r+1)/2 + c, player: player})
		}
	}

	g := NewGameY(yen.Size)
	for _, s := range stones {
		g.occupy(s.index, s.player)
	}

	g.turn = PlayerID(yen.Turn)
	winners := []PlayerID{}
	for p := PlayerID(0); p < NumPlayers; p++ {
		for _, set := range g.SetsOfPlayer(p) {
			if set.isWinning() {
				winners = append(winners, p)
				break
			}
		}
	}
	switch {
	case len(winners) > 1:
		return nil, fmt.Errorf("both players connect all sides: %w", ErrInvalidYEN)
	case len(winners) == 1:
		g.finish(winners[0], true)
	case g.moves == len(g.owners):
		g.finish(0, false)
	}
	return g, nil
}

func playerOf(symbol string, symbols []string) (PlayerID, bool) {
	for i, s := range symbols {
		if s == symbol {
			return PlayerID(i), true
		}
	}
	return 0, false
}

// YEN returns the position in YEN notation.
func (g *GameY) YEN() YEN {
	return YEN{
		Size:    g.size,
		Turn:    int(g.turn),
		Players: append([]string{}, defaultSymbols...),
		Layout:  g.String(),
	}
}

func (g *GameY) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.YEN())
}
