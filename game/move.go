package game

import "fmt"

// Movement is an action taken by a player: a Placement or a Resign.
type Movement interface {
	Mover() PlayerID
	isMovement()
}

// Placement occupies one empty cell.
type Placement struct {
	Player PlayerID
	Coords Coordinates
}

func (p Placement) Mover() PlayerID { return p.Player }
func (Placement) isMovement()       {}

func (p Placement) String() string {
	return fmt.Sprintf("%s@%s", p.Player, p.Coords)
}

// Resign concedes the game to the opponent.
type Resign struct {
	Player PlayerID
}

func (r Resign) Mover() PlayerID { return r.Player }
func (Resign) isMovement()       {}

func (r Resign) String() string {
	return fmt.Sprintf("%s resigns", r.Player)
}
