package game

import (
	"fmt"
	"math"
)

// Coordinates is a barycentric position on a triangular board of a given size:
// X+Y+Z == size-1. X == 0 is side A, Y == 0 is side B and Z == 0 is side C.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func NewCoordinates(x, y, z int) Coordinates {
	return Coordinates{X: x, Y: y, Z: z}
}

// FromIndex converts a linear cell index into coordinates. Cell indices run
// row by row from the top corner, row r holding r+1 cells.
func FromIndex(index, size int) Coordinates {
	r := int((math.Sqrt(float64(8*index+1)) - 1) / 2)
	// Guard against float rounding on large boards
	for r*(r+1)/2 > index {
		r--
	}
	for (r+1)*(r+2)/2 <= index {
		r++
	}
	c := index - r*(r+1)/2
	x := size - 1 - r
	return Coordinates{X: x, Y: c, Z: size - 1 - x - c}
}

// ToIndex is the inverse of FromIndex.
func (c Coordinates) ToIndex(size int) int {
	r := size - 1 - c.X
	return r*(r+1)/2 + c.Y
}

// Valid reports whether the coordinates lie on a board of the given size.
func (c Coordinates) Valid(size int) bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 && c.X+c.Y+c.Z == size-1
}

func (c Coordinates) TouchesSideA() bool { return c.X == 0 }
func (c Coordinates) TouchesSideB() bool { return c.Y == 0 }
func (c Coordinates) TouchesSideC() bool { return c.Z == 0 }

var neighborOffsets = [6]Coordinates{
	{1, -1, 0}, {-1, 1, 0},
	{1, 0, -1}, {-1, 0, 1},
	{0, 1, -1}, {0, -1, 1},
}

// Neighbors returns the adjacent cells that lie on a board of the given size.
func (c Coordinates) Neighbors(size int) []Coordinates {
	neighbors := make([]Coordinates, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coordinates{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
		if n.Valid(size) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// NumCells is the number of cells on a board of the given size.
func NumCells(size int) int {
	return size * (size + 1) / 2
}
