package game

// PlayerSet is a maximal group of connected cells owned by one player.
type PlayerSet struct {
	Player   PlayerID
	Size     int
	TouchesA bool
	TouchesB bool
	TouchesC bool
}

// Sides counts the distinct board sides the set touches.
func (s PlayerSet) Sides() int {
	sides := 0
	for _, touches := range []bool{s.TouchesA, s.TouchesB, s.TouchesC} {
		if touches {
			sides++
		}
	}
	return sides
}

func (s PlayerSet) isWinning() bool {
	return s.TouchesA && s.TouchesB && s.TouchesC
}

func newPlayerSet(player PlayerID, c Coordinates) PlayerSet {
	return PlayerSet{
		Player:   player,
		Size:     1,
		TouchesA: c.TouchesSideA(),
		TouchesB: c.TouchesSideB(),
		TouchesC: c.TouchesSideC(),
	}
}

func merge(a, b PlayerSet) PlayerSet {
	return PlayerSet{
		Player:   a.Player,
		Size:     a.Size + b.Size,
		TouchesA: a.TouchesA || b.TouchesA,
		TouchesB: a.TouchesB || b.TouchesB,
		TouchesC: a.TouchesC || b.TouchesC,
	}
}

// find returns the root cell of index's group, compressing the path on the way.
func (g *GameY) find(index int) int {
	root := index
	for g.parent[root] != root {
		root = g.parent[root]
	}
	for g.parent[index] != root {
		next := g.parent[index]
		g.parent[index] = root
		index = next
	}
	return root
}

// union joins the groups of two cells and returns the new root.
func (g *GameY) union(a, b int) int {
	rootA, rootB := g.find(a), g.find(b)
	if rootA == rootB {
		return rootA
	}
	// Union by size keeps the trees shallow
	if g.sets[rootA].Size < g.sets[rootB].Size {
		rootA, rootB = rootB, rootA
	}
	g.parent[rootB] = rootA
	g.sets[rootA] = merge(g.sets[rootA], g.sets[rootB])
	g.sets[rootB] = PlayerSet{}
	return rootA
}

// SetsOfPlayer returns the player's groups ordered by their root cell index.
// It only reads the union-find forest so it is safe on shared states.
func (g *GameY) SetsOfPlayer(player PlayerID) []PlayerSet {
	sets := []PlayerSet{}
	for index, owner := range g.owners {
		if owner == int(player) && g.parent[index] == index {
			sets = append(sets, g.sets[index])
		}
	}
	return sets
}
