package solver

import "github.com/ddurler/star-battle/pkg/model"

// starAdjacentState tracks, across candidate grids, whether a cell always
// ends up next to a star.
type starAdjacentState int

const (
	starAdjacentInit starAdjacentState = iota
	starAdjacentAlways
	starAdjacentVariable
)

// CheckForStarAdjacents returns a SetNoStar action for every cell that is
// undetermined in the initial grid, never a star in any candidate grid,
// and adjacent to at least one star in every candidate grid. Whatever
// layout the zone ends up with, such a cell cannot hold a star.
func CheckForStarAdjacents(d *Descriptor, g *model.Grid, possibleGrids []*model.Grid) []model.Action {
	var cells []model.Coord
	var states []starAdjacentState
	for _, coord := range d.Surfer(g, AllCells()) {
		if g.Value(coord) == model.Unknown {
			cells = append(cells, coord)
			states = append(states, starAdjacentInit)
		}
	}

	for _, possible := range possibleGrids {
		for i, coord := range cells {
			// A cell holding a star in one candidate cannot be "always next
			// to a star but never one itself".
			if possible.Value(coord) == model.Star {
				states[i] = starAdjacentVariable
				continue
			}
			if states[i] == starAdjacentVariable {
				continue
			}
			if d.IsStarAdjacent(possible, coord) {
				states[i] = starAdjacentAlways
			} else {
				states[i] = starAdjacentVariable
			}
		}
	}

	var actions []model.Action
	for i, coord := range cells {
		if states[i] == starAdjacentAlways {
			actions = append(actions, model.SetNoStar(coord))
		}
	}
	return actions
}
