package parser

import (
	"fmt"

	"github.com/ddurler/star-battle/pkg/model"
)

// checkRegionsConnected verifies that every region is a connected block:
// all its cells must be reachable from one another moving orthogonally
// within the region.
func (g *Grid) checkRegionsConnected() error {
	for _, region := range g.Regions() {
		if !g.regionConnected(region) {
			return fmt.Errorf("la région '%s' n'est pas un bloc consistant dans cette grille", region)
		}
	}
	return nil
}

// regionConnected flood-fills the region from its first cell and compares
// the number of reached cells with the region size.
func (g *Grid) regionConnected(region model.Region) bool {
	allCells := g.RegionCells(region)
	if len(allCells) == 0 {
		return false
	}

	toCheck := []model.Coord{allCells[0]}
	checked := make(map[model.Coord]bool)

	for len(toCheck) > 0 {
		current := toCheck[len(toCheck)-1]
		toCheck = toCheck[:len(toCheck)-1]
		if checked[current] {
			continue
		}
		checked[current] = true

		for _, adjacent := range g.orthogonalCells(current) {
			if g.CellRegion(adjacent) == region && !checked[adjacent] {
				toCheck = append(toCheck, adjacent)
			}
		}
	}

	return len(checked) == len(allCells)
}

// orthogonalCells returns the up-to-4 orthogonal neighbours of a cell.
func (g *Grid) orthogonalCells(c model.Coord) []model.Coord {
	var cells []model.Coord
	if c.Line > 0 {
		cells = append(cells, model.NewCoord(c.Line-1, c.Column))
	}
	if c.Line < g.Lines()-1 {
		cells = append(cells, model.NewCoord(c.Line+1, c.Column))
	}
	if c.Column > 0 {
		cells = append(cells, model.NewCoord(c.Line, c.Column-1))
	}
	if c.Column < g.Columns()-1 {
		cells = append(cells, model.NewCoord(c.Line, c.Column+1))
	}
	return cells
}
