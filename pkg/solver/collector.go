package solver

import (
	"fmt"
	"math/bits"

	"github.com/ddurler/star-battle/pkg/model"
)

// maxBitmaskUnknowns caps the bitmask enumeration; zones with more
// undetermined cells must use the recursive enumeration.
const maxBitmaskUnknowns = 32

// Collector enumerates the ways of placing the expected number of stars in
// a zone. A zone here is the cell list of a region, a line, a column or a
// span of lines or columns.
//
// Two algorithms are available:
//
//   - CollectPossibleGrids explores every star layout inside the zone by
//     bitmask and keeps the globally consistent ones.
//   - CollectRecursivePossibleGrids branches on the first plausible cell of
//     the zone (star / no star) and prunes inconsistent branches early.
//
// Both fill PossibleGrids with candidate grids in which the zone holds
// exactly nbStars stars and every previously undetermined cell of the zone
// is determined.
type Collector struct {
	desc    *Descriptor
	grid    *model.Grid
	zone    []model.Coord
	nbStars int

	// PossibleGrids receives the candidate grids.
	PossibleGrids []*model.Grid
}

// NewCollector prepares an enumeration of the given zone cells.
func NewCollector(desc *Descriptor, grid *model.Grid, zone []model.Coord, nbStars int) *Collector {
	return &Collector{
		desc:    desc,
		grid:    grid,
		zone:    zone,
		nbStars: nbStars,
	}
}

// CollectPossibleGrids enumerates star layouts by brute force: with n stars
// left to place in the m undetermined cells of the zone, every integer in
// [1, 2^m) with n bits set describes one layout. Layouts whose grid passes
// CheckBadRules are kept.
func (c *Collector) CollectPossibleGrids() {
	curNbStars := 0
	var unknownCoords []model.Coord
	for _, coord := range c.zone {
		switch c.grid.Value(coord) {
		case model.Star:
			curNbStars++
		case model.Unknown:
			unknownCoords = append(unknownCoords, coord)
		}
	}

	if curNbStars >= c.nbStars {
		// Every star of the zone is already placed, nothing to explore.
		return
	}

	nbToDoStars := c.nbStars - curNbStars
	nbUnknown := len(unknownCoords)

	if nbToDoStars > nbUnknown {
		panic("situation inattendue lors de l'examen de la zone !")
	}
	if nbUnknown > maxBitmaskUnknowns {
		panic(fmt.Sprintf("zone trop grande (%d cases inconnues max) !", maxBitmaskUnknowns))
	}

	for combination := 1; combination < 1<<nbUnknown; combination++ {
		if bits.OnesCount(uint(combination)) != nbToDoStars {
			continue
		}
		newGrid := c.grid.Clone()
		for i, coord := range unknownCoords {
			if combination&(1<<i) == 0 {
				newGrid.SetValue(coord, model.NoStar)
			} else {
				newGrid.SetValue(coord, model.Star)
			}
		}
		if CheckBadRules(c.desc, newGrid) == nil {
			c.PossibleGrids = append(c.PossibleGrids, newGrid)
		}
	}
}

// CollectRecursivePossibleGrids enumerates star layouts by branching:
// find the first cell of the zone that could hold a star, explore the
// grids with a star there, then the grids without. Branches that violate
// a rule are dropped as soon as they appear.
func (c *Collector) CollectRecursivePossibleGrids() {
	nbCurrentStars := 0
	for _, coord := range c.zone {
		if c.grid.Value(coord) == model.Star {
			nbCurrentStars++
		}
	}

	if nbCurrentStars == c.nbStars {
		// Every star of the zone is placed: the current grid is the only
		// possibility. Its remaining undetermined zone cells cannot hold a star.
		newGrid := c.grid.Clone()
		for _, coord := range c.zone {
			if newGrid.Value(coord) == model.Unknown {
				newGrid.SetValue(coord, model.NoStar)
			}
		}
		c.PossibleGrids = append(c.PossibleGrids, newGrid)
		return
	}

	coord, ok := c.firstPossibleStarCoord()
	if !ok {
		return
	}

	// Branch with a star in this cell; its neighbours cannot hold one.
	starGrid := c.grid.Clone()
	c.setStar(starGrid, coord)
	if CheckBadRules(c.desc, starGrid) == nil {
		starCollector := NewCollector(c.desc, starGrid, c.zone, c.nbStars)
		starCollector.CollectRecursivePossibleGrids()
		c.PossibleGrids = append(c.PossibleGrids, starCollector.PossibleGrids...)
	}

	// Branch without a star in this cell.
	noStarGrid := c.grid.Clone()
	noStarGrid.SetValue(coord, model.NoStar)
	noStarCollector := NewCollector(c.desc, noStarGrid, c.zone, c.nbStars)
	noStarCollector.CollectRecursivePossibleGrids()
	c.PossibleGrids = append(c.PossibleGrids, noStarCollector.PossibleGrids...)
}

// firstPossibleStarCoord returns the first undetermined cell of the zone,
// in zone order, whose neighbourhood holds no star.
func (c *Collector) firstPossibleStarCoord() (model.Coord, bool) {
	for _, coord := range c.zone {
		if c.grid.Value(coord) != model.Unknown {
			continue
		}
		if !c.desc.IsStarAdjacent(c.grid, coord) {
			return coord, true
		}
	}
	return model.Coord{}, false
}

// setStar places a star on a candidate grid and rules out a star in every
// cell around it. The pivot was chosen without a starred neighbour; finding
// one here is a bug in the search.
func (c *Collector) setStar(newGrid *model.Grid, coord model.Coord) {
	newGrid.SetValue(coord, model.Star)
	for _, adjacent := range c.desc.AdjacentCells(coord) {
		switch c.grid.Value(adjacent) {
		case model.Star:
			panic(fmt.Sprintf("bug dans l'algo !!! La case %s ne devrait pas être une étoile", adjacent))
		case model.Unknown:
			newGrid.SetValue(adjacent, model.NoStar)
		}
	}
}
