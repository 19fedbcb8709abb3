// Package solver implements the deductive star-battle solver core: the
// puzzle descriptor, zone navigation, the consistency checker, the zone
// enumerator, invariant extraction and the ordered deduction rules.
package solver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ddurler/star-battle/pkg/model"
	"github.com/ddurler/star-battle/pkg/parser"
)

// Descriptor is the immutable description of a puzzle being solved:
// dimensions, number of stars to place in each line, column and region,
// and the region of every cell.
//
// Cell contents live in model.Grid; a single Descriptor is shared by every
// grid derived while solving.
type Descriptor struct {
	lines   int
	columns int
	nbStars int

	// regions, sorted by ascending cell count so the rule engine examines
	// small, highly-constrained regions first.
	regions []model.Region

	// cellRegions[line][column] is the region of that cell.
	cellRegions [][]model.Region

	regionSizes map[model.Region]int
}

// NewDescriptor builds a descriptor from a parsed grid and the number of
// stars to place in each line, column and region.
//
// It panics when the dimensions or the star count make the puzzle
// impossible by construction: placing nbStars non-adjacent stars needs at
// least 2*nbStars-1 cells in every line, column and region.
func NewDescriptor(parsed *parser.Grid, nbStars int) *Descriptor {
	nbLines := parsed.Lines()
	nbColumns := parsed.Columns()
	if nbLines <= 0 {
		panic("le nombre de lignes doit être > 0")
	}
	if nbColumns <= 0 {
		panic("le nombre de colonnes doit être > 0")
	}
	if nbStars <= 0 {
		panic("le nombre d'étoiles doit être > 0")
	}

	minNbCells := 2*nbStars - 1
	if nbLines < minNbCells {
		panic(fmt.Sprintf("trop d'étoiles à placer (%d) pour une grille de %d lignes", nbStars, nbLines))
	}
	if nbColumns < minNbCells {
		panic(fmt.Sprintf("trop d'étoiles à placer (%d) pour une grille de %d colonnes", nbStars, nbColumns))
	}

	regionSizes := make(map[model.Region]int)
	regions := parsed.Regions()
	for _, region := range regions {
		nbCells := len(parsed.RegionCells(region))
		if nbCells < minNbCells {
			panic(fmt.Sprintf("trop d'étoiles à placer (%d) pour la région '%s' de %d cases dans la grille",
				nbStars, region, nbCells))
		}
		regionSizes[region] = nbCells
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regionSizes[regions[i]] < regionSizes[regions[j]]
	})

	cellRegions := make([][]model.Region, nbLines)
	for line := 0; line < nbLines; line++ {
		cellRegions[line] = make([]model.Region, nbColumns)
		for column := 0; column < nbColumns; column++ {
			cellRegions[line][column] = parsed.CellRegion(model.NewCoord(line, column))
		}
	}

	return &Descriptor{
		lines:       nbLines,
		columns:     nbColumns,
		nbStars:     nbStars,
		regions:     regions,
		cellRegions: cellRegions,
		regionSizes: regionSizes,
	}
}

// Lines returns the number of lines of the grid.
func (d *Descriptor) Lines() int {
	return d.lines
}

// Columns returns the number of columns of the grid.
func (d *Descriptor) Columns() int {
	return d.columns
}

// NbStars returns the number of stars to place in each line, column and region.
func (d *Descriptor) NbStars() int {
	return d.nbStars
}

// Regions returns the regions of the grid, sorted by ascending cell count.
func (d *Descriptor) Regions() []model.Region {
	regions := make([]model.Region, len(d.regions))
	copy(regions, d.regions)
	return regions
}

// CellRegion returns the region of the cell at the given coordinates.
func (d *Descriptor) CellRegion(c model.Coord) model.Region {
	return d.cellRegions[c.Line][c.Column]
}

// RegionCellCount returns the number of cells of a region.
func (d *Descriptor) RegionCellCount(region model.Region) int {
	return d.regionSizes[region]
}

// NewGrid builds the initial grid for this descriptor, all cells Unknown.
func (d *Descriptor) NewGrid() *model.Grid {
	return model.NewGrid(d.cellRegions)
}

// AdjacentCells returns the up-to-8 neighbours of a cell, diagonals
// included, clipped to the grid. The order is deterministic.
func (d *Descriptor) AdjacentCells(c model.Coord) []model.Coord {
	line, column := c.Line, c.Column
	var cells []model.Coord
	// North
	if line > 0 {
		cells = append(cells, model.NewCoord(line-1, column))
		// North-West
		if column > 0 {
			cells = append(cells, model.NewCoord(line-1, column-1))
		}
		// North-East
		if column < d.columns-1 {
			cells = append(cells, model.NewCoord(line-1, column+1))
		}
	}
	// West
	if column > 0 {
		cells = append(cells, model.NewCoord(line, column-1))
		// South-West
		if line < d.lines-1 {
			cells = append(cells, model.NewCoord(line+1, column-1))
		}
	}
	// South
	if line < d.lines-1 {
		cells = append(cells, model.NewCoord(line+1, column))
		// South-East
		if column < d.columns-1 {
			cells = append(cells, model.NewCoord(line+1, column+1))
		}
	}
	// East
	if column < d.columns-1 {
		cells = append(cells, model.NewCoord(line, column+1))
	}
	return cells
}

// IsStarAdjacent returns true when one of the neighbours of the cell holds a star.
func (d *Descriptor) IsStarAdjacent(g *model.Grid, c model.Coord) bool {
	for _, adjacent := range d.AdjacentCells(c) {
		if g.Value(adjacent) == model.Star {
			return true
		}
	}
	return false
}

// IsDone returns true when every cell of the grid is determined and the
// grid does not violate any star-battle rule.
func (d *Descriptor) IsDone(g *model.Grid) bool {
	for line := 0; line < d.lines; line++ {
		for column := 0; column < d.columns; column++ {
			if g.Value(model.NewCoord(line, column)) == model.Unknown {
				return false
			}
		}
	}
	return CheckBadRules(d, g) == nil
}

// Display renders the grid content for humans. With coordinates, columns
// are labelled 'A', 'B', ... and lines 1, 2, ... Each cell shows its
// region label followed by '*' (star), '?' (unknown) or '-' (no star).
func (d *Descriptor) Display(g *model.Grid, withCoordinates bool) string {
	var sb strings.Builder
	if withCoordinates {
		sb.WriteString("   ")
		for column := 0; column < d.columns; column++ {
			sb.WriteString(fmt.Sprintf(" %-2s", model.DisplayColumn(column)))
		}
		sb.WriteString("\n")
		sb.WriteString("   ")
		for column := 0; column < d.columns; column++ {
			sb.WriteString("---")
		}
		sb.WriteString("\n")
	}
	for line := 0; line < d.lines; line++ {
		if withCoordinates {
			sb.WriteString(fmt.Sprintf("%2s|", model.DisplayLine(line)))
		}
		for column := 0; column < d.columns; column++ {
			coord := model.NewCoord(line, column)
			region := d.CellRegion(coord)
			switch g.Value(coord) {
			case model.Star:
				sb.WriteString(fmt.Sprintf(" %s*", region))
			case model.NoStar:
				sb.WriteString(fmt.Sprintf(" %s-", region))
			default:
				sb.WriteString(fmt.Sprintf(" %s?", region))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
