// Package parser reads the text formalisation of a star-battle grid.
//
// Each useful line of the text is one line of the grid; every character is
// the region label of the corresponding cell. Lines that are empty after
// trimming, or that start with '#', ';' or '@', are comments and skipped.
// All useful lines must have the same length, and every region must be a
// connected block of orthogonally adjacent cells.
package parser

import (
	"fmt"
	"strings"

	"github.com/ddurler/star-battle/pkg/model"
)

// commentPrefixes start a comment line in a grid file.
var commentPrefixes = []rune{'#', ';', '@'}

// illegalRegionChars cannot identify a region.
var illegalRegionChars = []rune{' ', '\t', '\n', '\r'}

// Grid is the outcome of parsing: the shape of a puzzle, without cell values.
type Grid struct {
	regions [][]model.Region
}

// Parse builds a parsed grid from the text content of a grid file.
func Parse(text string) (*Grid, error) {
	return ParseLines(strings.Split(text, "\n"))
}

// ParseLines builds a parsed grid, one element per line of text.
func ParseLines(lines []string) (*Grid, error) {
	grid := &Grid{}
	for numLine, textLine := range lines {
		textLine = strings.TrimSpace(textLine)
		if textLine == "" || isComment(textLine) {
			continue
		}
		if err := grid.parseTextLine(textLine); err != nil {
			return nil, fmt.Errorf("erreur à la ligne #%d '%s': %w", numLine+1, textLine, err)
		}
	}

	if len(grid.regions) == 0 {
		return nil, fmt.Errorf("la grille n'a aucune région définie")
	}

	if err := grid.checkRegionsConnected(); err != nil {
		return nil, err
	}

	return grid, nil
}

func isComment(textLine string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(textLine, string(prefix)) {
			return true
		}
	}
	return false
}

func (g *Grid) parseTextLine(textLine string) error {
	var lineRegions []model.Region
	for _, r := range textLine {
		for _, illegal := range illegalRegionChars {
			if r == illegal {
				return fmt.Errorf("le caractère '%c' n'est pas valide pour identifier une région", r)
			}
		}
		lineRegions = append(lineRegions, model.Region(r))
	}

	if len(g.regions) > 0 && len(g.regions[0]) != len(lineRegions) {
		return fmt.Errorf("la ligne de la grille n'est pas de la même longueur")
	}

	g.regions = append(g.regions, lineRegions)
	return nil
}

// Lines returns the number of lines of the parsed grid.
func (g *Grid) Lines() int {
	return len(g.regions)
}

// Columns returns the number of columns of the parsed grid.
func (g *Grid) Columns() int {
	if len(g.regions) == 0 {
		return 0
	}
	return len(g.regions[0])
}

// CellRegion returns the region of the cell at the given coordinates.
func (g *Grid) CellRegion(c model.Coord) model.Region {
	return g.regions[c.Line][c.Column]
}

// CellRegions returns the region label of every cell, line by line.
func (g *Grid) CellRegions() [][]model.Region {
	return g.regions
}

// Regions returns the distinct regions of the grid, in first-seen row-major order.
func (g *Grid) Regions() []model.Region {
	var regions []model.Region
	seen := make(map[model.Region]bool)
	for _, line := range g.regions {
		for _, region := range line {
			if !seen[region] {
				seen[region] = true
				regions = append(regions, region)
			}
		}
	}
	return regions
}

// RegionCells returns the coordinates of every cell of a region, in row-major order.
func (g *Grid) RegionCells(region model.Region) []model.Coord {
	var cells []model.Coord
	for line, lineRegions := range g.regions {
		for column, r := range lineRegions {
			if r == region {
				cells = append(cells, model.NewCoord(line, column))
			}
		}
	}
	return cells
}
