package solver

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/ddurler/star-battle/pkg/model"
)

// ruleRegionCombinationsFn looks for a subset of n regions whose bounding
// box is exactly n lines high (or n columns wide). Those n regions place
// all the stars of those n lines (or columns), so every undetermined cell
// of the span that belongs to another region cannot hold a star.
func ruleRegionCombinationsFn(d *Descriptor, g *model.Grid, n int) *GoodRule {
	regions := d.Regions()
	if n > len(regions) {
		return nil
	}

	for _, indices := range combin.Combinations(len(regions), n) {
		subset := make([]model.Region, 0, n)
		for _, i := range indices {
			subset = append(subset, regions[i])
		}

		minLine, maxLine := d.Lines(), -1
		minColumn, maxColumn := d.Columns(), -1
		for _, coord := range d.Surfer(g, AllCells()) {
			if !containsRegion(subset, g.Cell(coord).Region) {
				continue
			}
			if coord.Line < minLine {
				minLine = coord.Line
			}
			if coord.Line > maxLine {
				maxLine = coord.Line
			}
			if coord.Column < minColumn {
				minColumn = coord.Column
			}
			if coord.Column > maxColumn {
				maxColumn = coord.Column
			}
		}

		if maxLine-minLine+1 == n {
			zone := LinesZone(minLine, maxLine)
			if candidates := spanOutsiders(d, g, zone, subset); len(candidates) > 0 {
				return NewZoneCombinations(subset, zone, noStarActions(candidates))
			}
		}

		if maxColumn-minColumn+1 == n {
			zone := ColumnsZone(minColumn, maxColumn)
			if candidates := spanOutsiders(d, g, zone, subset); len(candidates) > 0 {
				return NewZoneCombinations(subset, zone, noStarActions(candidates))
			}
		}
	}

	return nil
}

// spanOutsiders returns the undetermined cells of the span that do not
// belong to any region of the subset.
func spanOutsiders(d *Descriptor, g *model.Grid, zone Zone, subset []model.Region) []model.Coord {
	var candidates []model.Coord
	for _, coord := range d.Surfer(g, zone) {
		cell := g.Cell(coord)
		if cell.IsUnknown() && !containsRegion(subset, cell.Region) {
			candidates = append(candidates, coord)
		}
	}
	return candidates
}
