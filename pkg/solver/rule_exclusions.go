package solver

import "github.com/ddurler/star-battle/pkg/model"

// ruleRegionExclusionsFn looks for a span of n consecutive lines (then n
// consecutive columns) whose undetermined cells belong to at most n
// regions. All the stars of those regions must then live inside the span,
// so every undetermined cell of those regions outside the span cannot hold
// a star.
//
// Spans already holding a star are skipped; the rule only reasons about
// spans whose stars are entirely unplaced.
func ruleRegionExclusionsFn(d *Descriptor, g *model.Grid, n int) *GoodRule {
	for line := 0; line <= d.Lines()-n; line++ {
		zone := LinesZone(line, line+n-1)
		if regions, candidates := spanExclusions(d, g, n, zone); len(candidates) > 0 {
			return NewZoneExclusions(regions, zone, noStarActions(candidates))
		}
	}
	for column := 0; column <= d.Columns()-n; column++ {
		zone := ColumnsZone(column, column+n-1)
		if regions, candidates := spanExclusions(d, g, n, zone); len(candidates) > 0 {
			return NewZoneExclusions(regions, zone, noStarActions(candidates))
		}
	}
	return nil
}

// spanExclusions counts the distinct regions of the undetermined cells of
// the span. With at most n of them, it returns those regions and their
// undetermined cells outside the span.
func spanExclusions(d *Descriptor, g *model.Grid, n int, zone Zone) ([]model.Region, []model.Coord) {
	spanCells := d.Surfer(g, zone)
	inSpan := make(map[model.Coord]bool, len(spanCells))

	var regions []model.Region
	for _, coord := range spanCells {
		inSpan[coord] = true
		switch g.Value(coord) {
		case model.Star:
			return nil, nil
		case model.NoStar:
			// Already determined: whatever its region, the rule still holds.
			continue
		}
		region := g.Cell(coord).Region
		if !containsRegion(regions, region) {
			regions = append(regions, region)
			if len(regions) > n {
				return nil, nil
			}
		}
	}

	var candidates []model.Coord
	for _, coord := range d.Surfer(g, AllCells()) {
		if inSpan[coord] {
			continue
		}
		cell := g.Cell(coord)
		if cell.IsUnknown() && containsRegion(regions, cell.Region) {
			candidates = append(candidates, coord)
		}
	}
	return regions, candidates
}

func containsRegion(regions []model.Region, region model.Region) bool {
	for _, r := range regions {
		if r == region {
			return true
		}
	}
	return false
}

func noStarActions(coords []model.Coord) []model.Action {
	actions := make([]model.Action, 0, len(coords))
	for _, coord := range coords {
		actions = append(actions, model.SetNoStar(coord))
	}
	return actions
}
