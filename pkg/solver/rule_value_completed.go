package solver

import "github.com/ddurler/star-battle/pkg/model"

// ruleValueCompletedFn looks for obvious zone completions in every region,
// line and column:
//   - a zone already holding all its stars forces its remaining cells to NoStar;
//   - a zone with exactly as many undetermined cells as missing stars forces
//     those cells to Star.
func ruleValueCompletedFn(d *Descriptor, g *model.Grid) *GoodRule {
	var zones []Zone
	for _, region := range d.Regions() {
		zones = append(zones, RegionZone(region))
	}
	for line := 0; line < d.Lines(); line++ {
		zones = append(zones, LineZone(line))
	}
	for column := 0; column < d.Columns(); column++ {
		zones = append(zones, ColumnZone(column))
	}

	for _, zone := range zones {
		if rule := tryValueCompleted(d, g, zone, d.NbStars()); rule != nil {
			return rule
		}
	}
	return nil
}

// tryValueCompleted checks one zone for an obvious completion.
func tryValueCompleted(d *Descriptor, g *model.Grid, zone Zone, nbStars int) *GoodRule {
	curNbStars := 0
	var unknownCoords []model.Coord
	for _, coord := range d.Surfer(g, zone) {
		switch g.Value(coord) {
		case model.Star:
			curNbStars++
		case model.Unknown:
			unknownCoords = append(unknownCoords, coord)
		}
	}

	if len(unknownCoords) == 0 {
		return nil
	}

	if curNbStars == nbStars {
		actions := make([]model.Action, 0, len(unknownCoords))
		for _, coord := range unknownCoords {
			actions = append(actions, model.SetNoStar(coord))
		}
		return NewZoneNoStarCompleted(zone, actions)
	}

	if len(unknownCoords) == nbStars-curNbStars {
		actions := make([]model.Action, 0, len(unknownCoords))
		for _, coord := range unknownCoords {
			actions = append(actions, model.SetStar(coord))
		}
		return NewZoneStarCompleted(zone, actions)
	}

	return nil
}
