package solver

import (
	"math"
	"sort"

	"github.com/ddurler/star-battle/pkg/model"
)

// zoneToExamine selects which zones an enumerative rule probes.
type zoneToExamine int

const (
	examineRegions zoneToExamine = iota
	examineLinesAndColumns
	examineSpans
)

// candidateZone pairs a zone with its star target and combinatorial cost.
type candidateZone struct {
	zone           Zone
	nbStars        int
	nbCombinations int
}

// rulePossibleStarsFn is the generic enumerative rule: for a family of
// zones, enumerate every way of completing each zone with its expected
// stars, and keep the cells whose value is the same in every completion.
//
// Zones are probed by ascending combinatorial cost. Among the zones that
// yield invariants, the one whose enumeration produced the fewest candidate
// grids wins: fewer possibilities make the explanation easier to follow.
//
// spanSize is only used with examineSpans and gives the number of
// consecutive lines or columns per zone; such a span must receive
// spanSize * K stars.
func rulePossibleStarsFn(d *Descriptor, g *model.Grid, examine zoneToExamine, spanSize int, recursive bool) *GoodRule {
	var zones []candidateZone
	addZone := func(zone Zone, nbStars int) {
		zones = append(zones, candidateZone{
			zone:           zone,
			nbStars:        nbStars,
			nbCombinations: combinationsCount(d, g, zone, nbStars),
		})
	}

	switch examine {
	case examineRegions:
		for _, region := range d.Regions() {
			addZone(RegionZone(region), d.NbStars())
		}
	case examineLinesAndColumns:
		for line := 0; line < d.Lines(); line++ {
			addZone(LineZone(line), d.NbStars())
		}
		for column := 0; column < d.Columns(); column++ {
			addZone(ColumnZone(column), d.NbStars())
		}
	case examineSpans:
		for line := 0; line <= d.Lines()-spanSize; line++ {
			addZone(LinesZone(line, line+spanSize-1), spanSize*d.NbStars())
		}
		for column := 0; column <= d.Columns()-spanSize; column++ {
			addZone(ColumnsZone(column, column+spanSize-1), spanSize*d.NbStars())
		}
	}

	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].nbCombinations < zones[j].nbCombinations
	})

	var bestZone Zone
	bestFound := false
	bestNbPossibleGrids := 0
	var bestActions []model.Action

	for _, candidate := range zones {
		actions, nbPossibleGrids := tryStarComplete(d, g, candidate.zone, candidate.nbStars, recursive)
		if len(actions) == 0 {
			continue
		}
		if !bestFound || nbPossibleGrids < bestNbPossibleGrids {
			bestZone = candidate.zone
			bestFound = true
			bestNbPossibleGrids = nbPossibleGrids
			bestActions = actions
		}
	}

	if !bestFound {
		return nil
	}
	return NewInvariantWithZone(bestZone, bestActions)
}

// combinationsCount estimates the number of arrangements of the missing
// stars over the undetermined cells of a zone, adjacency ignored:
// the product (unknowns)·(unknowns-1)·…·(unknowns-missing+1).
// A zone already holding its stars has nothing left to enumerate
// (math.MaxInt pushes it last); a zone without enough undetermined cells
// cannot be completed at all (0 pushes it first, the enumeration will
// just prove the contradiction or fill the forced cells).
func combinationsCount(d *Descriptor, g *model.Grid, zone Zone, nbStars int) int {
	curNbStars := d.CountInZone(g, zone, model.Star)
	if curNbStars >= nbStars {
		return math.MaxInt
	}
	nbStarsLeft := nbStars - curNbStars
	nbCells := d.CountInZone(g, zone, model.Unknown)
	if nbCells <= nbStarsLeft {
		return 0
	}
	nbCombinations := 1
	for i := 0; i < nbStarsLeft; i++ {
		nbCombinations *= nbCells
		nbCells--
	}
	return nbCombinations
}

// tryStarComplete enumerates the completions of one zone and extracts the
// forced cells: value invariants first, completed with the cells that end
// up adjacent to a star in every completion. Returns the deduped actions
// and the number of candidate grids examined.
func tryStarComplete(d *Descriptor, g *model.Grid, zone Zone, nbStars int, recursive bool) ([]model.Action, int) {
	cells := d.Surfer(g, zone)
	collector := NewCollector(d, g, cells, nbStars)
	if recursive {
		collector.CollectRecursivePossibleGrids()
	} else {
		collector.CollectPossibleGrids()
	}

	invariants := CheckForInvariants(d, g, collector.PossibleGrids)
	for _, action := range CheckForStarAdjacents(d, g, collector.PossibleGrids) {
		if !containsAction(invariants, action) {
			invariants = append(invariants, action)
		}
	}
	return invariants, len(collector.PossibleGrids)
}

func containsAction(actions []model.Action, action model.Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
