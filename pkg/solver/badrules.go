package solver

import (
	"fmt"

	"github.com/ddurler/star-battle/pkg/model"
)

// badRuleKind discriminates the consistency violations.
type badRuleKind int

const (
	badStarAdjacent badRuleKind = iota
	badTooManyStars
	badNotEnoughStars
)

// BadRuleError reports a star-battle rule violated by a grid: two adjacent
// stars, or a zone where the star count can no longer reach exactly the
// expected number.
type BadRuleError struct {
	kind badRuleKind

	// StarAdjacent payload
	C1, C2 model.Coord

	// Zone payload for the star-count violations
	Zone Zone
}

func (e *BadRuleError) Error() string {
	switch e.kind {
	case badStarAdjacent:
		return fmt.Sprintf("Etoile %s adjacente à l'étoile %s", e.C1, e.C2)
	case badTooManyStars:
		return fmt.Sprintf("Trop d'étoiles dans '%s'", e.Zone)
	default:
		return fmt.Sprintf("Impossible de placer toutes les étoiles dans '%s'", e.Zone)
	}
}

// IsStarAdjacent reports whether the error is a pair of adjacent stars.
func (e *BadRuleError) IsStarAdjacent() bool {
	return e.kind == badStarAdjacent
}

// IsTooManyStars reports whether the error is a zone holding too many stars.
func (e *BadRuleError) IsTooManyStars() bool {
	return e.kind == badTooManyStars
}

// IsNotEnoughStars reports whether the error is a zone that cannot receive
// enough stars anymore.
func (e *BadRuleError) IsNotEnoughStars() bool {
	return e.kind == badNotEnoughStars
}

// CheckBadRules verifies that the grid violates none of the star-battle
// rules. It fails fast on the first violation found, checking star
// adjacency first, then the star counts of every region, line and column,
// in that order.
func CheckBadRules(d *Descriptor, g *model.Grid) error {
	if err := checkNoStarAdjacent(d, g); err != nil {
		return err
	}
	for _, region := range d.Regions() {
		if err := checkZone(d, g, RegionZone(region)); err != nil {
			return err
		}
	}
	for line := 0; line < d.Lines(); line++ {
		if err := checkZone(d, g, LineZone(line)); err != nil {
			return err
		}
	}
	for column := 0; column < d.Columns(); column++ {
		if err := checkZone(d, g, ColumnZone(column)); err != nil {
			return err
		}
	}
	return nil
}

// checkNoStarAdjacent scans the grid for a star with a starred neighbour.
func checkNoStarAdjacent(d *Descriptor, g *model.Grid) error {
	for _, coord := range d.Surfer(g, AllCells()) {
		if g.Value(coord) != model.Star {
			continue
		}
		for _, adjacent := range d.AdjacentCells(coord) {
			if g.Value(adjacent) == model.Star {
				return &BadRuleError{kind: badStarAdjacent, C1: coord, C2: adjacent}
			}
		}
	}
	return nil
}

// checkZone verifies the star count of one zone: at most nbStars stars,
// and enough undetermined cells left to reach nbStars.
func checkZone(d *Descriptor, g *model.Grid, zone Zone) error {
	nbStars := 0
	nbPossibleStars := 0
	for _, coord := range d.Surfer(g, zone) {
		switch g.Value(coord) {
		case model.Star:
			nbStars++
		case model.Unknown:
			nbPossibleStars++
		}
	}

	if nbStars > d.NbStars() {
		return &BadRuleError{kind: badTooManyStars, Zone: zone}
	}
	if nbStars+nbPossibleStars < d.NbStars() {
		return &BadRuleError{kind: badNotEnoughStars, Zone: zone}
	}
	return nil
}
