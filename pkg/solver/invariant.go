package solver

import "github.com/ddurler/star-battle/pkg/model"

// Variant is the combined observation of one cell across a collection of
// candidate grids. Folding the per-grid observations with Combine yields
// Star or NoStar exactly when the cell has the same determined value in
// every candidate, which makes that value forced.
type Variant int

const (
	// VariantInit is the fold identity: nothing observed yet.
	VariantInit Variant = iota

	// VariantStar: the cell was a star in every grid seen so far.
	VariantStar

	// VariantNoStar: the cell was star-free in every grid seen so far.
	VariantNoStar

	// VariantUnknown: the cell was undetermined in every grid seen so far.
	VariantUnknown

	// VariantVariable: the cell differs between grids.
	VariantVariable
)

// Combine merges two observations. It is commutative and associative, with
// VariantInit as identity; two different determined observations collapse
// to VariantVariable.
func (v Variant) Combine(other Variant) Variant {
	if v == VariantInit {
		return other
	}
	if other == VariantInit {
		return v
	}
	if v == other && v != VariantVariable {
		return v
	}
	return VariantVariable
}

// variantOf maps a cell value to its observation.
func variantOf(value model.CellValue) Variant {
	switch value {
	case model.Star:
		return VariantStar
	case model.NoStar:
		return VariantNoStar
	default:
		return VariantUnknown
	}
}

// CheckForInvariants folds every candidate grid over the cells that are
// undetermined in the initial grid and returns one action per cell that is
// a star in all candidates, or star-free in all candidates. A cell left
// undetermined in the candidates yields no action.
func CheckForInvariants(d *Descriptor, g *model.Grid, possibleGrids []*model.Grid) []model.Action {
	var cells []model.Coord
	var variants []Variant
	for _, coord := range d.Surfer(g, AllCells()) {
		if g.Value(coord) == model.Unknown {
			cells = append(cells, coord)
			variants = append(variants, VariantInit)
		}
	}

	for _, possible := range possibleGrids {
		for i, coord := range cells {
			variants[i] = variants[i].Combine(variantOf(possible.Value(coord)))
		}
	}

	var actions []model.Action
	for i, coord := range cells {
		switch variants[i] {
		case VariantStar:
			// The cell holds a star in every possible grid.
			actions = append(actions, model.SetStar(coord))
		case VariantNoStar:
			// The cell never holds a star in any possible grid.
			actions = append(actions, model.SetNoStar(coord))
		}
	}
	return actions
}
