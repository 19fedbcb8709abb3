package solver

import "github.com/ddurler/star-battle/pkg/model"

// ruleFn probes the grid for one kind of deduction.
type ruleFn func(d *Descriptor, g *model.Grid) *GoodRule

// goodRules is the ordered deduction list. Cheap local rules come first,
// then the structural region rules and the enumerative rules, interleaved
// by increasing cost. The order is part of the solver's contract: it
// shapes which explanation a human reads for a given grid.
var goodRules = []ruleFn{
	// Cells around a placed star
	ruleNoStarAdjacentToStarFn,
	// Obvious zone completions
	ruleValueCompletedFn,
	// Single region confined to / covering one line or column
	func(d *Descriptor, g *model.Grid) *GoodRule { return ruleRegionExclusionsFn(d, g, 1) },
	func(d *Descriptor, g *model.Grid) *GoodRule { return ruleRegionCombinationsFn(d, g, 1) },
	// Star layouts inside each region, by bitmask
	func(d *Descriptor, g *model.Grid) *GoodRule { return rulePossibleStarsFn(d, g, examineRegions, 0, false) },
	// Pairs of regions over two lines or columns
	func(d *Descriptor, g *model.Grid) *GoodRule { return ruleRegionExclusionsFn(d, g, 2) },
	func(d *Descriptor, g *model.Grid) *GoodRule { return ruleRegionCombinationsFn(d, g, 2) },
	// Star layouts inside each region, recursively
	func(d *Descriptor, g *model.Grid) *GoodRule { return rulePossibleStarsFn(d, g, examineRegions, 0, true) },
	// Triplets of regions over three lines or columns
	func(d *Descriptor, g *model.Grid) *GoodRule { return ruleRegionExclusionsFn(d, g, 3) },
	func(d *Descriptor, g *model.Grid) *GoodRule { return ruleRegionCombinationsFn(d, g, 3) },
	// Star layouts over each line and each column
	func(d *Descriptor, g *model.Grid) *GoodRule {
		return rulePossibleStarsFn(d, g, examineLinesAndColumns, 0, true)
	},
	// Quadruplets of regions over four lines or columns
	func(d *Descriptor, g *model.Grid) *GoodRule { return ruleRegionExclusionsFn(d, g, 4) },
	func(d *Descriptor, g *model.Grid) *GoodRule { return ruleRegionCombinationsFn(d, g, 4) },
	// Star layouts over growing spans of lines or columns
	func(d *Descriptor, g *model.Grid) *GoodRule { return rulePossibleStarsFn(d, g, examineSpans, 2, true) },
	func(d *Descriptor, g *model.Grid) *GoodRule { return rulePossibleStarsFn(d, g, examineSpans, 3, true) },
	func(d *Descriptor, g *model.Grid) *GoodRule { return rulePossibleStarsFn(d, g, examineSpans, 4, true) },
}

// GetGoodRule looks for the next deduction applicable to the grid.
//
// The grid is first checked for consistency; a violation is returned as a
// *BadRuleError. A fully determined, consistent grid yields (nil, nil), as
// does a grid on which no rule fires.
func GetGoodRule(d *Descriptor, g *model.Grid) (*GoodRule, error) {
	if err := CheckBadRules(d, g); err != nil {
		return nil, err
	}

	if d.IsDone(g) {
		return nil, nil
	}

	for _, rule := range goodRules {
		if goodRule := rule(d, g); goodRule != nil {
			return goodRule, nil
		}
	}

	return nil, nil
}
