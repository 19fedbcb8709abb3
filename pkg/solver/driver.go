package solver

import "github.com/ddurler/star-battle/pkg/model"

// Observer is notified of each deduction right after it has been applied
// to the grid.
type Observer func(rule *GoodRule, g *model.Grid)

// Solve repeatedly asks the rule engine for a deduction and applies it,
// until the grid is solved, no rule fires anymore, or the grid turns out
// to be inconsistent.
//
// Returns true when the grid is fully solved. A nil error with done=false
// means the rule set cannot prove further constraints on this puzzle.
func Solve(d *Descriptor, g *model.Grid, observer Observer) (bool, error) {
	for {
		rule, err := GetGoodRule(d, g)
		if err != nil {
			return false, err
		}
		if rule == nil {
			return d.IsDone(g), nil
		}
		rule.Apply(g)
		if observer != nil {
			observer(rule, g)
		}
	}
}
