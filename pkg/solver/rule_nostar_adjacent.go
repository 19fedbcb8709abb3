package solver

import "github.com/ddurler/star-battle/pkg/model"

// ruleNoStarAdjacentToStarFn looks for a star with undetermined neighbours.
// Those neighbours cannot hold a star.
func ruleNoStarAdjacentToStarFn(d *Descriptor, g *model.Grid) *GoodRule {
	for _, coord := range d.Surfer(g, AllCells()) {
		if g.Value(coord) != model.Star {
			continue
		}
		var actions []model.Action
		for _, adjacent := range d.AdjacentCells(coord) {
			if g.Value(adjacent) == model.Unknown {
				actions = append(actions, model.SetNoStar(adjacent))
			}
		}
		if len(actions) > 0 {
			return NewNoStarAdjacentToStar(coord, actions)
		}
	}
	return nil
}
