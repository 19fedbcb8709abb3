package model

import "strings"

// Action assigns a value to one cell of the grid.
type Action struct {
	Coord Coord
	Value CellValue
}

// SetStar is the action of placing a star at the given coordinates.
func SetStar(c Coord) Action {
	return Action{Coord: c, Value: Star}
}

// SetNoStar is the action of ruling out a star at the given coordinates.
func SetNoStar(c Coord) Action {
	return Action{Coord: c, Value: NoStar}
}

// SetUnknown is the action of resetting a cell to its undetermined state.
func SetUnknown(c Coord) Action {
	return Action{Coord: c, Value: Unknown}
}

// Apply writes the action's value into the grid.
func (a Action) Apply(g *Grid) {
	g.SetValue(a.Coord, a.Value)
}

func (a Action) String() string {
	switch a.Value {
	case Star:
		return a.Coord.String() + "->Etoile"
	case NoStar:
		return a.Coord.String() + "->Pas d'étoile"
	default:
		return a.Coord.String() + "-> Inconnu"
	}
}

// DisplayActions renders a list of actions separated by commas.
func DisplayActions(actions []Action) string {
	var sb strings.Builder
	for i, action := range actions {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(action.String())
	}
	return sb.String()
}
