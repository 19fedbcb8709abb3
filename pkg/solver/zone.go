package solver

import (
	"fmt"

	"github.com/ddurler/star-battle/pkg/model"
)

// zoneKind discriminates the Zone variants.
type zoneKind int

const (
	zoneAllCells zoneKind = iota
	zoneRegion
	zoneAdjacent
	zoneLine
	zoneColumn
	zoneLines
	zoneColumns
)

// Zone selects a subset of the grid cells: the whole grid, one region, the
// neighbourhood of a cell, a line, a column, or an inclusive span of lines
// or columns. A Zone is purely declarative; Surfer resolves it to the
// matching coordinates.
//
// Zones are comparable values: two zones selecting the same cells the same
// way are equal.
type Zone struct {
	kind   zoneKind
	region model.Region
	coord  model.Coord
	from   int
	to     int
}

// AllCells selects every cell of the grid.
func AllCells() Zone {
	return Zone{kind: zoneAllCells}
}

// RegionZone selects the cells of one region.
func RegionZone(region model.Region) Zone {
	return Zone{kind: zoneRegion, region: region}
}

// AdjacentZone selects the up-to-8 neighbours of a cell, diagonals included.
func AdjacentZone(c model.Coord) Zone {
	return Zone{kind: zoneAdjacent, coord: c}
}

// LineZone selects the cells of one line.
func LineZone(line int) Zone {
	return Zone{kind: zoneLine, from: line, to: line}
}

// ColumnZone selects the cells of one column.
func ColumnZone(column int) Zone {
	return Zone{kind: zoneColumn, from: column, to: column}
}

// LinesZone selects the cells of the inclusive span of lines [from, to].
func LinesZone(from, to int) Zone {
	return Zone{kind: zoneLines, from: from, to: to}
}

// ColumnsZone selects the cells of the inclusive span of columns [from, to].
func ColumnsZone(from, to int) Zone {
	return Zone{kind: zoneColumns, from: from, to: to}
}

// IsRegion reports whether the zone selects a single region, and which one.
func (z Zone) IsRegion() (model.Region, bool) {
	return z.region, z.kind == zoneRegion
}

func (z Zone) String() string {
	switch z.kind {
	case zoneAllCells:
		return "Toute la grille"
	case zoneRegion:
		return fmt.Sprintf("Region '%s'", z.region)
	case zoneAdjacent:
		return fmt.Sprintf("Cases adjacentes à '%s'", z.coord)
	case zoneLine:
		return fmt.Sprintf("Ligne %s", model.DisplayLine(z.from))
	case zoneColumn:
		return fmt.Sprintf("Colonne %s", model.DisplayColumn(z.from))
	case zoneLines:
		return fmt.Sprintf("Lignes %s-%s", model.DisplayLine(z.from), model.DisplayLine(z.to))
	case zoneColumns:
		return fmt.Sprintf("Colonnes %s-%s", model.DisplayColumn(z.from), model.DisplayColumn(z.to))
	default:
		return "Zone inconnue"
	}
}

// Surfer returns the coordinates of the cells selected by the zone, in
// row-major order (top to bottom, left to right). Downstream logic relies
// on this traversal being deterministic and stable.
func (d *Descriptor) Surfer(g *model.Grid, zone Zone) []model.Coord {
	var adjacents []model.Coord
	if zone.kind == zoneAdjacent {
		adjacents = d.AdjacentCells(zone.coord)
	}

	var cells []model.Coord
	for line := 0; line < d.lines; line++ {
		for column := 0; column < d.columns; column++ {
			coord := model.NewCoord(line, column)
			matching := false
			switch zone.kind {
			case zoneAllCells:
				matching = true
			case zoneRegion:
				matching = g.Cell(coord).Region == zone.region
			case zoneAdjacent:
				for _, adjacent := range adjacents {
					if adjacent == coord {
						matching = true
						break
					}
				}
			case zoneLine, zoneLines:
				matching = line >= zone.from && line <= zone.to
			case zoneColumn, zoneColumns:
				matching = column >= zone.from && column <= zone.to
			}
			if matching {
				cells = append(cells, coord)
			}
		}
	}
	return cells
}

// SurferCellsCount returns the number of cells of the zone.
func (d *Descriptor) SurferCellsCount(g *model.Grid, zone Zone) int {
	return len(d.Surfer(g, zone))
}

// CountInZone returns the number of cells of the zone holding the given value.
func (d *Descriptor) CountInZone(g *model.Grid, zone Zone, value model.CellValue) int {
	count := 0
	for _, coord := range d.Surfer(g, zone) {
		if g.Value(coord) == value {
			count++
		}
	}
	return count
}
