package solver

import (
	"testing"

	"github.com/ddurler/star-battle/pkg/model"
	"github.com/ddurler/star-battle/pkg/parser"
)

// getTestGrid builds the descriptor and the initial grid of the reference
// 5x5 puzzle.
func getTestGrid(t *testing.T) (*Descriptor, *model.Grid) {
	t.Helper()
	parsed, err := parser.Parse("ABBBB\nABBBB\nCCBBB\nDDDDD\nDEEED\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	desc := NewDescriptor(parsed, 1)
	return desc, desc.NewGrid()
}

func TestNewDescriptor(t *testing.T) {
	desc, _ := getTestGrid(t)

	if desc.Lines() != 5 || desc.Columns() != 5 {
		t.Fatalf("descriptor size = %dx%d, want 5x5", desc.Lines(), desc.Columns())
	}
	if desc.NbStars() != 1 {
		t.Fatalf("NbStars = %d, want 1", desc.NbStars())
	}

	regions := desc.Regions()
	if len(regions) != 5 {
		t.Fatalf("regions = %v, want 5 regions", regions)
	}
	// Regions are sorted by ascending cell count.
	for i := 1; i < len(regions); i++ {
		if desc.RegionCellCount(regions[i-1]) > desc.RegionCellCount(regions[i]) {
			t.Errorf("regions not sorted by size: %v", regions)
		}
	}
	if regions[len(regions)-1] != 'B' {
		t.Errorf("largest region = %v, want B", regions[len(regions)-1])
	}

	tests := []struct {
		coord  model.Coord
		region model.Region
	}{
		{model.NewCoord(0, 0), 'A'},
		{model.NewCoord(1, 0), 'A'},
		{model.NewCoord(0, 1), 'B'},
		{model.NewCoord(2, 0), 'C'},
		{model.NewCoord(3, 2), 'D'},
		{model.NewCoord(4, 2), 'E'},
	}
	for _, tt := range tests {
		if got := desc.CellRegion(tt.coord); got != tt.region {
			t.Errorf("CellRegion(%v) = %v, want %v", tt.coord, got, tt.region)
		}
	}
}

func TestNewDescriptorPanics(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		nbStars int
	}{
		{"nbStars zero", "ABBBB\nABBBB\nCCBBB\nDDDDD\nDEEED\n", 0},
		{"too many stars for lines", "AB\nAB\n", 2},
		{"too many stars for a region", "ABBBB\nABBBB\nCCBBB\nDDDDD\nDEEED\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewDescriptor did not panic")
				}
			}()
			parsed, err := parser.Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			NewDescriptor(parsed, tt.nbStars)
		})
	}
}

func TestAdjacentCells(t *testing.T) {
	parsed, err := parser.Parse("AAA\nBBB\nCCC\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	desc := NewDescriptor(parsed, 1)

	tests := []struct {
		coord model.Coord
		want  []model.Coord
	}{
		{model.NewCoord(0, 0), coords(0, 1, 1, 0, 1, 1)},
		{model.NewCoord(0, 1), coords(0, 0, 0, 2, 1, 0, 1, 1, 1, 2)},
		{model.NewCoord(0, 2), coords(0, 1, 1, 1, 1, 2)},
		{model.NewCoord(1, 0), coords(0, 0, 0, 1, 1, 1, 2, 0, 2, 1)},
		{model.NewCoord(1, 1), coords(0, 0, 0, 1, 0, 2, 1, 0, 1, 2, 2, 0, 2, 1, 2, 2)},
		{model.NewCoord(1, 2), coords(0, 1, 0, 2, 1, 1, 2, 1, 2, 2)},
		{model.NewCoord(2, 0), coords(1, 0, 1, 1, 2, 1)},
		{model.NewCoord(2, 1), coords(1, 0, 1, 1, 1, 2, 2, 0, 2, 2)},
		{model.NewCoord(2, 2), coords(1, 1, 1, 2, 2, 1)},
	}
	for _, tt := range tests {
		got := desc.AdjacentCells(tt.coord)
		if !sameCoordSet(got, tt.want) {
			t.Errorf("AdjacentCells(%v) = %v, want %v", tt.coord, got, tt.want)
		}
	}
}

// coords builds a coordinate list from (line, column) pairs.
func coords(pairs ...int) []model.Coord {
	var cs []model.Coord
	for i := 0; i < len(pairs); i += 2 {
		cs = append(cs, model.NewCoord(pairs[i], pairs[i+1]))
	}
	return cs
}

func sameCoordSet(got, want []model.Coord) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[model.Coord]bool)
	for _, c := range got {
		seen[c] = true
	}
	for _, c := range want {
		if !seen[c] {
			return false
		}
	}
	return true
}

func TestIsStarAdjacent(t *testing.T) {
	desc, grid := getTestGrid(t)

	coord := model.NewCoord(0, 0)
	if desc.IsStarAdjacent(grid, coord) {
		t.Errorf("IsStarAdjacent on an empty grid")
	}

	grid.SetValue(model.NewCoord(1, 1), model.Star)
	if !desc.IsStarAdjacent(grid, coord) {
		t.Errorf("IsStarAdjacent missed the star in (1,1)")
	}
}

func TestIsDone(t *testing.T) {
	desc, grid := getTestGrid(t)

	if desc.IsDone(grid) {
		t.Fatalf("IsDone on an empty grid")
	}

	// The unique solution of the reference puzzle.
	stars := coords(0, 0, 1, 3, 2, 1, 3, 4, 4, 2)
	for line := 0; line < desc.Lines(); line++ {
		for column := 0; column < desc.Columns(); column++ {
			grid.SetValue(model.NewCoord(line, column), model.NoStar)
		}
	}
	for _, c := range stars {
		grid.SetValue(c, model.Star)
	}

	if !desc.IsDone(grid) {
		t.Errorf("IsDone rejected the solved grid")
	}

	// A fully determined but inconsistent grid is not done.
	grid.SetValue(model.NewCoord(0, 1), model.Star)
	if desc.IsDone(grid) {
		t.Errorf("IsDone accepted an inconsistent grid")
	}
}

func TestDisplay(t *testing.T) {
	desc, grid := getTestGrid(t)

	grid.SetValue(model.NewCoord(0, 0), model.Star)
	grid.SetValue(model.NewCoord(0, 1), model.NoStar)

	want := "" +
		"    A  B  C  D  E \n" +
		"   ---------------\n" +
		" 1| A* B- B? B? B?\n" +
		" 2| A? B? B? B? B?\n" +
		" 3| C? C? B? B? B?\n" +
		" 4| D? D? D? D? D?\n" +
		" 5| D? E? E? E? D?\n"
	if got := desc.Display(grid, true); got != want {
		t.Errorf("Display(with coordinates) =\n%s\nwant\n%s", got, want)
	}

	wantBare := "" +
		" A* B- B? B? B?\n" +
		" A? B? B? B? B?\n" +
		" C? C? B? B? B?\n" +
		" D? D? D? D? D?\n" +
		" D? E? E? E? D?\n"
	if got := desc.Display(grid, false); got != wantBare {
		t.Errorf("Display(bare) =\n%s\nwant\n%s", got, wantBare)
	}
}
