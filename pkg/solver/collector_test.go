package solver

import (
	"testing"

	"github.com/ddurler/star-battle/pkg/model"
	"github.com/ddurler/star-battle/pkg/parser"
)

// checkCandidates asserts the enumerator contract on every produced grid:
// consistent, exactly nbStars stars in the zone, and every initially
// undetermined zone cell determined.
func checkCandidates(t *testing.T, desc *Descriptor, initial *model.Grid, zone []model.Coord, nbStars int, candidates []*model.Grid) {
	t.Helper()
	for i, candidate := range candidates {
		if err := CheckBadRules(desc, candidate); err != nil {
			t.Errorf("candidate %d violates the rules: %v", i, err)
		}
		stars := 0
		for _, coord := range zone {
			switch candidate.Value(coord) {
			case model.Star:
				stars++
			case model.Unknown:
				if initial.Value(coord) == model.Unknown {
					t.Errorf("candidate %d leaves zone cell %v undetermined", i, coord)
				}
			}
		}
		if stars != nbStars {
			t.Errorf("candidate %d holds %d stars in the zone, want %d", i, stars, nbStars)
		}
	}
}

func TestCollectPossibleGridsRegion(t *testing.T) {
	desc, grid := getTestGrid(t)
	zone := desc.Surfer(grid, RegionZone('A'))

	collector := NewCollector(desc, grid, zone, desc.NbStars())
	collector.CollectPossibleGrids()

	// One star in region A: either (0,0) or (1,0).
	if len(collector.PossibleGrids) != 2 {
		t.Fatalf("PossibleGrids = %d, want 2", len(collector.PossibleGrids))
	}
	checkCandidates(t, desc, grid, zone, desc.NbStars(), collector.PossibleGrids)
}

func TestCollectRecursivePossibleGridsRegion(t *testing.T) {
	desc, grid := getTestGrid(t)
	zone := desc.Surfer(grid, RegionZone('A'))

	collector := NewCollector(desc, grid, zone, desc.NbStars())
	collector.CollectRecursivePossibleGrids()

	// A star in (1,0) clears both cells of region C, so only (0,0) survives.
	if len(collector.PossibleGrids) != 1 {
		t.Fatalf("PossibleGrids = %d, want 1", len(collector.PossibleGrids))
	}
	checkCandidates(t, desc, grid, zone, desc.NbStars(), collector.PossibleGrids)

	// The recursive search clears the cells around each placed star.
	for _, candidate := range collector.PossibleGrids {
		for _, coord := range zone {
			if candidate.Value(coord) != model.Star {
				continue
			}
			for _, adjacent := range desc.AdjacentCells(coord) {
				if candidate.Value(adjacent) != model.NoStar {
					t.Errorf("candidate leaves %v next to the star at %v = %v, want NoStar", adjacent, coord, candidate.Value(adjacent))
				}
			}
		}
	}
}

func TestCollectorsOnLine(t *testing.T) {
	desc, grid := getTestGrid(t)
	zone := desc.Surfer(grid, LineZone(0))

	bitmask := NewCollector(desc, grid, zone, desc.NbStars())
	bitmask.CollectPossibleGrids()

	recursive := NewCollector(desc, grid, zone, desc.NbStars())
	recursive.CollectRecursivePossibleGrids()

	// One star over the five cells of line 0: five layouts either way.
	if len(bitmask.PossibleGrids) != 5 {
		t.Errorf("bitmask PossibleGrids = %d, want 5", len(bitmask.PossibleGrids))
	}
	if len(recursive.PossibleGrids) != 5 {
		t.Errorf("recursive PossibleGrids = %d, want 5", len(recursive.PossibleGrids))
	}
	checkCandidates(t, desc, grid, zone, desc.NbStars(), bitmask.PossibleGrids)
	checkCandidates(t, desc, grid, zone, desc.NbStars(), recursive.PossibleGrids)
}

func TestCollectorZoneAlreadyComplete(t *testing.T) {
	desc, grid := getTestGrid(t)
	grid.SetValue(model.NewCoord(0, 0), model.Star)
	zone := desc.Surfer(grid, RegionZone('A'))

	// Bitmask enumeration has nothing to explore in a completed zone.
	bitmask := NewCollector(desc, grid, zone, desc.NbStars())
	bitmask.CollectPossibleGrids()
	if len(bitmask.PossibleGrids) != 0 {
		t.Errorf("bitmask PossibleGrids = %d, want 0", len(bitmask.PossibleGrids))
	}

	// The recursive enumeration emits the single completion with the
	// remaining zone cells forced star-less.
	recursive := NewCollector(desc, grid, zone, desc.NbStars())
	recursive.CollectRecursivePossibleGrids()
	if len(recursive.PossibleGrids) != 1 {
		t.Fatalf("recursive PossibleGrids = %d, want 1", len(recursive.PossibleGrids))
	}
	if got := recursive.PossibleGrids[0].Value(model.NewCoord(1, 0)); got != model.NoStar {
		t.Errorf("completion left (1,0) = %v, want NoStar", got)
	}
}

func TestCollectorMinimalRegion(t *testing.T) {
	// Region A is a single cell: exactly one completion, whatever the algorithm.
	parsed, err := parser.Parse("ABB\nBBB\nBBC\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	desc := NewDescriptor(parsed, 1)
	grid := desc.NewGrid()
	zone := desc.Surfer(grid, RegionZone('A'))

	bitmask := NewCollector(desc, grid, zone, 1)
	bitmask.CollectPossibleGrids()
	if len(bitmask.PossibleGrids) != 1 {
		t.Errorf("bitmask PossibleGrids = %d, want 1", len(bitmask.PossibleGrids))
	}

	recursive := NewCollector(desc, grid, zone, 1)
	recursive.CollectRecursivePossibleGrids()
	if len(recursive.PossibleGrids) != 1 {
		t.Errorf("recursive PossibleGrids = %d, want 1", len(recursive.PossibleGrids))
	}
}

func TestCollectorPrunesInconsistentBranches(t *testing.T) {
	desc, grid := getTestGrid(t)

	// A star in (2,1) makes any region-A layout with a star in (1,0)
	// inconsistent; only (0,0) survives.
	grid.SetValue(model.NewCoord(2, 1), model.Star)
	zone := desc.Surfer(grid, RegionZone('A'))

	recursive := NewCollector(desc, grid, zone, desc.NbStars())
	recursive.CollectRecursivePossibleGrids()

	if len(recursive.PossibleGrids) != 1 {
		t.Fatalf("PossibleGrids = %d, want 1", len(recursive.PossibleGrids))
	}
	if got := recursive.PossibleGrids[0].Value(model.NewCoord(0, 0)); got != model.Star {
		t.Errorf("surviving layout has (0,0) = %v, want Star", got)
	}
}
