package forestfire

import (
	"math/rand"
	"testing"
)

func TestNoLightningMeansNoFire(t *testing.T) {
	m := NewModel(20, 0.05, 0, rand.New(rand.NewSource(1)))
	for step := 0; step < 50; step++ {
		m.Step()
		if m.BurningCount() != 0 {
			t.Fatalf("step %d: fire appeared with zero lightning probability", step)
		}
	}
	if m.ActiveClusterCount() != 0 {
		t.Errorf("got %d active clusters, want 0", m.ActiveClusterCount())
	}
}

func TestCertainLightningIgnitesEveryTree(t *testing.T) {
	m := NewModel(20, 0, 1, rand.New(rand.NewSource(2)))
	trees := m.TreeCount()
	if trees == 0 {
		t.Fatal("initial grid has no trees")
	}

	m.Step()
	if burning := m.BurningCount(); burning != trees {
		t.Errorf("got %d burning cells, want %d", burning, trees)
	}
	if m.ActiveClusterCount() == 0 {
		t.Error("no active clusters after everything ignited")
	}

	// Without new trees the fires die on the next tick and get registered.
	m.Step()
	if m.BurningCount() != 0 {
		t.Error("fire survived with nothing left to burn")
	}
	if m.ActiveClusterCount() != 0 {
		t.Errorf("got %d active clusters, want 0", m.ActiveClusterCount())
	}
	if len(m.CompletedClusterSizes()) == 0 {
		t.Error("no completed clusters were registered")
	}
}

func TestCellStatesStayValid(t *testing.T) {
	m := NewModel(30, 0.02, 0.001, rand.New(rand.NewSource(3)))
	for step := 0; step < 200; step++ {
		m.Step()
		for i := 0; i < m.Size; i++ {
			for j := 0; j < m.Size; j++ {
				cell := m.Grid[i][j]
				if cell != CellEmpty && cell != CellTree && cell != CellBurning && cell != CellAsh {
					t.Fatalf("step %d: cell (%d,%d) has invalid state %d", step, i, j, cell)
				}
			}
		}
	}
	if m.StepCount != 200 {
		t.Errorf("got step count %d, want 200", m.StepCount)
	}
	if len(m.BurningHistory) != 200 {
		t.Errorf("got history length %d, want 200", len(m.BurningHistory))
	}
}

func TestClusterLifecycleBookkeeping(t *testing.T) {
	m := NewModel(20, 0, 1, rand.New(rand.NewSource(4)))
	m.Step()
	m.Step()

	for id, cluster := range m.Registry {
		if cluster.Birth == 0 {
			t.Errorf("cluster %d has no birth step", id)
		}
		if cluster.Death == 0 {
			t.Errorf("cluster %d never died despite the forest burning out", id)
		}
		if cluster.MaxSize < 1 {
			t.Errorf("cluster %d has max size %d, want at least 1", id, cluster.MaxSize)
		}
	}
}
