package forestfire

import "math/rand"

// Cell states of the forest grid.
const (
	CellEmpty = iota
	CellTree
	CellBurning
	CellAsh
)

// Cluster is the lifecycle record of one fire. Death stays zero while the
// fire is still burning somewhere.
type Cluster struct {
	Birth   int `json:"birth"`
	Death   int `json:"death"`
	MaxSize int `json:"max_size"`
}

// Model is a Drossel-Schwabl forest fire automaton with per-fire cluster
// tracking. Fires spread to the four in-bounds neighbours; burnt cells stay
// marked as ash until the last cell of their fire goes out.
type Model struct {
	Size      int
	PTree     float64
	PFire     float64
	StepCount int
	Grid      [][]int

	clusterIDs      [][]int
	nextClusterID   int
	Registry        map[int]*Cluster
	currentClusters map[int]int
	BurningHistory  []int
	historyWindow   int
	localRand       *rand.Rand
}

const initialTreeDensity = 0.3

func NewModel(size int, pTree float64, pFire float64, localRand *rand.Rand) *Model {
	grid := make([][]int, size)
	clusterIDs := make([][]int, size)
	for i := 0; i < size; i++ {
		grid[i] = make([]int, size)
		clusterIDs[i] = make([]int, size)
		for j := 0; j < size; j++ {
			if localRand.Float64() < initialTreeDensity {
				grid[i][j] = CellTree
			}
		}
	}

	return &Model{
		Size:            size,
		PTree:           pTree,
		PFire:           pFire,
		Grid:            grid,
		clusterIDs:      clusterIDs,
		nextClusterID:   1,
		Registry:        make(map[int]*Cluster),
		currentClusters: make(map[int]int),
		historyWindow:   1200,
		localRand:       localRand,
	}
}

// Step advances the automaton one tick: empty cells sprout trees, trees
// ignite from burning neighbours or lightning, burning cells turn to ash,
// and ash clears once its fire has no burning cells left.
func (m *Model) Step() {
	size := m.Size

	// Decide ignitions from the current grid. A tree next to fire inherits
	// the largest neighbouring cluster id; a lightning strike opens a new one.
	ignitedID := make([][]int, size)
	for i := 0; i < size; i++ {
		ignitedID[i] = make([]int, size)
		for j := 0; j < size; j++ {
			if m.Grid[i][j] != CellTree {
				continue
			}
			maxNeighborID := 0
			burningNeighbor := false
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				ni, nj := i+d[0], j+d[1]
				if ni < 0 || ni >= size || nj < 0 || nj >= size {
					continue
				}
				if m.Grid[ni][nj] == CellBurning {
					burningNeighbor = true
					if m.clusterIDs[ni][nj] > maxNeighborID {
						maxNeighborID = m.clusterIDs[ni][nj]
					}
				}
			}
			if burningNeighbor {
				ignitedID[i][j] = maxNeighborID
			} else if m.localRand.Float64() < m.PFire {
				ignitedID[i][j] = m.nextClusterID
				m.nextClusterID++
			}
		}
	}

	activeIDs := make(map[int]bool)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if ignitedID[i][j] > 0 {
				activeIDs[ignitedID[i][j]] = true
			}
		}
	}

	newGrid := make([][]int, size)
	newIDs := make([][]int, size)
	for i := 0; i < size; i++ {
		newGrid[i] = make([]int, size)
		newIDs[i] = make([]int, size)
		for j := 0; j < size; j++ {
			switch m.Grid[i][j] {
			case CellEmpty:
				if m.localRand.Float64() < m.PTree {
					newGrid[i][j] = CellTree
				}
			case CellTree:
				if ignitedID[i][j] > 0 {
					newGrid[i][j] = CellBurning
					newIDs[i][j] = ignitedID[i][j]
				} else {
					newGrid[i][j] = CellTree
				}
			case CellBurning, CellAsh:
				id := m.clusterIDs[i][j]
				if activeIDs[id] {
					newGrid[i][j] = CellAsh
					newIDs[i][j] = id
				}
			}
		}
	}
	m.Grid = newGrid
	m.clusterIDs = newIDs
	m.StepCount++

	m.BurningHistory = append(m.BurningHistory, m.BurningCount())
	if len(m.BurningHistory) > m.historyWindow {
		m.BurningHistory = m.BurningHistory[len(m.BurningHistory)-m.historyWindow:]
	}

	// Cluster size counts every cell still carrying the id, ash included.
	newCurrent := make(map[int]int)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if id := m.clusterIDs[i][j]; id > 0 && activeIDs[id] {
				newCurrent[id]++
			}
		}
	}
	for id, clusterSize := range newCurrent {
		cluster, ok := m.Registry[id]
		if !ok {
			cluster = &Cluster{Birth: m.StepCount, MaxSize: clusterSize}
			m.Registry[id] = cluster
		}
		if clusterSize > cluster.MaxSize {
			cluster.MaxSize = clusterSize
		}
	}
	for id := range m.currentClusters {
		if !activeIDs[id] {
			if cluster, ok := m.Registry[id]; ok && cluster.Death == 0 {
				cluster.Death = m.StepCount
			}
		}
	}
	m.currentClusters = newCurrent

	// Forget fires that died longer than the history window ago.
	for id, cluster := range m.Registry {
		if cluster.Death != 0 && m.StepCount-cluster.Death > m.historyWindow {
			delete(m.Registry, id)
		}
	}
}

func (m *Model) BurningCount() int {
	count := 0
	for i := 0; i < m.Size; i++ {
		for j := 0; j < m.Size; j++ {
			if m.Grid[i][j] == CellBurning {
				count++
			}
		}
	}
	return count
}

func (m *Model) TreeCount() int {
	count := 0
	for i := 0; i < m.Size; i++ {
		for j := 0; j < m.Size; j++ {
			if m.Grid[i][j] == CellTree {
				count++
			}
		}
	}
	return count
}

func (m *Model) ActiveClusterCount() int {
	return len(m.currentClusters)
}

// CompletedClusterSizes lists the maximum size reached by every fire that
// has fully burnt out, for size-distribution histograms.
func (m *Model) CompletedClusterSizes() []int {
	var sizes []int
	for _, cluster := range m.Registry {
		if cluster.Death != 0 {
			sizes = append(sizes, cluster.MaxSize)
		}
	}
	return sizes
}
