package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"hopsim/forestfire"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

type fireModel struct {
	forest *forestfire.Model
	size   int
	pTree  float64
	pFire  float64
	seed   int64
	paused bool
}

var cellGlyphs = map[int]string{
	forestfire.CellEmpty:   " ",
	forestfire.CellTree:    "♣",
	forestfire.CellBurning: "▲",
	forestfire.CellAsh:     ".",
}

func main() {
	size := flag.Int("size", 40, "grid side length")
	pTree := flag.Float64("ptree", 0.01, "tree growth probability per empty cell")
	pFire := flag.Float64("pfire", 0.0002, "lightning probability per tree")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	m := fireModel{
		size:  *size,
		pTree: *pTree,
		pFire: *pFire,
		seed:  *seed,
	}
	m.forest = forestfire.NewModel(m.size, m.pTree, m.pFire, rand.New(rand.NewSource(m.seed)))

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Println("UI error:", err)
	}
}

func tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m fireModel) Init() tea.Cmd {
	return tick()
}

func (m fireModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {

	case tea.KeyMsg:
		switch v.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			return m, nil
		case "r":
			m.seed++
			m.forest = forestfire.NewModel(m.size, m.pTree, m.pFire, rand.New(rand.NewSource(m.seed)))
			return m, nil
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			m.forest.Step()
		}
		return m, tick()

	default:
		return m, nil
	}
}

func (m fireModel) View() string {
	var b strings.Builder

	b.WriteString("FOREST FIRE | cluster tracking\n")
	b.WriteString(strings.Repeat("─", m.size) + "\n")

	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			b.WriteString(cellGlyphs[m.forest.Grid[i][j]])
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", m.size) + "\n")
	b.WriteString(fmt.Sprintf("step: %d   trees: %d   burning: %d   active fires: %d\n",
		m.forest.StepCount, m.forest.TreeCount(), m.forest.BurningCount(), m.forest.ActiveClusterCount()))

	completed := m.forest.CompletedClusterSizes()
	largest := 0
	for _, s := range completed {
		if s > largest {
			largest = s
		}
	}
	b.WriteString(fmt.Sprintf("completed fires: %d   largest: %d cells\n", len(completed), largest))
	if m.paused {
		b.WriteString("[paused] ")
	}
	b.WriteString("space pause | r reseed | q quit\n")

	return b.String()
}
