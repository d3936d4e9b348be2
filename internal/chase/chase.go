package chase

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codepet/internal/pet"
)

const (
	tickInterval   = 70 * time.Millisecond
	minVisibleRows = 6
)

// chaseEmoji picks the pet's face from its stats and how close the target is
func chaseEmoji(p pet.Pet, distX, distY int) string {
	if absInt(distX) <= 2 && absInt(distY) <= 1 {
		return "😻"
	}

	switch {
	case p.Energy < 30:
		return "😴"
	case p.Health < 30:
		return "🙀"
	case p.Happiness < 30:
		return "😿"
	case p.Energy > 80:
		return "😼"
	}
	return "😸"
}

// Target defines what the pet can chase
type Target struct {
	Emoji string
	Name  string
	Speed int // Frames to move 1 position
}

// Targets the pet can chase. Bugs are the default, it is a code pet after all.
var Targets = map[string]Target{
	"bug":       {Emoji: "🐛", Name: "bug", Speed: 3},
	"butterfly": {Emoji: "🦋", Name: "butterfly", Speed: 3},
	"ball":      {Emoji: "⚽", Name: "ball", Speed: 4},
	"mouse":     {Emoji: "🐁", Name: "mouse", Speed: 2},
}

// DefaultTarget is chased when none is named
const DefaultTarget = "bug"

// Model is the Bubble Tea model for the chase animation
type Model struct {
	Pet        pet.Pet
	Target     Target
	TermWidth  int
	TermHeight int
	PetPosX    int
	PetPosY    int
	TargetPosX int
	TargetPosY int
	Frame      int
	Caught     bool
}

type animTickMsg time.Time

// NewModel places the pet at the left edge with the target a few steps ahead
func NewModel(p pet.Pet, target Target) Model {
	return Model{
		Pet:        p,
		Target:     target,
		TargetPosX: 5,
	}
}

// Run plays the chase full screen and reports whether the pet caught the target
func Run(p pet.Pet, target Target) (bool, error) {
	program := tea.NewProgram(NewModel(p, target), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return false, err
	}
	return final.(Model).Caught, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.TermWidth = msg.Width
		m.TermHeight = msg.Height
		m.clampPositions()
		return m, nil

	case animTickMsg:
		m.Frame++

		if m.TermWidth == 0 || m.TermHeight == 0 {
			return m, tick()
		}

		// Target moves every N frames and flutters along a sine wave
		if m.Frame%m.Target.Speed == 0 {
			m.TargetPosX++

			if m.TargetPosX >= m.maxX() {
				return m, tea.Quit
			}

			height := float64(m.visibleRows())
			amplitude := height / 3.0
			centerY := height / 2.0
			frequency := 0.2

			m.TargetPosY = int(centerY + amplitude*math.Sin(float64(m.TargetPosX)*frequency))
			m.clampPositions()
		}

		// Pet follows every other frame
		if m.Frame%2 == 0 {
			distX := m.TargetPosX - m.PetPosX
			distY := m.TargetPosY - m.PetPosY

			if distX > 3 {
				m.PetPosX++
			}

			if distY > 1 {
				m.PetPosY++
			} else if distY < -1 {
				m.PetPosY--
			}

			m.clampPositions()
		}

		if absInt(m.TargetPosX-m.PetPosX) <= 1 && m.TargetPosY == m.PetPosY {
			m.Caught = true
			return m, tea.Quit
		}

		return m, tick()
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.TermWidth == 0 || m.TermHeight == 0 {
		return "Initializing..."
	}

	rows := m.visibleRows()
	petEmoji := chaseEmoji(m.Pet, m.TargetPosX-m.PetPosX, m.TargetPosY-m.PetPosY)

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", m.TermWidth))
	}
	m.place(grid, m.TargetPosX, m.TargetPosY, m.Target.Emoji)
	m.place(grid, m.PetPosX, m.PetPosY, petEmoji)

	var result strings.Builder
	for y := range grid {
		result.WriteString(string(grid[y]))
		result.WriteRune('\n')
	}
	result.WriteString("\n" + m.Pet.Name + " is chasing a " + m.Target.Name + "! Press any key to exit")

	return result.String()
}

func (m Model) place(grid [][]rune, x, y int, emoji string) {
	if y < 0 || y >= len(grid) || x < 0 || x >= m.TermWidth-2 {
		return
	}
	for i, r := range []rune(emoji) {
		if x+i < m.TermWidth {
			grid[y][x+i] = r
		}
	}
}

func (m *Model) clampPositions() {
	rows := m.visibleRows()
	if rows < 1 {
		return
	}

	m.PetPosX = min(max(m.PetPosX, 0), m.maxX())
	m.TargetPosX = min(max(m.TargetPosX, 0), m.maxX())
	m.PetPosY = min(max(m.PetPosY, 0), rows-1)
	m.TargetPosY = min(max(m.TargetPosY, 0), rows-1)
}

func (m Model) visibleRows() int {
	if m.TermHeight <= 0 {
		return 0
	}
	return max(m.TermHeight-2, minVisibleRows) // leave space for instruction
}

func (m Model) maxX() int {
	if m.TermWidth <= 2 {
		return 0
	}
	return m.TermWidth - 2
}
