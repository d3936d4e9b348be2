package chase

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codepet/internal/pet"
)

func TestTargets(t *testing.T) {
	tests := []struct {
		target    string
		wantEmoji string
	}{
		{"bug", "🐛"},
		{"butterfly", "🦋"},
		{"ball", "⚽"},
		{"mouse", "🐁"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			target, exists := Targets[tt.target]
			if !exists {
				t.Fatalf("Target %q does not exist", tt.target)
			}
			if target.Name != tt.target {
				t.Errorf("Name = %q, want %q", target.Name, tt.target)
			}
			if target.Emoji != tt.wantEmoji {
				t.Errorf("Emoji = %q, want %q", target.Emoji, tt.wantEmoji)
			}
			if target.Speed <= 0 {
				t.Errorf("Speed = %d, want > 0", target.Speed)
			}
		})
	}

	if _, ok := Targets[DefaultTarget]; !ok {
		t.Errorf("DefaultTarget %q is not a target", DefaultTarget)
	}
}

func TestChaseEmoji(t *testing.T) {
	tests := []struct {
		name         string
		pet          pet.Pet
		distX, distY int
		want         string
	}{
		{"about to catch", pet.Pet{Energy: 10}, 1, 0, "😻"},
		{"tired", pet.Pet{Energy: 20, Health: 90, Happiness: 90}, 10, 0, "😴"},
		{"unwell", pet.Pet{Energy: 50, Health: 20, Happiness: 90}, 10, 0, "🙀"},
		{"sad", pet.Pet{Energy: 50, Health: 90, Happiness: 20}, 10, 0, "😿"},
		{"energetic", pet.Pet{Energy: 90, Health: 90, Happiness: 90}, 10, 0, "😼"},
		{"default", pet.Pet{Energy: 50, Health: 90, Happiness: 90}, 10, 0, "😸"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chaseEmoji(tt.pet, tt.distX, tt.distY); got != tt.want {
				t.Errorf("chaseEmoji() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newChase(width, height int) Model {
	m := NewModel(pet.NewPet(time.Now()), Targets["bug"])
	m.TermWidth = width
	m.TermHeight = height
	return m
}

func TestModel_Init(t *testing.T) {
	if cmd := newChase(80, 24).Init(); cmd == nil {
		t.Error("Init() returned nil command, expected tick")
	}
}

func TestModel_Update_KeyMsg(t *testing.T) {
	m := newChase(80, 24)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("KeyMsg should return tea.Quit command")
	}
}

func TestModel_Update_WindowSizeMsg(t *testing.T) {
	m := newChase(80, 24)

	updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	updated := updatedModel.(Model)

	if updated.TermWidth != 100 {
		t.Errorf("TermWidth = %d, want 100", updated.TermWidth)
	}
	if updated.TermHeight != 30 {
		t.Errorf("TermHeight = %d, want 30", updated.TermHeight)
	}
}

func TestModel_Update_WaitsForSize(t *testing.T) {
	m := newChase(0, 0)

	updatedModel, cmd := m.Update(animTickMsg(time.Now()))
	updated := updatedModel.(Model)
	if cmd == nil {
		t.Error("tick before the first resize should keep ticking")
	}
	if updated.TargetPosX != m.TargetPosX {
		t.Error("target should not move before the terminal size is known")
	}
}

func TestModel_Update_PetFollowsTarget(t *testing.T) {
	m := newChase(80, 24)
	m.Frame = 1
	m.PetPosY = 5
	m.TargetPosX = 20
	m.TargetPosY = 5

	updatedModel, cmd := m.Update(animTickMsg(time.Now()))
	updated := updatedModel.(Model)

	if cmd == nil {
		t.Error("animTickMsg should return tick command")
	}
	if updated.PetPosX != 1 {
		t.Errorf("PetPosX = %d, want 1", updated.PetPosX)
	}
	if updated.TargetPosX != 20 {
		t.Errorf("TargetPosX = %d, target should only move every %d frames", updated.TargetPosX, m.Target.Speed)
	}
}

func TestModel_Update_TargetReachesEdge(t *testing.T) {
	m := newChase(80, 24)
	m.Frame = 2
	m.TargetPosX = m.maxX() - 1

	updatedModel, cmd := m.Update(animTickMsg(time.Now()))
	if cmd == nil {
		t.Error("Target reaching edge should return quit command")
	}
	if updatedModel.(Model).Caught {
		t.Error("escaping target should not count as caught")
	}
}

func TestModel_Update_CatchEndsRun(t *testing.T) {
	m := newChase(40, 10)
	m.PetPosX, m.PetPosY = 5, 3
	m.TargetPosX, m.TargetPosY = 6, 3

	updatedModel, cmd := m.Update(animTickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected quit command when pet catches target")
	}
	if !updatedModel.(Model).Caught {
		t.Error("Caught = false, want true")
	}
}

func TestModel_Update_StaysInBounds(t *testing.T) {
	m := newChase(80, 24)
	m.PetPosY = 12
	maxY := m.visibleRows() - 1

	for i := 0; i < 200; i++ {
		model, _ := m.Update(animTickMsg(time.Now()))
		m = model.(Model)
		if m.TargetPosY < 0 || m.TargetPosY > maxY {
			t.Fatalf("tick %d: TargetPosY = %d out of [0, %d]", i, m.TargetPosY, maxY)
		}
		if m.PetPosY < 0 || m.PetPosY > maxY {
			t.Fatalf("tick %d: PetPosY = %d out of [0, %d]", i, m.PetPosY, maxY)
		}
		if m.Caught {
			break
		}
	}
}

func TestModel_View(t *testing.T) {
	if got := newChase(0, 0).View(); got != "Initializing..." {
		t.Errorf("View() before resize = %q", got)
	}

	m := newChase(40, 10)
	view := m.View()
	if !strings.Contains(view, "🐛") {
		t.Error("view should show the target")
	}
	if !strings.Contains(view, m.Pet.Name) {
		t.Error("view should name the pet")
	}
	if lines := strings.Count(view, "\n"); lines < m.visibleRows() {
		t.Errorf("view has %d lines, want at least %d", lines, m.visibleRows())
	}
}
