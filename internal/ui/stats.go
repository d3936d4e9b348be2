package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codepet/internal/pet"
)

// StatsModel shows a read-only status card until a key is pressed
type StatsModel struct {
	Pet pet.Pet
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	return RenderCard(m.Pet) + "\n" + Muted.Render("Press any key to close")
}

// RenderCard draws the boxed status card used by `status` and the card screen
func RenderCard(p pet.Pet) string {
	emoji := p.GetFormEmoji()
	title := Title.Render(fmt.Sprintf("%s %s %s", emoji, p.Name, emoji)) +
		"  " + Gold.Render(fmt.Sprintf("Lv.%d %s", p.Level, p.GetFormName()))
	achievements, trophies := p.UnlockedCount()
	footer := Muted.Render(fmt.Sprintf("%s %d/%d achievements • %d/%d trophies • %d items",
		IconTrophy, achievements, len(p.Achievements), trophies, len(p.Trophies), len(p.Items)))

	return Panel.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", RenderStats(p), "", footer))
}

// DisplayStats shows the status card full screen
func DisplayStats(p pet.Pet) error {
	program := tea.NewProgram(StatsModel{Pet: p}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
