package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codepet/internal/pet"
)

// Shared by the TUI and the plain CLI output.

const (
	IconCoin    = "🪙"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTodo    = "⬜"
	IconTrophy  = "🏆"
	IconLock    = "🔒"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBox     = "📦"
	IconTrade   = "🔁"
	IconFire    = "🔥"
	IconGem     = "💎"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	Overlay     = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cGold).Padding(0, 2)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	ActiveTab   = lipgloss.NewStyle().Bold(true).Foreground(cGold).Underline(true).Padding(0, 1)
	InactiveTab = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 1)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Note renders a notification in the style matching its kind
func Note(n pet.Notification) string {
	switch n.Kind {
	case pet.NoteSuccess:
		return Good.Render(IconSparkle + " " + n.Message)
	case pet.NoteError:
		return Bad.Render(IconError + " " + n.Message)
	default:
		return Muted.Render(IconInfo + " " + n.Message)
	}
}

// RewardText describes a reward for the overlay
func RewardText(r pet.Reward) string {
	switch r.Kind {
	case pet.RewardLevel:
		return fmt.Sprintf("%s %s Level %d!", IconSparkle, BadgeLevelUp, r.Value)
	case pet.RewardDailyLogin:
		return fmt.Sprintf("%s Daily login: %s", IconCoin, Gold.Render(fmt.Sprintf("+%d coins", r.Value)))
	default:
		return fmt.Sprintf("%s %s +%d", IconSparkle, r.Kind, r.Value)
	}
}

// RarityStyle colors a rarity tier
func RarityStyle(r pet.Rarity) lipgloss.Style {
	switch r {
	case pet.RarityCommon:
		return Muted
	case pet.RarityUncommon:
		return Good
	case pet.RarityRare:
		return H2
	case pet.RarityEpic:
		return Title
	default:
		return Gold
	}
}

func TradeStatusText(s pet.TradeStatus) string {
	switch s {
	case pet.TradeAccepted:
		return Good.Render(string(s))
	case pet.TradePending:
		return Warn.Render(string(s))
	case pet.TradeRejected:
		return Bad.Render(string(s))
	default:
		return Muted.Render(string(s))
	}
}

// SkillGlyph maps a skill's icon tag to a glyph
func SkillGlyph(tag string) string {
	switch tag {
	case "shield":
		return "🛡️"
	case "zap":
		return "⚡"
	case "chart":
		return "📈"
	case "bot":
		return "🤖"
	case "clock":
		return "⏰"
	default:
		return "•"
	}
}

// Bar draws a stat as ten cells
func Bar(value float64) string {
	filled := int(pet.Clamp(value) / 10)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	switch {
	case value < 30:
		return Bad.Render(bar)
	case value < 60:
		return Warn.Render(bar)
	default:
		return Good.Render(bar)
	}
}
