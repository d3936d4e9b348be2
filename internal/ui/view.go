package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codepet/internal/pet"
)

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for coding with " + m.Pet.Name + "!\n"
	}

	sections := []string{
		m.renderHeader(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderPortrait(), "  ", RenderStats(m.Pet)),
		"",
	}

	if m.rewardVisible() {
		sections = append(sections, Overlay.Render(RewardText(*m.Reward)), "")
	}

	switch {
	case m.Animation.Type != AnimNone:
		sections = append(sections, m.renderAnimation())
	case m.ConfirmReset:
		sections = append(sections,
			Warn.Render(IconWarn+"  Reset "+m.Pet.Name+"? Stats, coins and items are lost."),
			Muted.Render("Press 'y' to confirm, any other key to cancel"),
		)
	default:
		sections = append(sections, m.renderTabs(), "", m.renderTab())
	}

	if m.messageVisible() {
		notes := make([]string, 0, len(m.Notes))
		for _, n := range m.Notes {
			notes = append(notes, Note(n))
		}
		sections = append(sections, "", strings.Join(notes, "\n"))
	}

	sections = append(sections, "", Muted.Render(m.helpText()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	emoji := m.Pet.GetFormEmoji()
	return Title.Render(fmt.Sprintf("%s %s %s", emoji, m.Pet.Name, emoji)) +
		"  " + Gold.Render(fmt.Sprintf("Lv.%d", m.Pet.Level)) +
		"  " + Muted.Render(m.Pet.GetFormName())
}

func (m Model) renderPortrait() string {
	face := "  " + pet.GetStatus(m.Pet) + "  "
	if m.Idle.Type != AnimNone {
		face = GetAnimationFrame(m.Idle)
	}
	return Panel.Render(face)
}

// RenderStats draws the stat bars and progress lines for a snapshot
func RenderStats(p pet.Pet) string {
	lines := []string{
		fmt.Sprintf("%-12s %s %3.0f", "Energy", Bar(p.Energy), p.Energy),
		fmt.Sprintf("%-12s %s %3.0f", "Health", Bar(p.Health), p.Health),
		fmt.Sprintf("%-12s %s %3.0f", "Happiness", Bar(p.Happiness), p.Happiness),
		fmt.Sprintf("%-12s %s %3.0f", "Intelligence", Bar(p.Intelligence), p.Intelligence),
		"",
		LabelValue("XP", fmt.Sprintf("%s / %d", p.ExperienceDisplay(), pet.XPThreshold(p.Level))),
		LabelValue("Coins", fmt.Sprintf("%s %d", IconCoin, p.Coins)),
		LabelValue("Streak", fmt.Sprintf("%s %d days", IconFire, p.Streak)),
		LabelValue("Mood", pet.GetStatusWithLabel(p)),
		LabelValue("Daily tasks", p.DailyProgress()),
	}
	if next, ok := pet.NextEvolution(p.Form); ok {
		lines = append(lines, Muted.Render(fmt.Sprintf("Evolves into %s at level %d", next.Form, next.Level)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.Tab {
			tabs = append(tabs, ActiveTab.Render(label))
		} else {
			tabs = append(tabs, InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderTab() string {
	switch m.Tab {
	case TabActions:
		return m.renderActions()
	case TabInventory:
		return m.renderInventory()
	case TabShop:
		return m.renderShop()
	case TabTasks:
		return RenderTasks(m.Pet)
	case TabCollection:
		return m.renderCollection()
	case TabTrades:
		return m.renderTrades()
	default:
		return RenderTrophies(m.Pet)
	}
}

func (m Model) row(i int, text string) string {
	if i == m.Choice {
		return SelectedRow.Render("> " + text)
	}
	return "  " + text
}

func (m Model) renderActions() string {
	rows := make([]string, 0, len(actionMenu))
	for i, entry := range actionMenu {
		rows = append(rows, m.row(i, entry.label))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderInventory() string {
	if len(m.Pet.Items) == 0 {
		return Muted.Render("Your inventory is empty. Visit the shop!")
	}
	rows := make([]string, 0, len(m.Pet.Items))
	for i, it := range m.Pet.Items {
		rows = append(rows, m.row(i, fmt.Sprintf("%s %s x%d  %s", it.Icon, it.Name, it.Count,
			Muted.Render(fmt.Sprintf("%s +%g", it.Effect, it.Value)))))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderShop() string {
	shop := pet.Shop(m.Pet)
	rows := make([]string, 0, len(shop))
	for i, item := range shop {
		rows = append(rows, m.row(i, ShopLine(item)))
	}
	return strings.Join(rows, "\n")
}

// ShopLine formats one shop entry
func ShopLine(item pet.ShopItem) string {
	price := Gold.Render(fmt.Sprintf("%d%s", item.Price, IconCoin))
	if item.Price == 0 {
		price = Good.Render("free")
	}
	icon := item.Icon
	if icon == "" {
		icon = IconBox
	}
	detail := item.Kind
	if item.Effect != "" {
		detail = fmt.Sprintf("%s +%g", item.Effect, item.Value)
	}
	return fmt.Sprintf("%s %-18s %s  %s", icon, item.Name, price, Muted.Render(detail))
}

// RenderTasks lists the daily tasks with their completion marks
func RenderTasks(p pet.Pet) string {
	rows := []string{H2.Render("Daily tasks " + p.DailyProgress())}
	for _, task := range pet.DailyTasks {
		mark := IconTodo
		if p.IsTaskDone(task.ID) {
			mark = IconDone
		}
		rows = append(rows, fmt.Sprintf("%s %s %-14s %s %s", mark, task.Icon, task.Name,
			Gold.Render(fmt.Sprintf("+%d%s", task.Reward, IconCoin)), Muted.Render(task.Description)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCollection() string {
	rows := make([]string, 0, len(m.Pet.Collectibles))
	for i, c := range m.Pet.Collectibles {
		mark := " "
		switch {
		case m.Offer[c.ID]:
			mark = "↑"
		case m.Want[c.ID]:
			mark = "↓"
		}
		rows = append(rows, m.row(i, mark+" "+CollectibleLine(c)))
	}
	return strings.Join(rows, "\n")
}

// CollectibleLine formats one collectible with its rarity and ownership
func CollectibleLine(c pet.Collectible) string {
	owned := IconLock
	if c.Owned {
		owned = IconGem
	}
	line := fmt.Sprintf("%s #%d %-22s %s %s", owned, c.ID, c.Name,
		RarityStyle(c.Rarity).Render(c.Rarity.String()), Muted.Render(fmt.Sprintf("%d%s", c.Value, IconCoin)))
	if !c.Tradable {
		line += " " + Muted.Render("(untradable)")
	}
	return line
}

func (m Model) renderTrades() string {
	if len(m.Pet.TradeOffers) == 0 {
		return Muted.Render("No trade offers.")
	}
	rows := make([]string, 0, len(m.Pet.TradeOffers))
	for i, o := range m.Pet.TradeOffers {
		rows = append(rows, m.row(i, TradeLine(o)))
	}
	return strings.Join(rows, "\n")
}

// TradeLine summarizes an offer from the local user's point of view
func TradeLine(o pet.TradeOffer) string {
	give, get := o.RequestItems, o.OfferItems
	if o.Outgoing() {
		give, get = o.OfferItems, o.RequestItems
	}
	return fmt.Sprintf("%s %s  give %s  get %s  %s", IconTrade, Key.Render(o.FromUser),
		collectibleNames(give), collectibleNames(get), TradeStatusText(o.Status))
}

func collectibleNames(cs []pet.Collectible) string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// RenderTrophies lists achievements, trophies and skills
func RenderTrophies(p pet.Pet) string {
	achievements, trophies := p.UnlockedCount()
	rows := []string{H2.Render(fmt.Sprintf("Achievements %d/%d", achievements, len(p.Achievements)))}
	for _, a := range p.Achievements {
		rows = append(rows, unlockLine(a.Unlocked, a.Name, a.Description))
	}
	rows = append(rows, "", H2.Render(fmt.Sprintf("Trophies %d/%d", trophies, len(p.Trophies))))
	for _, t := range p.Trophies {
		rows = append(rows, unlockLine(t.Unlocked, t.Name, RarityStyle(t.Rarity).Render(t.Rarity.String())+" "+t.Description))
	}
	rows = append(rows, "", H2.Render("Skills"))
	for _, s := range p.Skills {
		rows = append(rows, unlockLine(s.Unlocked, SkillGlyph(s.Icon)+" "+s.Name, fmt.Sprintf("level %d", s.LevelRequirement)))
	}
	return strings.Join(rows, "\n")
}

func unlockLine(unlocked bool, name, detail string) string {
	if unlocked {
		return fmt.Sprintf("%s %s %s", IconTrophy, Good.Render(name), Muted.Render(detail))
	}
	return fmt.Sprintf("%s %s %s", IconLock, Muted.Render(name), Muted.Render(detail))
}

func (m Model) renderAnimation() string {
	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)
	return animStyle.Render(GetAnimationFrame(m.Animation))
}

func (m Model) helpText() string {
	switch m.Tab {
	case TabInventory:
		return "enter use • s sell one • tab switch • q quit"
	case TabShop:
		return "enter buy • tab switch • q quit"
	case TabCollection:
		return "o offer • w want • t create trade • s sell • esc clear • q quit"
	case TabTrades:
		return "a accept • r reject • x cancel • tab switch • q quit"
	default:
		return "arrows to move • enter to select • tab to switch • q to quit"
	}
}
