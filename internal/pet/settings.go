package pet

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name cannot be empty: %w", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", fmt.Errorf("name longer than %d characters: %w", MaxNameLength, ErrInvalidInput)
	}
	return name, nil
}

func setName(name string) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		clean, err := cleanName(name)
		if err != nil {
			return err
		}
		if clean == p.Name {
			return fmt.Errorf("name unchanged: %w", ErrNoOp)
		}
		p.Name = clean
		t.success("Your pet is now called %s.", clean)
		return nil
	}
}

func validSlot(slot string) bool {
	switch slot {
	case SlotColor, SlotAccessory, SlotBackground:
		return true
	}
	return false
}

func (p *Pet) setSlot(slot, value string) {
	switch slot {
	case SlotColor:
		p.Customizations.Color = value
	case SlotAccessory:
		p.Customizations.Accessory = value
	case SlotBackground:
		p.Customizations.Background = value
	}
}

func applyCustomization(slot, value string) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		if !validSlot(slot) {
			return fmt.Errorf("customization slot %q: %w", slot, ErrInvalidInput)
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("customization value cannot be empty: %w", ErrInvalidInput)
		}
		p.setSlot(slot, value)
		t.success("Applied %s %s.", slot, value)
		return nil
	}
}

// resetProgress restores the starting stats but keeps every catalog
func resetProgress(p *Pet, t *turn) error {
	p.Name = DefaultPetName
	p.Level = 1
	p.Experience = 0
	p.Streak = 0
	p.Mood = MoodNeutral
	p.Energy = InitialEnergy
	p.Health = InitialHealth
	p.Happiness = InitialHappiness
	p.Intelligence = InitialIntelligence
	p.Coins = ResetCoins
	p.Items = []InventoryItem{}
	p.Form = FormBlob
	p.DailyTasksCompleted = []string{}
	p.Customizations = Customizations{Color: "default", Accessory: "none", Background: "default"}
	t.info("%s has been reset. A fresh start!", p.Name)
	return nil
}
