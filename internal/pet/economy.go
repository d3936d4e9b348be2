package pet

import (
	"fmt"

	"codepet/internal/logger"
)

// randomEffects are the outcomes a mystery item can roll
var randomEffects = []Effect{EffectEnergy, EffectHealth, EffectHappiness, EffectIntelligence, EffectExp, effectCoins}

// nextItemID hands out a fresh inventory id
func (p *Pet) nextItemID() int {
	id := p.NextItemID
	for _, it := range p.Items {
		if it.ID >= id {
			id = it.ID + 1
		}
	}
	p.NextItemID = id + 1
	return id
}

// addItem merges an item into the inventory by (name, effect, value)
func (p *Pet) addItem(item InventoryItem) {
	if item.Count < 1 {
		item.Count = 1
	}
	for i := range p.Items {
		if p.Items[i].sameStack(item) {
			p.Items[i].Count += item.Count
			return
		}
	}
	if item.Icon == "" {
		item.Icon = EffectIcon(item.Effect)
	}
	item.ID = p.nextItemID()
	p.Items = append(p.Items, item)
}

// takeItem removes one unit of a stack, dropping the stack at zero
func (p *Pet) takeItem(idx int) {
	p.Items[idx].Count--
	if p.Items[idx].Count <= 0 {
		p.Items = append(p.Items[:idx], p.Items[idx+1:]...)
	}
}

func validEffect(e Effect) bool {
	switch e {
	case EffectEnergy, EffectHealth, EffectHappiness, EffectIntelligence, EffectExp, EffectRandom:
		return true
	}
	return false
}

// checkPurchase validates a purchase without touching the pet
func checkPurchase(p Pet, item ShopItem) error {
	if item.Price < 0 {
		return fmt.Errorf("price %d: %w", item.Price, ErrInvalidInput)
	}
	switch item.Kind {
	case KindColor, KindAccessory, KindBackground:
	case KindConsumable:
		if !validEffect(item.Effect) {
			return fmt.Errorf("effect %q: %w", item.Effect, ErrInvalidInput)
		}
	case KindCollectible:
		idx := p.FindCollectible(item.CollectibleID)
		if idx < 0 {
			return invalidRef("collectible", item.CollectibleID)
		}
		if p.Collectibles[idx].Owned {
			return fmt.Errorf("already own %s: %w", p.Collectibles[idx].Name, ErrNoOp)
		}
	default:
		return fmt.Errorf("shop kind %q: %w", item.Kind, ErrInvalidInput)
	}
	if item.Price > 0 && p.Coins < item.Price {
		return &FundsError{Price: item.Price, Coins: p.Coins}
	}
	return nil
}

func buy(item ShopItem) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		if err := checkPurchase(*p, item); err != nil {
			return err
		}
		p.Coins -= item.Price

		switch item.Kind {
		case KindColor, KindAccessory, KindBackground:
			p.setSlot(item.Kind, item.Option)
			t.success("Applied %s to %s!", item.Name, p.Name)
		case KindCollectible:
			c := &p.Collectibles[p.FindCollectible(item.CollectibleID)]
			c.Owned = true
			obtained := t.now.UTC()
			c.ObtainedDate = &obtained
			t.success("Acquired %s!", c.Name)
		default:
			p.addItem(InventoryItem{
				Name:   item.Name,
				Icon:   item.Icon,
				Count:  1,
				Effect: item.Effect,
				Value:  item.Value,
			})
			if item.Price > 0 {
				t.success("Successfully purchased %s for %d coins!", item.Name, item.Price)
			} else {
				t.success("Successfully purchased %s!", item.Name)
			}
		}

		p.ItemsBought++
		logger.Info("purchase", "item", item.Name, "kind", item.Kind, "price", item.Price, "coins", p.Coins)
		return nil
	}
}

func checkUseItem(id int) func(Pet) error {
	return func(p Pet) error {
		if p.FindItem(id) < 0 {
			return invalidRef("item", id)
		}
		return nil
	}
}

func useItem(id int) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		idx := p.FindItem(id)
		if idx < 0 {
			return invalidRef("item", id)
		}
		item := p.Items[idx]

		switch item.Effect {
		case EffectExp:
			t.info("Experience increased by %g!", item.Value)
			p.gainXP(t, item.Value)
		case EffectRandom:
			effect := randomEffects[t.rng.Intn(len(randomEffects))]
			value := t.randInt(RandomBonusMin, RandomBonusSpread)
			p.applyBonus(t, effect, float64(value))
			t.info("Mystery box gave you %d %s!", value, effect)
		default:
			if !p.addVital(item.Effect, item.Value) {
				return fmt.Errorf("item %d effect %q: %w", id, item.Effect, ErrInvalidInput)
			}
			t.info("%s increased by %g!", effectLabel(item.Effect), item.Value)
		}

		p.takeItem(idx)
		p.completeDailyTask(t, TaskItem)
		return nil
	}
}

func (p *Pet) applyBonus(t *turn, e Effect, v float64) {
	switch e {
	case EffectExp:
		p.gainXP(t, v)
	case effectCoins:
		p.Coins += int(v)
	default:
		p.addVital(e, v)
	}
}

func effectLabel(e Effect) string {
	s := string(e)
	if s == "" {
		return ""
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func sellItem(id int) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		idx := p.FindItem(id)
		if idx < 0 {
			return invalidRef("item", id)
		}
		item := p.Items[idx]
		credit := int(item.Value) / 2
		p.Coins += credit
		p.takeItem(idx)
		t.success("Sold %s for %d coins.", item.Name, credit)
		return nil
	}
}

func checkSellCollectible(id int) func(Pet) error {
	return func(p Pet) error {
		idx := p.FindCollectible(id)
		if idx < 0 || !p.Collectibles[idx].Owned {
			return invalidRef("collectible", id)
		}
		if !p.Collectibles[idx].Tradable {
			return fmt.Errorf("%s cannot be sold: %w", p.Collectibles[idx].Name, ErrInvalidInput)
		}
		return nil
	}
}

func sellCollectible(id int) func(*Pet, *turn) error {
	return func(p *Pet, t *turn) error {
		if err := checkSellCollectible(id)(*p); err != nil {
			return err
		}
		c := &p.Collectibles[p.FindCollectible(id)]
		credit := c.Value / 2
		p.Coins += credit
		c.Owned = false
		c.ObtainedDate = nil
		t.success("Sold %s for %d coins.", c.Name, credit)
		logger.Info("collectible sold", "collectible", c.Name, "credit", credit)
		return nil
	}
}
