package pet

import (
	"time"

	"github.com/google/uuid"
)

// Shop entry kinds
const (
	KindConsumable  = "consumable"
	KindColor       = "color"
	KindAccessory   = "accessory"
	KindBackground  = "background"
	KindCollectible = "collectible"
)

// collectibleShopOffset keeps collectible listings clear of the fixed shop ids
const collectibleShopOffset = 1000

// ShopItem is one purchasable entry
type ShopItem struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Price  int     `json:"price"`
	Icon   string  `json:"icon,omitempty"`
	Effect Effect  `json:"effect,omitempty"`
	Value  float64 `json:"value,omitempty"`
	// Option is the customization value written to the slot
	Option        string `json:"option,omitempty"`
	CollectibleID int    `json:"collectible_id,omitempty"`
}

// DailyTask is a once-per-day bonus
type DailyTask struct {
	ID          string
	Name        string
	Description string
	Reward      int
	Icon        string
}

// EvolutionStage maps a form to the level that unlocks it
type EvolutionStage struct {
	Form  PetForm
	Level int
	Blurb string
}

// Evolution lists forms in ascending level order
var Evolution = []EvolutionStage{
	{FormBlob, 1, "The basic form"},
	{FormFox, 3, "Quick and clever"},
	{FormRobot, 6, "Logical and efficient"},
	{FormDragon, 9, "Powerful and wise"},
	{FormWizard, 12, "Magical and mysterious"},
	{FormAlien, 15, "Out of this world"},
}

// DailyTasks is the fixed daily catalog
var DailyTasks = []DailyTask{
	{TaskCode, "Code Session", "Complete a coding session", 15, "💻"},
	{TaskBreak, "Take a Break", "Give your pet a break", 10, "☕"},
	{TaskSleep, "Full Rest", "Let your pet sleep", 10, "😴"},
	{TaskPlay, "Playtime", "Play with your pet", 15, "🎮"},
	{TaskTrain, "Training", "Train your pet's intelligence", 20, "🧠"},
	{TaskItem, "Use an Item", "Use any item from your inventory", 10, "📦"},
}

// FindDailyTask looks up a task by id
func FindDailyTask(id string) (DailyTask, bool) {
	for _, t := range DailyTasks {
		if t.ID == id {
			return t, true
		}
	}
	return DailyTask{}, false
}

// lootTable holds the items a code session can drop
var lootTable = []InventoryItem{
	{Name: "Mystery Code", Icon: "🎲", Effect: EffectRandom, Value: 10},
	{Name: "Energy Drink", Icon: "⚡", Effect: EffectEnergy, Value: 20},
	{Name: "Brain Boost", Icon: "🧠", Effect: EffectIntelligence, Value: 15},
	{Name: "Happy Sticker", Icon: "😊", Effect: EffectHappiness, Value: 25},
}

var shopItems = []ShopItem{
	{ID: 1, Name: "Energy Drink", Kind: KindConsumable, Effect: EffectEnergy, Value: 30, Price: 50, Icon: "⚡"},
	{ID: 2, Name: "Health Potion", Kind: KindConsumable, Effect: EffectHealth, Value: 40, Price: 60, Icon: "❤️"},
	{ID: 3, Name: "Happy Treat", Kind: KindConsumable, Effect: EffectHappiness, Value: 35, Price: 45, Icon: "😊"},
	{ID: 4, Name: "Brain Book", Kind: KindConsumable, Effect: EffectIntelligence, Value: 25, Price: 70, Icon: "🧠"},
	{ID: 5, Name: "XP Boost", Kind: KindConsumable, Effect: EffectExp, Value: 50, Price: 100, Icon: "✨"},
	{ID: 6, Name: "Mystery Box", Kind: KindConsumable, Effect: EffectRandom, Value: 20, Price: 80, Icon: "🎲"},

	{ID: 101, Name: "White Color", Kind: KindColor, Option: "#ffffff"},
	{ID: 102, Name: "Light Gray", Kind: KindColor, Option: "#cccccc"},
	{ID: 103, Name: "Dark Gray", Kind: KindColor, Option: "#666666"},
	{ID: 104, Name: "Black Color", Kind: KindColor, Option: "#000000"},
	{ID: 105, Name: "Party Hat", Kind: KindAccessory, Option: "hat", Price: 200},
	{ID: 106, Name: "Cool Glasses", Kind: KindAccessory, Option: "glasses", Price: 150},
	{ID: 107, Name: "Bow Tie", Kind: KindAccessory, Option: "bowtie", Price: 180},
}

// Shop lists the fixed catalog plus every unowned collectible at its value
func Shop(p Pet) []ShopItem {
	out := make([]ShopItem, 0, len(shopItems)+len(p.Collectibles))
	out = append(out, shopItems...)
	for _, c := range p.Collectibles {
		if c.Owned {
			continue
		}
		out = append(out, ShopItem{
			ID:            collectibleShopOffset + c.ID,
			Name:          c.Name,
			Kind:          KindCollectible,
			Price:         c.Value,
			CollectibleID: c.ID,
		})
	}
	return out
}

// FindShopItem resolves a shop id against the current snapshot
func FindShopItem(p Pet, id int) (ShopItem, bool) {
	for _, s := range Shop(p) {
		if s.ID == id {
			return s, true
		}
	}
	return ShopItem{}, false
}

// EffectIcon picks an inventory icon for items that carry none
func EffectIcon(e Effect) string {
	switch e {
	case EffectEnergy:
		return "⚡"
	case EffectHealth:
		return "❤️"
	case EffectHappiness:
		return "😊"
	case EffectIntelligence:
		return "🧠"
	case EffectExp:
		return "✨"
	case EffectRandom:
		return "🎲"
	default:
		return "📦"
	}
}

// StarterItems is the inventory of a brand new pet
func StarterItems() []InventoryItem {
	return []InventoryItem{
		{ID: 1, Name: "Coffee Boost", Icon: "☕", Count: 2, Effect: EffectEnergy, Value: 30},
		{ID: 2, Name: "Code Snack", Icon: "🍕", Count: 1, Effect: EffectHealth, Value: 25},
		{ID: 3, Name: "Debug Potion", Icon: "🧪", Count: 1, Effect: EffectExp, Value: 15},
	}
}

// AchievementCatalog returns the achievements of a brand new pet
func AchievementCatalog() []Achievement {
	return []Achievement{
		{1, "First Line", "Write your first line of code", true},
		{2, "Code Warrior", "Code for 5 days in a row", false},
		{3, "Night Owl", "Code after midnight", true},
		{4, "Bug Hunter", "Fix 10 bugs", false},
		{5, "Level 10", "Reach level 10 with your pet", false},
		{6, "Shopaholic", "Buy 5 items from the shop", false},
		{7, "Task Master", "Complete all daily tasks", false},
		{8, "Dragon Tamer", "Evolve your pet to dragon form", false},
	}
}

// TrophyCatalog returns the trophies of a brand new pet
func TrophyCatalog() []Trophy {
	return []Trophy{
		{1, "Coding Novice", "Reached level 5 with your pet", false, RarityCommon},
		{2, "Coding Expert", "Reached level 10 with your pet", false, RarityUncommon},
		{3, "Coding Master", "Reached level 15 with your pet", false, RarityRare},
		{4, "Streak Champion", "Maintained a 10-day coding streak", false, RarityUncommon},
		{5, "Pet Whisperer", "Maxed out your pet's happiness", false, RarityRare},
		{6, "Collector", "Collected all pet forms", false, RarityEpic},
		{7, "Legendary Coder", "Completed all achievements", false, RarityLegendary},
	}
}

// CollectibleCatalog returns the collectibles of a brand new pet.
// The three starter collectibles are stamped with now.
func CollectibleCatalog(now time.Time) []Collectible {
	owned := func() *time.Time {
		t := now.UTC()
		return &t
	}
	return []Collectible{
		{ID: 1, Name: "Golden Code Block", Description: "A rare golden code block that shimmers with digital energy",
			Rarity: RarityRare, Category: "icon", Owned: true, Tradable: true, Value: 500, ObtainedDate: owned()},
		{ID: 2, Name: "Quantum Compiler", Description: "A mythical compiler that can process quantum algorithms",
			Rarity: RarityMythic, Category: "special", Tradable: true, Value: 2000},
		{ID: 3, Name: "Pixel Shades", Description: "Cool pixelated sunglasses for your pet",
			Rarity: RarityUncommon, Category: "accessory", Owned: true, Tradable: true, Value: 150, ObtainedDate: owned()},
		{ID: 4, Name: "Holographic Background", Description: "A stunning holographic background for your pet",
			Rarity: RarityEpic, Category: "background", Tradable: true, Value: 800},
		{ID: 5, Name: "Legendary Coder Badge", Description: "A badge awarded to only the most elite coders",
			Rarity: RarityLegendary, Category: "badge", Value: 5000},
		{ID: 6, Name: "Cybernetic Pet Upgrade", Description: "Transform your pet with futuristic cybernetic enhancements",
			Rarity: RarityEpic, Category: "pet", Tradable: true, Value: 1200},
		{ID: 7, Name: "Vintage Terminal", Description: "An ancient terminal from the early days of computing",
			Rarity: RarityRare, Category: "icon", Owned: true, Tradable: true, Value: 350, ObtainedDate: owned()},
		{ID: 8, Name: "Rainbow Aura", Description: "A mesmerizing rainbow aura that surrounds your pet",
			Rarity: RarityEpic, Category: "accessory", Tradable: true, Value: 900},
	}
}

// SeedTradeOffers returns the two incoming offers every new pet starts with
func SeedTradeOffers(now time.Time) []TradeOffer {
	now = now.UTC()
	return []TradeOffer{
		{
			ID:       uuid.NewString(),
			FromUser: "CodeMaster42",
			OfferItems: []Collectible{{ID: 101, Name: "Neon Circuit Hat", Description: "A hat made of glowing neon circuits",
				Rarity: RarityRare, Category: "accessory", Owned: true, Tradable: true, Value: 450}},
			RequestItems: []Collectible{{ID: 3, Name: "Pixel Shades", Description: "Cool pixelated sunglasses for your pet",
				Rarity: RarityUncommon, Category: "accessory", Owned: true, Tradable: true, Value: 150}},
			Status:    TradePending,
			CreatedAt: now,
			ExpiresAt: now.Add(TradeOfferTTL),
		},
		{
			ID:       uuid.NewString(),
			FromUser: "ByteBaron",
			OfferItems: []Collectible{{ID: 102, Name: "Quantum Keyboard", Description: "A keyboard that types in multiple dimensions",
				Rarity: RarityEpic, Category: "icon", Owned: true, Tradable: true, Value: 850}},
			RequestItems: []Collectible{{ID: 7, Name: "Vintage Terminal", Description: "An ancient terminal from the early days of computing",
				Rarity: RarityRare, Category: "icon", Owned: true, Tradable: true, Value: 350}},
			Status:    TradePending,
			CreatedAt: now,
			ExpiresAt: now.Add(TradeOfferTTL),
		},
	}
}

// SkillCatalog returns the skills of a brand new pet
func SkillCatalog() []Skill {
	return []Skill{
		{1, "Auto-Debug", 3, false, "shield"},
		{2, "Code Generation", 5, false, "zap"},
		{3, "Data Analysis", 7, false, "chart"},
		{4, "AI Assistant", 10, false, "bot"},
		{5, "Time Warp", 12, false, "clock"},
	}
}
