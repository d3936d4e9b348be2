package pet

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Testable time and random functions
var (
	TimeNow = func() time.Time { return time.Now().UTC() }
)

// Rand is the source of every random decision the rules make.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a time-seeded source for production use.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Customizations are free-form cosmetic tags
type Customizations struct {
	Color      string `json:"color"`
	Accessory  string `json:"accessory"`
	Background string `json:"background"`
}

// InventoryItem is a stack of identical consumables
type InventoryItem struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Count  int     `json:"count"`
	Effect Effect  `json:"effect"`
	Value  float64 `json:"value"`
}

// sameStack reports whether two items share stacking identity
func (i InventoryItem) sameStack(o InventoryItem) bool {
	return i.Name == o.Name && i.Effect == o.Effect && i.Value == o.Value
}

// Achievement is a catalog entry unlocked by play milestones
type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Trophy is a rarer achievement with a rarity tier
type Trophy struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Rarity      Rarity `json:"rarity"`
}

// Collectible is a tradable catalog item
type Collectible struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Rarity       Rarity     `json:"rarity"`
	Category     string     `json:"category"`
	Owned        bool       `json:"owned"`
	Tradable     bool       `json:"tradable"`
	Value        int        `json:"value"`
	ObtainedDate *time.Time `json:"obtained_date,omitempty"`
}

// TradeOffer swaps collectibles between the local user and another collector
type TradeOffer struct {
	ID           string        `json:"id"`
	FromUser     string        `json:"from_user"`
	OfferItems   []Collectible `json:"offer_items"`
	RequestItems []Collectible `json:"request_items"`
	Status       TradeStatus   `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	ExpiresAt    time.Time     `json:"expires_at"`
}

// Outgoing reports whether the local user created the offer
func (o TradeOffer) Outgoing() bool {
	return o.FromUser == LocalUser
}

// Skill unlocks once the pet reaches its level requirement.
// Icon is a symbolic tag; the presentation layer maps it to a glyph.
type Skill struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	LevelRequirement int    `json:"level_requirement"`
	Unlocked         bool   `json:"unlocked"`
	Icon             string `json:"icon"`
}

// Pet is the single snapshot every rule reads and writes
type Pet struct {
	Name         string  `json:"name"`
	Level        int     `json:"level"`
	Experience   float64 `json:"experience"`
	Streak       int     `json:"streak"`
	Mood         Mood    `json:"mood"`
	Energy       float64 `json:"energy"`
	Health       float64 `json:"health"`
	Happiness    float64 `json:"happiness"`
	Intelligence float64 `json:"intelligence"`
	Coins        int     `json:"coins"`
	Form         PetForm `json:"form"`

	Customizations      Customizations `json:"customizations"`
	LastLogin           string         `json:"last_login"`
	DailyTasksCompleted []string       `json:"daily_tasks_completed"`

	Items        []InventoryItem `json:"items"`
	Achievements []Achievement   `json:"achievements"`
	Trophies     []Trophy        `json:"trophies"`
	Collectibles []Collectible   `json:"collectibles"`
	TradeOffers  []TradeOffer    `json:"trade_offers"`
	Skills       []Skill         `json:"skills"`

	// Progress counters
	CodeSessions int `json:"code_sessions"`
	ItemsBought  int `json:"items_bought"`
	NextItemID   int `json:"next_item_id"`
}

// NewPet creates a pet with the starting catalogs, logged in on the given day
func NewPet(now time.Time) Pet {
	p := Pet{
		Name:         DefaultPetName,
		Level:        1,
		Streak:       InitialStreak,
		Mood:         MoodHappy,
		Energy:       InitialEnergy,
		Health:       InitialHealth,
		Happiness:    InitialHappiness,
		Intelligence: InitialIntelligence,
		Coins:        InitialCoins,
		Form:         FormBlob,
		Customizations: Customizations{
			Color:      "default",
			Accessory:  "none",
			Background: "default",
		},
		LastLogin:           DateKey(now),
		DailyTasksCompleted: []string{},
		Items:               StarterItems(),
		Achievements:        AchievementCatalog(),
		Trophies:            TrophyCatalog(),
		Collectibles:        CollectibleCatalog(now),
		TradeOffers:         SeedTradeOffers(now),
		Skills:              SkillCatalog(),
	}
	p.NextItemID = len(p.Items) + 1
	return p
}

// Clone returns a deep copy so rules can work on a scratch snapshot
func (p Pet) Clone() Pet {
	c := p
	c.DailyTasksCompleted = cloneSlice(p.DailyTasksCompleted)
	c.Items = cloneSlice(p.Items)
	c.Achievements = cloneSlice(p.Achievements)
	c.Trophies = cloneSlice(p.Trophies)
	c.Collectibles = cloneCollectibles(p.Collectibles)
	c.Skills = cloneSlice(p.Skills)
	if p.TradeOffers != nil {
		c.TradeOffers = make([]TradeOffer, len(p.TradeOffers))
		for i, o := range p.TradeOffers {
			o.OfferItems = cloneCollectibles(o.OfferItems)
			o.RequestItems = cloneCollectibles(o.RequestItems)
			c.TradeOffers[i] = o
		}
	}
	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneCollectibles(s []Collectible) []Collectible {
	out := cloneSlice(s)
	for i := range out {
		if out[i].ObtainedDate != nil {
			t := *out[i].ObtainedDate
			out[i].ObtainedDate = &t
		}
	}
	return out
}

// DateKey formats the local calendar day used for daily rollover
func DateKey(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// FindItem returns the index of the inventory stack with the given id, or -1
func (p Pet) FindItem(id int) int {
	for i := range p.Items {
		if p.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCollectible returns the index of the catalog collectible with the given id, or -1
func (p Pet) FindCollectible(id int) int {
	for i := range p.Collectibles {
		if p.Collectibles[i].ID == id {
			return i
		}
	}
	return -1
}

// FindOffer returns the index of the trade offer with the given id, or -1
func (p Pet) FindOffer(id string) int {
	for i := range p.TradeOffers {
		if p.TradeOffers[i].ID == id {
			return i
		}
	}
	return -1
}

// Clamp keeps a vital within [MinStat, MaxStat]
func Clamp(v float64) float64 {
	return max(MinStat, min(v, MaxStat))
}

func (p *Pet) addEnergy(d float64)       { p.Energy = Clamp(p.Energy + d) }
func (p *Pet) addHealth(d float64)       { p.Health = Clamp(p.Health + d) }
func (p *Pet) addHappiness(d float64)    { p.Happiness = Clamp(p.Happiness + d) }
func (p *Pet) addIntelligence(d float64) { p.Intelligence = Clamp(p.Intelligence + d) }

// addVital routes a stat effect to its vital; exp and coins are handled by callers
func (p *Pet) addVital(e Effect, d float64) bool {
	switch e {
	case EffectEnergy:
		p.addEnergy(d)
	case EffectHealth:
		p.addHealth(d)
	case EffectHappiness:
		p.addHappiness(d)
	case EffectIntelligence:
		p.addIntelligence(d)
	default:
		return false
	}
	return true
}

// GetFormName returns the display name for the pet's current form
func (p *Pet) GetFormName() string {
	if p.Form == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(p.Form[:1])) + string(p.Form[1:])
}

// GetFormEmoji returns the emoji for the pet's current form
func (p *Pet) GetFormEmoji() string {
	switch p.Form {
	case FormBlob:
		return "🔵"
	case FormFox:
		return "🦊"
	case FormRobot:
		return "🤖"
	case FormDragon:
		return "🐉"
	case FormWizard:
		return "🧙"
	case FormAlien:
		return "👽"
	default:
		return "❓"
	}
}

// ExperienceDisplay truncates experience to two decimals for display
func (p *Pet) ExperienceDisplay() string {
	return fmt.Sprintf("%.2f", float64(int64(p.Experience*100))/100)
}

var rarityNames = []string{"common", "uncommon", "rare", "epic", "legendary", "mythic"}

func (r Rarity) String() string {
	if r < 0 || int(r) >= len(rarityNames) {
		return "unknown"
	}
	return rarityNames[r]
}

// MarshalText stores rarities by name
func (r Rarity) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(rarityNames) {
		return nil, fmt.Errorf("invalid rarity %d", int(r))
	}
	return []byte(rarityNames[r]), nil
}

// UnmarshalText parses a rarity name
func (r *Rarity) UnmarshalText(b []byte) error {
	for i, name := range rarityNames {
		if name == string(b) {
			*r = Rarity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rarity %q", string(b))
}
