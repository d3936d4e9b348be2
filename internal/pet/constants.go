package pet

import "time"

// Game constants
const (
	DefaultPetName = "Bytey"
	MaxStat        = 100.0
	MinStat        = 0.0
	MaxNameLength  = 24

	// Starting values for a new or reset pet
	InitialEnergy       = 80
	InitialHealth       = 90
	InitialHappiness    = 75
	InitialIntelligence = 50
	InitialCoins        = 150
	InitialStreak       = 3
	ResetCoins          = 50

	// Ambient decay, applied once per decay tick
	DecayEnergy       = 0.5
	DecayHappiness    = 0.3
	DecayHealth       = 0.1
	DecayIntelligence = 0.2

	DefaultDecayInterval = 30 * time.Second
	DefaultIdleInterval  = 10 * time.Second

	// Action energy requirements
	CodeEnergyRequired  = 10
	PlayEnergyRequired  = 15
	TrainEnergyRequired = 20

	// Code session
	CodeEnergyCost       = 15
	CodeIntelligenceGain = 3
	CodeHappinessCost    = 5
	CodeHealthCost       = 2
	CodeBaseXPMin        = 5
	CodeBaseXPSpread     = 10 // base XP is CodeBaseXPMin + [0, spread)
	CodeCoinMin          = 1
	CodeCoinSpread       = 5
	LootChance           = 0.3

	// Level up
	LevelUpHealthBonus       = 10
	LevelUpEnergyBonus       = 15
	LevelUpIntelligenceBonus = 5
	LevelUpHappinessBonus    = 10

	// Daily login
	LoginRewardBase      = 25
	LoginRewardPerStreak = 5

	// Mystery effect
	RandomBonusMin    = 10
	RandomBonusSpread = 20

	// Trades
	LocalUser       = "You"
	TradeOfferTTL   = 24 * time.Hour
	DateLayout      = "2006-01-02"
	NightOwlEndHour = 5

	// Milestone thresholds
	CodeWarriorStreak   = 5
	StreakChampionDays  = 10
	BugHunterSessions   = 10
	LevelTenAchievement = 10
	ShopaholicPurchases = 5

	// Idle animation
	IdleAnimationChance = 0.2
)

// Visual delays for deferred actions
const (
	CodeDelay         = 1000 * time.Millisecond
	ActionDelay       = 800 * time.Millisecond
	FeedDelay         = 1500 * time.Millisecond
	ItemDelay         = 1500 * time.Millisecond
	PaidPurchaseDelay = 1000 * time.Millisecond
	FreePurchaseDelay = 300 * time.Millisecond
)

// Mood is derived from energy and happiness
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodTired   Mood = "tired"
	MoodExcited Mood = "excited"
	MoodCurious Mood = "curious"
	MoodPlayful Mood = "playful"
	MoodSleepy  Mood = "sleepy"
)

// PetForm represents evolution forms, ordered by level
type PetForm string

const (
	FormBlob   PetForm = "blob"
	FormFox    PetForm = "fox"
	FormRobot  PetForm = "robot"
	FormDragon PetForm = "dragon"
	FormWizard PetForm = "wizard"
	FormAlien  PetForm = "alien"
)

// Effect is what an inventory item does when used
type Effect string

const (
	EffectEnergy       Effect = "energy"
	EffectHealth       Effect = "health"
	EffectHappiness    Effect = "happiness"
	EffectIntelligence Effect = "intelligence"
	EffectExp          Effect = "exp"
	EffectRandom       Effect = "random"
	effectCoins        Effect = "coins" // only reachable through EffectRandom
)

// Rarity orders collectibles and trophies
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythic
)

// TradeStatus is the lifecycle state of a trade offer
type TradeStatus string

const (
	TradePending  TradeStatus = "pending"
	TradeAccepted TradeStatus = "accepted"
	TradeRejected TradeStatus = "rejected"
	TradeExpired  TradeStatus = "expired"
)

// Daily task ids
const (
	TaskCode  = "code"
	TaskBreak = "break"
	TaskSleep = "sleep"
	TaskPlay  = "play"
	TaskTrain = "train"
	TaskItem  = "item"
)

// Customization slots
const (
	SlotColor      = "color"
	SlotAccessory  = "accessory"
	SlotBackground = "background"
)

// Status emojis
const (
	StatusEmojiHappy   = "😸"
	StatusEmojiNeutral = "🙂"
	StatusEmojiTired   = "😾"
	StatusEmojiExcited = "😻"
	StatusEmojiCurious = "🧐"
	StatusEmojiPlayful = "😼"
	StatusEmojiSleepy  = "😴"
)
