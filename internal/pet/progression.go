package pet

import (
	"time"

	"codepet/internal/logger"
)

// XPThreshold is the experience needed to leave the given level
func XPThreshold(level int) int {
	return level*20 + level*level*3/2
}

// FormForLevel returns the most advanced form the level qualifies for
func FormForLevel(level int) PetForm {
	form := FormBlob
	for _, s := range Evolution {
		if level >= s.Level {
			form = s.Form
		}
	}
	return form
}

// FormRank orders forms by evolution stage
func FormRank(f PetForm) int {
	for i, s := range Evolution {
		if s.Form == f {
			return i
		}
	}
	return 0
}

// NextEvolution returns the next stage, if any
func NextEvolution(f PetForm) (EvolutionStage, bool) {
	r := FormRank(f)
	if r+1 >= len(Evolution) {
		return EvolutionStage{}, false
	}
	return Evolution[r+1], true
}

func needEnergy(action string, need float64) func(Pet) error {
	return func(p Pet) error {
		if p.Energy < need {
			return &EnergyError{Action: action, Need: need, Have: p.Energy}
		}
		return nil
	}
}

// gainXP adds experience and runs the level-up check
func (p *Pet) gainXP(t *turn, xp float64) {
	p.Experience += xp
	p.checkLevelUp(t)
}

// checkLevelUp advances at most one level when experience reaches the threshold
func (p *Pet) checkLevelUp(t *turn) bool {
	if p.Experience < float64(XPThreshold(p.Level)) {
		return false
	}
	p.Level++
	p.Experience = 0

	if f := FormForLevel(p.Level); FormRank(f) > FormRank(p.Form) {
		p.Form = f
		t.success("%s evolved into a %s!", p.Name, p.GetFormName())
	}

	p.Coins += p.Level*10 + p.Level*5
	p.addHealth(LevelUpHealthBonus)
	p.addEnergy(LevelUpEnergyBonus)
	p.addIntelligence(LevelUpIntelligenceBonus)
	p.addHappiness(LevelUpHappinessBonus)

	switch p.Level {
	case 5:
		p.unlockTrophy(t, 1)
	case 10:
		p.unlockTrophy(t, 2)
	case 15:
		p.unlockTrophy(t, 3)
	}
	p.refreshSkills(t)

	t.reward(RewardLevel, p.Level)
	t.success("%s leveled up to level %d!", p.Name, p.Level)
	logger.Info("level up", "pet", p.Name, "level", p.Level, "form", p.Form)
	return true
}

// refreshSkills unlocks every skill the current level qualifies for
func (p *Pet) refreshSkills(t *turn) {
	for i := range p.Skills {
		s := &p.Skills[i]
		if !s.Unlocked && p.Level >= s.LevelRequirement {
			s.Unlocked = true
			if t != nil {
				t.success("New skill unlocked: %s", s.Name)
			}
		}
	}
}

func codeSession(p *Pet, t *turn) error {
	if err := needEnergy("coding", CodeEnergyRequired)(*p); err != nil {
		return err
	}

	xp := t.randInt(CodeBaseXPMin, CodeBaseXPSpread) +
		int(p.Energy/20) + int(p.Intelligence/20) + p.Level/3
	coins := t.randInt(CodeCoinMin, CodeCoinSpread) + p.Level/2

	p.Experience += float64(xp)
	p.Streak++
	p.CodeSessions++
	p.addEnergy(-CodeEnergyCost)
	p.addIntelligence(CodeIntelligenceGain)
	p.addHappiness(-CodeHappinessCost)
	p.addHealth(-CodeHealthCost)
	p.Coins += coins
	t.success("Coding session complete! +%d XP, +%d coins", xp, coins)

	if h := t.now.Local().Hour(); h < NightOwlEndHour {
		p.unlockAchievement(t, 3)
	}
	p.completeDailyTask(t, TaskCode)

	if t.rng.Float64() > 1-LootChance {
		loot := lootTable[t.rng.Intn(len(lootTable))]
		loot.Count = 1
		p.addItem(loot)
		t.success("%s found a %s while coding!", p.Name, loot.Name)
	}

	p.checkLevelUp(t)
	p.refreshMood(t)
	return nil
}

func takeBreak(p *Pet, t *turn) error {
	p.addEnergy(15)
	p.addHappiness(10)
	p.addHealth(5)
	p.addIntelligence(-2)
	p.Mood = MoodNeutral
	t.info("%s takes a well-deserved break.", p.Name)
	p.completeDailyTask(t, TaskBreak)
	return nil
}

func sleep(p *Pet, t *turn) error {
	p.Energy = MaxStat
	p.addHealth(15)
	p.addHappiness(5)
	p.addIntelligence(-5)
	p.Mood = MoodTired
	t.info("%s had a good sleep. Energy restored!", p.Name)
	p.completeDailyTask(t, TaskSleep)
	return nil
}

func play(p *Pet, t *turn) error {
	if err := needEnergy("playing", PlayEnergyRequired)(*p); err != nil {
		return err
	}
	p.addEnergy(-20)
	p.addHappiness(25)
	p.addHealth(10)
	p.addIntelligence(2)
	p.Mood = MoodExcited
	t.info("%s had a blast playing!", p.Name)
	p.completeDailyTask(t, TaskPlay)
	return nil
}

func train(p *Pet, t *turn) error {
	if err := needEnergy("training", TrainEnergyRequired)(*p); err != nil {
		return err
	}
	p.addEnergy(-25)
	p.addIntelligence(15)
	p.addHappiness(-10)
	p.addHealth(-5)
	p.Mood = MoodNeutral
	t.info("%s completed a training session.", p.Name)
	p.completeDailyTask(t, TaskTrain)
	return nil
}

func petPet(p *Pet, t *turn) error {
	p.addHappiness(15)
	p.addEnergy(-2)
	p.addHealth(2)
	p.Mood = MoodHappy
	t.info("%s loves the attention!", p.Name)
	return nil
}

func feed(p *Pet, t *turn) error {
	p.addHealth(20)
	p.addEnergy(10)
	p.addHappiness(5)
	p.addIntelligence(-2)
	t.info("%s enjoyed the meal!", p.Name)
	p.refreshMood(t)
	return nil
}

func trick(p *Pet, t *turn) error {
	xp := 5 + int(p.Intelligence/10)
	p.addIntelligence(5)
	p.addEnergy(-10)
	p.addHappiness(5)
	p.addHealth(-3)
	t.success("%s learned a new trick! +%d XP", p.Name, xp)
	p.gainXP(t, float64(xp))
	p.refreshMood(t)
	return nil
}

// applyDecay is the ambient tick: small losses on every vital, then mood
func applyDecay(p *Pet, t *turn) {
	p.addEnergy(-DecayEnergy)
	p.addHappiness(-DecayHappiness)
	p.addHealth(-DecayHealth)
	p.addIntelligence(-DecayIntelligence)
	p.refreshMood(t)
}

// IdleAnimation is a purely visual flourish
type IdleAnimation struct {
	Name     string
	Duration time.Duration
}

// RollIdleAnimation decides whether the pet fidgets this idle tick
func RollIdleAnimation(rng Rand) (IdleAnimation, bool) {
	if rng.Float64() >= IdleAnimationChance {
		return IdleAnimation{}, false
	}
	switch r := rng.Float64(); {
	case r > 0.7:
		return IdleAnimation{"bounce", 1000 * time.Millisecond}, true
	case r > 0.4:
		return IdleAnimation{"spin", 800 * time.Millisecond}, true
	default:
		return IdleAnimation{"pulse", 1200 * time.Millisecond}, true
	}
}
